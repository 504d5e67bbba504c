// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/heatshrink

package heatshrink

// defaultChunkSize is the scratch buffer size used by the one-shot helpers
// to drain Poll between Sink calls.
const defaultChunkSize = 4096

// EncodeAll compresses all of src in one call using window exponent w and
// lookahead exponent l. opts may be nil to use DefaultEncoderOptions.
func EncodeAll(src []byte, w, l uint8, opts *EncoderOptions) ([]byte, error) {
	enc, err := NewEncoder(w, l, opts)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(src)/2+64)
	chunk := acquireScratch()
	defer releaseScratch(chunk)

	for offset := 0; offset < len(src); {
		_, n, err := enc.Sink(src[offset:])
		if err != nil {
			return nil, err
		}
		offset += n
		out = drainPoll(enc, chunk, out)
	}

	for enc.Finish() != FinishDone {
		out = drainPoll(enc, chunk, out)
	}
	out = drainPoll(enc, chunk, out)

	return out, nil
}

// DecodeAll decompresses all of src in one call using the same window and
// lookahead exponents the data was encoded with. opts may be nil to use
// DefaultDecoderOptions.
func DecodeAll(src []byte, w, l uint8, opts *DecoderOptions) ([]byte, error) {
	dec, err := NewDecoder(w, l, defaultChunkSize, opts)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(src)*2+64)
	chunk := acquireScratch()
	defer releaseScratch(chunk)

	for offset := 0; offset < len(src); {
		_, n, err := dec.Sink(src[offset:])
		if err != nil {
			return nil, err
		}
		if n == 0 {
			out = drainDecoderPoll(dec, chunk, out)
			continue
		}
		offset += n
		out = drainDecoderPoll(dec, chunk, out)
	}

	for dec.Finish() != FinishDone {
		out = drainDecoderPoll(dec, chunk, out)
	}
	out = drainDecoderPoll(dec, chunk, out)

	return out, nil
}

func drainPoll(enc *Encoder, chunk []byte, out []byte) []byte {
	for {
		res, n := enc.Poll(chunk)
		out = append(out, chunk[:n]...)
		if res == PollEmpty {
			return out
		}
	}
}

func drainDecoderPoll(dec *Decoder, chunk []byte, out []byte) []byte {
	for {
		res, n := dec.Poll(chunk)
		out = append(out, chunk[:n]...)
		if res == PollEmpty {
			return out
		}
	}
}
