package heatshrink

import (
	"bytes"
	"errors"
	"testing"
)

func TestAPIContract_SinkAfterFinishIsMisuse(t *testing.T) {
	enc, err := NewEncoder(8, 4, nil)
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	enc.Finish()
	_, _, err = enc.Sink([]byte("x"))
	if !errors.Is(err, ErrMisuse) {
		t.Fatalf("expected ErrMisuse, got %v", err)
	}
}

func TestAPIContract_NewEncoderRejectsOutOfRangeParameters(t *testing.T) {
	cases := []struct {
		name string
		w, l uint8
	}{
		{"window-too-small", 7, 4},
		{"window-too-large", 16, 4},
		{"lookahead-too-small", 11, 3},
		{"lookahead-equals-window", 11, 11},
		{"lookahead-exceeds-window", 8, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewEncoder(tc.w, tc.l, nil); !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("expected ErrInvalidParameter, got %v", err)
			}
			if _, err := NewDecoder(tc.w, tc.l, 64, nil); !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestAPIContract_SinkReportsFullWhenInputBufferSaturated(t *testing.T) {
	enc, err := NewEncoder(8, 4, nil)
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	res, n, err := enc.Sink(bytes.Repeat([]byte{'x'}, 1<<8))
	if err != nil {
		t.Fatalf("Sink failed: %v", err)
	}
	if res != SinkOK || n != 1<<8 {
		t.Fatalf("expected full window accepted, got res=%v n=%d", res, n)
	}

	res, n, err = enc.Sink([]byte{'y'})
	if err != nil {
		t.Fatalf("Sink failed: %v", err)
	}
	if res != SinkFull || n != 0 {
		t.Fatalf("expected SinkFull with 0 bytes accepted, got res=%v n=%d", res, n)
	}
}

func TestAPIContract_PollOnFreshEncoderIsEmpty(t *testing.T) {
	enc, err := NewEncoder(8, 4, nil)
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	res, n := enc.Poll(make([]byte, 16))
	if res != PollEmpty || n != 0 {
		t.Fatalf("expected (PollEmpty, 0) before any input sunk, got (%v, %d)", res, n)
	}
}

func TestAPIContract_PollCanReturnShorterThanDst(t *testing.T) {
	enc, err := NewEncoder(8, 4, nil)
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}
	if _, _, err := enc.Sink([]byte("a")); err != nil {
		t.Fatalf("Sink failed: %v", err)
	}
	enc.Finish()

	out := make([]byte, 64)
	res, n := enc.Poll(out)
	if res != PollEmpty {
		t.Fatalf("expected PollEmpty once exhausted, got %v", res)
	}
	if n == 0 || n == len(out) {
		t.Fatalf("expected a short, non-empty fill, got n=%d", n)
	}
}

func TestAPIContract_OneByteOutputBufferStillMakesProgress(t *testing.T) {
	data := bytes.Repeat([]byte("ABCDEFGH"), 50)

	enc, err := NewEncoder(8, 4, nil)
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	var compressed []byte
	for offset := 0; offset < len(data); {
		_, n, err := enc.Sink(data[offset:])
		if err != nil {
			t.Fatalf("Sink failed: %v", err)
		}
		offset += n
		compressed = drainOneByteAtATime(t, enc, compressed)
	}
	for enc.Finish() != FinishDone {
		compressed = drainOneByteAtATime(t, enc, compressed)
	}
	compressed = drainOneByteAtATime(t, enc, compressed)

	out, err := DecodeAll(compressed, 8, 4, nil)
	if err != nil {
		t.Fatalf("DecodeAll failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("round-trip mismatch driving Poll one byte at a time")
	}
}

func drainOneByteAtATime(t *testing.T, enc *Encoder, out []byte) []byte {
	t.Helper()
	buf := make([]byte, 1)
	for {
		res, n := enc.Poll(buf)
		out = append(out, buf[:n]...)
		if res == PollEmpty {
			return out
		}
	}
}
