// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/heatshrink

package heatshrink

import "io"

// streamChunkSize is the buffer size used to pump bytes through Sink/Poll
// inside the io.Reader and io.WriteCloser adapters below.
const streamChunkSize = 4096

// reader adapts an Encoder or a Decoder, both of which share the
// Sink/Poll/Finish shape, into an io.Reader over a source stream.
type reader struct {
	src io.Reader

	sink   func([]byte) (SinkResult, int, error)
	poll   func([]byte) (PollResult, int)
	finish func() FinishResult

	in      []byte
	pending []byte // bytes read from src that sink has not accepted yet
	eof     bool
}

// NewReader wraps an Encoder so that reading from the returned io.Reader
// yields the compressed form of whatever is read from src. Mirrors the
// teacher's DecompressFromReader, but pulls incrementally instead of
// buffering the whole input.
func NewReader(src io.Reader, enc *Encoder) io.Reader {
	return &reader{
		src:    src,
		sink:   enc.Sink,
		poll:   enc.Poll,
		finish: enc.Finish,
		in:     make([]byte, streamChunkSize),
	}
}

// NewDecompressReader wraps a Decoder so that reading from the returned
// io.Reader yields the decompressed form of whatever is read from src.
func NewDecompressReader(src io.Reader, dec *Decoder) io.Reader {
	return &reader{
		src:    src,
		sink:   dec.Sink,
		poll:   dec.Poll,
		finish: dec.Finish,
		in:     make([]byte, streamChunkSize),
	}
}

func (r *reader) Read(p []byte) (int, error) {
	for {
		res, n := r.poll(p)
		if n > 0 {
			return n, nil
		}
		if res == PollMore {
			continue
		}

		if len(r.pending) > 0 {
			_, written, serr := r.sink(r.pending)
			if serr != nil {
				return 0, serr
			}
			r.pending = r.pending[written:]
			continue
		}

		if r.eof {
			if r.finish() == FinishDone {
				return 0, io.EOF
			}
			continue
		}

		nr, err := r.src.Read(r.in)
		r.pending = r.in[:nr]
		if err != nil {
			if err == io.EOF {
				r.eof = true
				continue
			}
			return 0, err
		}
	}
}

// writer adapts an Encoder or a Decoder into an io.WriteCloser that pushes
// its Poll output to dst as data is written in.
type writer struct {
	dst io.Writer

	sink   func([]byte) (SinkResult, int, error)
	poll   func([]byte) (PollResult, int)
	finish func() FinishResult

	scratch []byte
}

// NewWriter wraps an Encoder into an io.WriteCloser: bytes written to it are
// compressed and forwarded to dst. Close must be called to flush the final
// partial byte.
func NewWriter(dst io.Writer, enc *Encoder) io.WriteCloser {
	return &writer{dst: dst, sink: enc.Sink, poll: enc.Poll, finish: enc.Finish, scratch: make([]byte, streamChunkSize)}
}

// NewDecompressWriter wraps a Decoder into an io.WriteCloser: compressed
// bytes written to it are decompressed and forwarded to dst.
func NewDecompressWriter(dst io.Writer, dec *Decoder) io.WriteCloser {
	return &writer{dst: dst, sink: dec.Sink, poll: dec.Poll, finish: dec.Finish, scratch: make([]byte, streamChunkSize)}
}

func (w *writer) Write(p []byte) (int, error) {
	written := 0
	for written < len(p) {
		_, n, err := w.sink(p[written:])
		if err != nil {
			return written, err
		}
		written += n
		if err := w.drain(); err != nil {
			return written, err
		}
		if n == 0 {
			// Sink full but nothing drained means Poll is truly dry; this
			// should not happen under correct window sizing, but avoid an
			// infinite loop if it ever does.
			break
		}
	}
	return written, nil
}

func (w *writer) drain() error {
	for {
		res, n := w.poll(w.scratch)
		if n > 0 {
			if _, err := w.dst.Write(w.scratch[:n]); err != nil {
				return err
			}
		}
		if res == PollEmpty {
			return nil
		}
	}
}

// Close finalizes the stream, flushing any remaining buffered output.
func (w *writer) Close() error {
	for w.finish() != FinishDone {
		if err := w.drain(); err != nil {
			return err
		}
	}
	return w.drain()
}
