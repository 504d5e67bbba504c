// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/heatshrink

/*
Package heatshrink implements a streaming, heatshrink-style LZSS byte
compressor and decompressor for memory-constrained environments.

The wire format uses a 1-bit tag per token (literal vs back-reference), an
8-bit literal payload, and W/L-bit back-reference index/length fields, with
no checksum, framing, or random access. W (window exponent) and L (lookahead
exponent) are agreed out-of-band by producer and consumer; see NewEncoder and
NewDecoder.

# Streaming

Encoder and Decoder are incremental state machines built around a sink/poll
contract: push input with Sink, drain output with Poll, and signal
end-of-stream with Finish. Both suspend cleanly at any byte boundary and
resume on the next call, using only caller-provided buffers plus the fixed
working memory allocated at construction.

	enc, err := heatshrink.NewEncoder(11, 4, nil)
	// enc.Sink(src), enc.Poll(dst) in a loop, then enc.Finish()

# One-shot and io helpers

For non-incremental use, EncodeAll/DecodeAll drive the state machines over a
full byte slice. NewReader/NewWriter adapt the same state machines to
io.Reader/io.WriteCloser for use with the standard library's io pipelines.
*/
package heatshrink
