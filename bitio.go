// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/heatshrink

package heatshrink

// Field widths of the wire format (see doc.go), all packed MSB-first.
const (
	tagBitWidth     = 1
	literalBitWidth = 8
)

// canTakeByte reports whether dst has room for one more output byte at
// position written. Both Encoder.Poll and Decoder.Poll consult this before
// consuming any bits that could complete an output byte, so a full output
// buffer suspends the state machine without losing partial progress -- the
// one piece of the bit accumulator genuinely shared between encoder and
// decoder (see Design Notes: "share only the bit-accumulator utility").
func canTakeByte(dst []byte, written int) bool {
	return written < len(dst)
}
