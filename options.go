// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/heatshrink

package heatshrink

// EncoderOptions configures an Encoder beyond its (W, L) parameters.
type EncoderOptions struct {
	// Indexed enables the head/next search-index acceleration structure
	// (see searchIndex). When false, match search falls back to a naive
	// backward linear scan over the window, trading CPU time for memory: the
	// index adds a 65536-entry int32 head table plus an int32 next array of
	// 2*windowSize entries. Defaults to true.
	Indexed bool
}

// DefaultEncoderOptions returns options with the search index enabled.
func DefaultEncoderOptions() *EncoderOptions {
	return &EncoderOptions{Indexed: true}
}

// DecoderOptions configures a Decoder beyond its (W, L, input buffer size)
// parameters. Reserved for future tuning; currently empty.
type DecoderOptions struct{}

// DefaultDecoderOptions returns the zero-value DecoderOptions.
func DefaultDecoderOptions() *DecoderOptions {
	return &DecoderOptions{}
}
