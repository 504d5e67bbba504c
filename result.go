// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/heatshrink

package heatshrink

// SinkResult is the outcome of a Sink call.
type SinkResult int

const (
	// SinkOK means some (possibly zero, for empty src) bytes were accepted.
	SinkOK SinkResult = iota
	// SinkFull means the internal input buffer has no room; drain output
	// with Poll (encoder) or consume tokens with Poll (decoder) before
	// sinking more.
	SinkFull
)

func (r SinkResult) String() string {
	if r == SinkFull {
		return "Full"
	}
	return "OK"
}

// PollResult is the outcome of a Poll call.
type PollResult int

const (
	// PollEmpty means no more output is available right now.
	PollEmpty PollResult = iota
	// PollMore means the output buffer passed to Poll filled up; call
	// Poll again with a fresh buffer to continue draining.
	PollMore
)

func (r PollResult) String() string {
	if r == PollMore {
		return "More"
	}
	return "Empty"
}

// FinishResult is the outcome of a Finish call.
type FinishResult int

const (
	// FinishMore means more output remains; keep calling Poll (and Finish
	// again once Poll reports Empty).
	FinishMore FinishResult = iota
	// FinishDone means the stream is complete; all output has been, or
	// will immediately be, produced by Poll.
	FinishDone
)

func (r FinishResult) String() string {
	if r == FinishDone {
		return "Done"
	}
	return "More"
}
