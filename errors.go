// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/heatshrink

package heatshrink

import "errors"

// Sentinel errors. Sink/Poll/Finish report ordinary flow control (Full,
// Empty, More, Done) as result values rather than errors; these sentinels
// cover only construction-time and API-misuse failures.
var (
	// ErrInvalidParameter is returned by NewEncoder/NewDecoder when W or L
	// is out of range, or L is not strictly less than W.
	ErrInvalidParameter = errors.New("heatshrink: invalid window or lookahead parameter")

	// ErrMisuse is returned by Sink when called on an instance that has
	// already been finished. It is a caller bug, not a recoverable condition.
	ErrMisuse = errors.New("heatshrink: sink called after finish")
)
