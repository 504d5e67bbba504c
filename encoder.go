// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/heatshrink

package heatshrink

import "fmt"

// Window and lookahead exponent bounds. L must be strictly less than W.
const (
	minWindowBits    = 8
	maxWindowBits    = 15
	minLookaheadBits = 4
)

// minMatchLength is the shortest back-reference this encoder will ever
// emit; anything shorter is cheaper to spell out as literals.
const minMatchLength = 2

// encState is one node of the encoder's state machine (spec §4.2).
type encState int

const (
	stNotFull encState = iota
	stFilled
	stSearch
	stYieldTagBit
	stYieldLiteral
	stYieldBackRefIndex
	stYieldBackRefLength
	stSaveBacklog
	stFlushBits
	stDone
)

const (
	literalTag byte = 1
	backrefTag byte = 0
)

// Encoder is an incremental LZSS encoder over a sliding window of
// previously-seen bytes. Construct with NewEncoder, drive with Sink/Poll,
// and finalize with Finish. An Encoder is not safe for concurrent use and
// is not reusable once Finish reports FinishDone and Poll has been drained.
type Encoder struct {
	w, l          uint8
	windowSize    int
	lookaheadSize int

	// buf is 2*windowSize bytes: buf[:windowSize] is the previous window,
	// buf[windowSize:] is the lookahead region currently being scanned.
	buf []byte

	inputSize      int
	matchScanIndex int
	matchLength    uint16
	matchDistance  uint16

	outgoingBits      uint16
	outgoingBitsCount uint8
	currentByte       uint8
	bitIndex          uint8 // mask, 0x80 down to 0x01; 0x80 means byte-aligned

	state     encState
	finishing bool

	index *searchIndex
}

// NewEncoder constructs an Encoder for window exponent w (8..15) and
// lookahead exponent l (4..w-1). Window size is 2^w bytes, max match length
// is 2^l-1. opts may be nil to use DefaultEncoderOptions.
func NewEncoder(w, l uint8, opts *EncoderOptions) (*Encoder, error) {
	if w < minWindowBits || w > maxWindowBits {
		return nil, fmt.Errorf("window exponent %d out of range [%d,%d]: %w", w, minWindowBits, maxWindowBits, ErrInvalidParameter)
	}
	if l < minLookaheadBits || l >= w {
		return nil, fmt.Errorf("lookahead exponent %d out of range [%d,%d): %w", l, minLookaheadBits, w, ErrInvalidParameter)
	}
	if opts == nil {
		opts = DefaultEncoderOptions()
	}

	windowSize := 1 << w
	e := &Encoder{
		w:             w,
		l:             l,
		windowSize:    windowSize,
		lookaheadSize: 1 << l,
		buf:           make([]byte, 2*windowSize),
		bitIndex:      0x80,
	}
	if opts.Indexed {
		e.index = newSearchIndex(windowSize)
	}
	return e, nil
}

// Sink copies as many bytes of src as fit into the encoder's input buffer
// and returns (SinkOK, n) where n = min(len(src), room). If there is no
// room at all, it returns (SinkFull, 0) without copying anything; drain
// output with Poll first. Sinking after Finish has been called returns
// ErrMisuse.
func (e *Encoder) Sink(src []byte) (SinkResult, int, error) {
	if e.finishing {
		return SinkFull, 0, ErrMisuse
	}

	room := e.windowSize - e.inputSize
	if room == 0 {
		return SinkFull, 0, nil
	}

	n := len(src)
	if n > room {
		n = room
	}
	copy(e.buf[e.windowSize+e.inputSize:], src[:n])
	e.inputSize += n
	if e.inputSize == e.windowSize {
		e.state = stFilled
	}
	return SinkOK, n, nil
}

// Poll writes compressed bits into dst and returns (PollMore, n) if dst
// filled up before output was exhausted (call again with a fresh buffer),
// or (PollEmpty, n) if no more output is available right now (sink more
// input, or call Finish).
func (e *Encoder) Poll(dst []byte) (PollResult, int) {
	written := 0
	for {
		switch e.state {
		case stNotFull:
			return PollEmpty, written

		case stFilled:
			if e.index != nil {
				e.index.build(e.buf, e.windowSize+e.inputSize)
			}
			e.state = stSearch

		case stSearch:
			e.state = e.stepSearch()

		case stYieldTagBit:
			var ok bool
			e.state, ok = e.yieldTagBit(dst, &written)
			if !ok {
				return PollMore, written
			}

		case stYieldLiteral:
			var ok bool
			e.state, ok = e.yieldLiteral(dst, &written)
			if !ok {
				return PollMore, written
			}

		case stYieldBackRefIndex:
			var ok bool
			e.state, ok = e.yieldBackRefIndex(dst, &written)
			if !ok {
				return PollMore, written
			}

		case stYieldBackRefLength:
			var ok bool
			e.state, ok = e.yieldBackRefLength(dst, &written)
			if !ok {
				return PollMore, written
			}

		case stSaveBacklog:
			e.state = e.saveBacklog()

		case stFlushBits:
			var ok bool
			e.state, ok = e.flushBits(dst, &written)
			if !ok {
				return PollMore, written
			}

		case stDone:
			return PollEmpty, written
		}

		if written == len(dst) {
			return PollMore, written
		}
	}
}

// Finish signals that no more input is coming. It returns FinishDone once
// the stream is fully emitted (after Poll has drained any remaining
// output), or FinishMore if Poll must still be called.
func (e *Encoder) Finish() FinishResult {
	e.finishing = true
	if e.state == stNotFull {
		e.state = stFilled
	}
	if e.state == stDone {
		return FinishDone
	}
	return FinishMore
}

// stepSearch finds the longest, most-recent match for the byte at the
// current scan position and advances to the tag-bit yield state, or slides
// the window / flushes if the lookahead is exhausted (spec §4.2 step 3).
func (e *Encoder) stepSearch() encState {
	msi := e.matchScanIndex
	bias := e.lookaheadSize
	if e.finishing {
		bias = 1
	}
	if msi > e.inputSize-bias {
		if e.finishing {
			return stFlushBits
		}
		return stSaveBacklog
	}

	end := e.windowSize + msi
	start := msi // window region always begins at the start of buf

	maxPossible := e.lookaheadSize - 1
	if remaining := e.inputSize - msi; remaining < maxPossible {
		maxPossible = remaining
	}

	var distance, length int
	if maxPossible >= minMatchLength {
		if e.index != nil {
			distance, length = e.index.longestMatch(e.buf, start, end, maxPossible)
		} else {
			distance, length = naiveLongestMatch(e.buf, start, end, maxPossible)
		}
	}

	e.matchDistance = uint16(distance) //nolint:gosec // G115: distance bounded by windowSize <= 1<<15
	e.matchLength = uint16(length)     //nolint:gosec // G115: length bounded by lookaheadSize <= 1<<15
	return stYieldTagBit
}

func (e *Encoder) yieldTagBit(dst []byte, written *int) (encState, bool) {
	if !canTakeByte(dst, *written) {
		return stYieldTagBit, false
	}
	if e.matchLength == 0 {
		e.pushBits(dst, written, tagBitWidth, literalTag)
		return stYieldLiteral, true
	}
	e.pushBits(dst, written, tagBitWidth, backrefTag)
	e.outgoingBits = e.matchDistance - 1
	e.outgoingBitsCount = e.w
	return stYieldBackRefIndex, true
}

func (e *Encoder) yieldLiteral(dst []byte, written *int) (encState, bool) {
	if !canTakeByte(dst, *written) {
		return stYieldLiteral, false
	}
	idx := e.windowSize + e.matchScanIndex
	e.pushBits(dst, written, literalBitWidth, e.buf[idx])
	e.matchScanIndex++
	return stSearch, true
}

func (e *Encoder) yieldBackRefIndex(dst []byte, written *int) (encState, bool) {
	if !canTakeByte(dst, *written) {
		return stYieldBackRefIndex, false
	}
	if e.pushOutgoingBits(dst, written) > 0 {
		return stYieldBackRefIndex, true
	}
	e.outgoingBits = e.matchLength - minMatchLength
	e.outgoingBitsCount = e.l
	return stYieldBackRefLength, true
}

func (e *Encoder) yieldBackRefLength(dst []byte, written *int) (encState, bool) {
	if !canTakeByte(dst, *written) {
		return stYieldBackRefLength, false
	}
	if e.pushOutgoingBits(dst, written) > 0 {
		return stYieldBackRefLength, true
	}
	e.matchScanIndex += int(e.matchLength)
	e.matchLength = 0
	return stSearch, true
}

// saveBacklog slides the processed lookahead down into the window (low
// half of buf) and resets the scan cursor, carrying forward whatever
// unprocessed tail remains within lookaheadSize of the end.
func (e *Encoder) saveBacklog() encState {
	msi := e.matchScanIndex
	copy(e.buf, e.buf[msi:])
	e.matchScanIndex = 0
	e.inputSize -= msi
	return stNotFull
}

// flushBits emits the final partial byte, if any, padded with trailing 1
// bits so the decoder can recognize end-of-stream (spec §4.2 step 9).
func (e *Encoder) flushBits(dst []byte, written *int) (encState, bool) {
	if e.bitIndex == 0x80 {
		return stDone, true
	}
	if !canTakeByte(dst, *written) {
		return stFlushBits, false
	}
	for e.bitIndex != 0 {
		e.currentByte |= e.bitIndex
		e.bitIndex >>= 1
	}
	dst[*written] = e.currentByte
	*written++
	e.currentByte = 0
	e.bitIndex = 0x80
	return stDone, true
}

// pushOutgoingBits pushes up to 8 bits of the pending outgoing field and
// returns how many bits it pushed; callers loop until it returns 0.
func (e *Encoder) pushOutgoingBits(dst []byte, written *int) uint8 {
	var count, bits uint8
	if e.outgoingBitsCount > 8 {
		count = 8
		bits = uint8(e.outgoingBits >> (e.outgoingBitsCount - 8))
	} else {
		count = e.outgoingBitsCount
		bits = uint8(e.outgoingBits)
	}
	if count > 0 {
		e.pushBits(dst, written, count, bits)
		e.outgoingBitsCount -= count
	}
	return count
}

// pushBits writes the low `count` bits of bits (count <= 8) MSB-first into
// the output bit accumulator. Caller must have already verified (via
// canTakeByte) that dst has room for the one byte this can complete.
func (e *Encoder) pushBits(dst []byte, written *int, count uint8, bits byte) {
	if count == 8 && e.bitIndex == 0x80 {
		dst[*written] = bits
		*written++
		return
	}
	for i := int(count) - 1; i >= 0; i-- {
		if bits&(1<<uint(i)) != 0 {
			e.currentByte |= e.bitIndex
		}
		e.bitIndex >>= 1
		if e.bitIndex == 0 {
			dst[*written] = e.currentByte
			*written++
			e.currentByte = 0
			e.bitIndex = 0x80
		}
	}
}

// naiveLongestMatch performs a backward linear scan for the longest match,
// used when the encoder was constructed without a search index. Ties favor
// the most recent (closest) candidate, matching the indexed search.
func naiveLongestMatch(buf []byte, start, end, maxlen int) (distance, length int) {
	if maxlen < minMatchLength {
		return 0, 0
	}
	bestLen, bestPos := 0, -1
	for pos := end - 1; pos >= start; pos-- {
		l := 0
		for l < maxlen && buf[pos+l] == buf[end+l] {
			l++
		}
		if l > bestLen {
			bestLen, bestPos = l, pos
			if l == maxlen {
				break
			}
		}
	}
	if bestLen < minMatchLength {
		return 0, 0
	}
	return end - bestPos, bestLen
}
