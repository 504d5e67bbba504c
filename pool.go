// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/heatshrink

package heatshrink

import "sync"

// scratchPool reuses the fixed-size drain buffers EncodeAll/DecodeAll need
// between Sink and Poll calls, avoiding one allocation per one-shot call on
// the common path.
var scratchPool = sync.Pool{
	New: func() any {
		buf := make([]byte, defaultChunkSize)
		return &buf
	},
}

func acquireScratch() []byte {
	buf := scratchPool.Get().(*[]byte)
	return *buf
}

func releaseScratch(buf []byte) {
	if cap(buf) != defaultChunkSize {
		return
	}
	buf = buf[:defaultChunkSize]
	scratchPool.Put(&buf)
}
