// Package corpus holds fixed sample payloads shared by the round-trip and
// compatibility tests, grounded on the kinds of inputs spec.md's testable
// properties enumerate: empty, singleton, periodic, and large repetitive
// inputs spanning several window sizes.
package corpus

import "bytes"

// Named returns a deterministic, non-random set of sample payloads keyed by
// a short descriptive name. Callers should not mutate the returned slices.
func Named() map[string][]byte {
	return map[string][]byte{
		"empty":            {},
		"single-byte":      {0x2A},
		"ascii-sentence":   []byte("the quick brown fox jumps over the lazy dog"),
		"binary-ramp":      rampBytes(0, 255, 4),
		"short-run":        bytes.Repeat([]byte{0x00}, 3),
		"window-boundary":  bytes.Repeat([]byte{0x5A}, 1<<11),
		"large-repetitive": bytes.Repeat([]byte("ABCHeatshrinkCorpus"), 20000),
	}
}

func rampBytes(lo, hi byte, repeats int) []byte {
	out := make([]byte, 0, (int(hi-lo)+1)*repeats)
	for i := 0; i < repeats; i++ {
		for v := int(lo); v <= int(hi); v++ {
			out = append(out, byte(v))
		}
	}
	return out
}
