package heatshrink

import (
	"bytes"
	"testing"

	"github.com/woozymasta/heatshrink/internal/corpus"
)

func TestCompatCorpus_RoundTripsAcrossParameters(t *testing.T) {
	params := []struct{ w, l uint8 }{
		{8, 4}, {11, 4}, {15, 8},
	}

	for name, data := range corpus.Named() {
		for _, p := range params {
			t.Run(name, func(t *testing.T) {
				cmp, err := EncodeAll(data, p.w, p.l, nil)
				if err != nil {
					t.Fatalf("EncodeAll failed: %v", err)
				}
				out, err := DecodeAll(cmp, p.w, p.l, nil)
				if err != nil {
					t.Fatalf("DecodeAll failed: %v", err)
				}
				if !bytes.Equal(out, data) {
					t.Fatalf("corpus %q round-trip mismatch: got len=%d want len=%d", name, len(out), len(data))
				}
			})
		}
	}
}
