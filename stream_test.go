package heatshrink

import (
	"bytes"
	"io"
	"testing"
)

func TestStream_WriterRoundTripsThroughReader(t *testing.T) {
	data := bytes.Repeat([]byte("stream adapter payload "), 2000)

	enc, err := NewEncoder(11, 4, nil)
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	var compressed bytes.Buffer
	w := NewWriter(&compressed, enc)
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		t.Fatalf("io.Copy into Writer failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Writer.Close failed: %v", err)
	}

	dec, err := NewDecoder(11, 4, 4096, nil)
	if err != nil {
		t.Fatalf("NewDecoder failed: %v", err)
	}
	r := NewDecompressReader(bytes.NewReader(compressed.Bytes()), dec)
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("io.ReadAll from decompress Reader failed: %v", err)
	}

	if !bytes.Equal(out, data) {
		t.Fatalf("stream round-trip mismatch: got len=%d want len=%d", len(out), len(data))
	}
}

func TestStream_ReaderCompressesIncrementally(t *testing.T) {
	data := bytes.Repeat([]byte{'q'}, 10000)

	enc, err := NewEncoder(11, 4, nil)
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}
	r := NewReader(bytes.NewReader(data), enc)

	compressed, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("io.ReadAll from compress Reader failed: %v", err)
	}
	if len(compressed) >= len(data) {
		t.Fatalf("expected compression on a highly repetitive stream: got %d, input %d", len(compressed), len(data))
	}

	out, err := DecodeAll(compressed, 11, 4, nil)
	if err != nil {
		t.Fatalf("DecodeAll failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("round-trip mismatch via NewReader")
	}
}
