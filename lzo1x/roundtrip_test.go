package lzo1x

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/woozymasta/lzo"
)

// The compression direction is delegated to github.com/woozymasta/lzo; these
// tests pin the contract that whatever it emits, this decoder reproduces the
// original bytes exactly.

func roundTripInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "single-byte", data: []byte{0xAB}},
		{name: "short-text", data: []byte("hello world, nflc asset")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 12000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
	}
}

func TestDecompress_RoundTripWithExternalCodec(t *testing.T) {
	for _, in := range roundTripInputSet() {
		for _, level := range []int{1, 5, 9} {
			name := fmt.Sprintf("%s/level-%d", in.name, level)
			t.Run(name, func(t *testing.T) {
				cmp, err := lzo.Compress(in.data, &lzo.CompressOptions{Level: level})
				if err != nil {
					t.Fatalf("external compress failed: %v", err)
				}

				out, err := Decompress(cmp, DefaultDecompressOptions(len(in.data)))
				if err != nil {
					t.Fatalf("Decompress failed: %v", err)
				}

				if !bytes.Equal(out, in.data) {
					t.Fatalf("round-trip mismatch: got=%d want=%d bytes", len(out), len(in.data))
				}
			})
		}
	}
}

func TestDecompressN_ConsumesWholeExternalStream(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789"), 100)
	cmp, err := lzo.Compress(data, nil)
	if err != nil {
		t.Fatalf("external compress failed: %v", err)
	}

	decoded, nRead, err := DecompressN(cmp, DefaultDecompressOptions(len(data)))
	if err != nil {
		t.Fatalf("DecompressN failed: %v", err)
	}

	if nRead != len(cmp) {
		t.Errorf("nRead = %d, want %d (full compressed length)", nRead, len(cmp))
	}
	if !bytes.Equal(decoded, data) {
		t.Error("decoded mismatch")
	}
}
