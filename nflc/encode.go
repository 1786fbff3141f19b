// SPDX-License-Identifier: MIT
// Source: github.com/UltimateSpider-Man/nflc-decomp

package nflc

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// CompressFunc is the external compression codec consumed by Encode. It must
// be deterministic for a given configuration; no compression ratio is
// guaranteed, and the output may be larger than the input.
type CompressFunc func(src []byte) ([]byte, error)

// CompressBound returns the worst-case compressed size for n input bytes
// (input size plus a small fixed overhead). Encode sizes its output buffer
// with it; codec implementations can use it for work buffers.
func CompressBound(n int) int {
	return n + n/16 + 64 + 3
}

// Encode partitions raw into bounded chunks, compresses each through the
// external codec, and emits a variant-A container: one 64-byte header per
// block with cumulative offsets of all prior blocks and the grand totals,
// followed by the compressed payload and zero padding to the next 32 KiB
// boundary. The final block is not padded.
//
// The 16-bit zsize header field truncates any compressed length above
// 65535. That is a genuine limitation of the reverse-engineered format and
// is preserved for byte compatibility; readers must rely on computed
// payload lengths instead.
func Encode(raw []byte, compress CompressFunc) ([]byte, error) {
	if compress == nil {
		return nil, ErrNilCodec
	}

	if len(raw) == 0 {
		return nil, ErrEmptyInput
	}

	type chunk struct {
		comp      []byte
		uncompLen int
	}

	numChunks := (len(raw) + TargetChunkSize - 1) / TargetChunkSize
	chunks := make([]chunk, 0, numChunks)

	// First pass: compress every chunk, so the grand compressed total is
	// known before any header is written.
	totalZSize := 0
	for off := 0; off < len(raw); off += TargetChunkSize {
		end := min(off+TargetChunkSize, len(raw))

		comp, err := compress(raw[off:end])
		if err != nil {
			return nil, errors.Wrapf(err, "compress chunk %d", len(chunks))
		}

		totalZSize += len(comp)
		chunks = append(chunks, chunk{comp: comp, uncompLen: end - off})
	}

	dst := make([]byte, 0, CompressBound(len(raw))+numChunks*BlockHeaderSize)

	// Second pass: emit blocks with cumulative offsets of all prior chunks.
	prevZOffset := 0
	prevUncompOffset := 0

	for i, ch := range chunks {
		if BlockHeaderSize+len(ch.comp) > BlockSize {
			logrus.Warnf("nflc: block %d payload (%d bytes) overflows the %d-byte block budget",
				i, len(ch.comp), BlockSize)
		}
		if len(ch.comp) > 0xFFFF {
			logrus.Warnf("nflc: block %d compressed size %d truncated to 16-bit zsize", i, len(ch.comp))
		}

		hdr := BlockHeader{
			Version:          headerVersion,
			BlockIndex:       uint16(i),
			Flags:            flagsLZOCompressed,
			Flags2:           flags2Default,
			Reserved:         reservedDefault,
			ZSize:            saturate16(len(ch.comp)),
			Checksum1:        checksum1Opaque,
			BlockUncompSize:  uint32(ch.uncompLen),
			Checksum2:        checksum2Opaque,
			TotalZSize:       uint32(totalZSize),
			PrevZOffset:      uint32(prevZOffset),
			TotalUncompSize:  uint32(len(raw)),
			PrevUncompOffset: uint32(prevUncompOffset),
		}

		dst = hdr.appendTo(dst)
		dst = append(dst, ch.comp...)

		if i < len(chunks)-1 {
			blockEnd := (len(dst) + BlockSize - 1) / BlockSize * BlockSize
			dst = append(dst, make([]byte, blockEnd-len(dst))...)
		}

		prevZOffset += len(ch.comp)
		prevUncompOffset += ch.uncompLen
	}

	return dst, nil
}

// saturate16 clamps a compressed length to the 16-bit zsize field.
func saturate16(n int) uint16 {
	if n > 0xFFFF {
		return 0xFFFF
	}

	return uint16(n)
}
