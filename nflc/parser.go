// SPDX-License-Identifier: MIT
// Source: github.com/UltimateSpider-Man/nflc-decomp

package nflc

import (
	"encoding/binary"

	"github.com/sirupsen/logrus"
)

// Parse scans raw container bytes, recognizes one of the two supported
// layouts, and produces the ordered chunk descriptors plus global totals.
//
// The scan walks the input at the fixed 32 KiB stride. A stride whose magic
// does not match is tolerated with a warning: it becomes a descriptor
// without header data whose payload covers the whole stride, so a single
// damaged header degrades that segment only. A magic mismatch at offset 0
// means the input is not this format and fails with ErrFormat.
func Parse(raw []byte) (*Container, error) {
	if !hasMagic(raw, 0) {
		return nil, ErrFormat
	}

	layout := detectLayout(raw)

	c := &Container{Layout: layout, raw: raw}
	haveTotals := false
	valid := 0

	for off := 0; off < len(raw); off += BlockSize {
		ord := len(c.Chunks)

		headerSize := BlockHeaderSize
		if layout == LayoutB && off > 0 {
			headerSize = ChunkHeaderSize
		}

		if !hasMagic(raw, off) || off+headerSize > len(raw) {
			logrus.Warnf("nflc: block %d at offset %#x has no readable header, keeping raw bytes", ord, off)
			c.Chunks = append(c.Chunks, ChunkDescriptor{
				ContainerOffset: off,
				PayloadOffset:   off,
				Index:           ord,
			})
			continue
		}

		desc := ChunkDescriptor{
			ContainerOffset: off,
			PayloadOffset:   off + headerSize,
			Index:           ord,
			HeaderValid:     true,
		}

		switch {
		case layout == LayoutA:
			hdr := parseBlockHeader(raw[off:])
			desc.Index = int(hdr.BlockIndex)
			desc.DeclaredUncompressedSize = int(hdr.BlockUncompSize)
			desc.DeclaredCompressedSize = int(hdr.ZSize)
			if !haveTotals {
				c.Totals = Totals{
					UncompressedSize: int(hdr.TotalUncompSize),
					CompressedSize:   int(hdr.TotalZSize),
				}
				haveTotals = true
			}

		case off == 0:
			hdr := parseMainHeader(raw)
			c.Totals = Totals{
				UncompressedSize: int(hdr.DecompressedSize),
				CompressedSize:   int(hdr.CompressedSize),
			}
			haveTotals = true

		default:
			hdr := parseChunkHeader(raw[off:])
			desc.Index = hdr.Index()
		}

		c.Chunks = append(c.Chunks, desc)
		valid++
	}

	if valid == 0 {
		return nil, ErrNoChunks
	}

	// Payload lengths are computed from boundary gaps, never trusted from
	// the headers.
	for i := range c.Chunks {
		end := len(raw)
		if i+1 < len(c.Chunks) {
			end = c.Chunks[i+1].ContainerOffset
		}
		c.Chunks[i].PayloadLength = end - c.Chunks[i].PayloadOffset
	}

	return c, nil
}

// detectLayout decides the container shape once, from structural cues.
//
// For multi-stride files the header at the second stride is decisive: a
// variant-A header there carries blockIndex 1 in its u16 index field, a
// variant-B chunk header carries ordinal 1 packed in its version word. For
// single-stride files, per-block headers always carry a nonzero 16-bit
// zsize or running compressed total where the main header has zeros.
// Misdetection on pathological inputs is survivable: the tiered decode
// fallback exists exactly because the layouts cannot always be
// distinguished cheaply.
func detectLayout(raw []byte) Layout {
	if len(raw) >= BlockSize+ChunkHeaderSize && hasMagic(raw, BlockSize) {
		if binary.LittleEndian.Uint16(raw[BlockSize+0x06:]) == 1 {
			return LayoutA
		}
		if parseChunkHeader(raw[BlockSize:]).Index() == 1 {
			return LayoutB
		}
		return LayoutA
	}

	if len(raw) < BlockHeaderSize {
		return LayoutA
	}

	hdr := parseBlockHeader(raw)
	if hdr.ZSize != 0 || hdr.TotalZSize != 0 {
		return LayoutA
	}

	return LayoutB
}
