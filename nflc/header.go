// SPDX-License-Identifier: MIT
// Source: github.com/UltimateSpider-Man/nflc-decomp

package nflc

import "encoding/binary"

// On-disk layout constants. All multi-byte fields are little-endian.
const (
	// BlockSize is the fixed container stride: every block starts on a
	// 32 KiB boundary.
	BlockSize = 32768
	// BlockHeaderSize is the size of a variant-A per-block header and of the
	// variant-B main header.
	BlockHeaderSize = 64
	// ChunkHeaderSize is the size of a variant-B per-chunk header.
	ChunkHeaderSize = 16
	// TargetChunkSize is the uncompressed partition size used when encoding.
	// ~40 KiB of asset data usually compresses below the 32 KiB block
	// budget; this is a heuristic with no guarantee, so Encode warns when a
	// block overflows instead of assuming it cannot happen.
	TargetChunkSize = 40960
)

// Magic is the 4-byte tag opening every header in the container.
var Magic = [4]byte{'n', 'F', 'l', 'C'}

// Default header field values observed in game samples. The two checksum
// words are opaque: their generation algorithm is unknown, they are carried
// verbatim and never verified.
const (
	headerVersion      = 0x0101
	flagsLZOCompressed = 0x80000012
	flags2Default      = 0x80000080
	reservedDefault    = 0x0901
	checksum1Opaque    = 0xCB3E47E2
	checksum2Opaque    = 0xA309C008
)

// BlockHeader is the variant-A per-block header, repeated at every 32 KiB
// stride.
//
//	0x00  magic "nFlC"
//	0x04  version            0x08  flags              0x0C  flags2
//	0x10  reserved  0x12 zsize (u16, truncates above 0xFFFF)
//	0x14  checksum1          0x18  blockUncompSize    0x1C  checksum2
//	0x20  totalZSize         0x24  prevZOffset
//	0x28  totalUncompSize    0x2C  prevUncompOffset
//	0x30  16 bytes padding
type BlockHeader struct {
	Version          uint16
	BlockIndex       uint16
	Flags            uint32
	Flags2           uint32
	Reserved         uint16
	ZSize            uint16
	Checksum1        uint32
	BlockUncompSize  uint32
	Checksum2        uint32
	TotalZSize       uint32
	PrevZOffset      uint32
	TotalUncompSize  uint32
	PrevUncompOffset uint32
}

// parseBlockHeader decodes a variant-A header. b must hold at least
// BlockHeaderSize bytes.
func parseBlockHeader(b []byte) BlockHeader {
	return BlockHeader{
		Version:          binary.LittleEndian.Uint16(b[0x04:]),
		BlockIndex:       binary.LittleEndian.Uint16(b[0x06:]),
		Flags:            binary.LittleEndian.Uint32(b[0x08:]),
		Flags2:           binary.LittleEndian.Uint32(b[0x0C:]),
		Reserved:         binary.LittleEndian.Uint16(b[0x10:]),
		ZSize:            binary.LittleEndian.Uint16(b[0x12:]),
		Checksum1:        binary.LittleEndian.Uint32(b[0x14:]),
		BlockUncompSize:  binary.LittleEndian.Uint32(b[0x18:]),
		Checksum2:        binary.LittleEndian.Uint32(b[0x1C:]),
		TotalZSize:       binary.LittleEndian.Uint32(b[0x20:]),
		PrevZOffset:      binary.LittleEndian.Uint32(b[0x24:]),
		TotalUncompSize:  binary.LittleEndian.Uint32(b[0x28:]),
		PrevUncompOffset: binary.LittleEndian.Uint32(b[0x2C:]),
	}
}

// appendTo serializes the header and appends it to dst.
func (h BlockHeader) appendTo(dst []byte) []byte {
	var b [BlockHeaderSize]byte
	copy(b[0:4], Magic[:])
	binary.LittleEndian.PutUint16(b[0x04:], h.Version)
	binary.LittleEndian.PutUint16(b[0x06:], h.BlockIndex)
	binary.LittleEndian.PutUint32(b[0x08:], h.Flags)
	binary.LittleEndian.PutUint32(b[0x0C:], h.Flags2)
	binary.LittleEndian.PutUint16(b[0x10:], h.Reserved)
	binary.LittleEndian.PutUint16(b[0x12:], h.ZSize)
	binary.LittleEndian.PutUint32(b[0x14:], h.Checksum1)
	binary.LittleEndian.PutUint32(b[0x18:], h.BlockUncompSize)
	binary.LittleEndian.PutUint32(b[0x1C:], h.Checksum2)
	binary.LittleEndian.PutUint32(b[0x20:], h.TotalZSize)
	binary.LittleEndian.PutUint32(b[0x24:], h.PrevZOffset)
	binary.LittleEndian.PutUint32(b[0x28:], h.TotalUncompSize)
	binary.LittleEndian.PutUint32(b[0x2C:], h.PrevUncompOffset)
	return append(dst, b[:]...)
}

// MainHeader is the variant-B main header: one 64-byte header at offset 0
// carrying the global totals, followed by lightweight per-chunk headers at
// later strides.
type MainHeader struct {
	Version          uint32
	Flags1           uint32
	Flags2           uint32
	Hash1            uint32
	Hash2            uint32
	CompressedSize   uint32
	Extra1           uint32
	Extra2           uint32
	Padding1         uint32
	DecompressedSize uint32
	Padding2         uint32
}

func parseMainHeader(b []byte) MainHeader {
	return MainHeader{
		Version:          binary.LittleEndian.Uint32(b[0x04:]),
		Flags1:           binary.LittleEndian.Uint32(b[0x08:]),
		Flags2:           binary.LittleEndian.Uint32(b[0x0C:]),
		Hash1:            binary.LittleEndian.Uint32(b[0x10:]),
		Hash2:            binary.LittleEndian.Uint32(b[0x14:]),
		CompressedSize:   binary.LittleEndian.Uint32(b[0x18:]),
		Extra1:           binary.LittleEndian.Uint32(b[0x1C:]),
		Extra2:           binary.LittleEndian.Uint32(b[0x20:]),
		Padding1:         binary.LittleEndian.Uint32(b[0x24:]),
		DecompressedSize: binary.LittleEndian.Uint32(b[0x28:]),
		Padding2:         binary.LittleEndian.Uint32(b[0x2C:]),
	}
}

// appendTo serializes the main header and appends it to dst.
func (h MainHeader) appendTo(dst []byte) []byte {
	var b [BlockHeaderSize]byte
	copy(b[0:4], Magic[:])
	binary.LittleEndian.PutUint32(b[0x04:], h.Version)
	binary.LittleEndian.PutUint32(b[0x08:], h.Flags1)
	binary.LittleEndian.PutUint32(b[0x0C:], h.Flags2)
	binary.LittleEndian.PutUint32(b[0x10:], h.Hash1)
	binary.LittleEndian.PutUint32(b[0x14:], h.Hash2)
	binary.LittleEndian.PutUint32(b[0x18:], h.CompressedSize)
	binary.LittleEndian.PutUint32(b[0x1C:], h.Extra1)
	binary.LittleEndian.PutUint32(b[0x20:], h.Extra2)
	binary.LittleEndian.PutUint32(b[0x24:], h.Padding1)
	binary.LittleEndian.PutUint32(b[0x28:], h.DecompressedSize)
	binary.LittleEndian.PutUint32(b[0x2C:], h.Padding2)
	return append(dst, b[:]...)
}

// ChunkHeader is the variant-B per-chunk header. It carries no size fields;
// chunk boundaries come purely from the block stride.
type ChunkHeader struct {
	Version uint32
	Flags1  uint32
	Flags2  uint32
}

func parseChunkHeader(b []byte) ChunkHeader {
	return ChunkHeader{
		Version: binary.LittleEndian.Uint32(b[0x04:]),
		Flags1:  binary.LittleEndian.Uint32(b[0x08:]),
		Flags2:  binary.LittleEndian.Uint32(b[0x0C:]),
	}
}

// appendTo serializes the chunk header and appends it to dst.
func (h ChunkHeader) appendTo(dst []byte) []byte {
	var b [ChunkHeaderSize]byte
	copy(b[0:4], Magic[:])
	binary.LittleEndian.PutUint32(b[0x04:], h.Version)
	binary.LittleEndian.PutUint32(b[0x08:], h.Flags1)
	binary.LittleEndian.PutUint32(b[0x0C:], h.Flags2)
	return append(dst, b[:]...)
}

// Index extracts the chunk ordinal packed in bits 8-23 of the version word.
func (h ChunkHeader) Index() int {
	return int(h.Version>>8) & 0xFFFF
}

// hasMagic reports whether raw carries the magic tag at off.
func hasMagic(raw []byte, off int) bool {
	if off < 0 || off+len(Magic) > len(raw) {
		return false
	}
	return string(raw[off:off+len(Magic)]) == string(Magic[:])
}
