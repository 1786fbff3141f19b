// SPDX-License-Identifier: MIT
// Source: github.com/UltimateSpider-Man/nflc-decomp

package nflc

// Layout identifies which of the two incompatible on-disk shapes a container
// uses. It is decided once at parse time from structural cues, never probed
// per field access.
type Layout int

const (
	// LayoutA repeats a full 64-byte header at every 32 KiB stride.
	LayoutA Layout = iota + 1
	// LayoutB carries one 64-byte main header at offset 0 and a lightweight
	// 16-byte header at every later stride.
	LayoutB
)

func (l Layout) String() string {
	switch l {
	case LayoutA:
		return "A (per-block headers)"
	case LayoutB:
		return "B (main header + chunk headers)"
	default:
		return "unknown"
	}
}

// ChunkDescriptor describes one block of the container. PayloadLength is
// always computed from the gap to the next chunk boundary (or end of file),
// never taken from a header: declared sizes in this format are unreliable.
type ChunkDescriptor struct {
	// ContainerOffset is the byte offset of the chunk's header in the file.
	ContainerOffset int
	// PayloadOffset is the byte offset of the chunk's compressed data.
	PayloadOffset int
	// PayloadLength is the number of bytes up to the next chunk boundary or
	// end of file. It includes any zero padding before the next block; the
	// stream terminator makes the padding harmless to the decoder.
	PayloadLength int
	// DeclaredUncompressedSize is the header's advisory uncompressed size
	// (0 when the header carries none).
	DeclaredUncompressedSize int
	// DeclaredCompressedSize is the header's advisory compressed size. For
	// variant A this is the 16-bit zsize field, which truncates above 64 KiB.
	DeclaredCompressedSize int
	// Index is the chunk ordinal. Headers encode it; a chunk without a
	// readable header gets its positional ordinal.
	Index int
	// HeaderValid is false when the stride had no recognizable header. Such
	// a chunk's payload covers the whole stride so its bytes still reach the
	// output through the raw fallback.
	HeaderValid bool
}

// Totals are the authoritative global sizes taken from the first header
// seen. They size the output buffer and bound progress; a mismatch against
// actual decoded lengths is a warning, never a hard failure.
type Totals struct {
	UncompressedSize int
	CompressedSize   int
}

// Container is a parsed, read-only view over an immutable input buffer.
type Container struct {
	Layout Layout
	Chunks []ChunkDescriptor
	Totals Totals

	raw []byte
}

// Payload returns the chunk's compressed bytes. The slice aliases the parsed
// input; callers must not mutate it.
func (c *Container) Payload(ch ChunkDescriptor) []byte {
	return c.raw[ch.PayloadOffset : ch.PayloadOffset+ch.PayloadLength]
}

// Size returns the total container length in bytes.
func (c *Container) Size() int {
	return len(c.raw)
}
