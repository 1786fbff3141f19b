// SPDX-License-Identifier: MIT
// Source: github.com/UltimateSpider-Man/nflc-decomp

package lzo1x

// LZO1X instruction-byte markers. The high bits of a control byte select the
// match class; anything below markerM4 is a literal run or a short M1 match
// depending on how many literals preceded it.
const (
	markerM1 = 0
	markerM4 = 16
	markerM3 = 32
	markerM2 = 64
)

// Length-extension bias constants. A run length of zero in the control byte
// escapes into a zero-extended length: each 0x00 byte adds 255, the final
// nonzero byte is added on top of the class baseline. These values are fixed
// by the wire format; changing any of them breaks byte compatibility.
const (
	literalRunBias = 3
	literalExtBias = 15
	m3ExtBias      = 31
	m4ExtBias      = 7
)

// m1FarBaseOffset is the base distance of the M1 form that follows a literal
// run of four or more bytes.
const m1FarBaseOffset = 0x0800

// m4DistanceBase is added to the 14 encoded distance bits of an M4 match.
const m4DistanceBase = 0x4000

// maxZeroExtendedChunks limits zero-extension runs so malformed inputs cannot
// overflow run-length reconstruction math.
const maxZeroExtendedChunks = int(^uint(0)/255) - 2
