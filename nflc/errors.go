// SPDX-License-Identifier: MIT
// Source: github.com/UltimateSpider-Man/nflc-decomp

package nflc

import "errors"

// Sentinel errors for container parsing and encoding. Corrupt intermediate
// chunks are deliberately not errors: they degrade to raw payload bytes with
// a warning (see Decode).
var (
	// ErrFormat is returned when the mandatory magic tag at offset 0 does not
	// match: the input is not an NFLC container at all.
	ErrFormat = errors.New("nflc: missing nFlC magic at offset 0")
	// ErrNoChunks is returned when a parse finds no chunk with a readable
	// header anywhere in the input.
	ErrNoChunks = errors.New("nflc: no valid chunks found")
	// ErrEmptyInput is returned by Encode for empty input.
	ErrEmptyInput = errors.New("nflc: empty input")
	// ErrNilCodec is returned by Encode when no compression codec is given.
	ErrNilCodec = errors.New("nflc: nil compression codec")
)
