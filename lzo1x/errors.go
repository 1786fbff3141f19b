// SPDX-License-Identifier: MIT
// Source: github.com/UltimateSpider-Man/nflc-decomp

package lzo1x

import "errors"

// Sentinel errors for decompression. Every failure of the decoder is one of
// these four; callers match with errors.Is.
var (
	// ErrInvalidArguments is returned for a nil/empty input buffer, nil
	// options, or a negative output length.
	ErrInvalidArguments = errors.New("lzo1x: invalid arguments")
	// ErrInputOverrun is returned when the decoder needs to read past the end
	// of the compressed buffer.
	ErrInputOverrun = errors.New("lzo1x: input overrun")
	// ErrOutputOverrun is returned when the decoder would write past the end
	// of the output buffer.
	ErrOutputOverrun = errors.New("lzo1x: output overrun")
	// ErrLookbehindOverrun is returned when a match references data before the
	// start of the output, i.e. bytes that were never produced.
	ErrLookbehindOverrun = errors.New("lzo1x: lookbehind overrun")

	// ErrInputTooLarge is returned when DecompressFromReader reads more than
	// MaxInputSize bytes.
	ErrInputTooLarge = errors.New("lzo1x: input exceeds MaxInputSize")
)
