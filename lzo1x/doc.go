// SPDX-License-Identifier: MIT
// Source: github.com/UltimateSpider-Man/nflc-decomp

/*
Package lzo1x implements LZO1X decompression (lzo1x_decompress-compatible)
for NFLC game-asset containers.

The decoder is a pure function over byte slices: it performs no I/O, keeps no
state between calls, and allocates nothing beyond the output buffer. It reads
at most len(src) bytes and writes at most the requested output length; every
failure is one of four sentinel errors (ErrInvalidArguments, ErrInputOverrun,
ErrOutputOverrun, ErrLookbehindOverrun).

The expected decompressed size must be supplied up front (NFLC headers carry
it). The decoded stream may be shorter than that bound; use the returned
slice, not the bound:

	out, err := lzo1x.Decompress(compressed, lzo1x.DefaultDecompressOptions(expectedLen))

To reuse caller-managed output memory (no per-call allocation):

	dst := make([]byte, bound)
	out, err := lzo1x.DecompressInto(compressed, dst)

To advance over back-to-back compressed blocks:

	out, nRead, err := lzo1x.DecompressN(compressed, lzo1x.DefaultDecompressOptions(expectedLen))
	compressed = compressed[nRead:]

Only the decompression direction lives here. Producing compressed bytes is
delegated to github.com/woozymasta/lzo, whose output this decoder accepts.
*/
package lzo1x
