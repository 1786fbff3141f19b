// SPDX-License-Identifier: MIT
// Source: github.com/UltimateSpider-Man/nflc-decomp

/*
Package nflc reads and writes the NFLC multi-block container format used to
store LZO1X-compressed game-asset data on PS2/Xbox-era titles.

The format was reverse-engineered from binary samples and exists in two
incompatible on-disk layouts sharing the same "nFlC" magic tag: variant A
repeats a full 64-byte header at every 32 KiB stride, variant B carries one
64-byte main header followed by lightweight 16-byte chunk headers. Parse
recognizes either and produces ordered chunk descriptors over an immutable
input buffer; Decode recovers the asset bytes through a tiered fallback that
tolerates format variance and partial corruption; Encode produces a
conforming variant-A container around an external compression codec.

	c, err := nflc.Parse(raw)
	if err != nil {
		return err
	}
	data := c.Decode()

Producing a container delegates the compression direction to any
CompressFunc, typically github.com/woozymasta/lzo:

	out, err := nflc.Encode(data, func(b []byte) ([]byte, error) {
		return lzo.Compress(b, nil)
	})

Declared sizes in this format are advisory: headers are known to disagree
with the actual payloads (the 16-bit zsize field truncates above 64 KiB).
All payload boundaries are computed from chunk-boundary gaps, and size
mismatches are logged as warnings rather than failing the file. The two
checksum words in block headers are opaque and never verified.
*/
package nflc
