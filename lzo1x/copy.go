// SPDX-License-Identifier: MIT
// Source: github.com/UltimateSpider-Man/nflc-decomp

package lzo1x

// copyBackRef copies length bytes from dst[outPos-dist:] to dst[outPos:].
// If dist < length, source and destination overlap; the copy must be
// byte-by-byte so that repeated bytes (RLE) come out correct. The built-in
// copy does not handle overlapping regions where src precedes dst.
func copyBackRef(dst []byte, outPos, dist, length int) error {
	mPos := outPos - dist
	if mPos < 0 {
		return ErrLookbehindOverrun
	}

	if outPos+length > len(dst) {
		return ErrOutputOverrun
	}

	if dist >= length {
		copy(dst[outPos:outPos+length], dst[mPos:mPos+length])
		return nil
	}

	for i := range length {
		dst[outPos+i] = dst[mPos+i]
	}

	return nil
}

// copyLiteralRun copies n bytes from src[*inPos:] to dst[*outPos:] and
// advances both positions.
func copyLiteralRun(src []byte, inPos *int, dst []byte, outPos *int, n int) error {
	if n == 0 {
		return nil
	}

	if *inPos+n > len(src) {
		return ErrInputOverrun
	}

	if *outPos+n > len(dst) {
		return ErrOutputOverrun
	}

	copy(dst[*outPos:*outPos+n], src[*inPos:*inPos+n])
	*inPos += n
	*outPos += n

	return nil
}
