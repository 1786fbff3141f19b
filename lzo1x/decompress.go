// SPDX-License-Identifier: MIT
// Source: github.com/UltimateSpider-Man/nflc-decomp

package lzo1x

import "io"

// DecompressOptions configures decompression. OutLen is required: it is the
// maximum output size and is used to allocate the output buffer.
type DecompressOptions struct {
	// OutLen is the maximum decompressed size. The decoded stream may be
	// shorter; callers must use the returned slice length, not OutLen.
	OutLen int
	// MaxInputSize limits how many bytes DecompressFromReader may read
	// (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with the given output length and
// no input limit.
func DefaultDecompressOptions(outLen int) *DecompressOptions {
	return &DecompressOptions{OutLen: outLen}
}

// decodeState enumerates the decoder's explicit states. The original C
// decoder drives the same transitions with gotos; the named states keep the
// exact token-consumption order.
type decodeState int

const (
	stateReadControl decodeState = iota
	stateCopyLiteral
	stateCopyMatch
	stateTrailingLiteral
)

// Decompress decodes an LZO1X stream from src into a fresh buffer of length
// opts.OutLen and returns the decoded prefix. Returns ErrInvalidArguments if
// opts is nil, opts.OutLen is negative, or src is empty.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil || opts.OutLen < 0 {
		return nil, ErrInvalidArguments
	}

	if len(src) == 0 {
		return nil, ErrInvalidArguments
	}

	dst := make([]byte, opts.OutLen)
	n, _, err := decompressCore(src, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecompressN decodes an LZO1X stream from src and also returns the number of
// compressed bytes consumed. nRead is 0 on error. Use this when advancing a
// stream of back-to-back compressed blocks.
func DecompressN(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	if opts == nil || opts.OutLen < 0 {
		return nil, 0, ErrInvalidArguments
	}

	if len(src) == 0 {
		return nil, 0, ErrInvalidArguments
	}

	dst := make([]byte, opts.OutLen)
	outWritten, inConsumed, err := decompressCore(src, dst)
	if err != nil {
		return nil, 0, err
	}

	return dst[:outWritten], inConsumed, nil
}

// DecompressInto decodes an LZO1X stream from src into the caller-provided
// buffer dst and returns the decoded prefix of dst. No output allocation is
// performed; len(dst) bounds the output.
func DecompressInto(src, dst []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrInvalidArguments
	}

	n, _, err := decompressCore(src, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecompressFromReader reads the full stream then calls Decompress. No
// decoding logic of its own. If opts.MaxInputSize > 0 and more bytes are
// read, returns ErrInputTooLarge.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		return nil, ErrInvalidArguments
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decompress(src, opts)
}

// decompressCore runs the LZO1X token state machine over src, writing to
// dst[0:]. It returns (bytes written, input bytes consumed, nil) on reaching
// the stream terminator and (0, 0, err) on any failure.
//
// Token grammar: the stream alternates literal runs and matches. The number
// of literals emitted immediately before a control byte (tracked in
// prevLiterals, saturated at 4) changes how control bytes below 16 decode:
// after no literals they are a literal-run token, after 1-3 literals a
// two-byte M1 match, after 4+ a three-byte M1 match with a 2 KiB base
// offset. Every match carries a 0-3 trailing-literal count in the low two
// bits of its last length byte.
func decompressCore(src, dst []byte) (outWritten, inConsumed int, err error) {
	if len(src) == 0 {
		return 0, 0, ErrInvalidArguments
	}

	var (
		inst         byte
		inPos        int
		outPos       int
		matchDist    int
		matchLen     int
		runLen       int
		trailing     int
		prevLiterals int
	)

	state := stateReadControl
	instLoaded := false

	// The first byte is special: above 17 it encodes an initial literal run
	// of (byte - 17) with no preceding match. 18-21 behave like a trailing
	// literal of 1-4 bytes; 22+ like a full run. Anything else is the first
	// control byte of the main loop.
	inst = src[0]
	inPos = 1

	switch {
	case inst >= 22:
		runLen = int(inst) - 17
		state = stateCopyLiteral

	case inst >= 18:
		trailing = int(inst) - 17
		state = stateTrailingLiteral

	default:
		instLoaded = true
	}

	for {
		switch state {
		case stateReadControl:
			if !instLoaded {
				inst, err = readCompressedByte(src, &inPos)
				if err != nil {
					return 0, 0, err
				}
			}
			instLoaded = false

			switch {
			case inst >= markerM2:
				// M2: 3-bit distance fragment in the control byte, one
				// follow byte, length 1-8 from the top three bits.
				tail, err := readCompressedByte(src, &inPos)
				if err != nil {
					return 0, 0, err
				}

				matchDist = (int(tail) << 3) + ((int(inst) >> 2) & 0x7) + 1
				matchLen = (int(inst) >> 5) + 1
				trailing = int(inst & 0x03)
				state = stateCopyMatch

			case inst >= markerM3:
				// M3: length in the low five bits (zero-extended), 14-bit
				// distance in a trailing little-endian word.
				matchLen = int(inst&0x1f) + 2
				if matchLen == 2 {
					ext, err := readZeroExtendedChunks(src, &inPos)
					if err != nil {
						return 0, 0, err
					}

					tail, err := readCompressedByte(src, &inPos)
					if err != nil {
						return 0, 0, err
					}

					matchLen += ext*255 + m3ExtBias + int(tail)
				}

				v16, err := readCompressedLE16(src, &inPos)
				if err != nil {
					return 0, 0, err
				}

				matchDist = (int(v16) >> 2) + 1
				trailing = int(v16 & 0x03)
				state = stateCopyMatch

			case inst >= markerM4:
				// M4: 3-bit length (zero-extended), distance bits split
				// between the control byte and a trailing word, offset by
				// 16 KiB. All distance bits zero is the stream terminator.
				matchLen = int(inst&0x7) + 2
				if matchLen == 2 {
					ext, err := readZeroExtendedChunks(src, &inPos)
					if err != nil {
						return 0, 0, err
					}

					tail, err := readCompressedByte(src, &inPos)
					if err != nil {
						return 0, 0, err
					}

					matchLen += ext*255 + m4ExtBias + int(tail)
				}

				v16, err := readCompressedLE16(src, &inPos)
				if err != nil {
					return 0, 0, err
				}

				baseDist := ((int(inst) & 0x8) << 11) + (int(v16) >> 2)
				if baseDist == 0 {
					// Terminator. The stream ends here even if compressed
					// bytes remain unread.
					return outPos, inPos, nil
				}

				matchDist = baseDist + m4DistanceBase
				trailing = int(v16 & 0x03)
				state = stateCopyMatch

			default:
				if prevLiterals == 0 {
					// Literal-run token: length in the control byte with
					// optional zero extension for long runs.
					runLen = int(inst) + literalRunBias
					if runLen == literalRunBias {
						ext, err := readZeroExtendedChunks(src, &inPos)
						if err != nil {
							return 0, 0, err
						}

						tail, err := readCompressedByte(src, &inPos)
						if err != nil {
							return 0, 0, err
						}

						runLen += ext*255 + literalExtBias + int(tail)
					}

					state = stateCopyLiteral
					continue
				}

				// M1 short back-reference; one trailing byte completes the
				// distance bits. The form depends on how many literals
				// preceded: 1-3 literals select the near form (length 2),
				// a full run selects the far form (length 3).
				tail, err := readCompressedByte(src, &inPos)
				if err != nil {
					return 0, 0, err
				}

				trailing = int(inst & 0x03)
				if prevLiterals < 4 {
					matchDist = (int(inst) >> 2) + (int(tail) << 2) + 1
					matchLen = 2
				} else {
					matchDist = m1FarBaseOffset + 1 + (int(inst) >> 2) + (int(tail) << 2)
					matchLen = 3
				}

				state = stateCopyMatch
			}

		case stateCopyLiteral:
			if err := copyLiteralRun(src, &inPos, dst, &outPos, runLen); err != nil {
				return 0, 0, err
			}

			// A literal-run stream that ends without a terminator is
			// malformed.
			if inPos >= len(src) {
				return 0, 0, ErrInputOverrun
			}

			prevLiterals = 4
			state = stateReadControl

		case stateCopyMatch:
			if err := copyBackRef(dst, outPos, matchDist, matchLen); err != nil {
				return 0, 0, err
			}

			outPos += matchLen
			if trailing > 0 {
				state = stateTrailingLiteral
			} else {
				prevLiterals = 0
				state = stateReadControl
			}

		case stateTrailingLiteral:
			if err := copyLiteralRun(src, &inPos, dst, &outPos, trailing); err != nil {
				return 0, 0, err
			}

			prevLiterals = trailing
			state = stateReadControl
		}
	}
}

// readCompressedByte reads one byte from src at *inPos and advances *inPos.
func readCompressedByte(src []byte, inPos *int) (byte, error) {
	if *inPos >= len(src) {
		return 0, ErrInputOverrun
	}

	b := src[*inPos]
	*inPos++

	return b, nil
}

// readCompressedLE16 reads one little-endian uint16 from src at *inPos and
// advances *inPos by 2.
func readCompressedLE16(src []byte, inPos *int) (uint16, error) {
	if *inPos+2 > len(src) {
		return 0, ErrInputOverrun
	}

	lo := uint16(src[*inPos])
	hi := uint16(src[*inPos+1])
	*inPos += 2

	return lo | hi<<8, nil
}

// readZeroExtendedChunks consumes consecutive zero bytes and returns their
// count.
func readZeroExtendedChunks(src []byte, inPos *int) (int, error) {
	start := *inPos
	for *inPos < len(src) && src[*inPos] == 0 {
		*inPos++
	}

	count := *inPos - start
	if count > maxZeroExtendedChunks {
		return 0, ErrInputOverrun
	}

	return count, nil
}
