// SPDX-License-Identifier: MIT
// Source: github.com/UltimateSpider-Man/nflc-decomp

package nflc

import (
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/UltimateSpider-Man/nflc-decomp/lzo1x"
)

// chunkDecodeBound is the per-chunk output buffer size for the per-chunk
// decode tier. Encoders partition input well below this; variant-B chunks
// carry no per-chunk size field, so a fixed bound is the only option.
const chunkDecodeBound = 2 * BlockSize

// Decode recovers the uncompressed data from a parsed container through a
// fixed three-tier fallback, each tier yielding to the next on failure or an
// implausible result:
//
//  1. single-stream: the first chunk's payload decoded as one LZO1X stream,
//     accepted only when it produces exactly the declared total (a shorter
//     result means the stream terminated at a block boundary and the
//     container is actually multi-block);
//  2. per-chunk: every chunk decoded independently; a chunk that fails to
//     decode contributes its raw payload bytes instead, so one damaged
//     block degrades that segment only;
//  3. raw: all payload bytes concatenated verbatim, the last-resort
//     recovery path.
//
// The ordering recovers correct output across both layouts without the
// caller knowing which one a given file uses.
func (c *Container) Decode() []byte {
	if out, ok := c.decodeSingleStream(); ok {
		return out
	}

	if out, ok := c.decodePerChunk(); ok {
		return out
	}

	return c.decodeRaw()
}

func (c *Container) decodeSingleStream() ([]byte, bool) {
	if len(c.Chunks) == 0 || c.Totals.UncompressedSize <= 0 {
		return nil, false
	}

	payload := c.Payload(c.Chunks[0])
	if len(payload) == 0 {
		return nil, false
	}

	out, err := lzo1x.Decompress(payload, lzo1x.DefaultDecompressOptions(c.Totals.UncompressedSize))
	if err != nil || len(out) != c.Totals.UncompressedSize {
		return nil, false
	}

	return out, true
}

// decodePerChunk decodes chunks concurrently; chunk operations are
// independent, but assembly preserves ordinal order regardless of
// completion order.
func (c *Container) decodePerChunk() ([]byte, bool) {
	if len(c.Chunks) == 0 {
		return nil, false
	}

	results := make([][]byte, len(c.Chunks))

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, ch := range c.Chunks {
		g.Go(func() error {
			payload := c.Payload(ch)
			if len(payload) == 0 {
				return nil
			}

			out, err := lzo1x.DecompressInto(payload, make([]byte, chunkDecodeBound))
			if err != nil {
				logrus.Warnf("nflc: chunk %d failed to decode (%v), keeping raw payload", ch.Index, err)
				results[i] = payload
				return nil
			}

			if ch.DeclaredUncompressedSize > 0 && len(out) != ch.DeclaredUncompressedSize {
				logrus.Warnf("nflc: chunk %d decoded %d bytes, header declared %d",
					ch.Index, len(out), ch.DeclaredUncompressedSize)
			}

			results[i] = out
			return nil
		})
	}

	// Workers never return errors; failures degrade to raw payloads above.
	_ = g.Wait()

	total := 0
	for _, r := range results {
		total += len(r)
	}
	if total == 0 {
		return nil, false
	}

	out := make([]byte, 0, total)
	for _, r := range results {
		out = append(out, r...)
	}

	return out, true
}

func (c *Container) decodeRaw() []byte {
	var out []byte
	for _, ch := range c.Chunks {
		out = append(out, c.Payload(ch)...)
	}

	return out
}
