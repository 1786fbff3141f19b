package nflc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woozymasta/lzo"
)

// makeAsset generates deterministic, well-compressing pseudo asset data.
func makeAsset(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i / 64 % 251)
	}
	return b
}

// lzoCodec is the external compression codec used by every encode test.
func lzoCodec(b []byte) ([]byte, error) {
	return lzo.Compress(b, nil)
}

func TestEncode_Arguments(t *testing.T) {
	_, err := Encode(nil, lzoCodec)
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = Encode([]byte("data"), nil)
	require.ErrorIs(t, err, ErrNilCodec)
}

func TestEncode_SingleBlock(t *testing.T) {
	data := makeAsset(1000)

	out, err := Encode(data, lzoCodec)
	require.NoError(t, err)

	comp, err := lzoCodec(data)
	require.NoError(t, err)

	// One block, no padding after the final (only) block.
	require.Equal(t, BlockHeaderSize+len(comp), len(out))
	require.True(t, hasMagic(out, 0))

	hdr := parseBlockHeader(out)
	assert.Equal(t, uint16(0), hdr.BlockIndex)
	assert.Equal(t, uint16(len(comp)), hdr.ZSize)
	assert.Equal(t, uint32(1000), hdr.BlockUncompSize)
	assert.Equal(t, uint32(1000), hdr.TotalUncompSize)
	assert.Equal(t, uint32(len(comp)), hdr.TotalZSize)
	assert.Equal(t, uint32(0), hdr.PrevZOffset)
	assert.Equal(t, uint32(0), hdr.PrevUncompOffset)
}

func TestEncode_ThreeChunkCumulativeOffsets(t *testing.T) {
	data := makeAsset(100000)

	out, err := Encode(data, lzoCodec)
	require.NoError(t, err)

	// 100000 bytes partition as 40960 + 40960 + 18080; the first two blocks
	// are padded to the 32 KiB stride, the last is not.
	require.True(t, len(out) > 2*BlockSize)
	require.True(t, hasMagic(out, 0))
	require.True(t, hasMagic(out, BlockSize))
	require.True(t, hasMagic(out, 2*BlockSize))

	h0 := parseBlockHeader(out[0:])
	h1 := parseBlockHeader(out[BlockSize:])
	h2 := parseBlockHeader(out[2*BlockSize:])

	assert.Equal(t, uint16(0), h0.BlockIndex)
	assert.Equal(t, uint16(1), h1.BlockIndex)
	assert.Equal(t, uint16(2), h2.BlockIndex)

	assert.Equal(t, uint32(0), h0.PrevUncompOffset)
	assert.Equal(t, uint32(40960), h1.PrevUncompOffset)
	assert.Equal(t, uint32(81920), h2.PrevUncompOffset)

	assert.Equal(t, uint32(40960), h0.BlockUncompSize)
	assert.Equal(t, uint32(40960), h1.BlockUncompSize)
	assert.Equal(t, uint32(18080), h2.BlockUncompSize)

	for _, h := range []BlockHeader{h0, h1, h2} {
		assert.Equal(t, uint32(100000), h.TotalUncompSize)
		assert.Equal(t, uint32(headerVersion), uint32(h.Version))
		assert.Equal(t, uint32(flagsLZOCompressed), h.Flags)
	}

	// Cumulative compressed offsets are the running sums of prior blocks.
	assert.Equal(t, uint32(0), h0.PrevZOffset)
	assert.Equal(t, uint32(h0.ZSize), h1.PrevZOffset)
	assert.Equal(t, uint32(h0.ZSize)+uint32(h1.ZSize), h2.PrevZOffset)

	wantTotal := uint32(h0.ZSize) + uint32(h1.ZSize) + uint32(h2.ZSize)
	assert.Equal(t, wantTotal, h0.TotalZSize)
	assert.Equal(t, wantTotal, h2.TotalZSize)

	// The final block is unpadded: file ends right after its payload.
	assert.Equal(t, 2*BlockSize+BlockHeaderSize+int(h2.ZSize), len(out))
}

func TestSaturate16(t *testing.T) {
	assert.Equal(t, uint16(0), saturate16(0))
	assert.Equal(t, uint16(0xFFFE), saturate16(0xFFFE))
	assert.Equal(t, uint16(0xFFFF), saturate16(0xFFFF))
	// The format's 16-bit field truncates larger sizes; this is preserved,
	// not fixed.
	assert.Equal(t, uint16(0xFFFF), saturate16(0x10000))
	assert.Equal(t, uint16(0xFFFF), saturate16(1<<20))
}

func TestCompressBound_NeverSmallerThanInput(t *testing.T) {
	for _, n := range []int{0, 1, 100, TargetChunkSize, 1 << 20} {
		assert.GreaterOrEqual(t, CompressBound(n), n+3)
	}
}
