package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFont(t *testing.T) *Font {
	f := NewFont(Height)
	for _, code := range []int{32, 65, 126} {
		lines := make([]int, RasterLines)
		for i := SkipLines; i < RasterLines; i++ {
			lines[i] = (code + i) << Shift & 0x3fc
		}
		g, err := Encode(code, lines, DefaultParams())
		require.NoError(t, err)
		require.NoError(t, f.Add(g))
	}
	return f
}

func TestFontAddOrder(t *testing.T) {
	f := testFont(t)
	assert.Equal(t, 3, f.Length())

	g := FromBytes(65, make([]byte, Height))
	assert.Error(t, f.Add(g), "duplicate")

	g = FromBytes(40, make([]byte, Height))
	assert.Error(t, f.Add(g), "out of order")

	g = FromBytes(127, make([]byte, Height-1))
	assert.Error(t, f.Add(g), "wrong height")

	assert.Equal(t, 3, f.Length())
}

func TestFontBinary(t *testing.T) {
	f := testFont(t)

	b, err := f.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, "F6X6", string(b[:4]))
	assert.Equal(t, byte(Height), b[4])
	assert.Equal(t, []byte{3, 0}, b[5:7])
	assert.Len(t, b, 7+3*(1+Height))

	g := NewFont(0)
	require.NoError(t, g.UnmarshalBinary(b))
	assert.Equal(t, f.Height(), g.Height())
	require.Equal(t, f.Length(), g.Length())
	for i := range f.Glyphs() {
		assert.Equal(t, f.Glyphs()[i].Code, g.Glyphs()[i].Code)
		assert.Equal(t, f.Glyphs()[i].Literals, g.Glyphs()[i].Literals)
	}
}

func TestFontBinaryOverflow(t *testing.T) {
	lines := make([]int, RasterLines)
	lines[11] = 2048
	g, err := Encode(65, lines, DefaultParams())
	require.NoError(t, err)

	f := NewFont(Height)
	require.NoError(t, f.Add(g))

	_, err = f.MarshalBinary()
	assert.Error(t, err)
}

func TestFontUnmarshalBad(t *testing.T) {
	f := NewFont(Height)

	assert.Equal(t, errBadMagic, f.UnmarshalBinary([]byte("XXXX\x06\x00\x00")))
	assert.Error(t, f.UnmarshalBinary([]byte("F6X6\x06\x01\x00\x41\x00")), "truncated")
	assert.Error(t, f.UnmarshalBinary([]byte("F6X6\x01\x00\x00\xff")), "trailing")
}
