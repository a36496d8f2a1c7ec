package header

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bodgit/font6x6/glyph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	f := glyph.NewFont(glyph.Height)

	space, err := glyph.Encode(32, make([]int, glyph.RasterLines), glyph.DefaultParams())
	require.NoError(t, err)
	require.NoError(t, f.Add(space))

	a, err := glyph.Encode(65, []int{0, 0, 0, 0, 0, 0, 8, 20, 20, 62, 34, 34}, glyph.DefaultParams())
	require.NoError(t, err)
	require.NoError(t, f.Add(a))

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, f, DefaultName))

	want := strings.Join([]string{
		"static const unsigned char FontData[2][6] =",
		"{",
		"// Character 32: ' '",
		"    {",
		"         0b00000000,",
		"         0b00000000,",
		"         0b00000000,",
		"         0b00000000,",
		"         0b00000000,",
		"         0b00000000",
		"    },",
		"// Character 65: 'A'",
		"    {",
		"         0b01000000,",
		"         0b10100000,",
		"         0b10100000,",
		"         0b11110000,",
		"         0b00010000,",
		"         0b00010000",
		"    },",
		"};",
	}, "\n")
	assert.Equal(t, want, b.String())
}

func TestEncodeEmpty(t *testing.T) {
	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, glyph.NewFont(glyph.Height), "Empty"))

	assert.Equal(t, "static const unsigned char Empty[0][6] =\n{\n};", b.String())
}

func TestEncodeNoName(t *testing.T) {
	assert.Equal(t, errNoName, Encode(new(bytes.Buffer), glyph.NewFont(glyph.Height), ""))
}
