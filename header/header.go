/*
Package header implements the C header encoder for encoded fonts.

The header declares a single two dimensional array sized by the number of
glyphs and the glyph height. Each glyph is preceded by a comment naming its
character code and the character itself:

	static const unsigned char FontData[2][6] =
	{
	// Character 32: ' '
	    {
	         0b00000000,
	         ...
	    },
	...
	};
*/
package header

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/bodgit/font6x6/glyph"
)

// DefaultName is the name of the generated array
const DefaultName = "FontData"

var errNoName = errors.New("header: empty array name")

type encoder struct {
	w    *bufio.Writer
	name string
}

func (e *encoder) encode(f *glyph.Font) error {
	fmt.Fprintf(e.w, "static const unsigned char %s[%d][%d] =\n", e.name, f.Length(), f.Height())
	e.w.WriteString("{\n")

	for _, g := range f.Glyphs() {
		fmt.Fprintf(e.w, "// Character %d: '%c'\n", g.Code, rune(g.Code))
		e.w.WriteString(g.Block())
	}

	e.w.WriteString("};")

	return e.w.Flush()
}

// Encode writes the font f to w as a C array declaration called name.
func Encode(w io.Writer, f *glyph.Font, name string) error {
	if name == "" {
		return errNoName
	}

	e := encoder{
		w:    bufio.NewWriter(w),
		name: name,
	}

	return e.encode(f)
}
