package sheet

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/bodgit/font6x6/glyph"
)

var palette = color.Palette{
	color.Gray{Y: 0x00},
	color.Gray{Y: 0xff},
}

type encoder struct {
	w io.Writer
	l Layout
}

func (e *encoder) encode(f *glyph.Font) error {
	var last int
	for _, g := range f.Glyphs() {
		i := g.Code - e.l.First
		if i < 0 {
			return fmt.Errorf("sheet: character %d precedes first cell", g.Code)
		}
		if i > last {
			last = i
		}
	}

	rows := last/e.l.Columns + 1
	m := image.NewPaletted(image.Rect(0, 0, e.l.Columns*e.l.Width, rows*e.l.Height), palette)

	for _, g := range f.Glyphs() {
		i := g.Code - e.l.First
		dx := i % e.l.Columns * e.l.Width
		dy := i / e.l.Columns * e.l.Height

		for y, literal := range g.Literals {
			if y >= e.l.Height {
				break
			}
			// Digits are already in pixel order after the 0b prefix
			digits := literal[2:]
			for x := 0; x < e.l.Width && x < len(digits); x++ {
				if digits[x] == '1' {
					m.SetColorIndex(dx+x, dy+y, 1)
				}
			}
		}
	}

	return png.Encode(e.w, m)
}

// Encode writes the font f to w as a two color PNG glyph sheet.
func Encode(w io.Writer, f *glyph.Font, l Layout) error {
	if err := l.validate(); err != nil {
		return err
	}

	e := encoder{w: w, l: l}

	return e.encode(f)
}
