/*
Package sheet implements a glyph sheet decoder and encoder.

A glyph sheet is an image laid out as a grid of equally sized cells, one per
character, in row major order starting from the first printable character.
Cells are 6 by 6 pixels and sixteen cells make up a row by default. The
image is reduced to two colors, the most common of which is taken as the
background; every other pixel is set.

Decoding a sheet produces a font table in the same shape as the JSON font
document, so a sheet can be converted exactly like the JSON source.
Encoding renders an already encoded font back into a sheet which is useful
for checking the output by eye.
*/
package sheet

import (
	"errors"

	"github.com/bodgit/font6x6/glyph"
)

// Layout describes the geometry of a glyph sheet.
type Layout struct {
	Columns int
	Width   int
	Height  int
	First   int

	// Lines is the number of raster lines produced per glyph
	Lines  int
	Params glyph.Params
}

// DefaultLayout returns the layout of a 6x6 font sheet.
func DefaultLayout() Layout {
	return Layout{
		Columns: 16,
		Width:   6,
		Height:  glyph.Height,
		First:   32,
		Lines:   glyph.RasterLines,
		Params:  glyph.DefaultParams(),
	}
}

func (l Layout) validate() error {
	switch {
	case l.Columns < 1:
		return errors.New("sheet: need at least one column")
	case l.Width < 1 || l.Height < 1:
		return errors.New("sheet: invalid cell size")
	case l.Height > l.Params.Height:
		return errors.New("sheet: cell taller than glyph")
	case int(l.Params.Shift)+l.Width > 62:
		return errors.New("sheet: cell too wide")
	case l.Lines < l.Params.Lines():
		return errors.New("sheet: not enough raster lines")
	}
	return nil
}
