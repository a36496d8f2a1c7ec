package sheet

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strconv"

	"github.com/bodgit/font6x6/table"
	"github.com/ericpauley/go-quantize/quantize"
)

var (
	errBadSize  = errors.New("sheet: image is not a whole number of cells")
	errNoColors = errors.New("sheet: unable to reduce image colors")
)

// Reduce the image to no more than two colors
func twoColor(m image.Image) (*image.Paletted, error) {
	if pm, ok := m.(*image.Paletted); ok && len(pm.Palette) <= 2 {
		return pm, nil
	}

	b := m.Bounds()
	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make(color.Palette, 0, 2), m)
	if len(p) == 0 {
		return nil, errNoColors
	}

	pm := image.NewPaletted(b, p)
	draw.Draw(pm, b, m, b.Min, draw.Src)

	return pm, nil
}

// The most frequently used color is assumed to be the background
func background(m *image.Paletted) uint8 {
	var counts [256]int
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			counts[m.ColorIndexAt(x, y)]++
		}
	}

	var bg uint8
	for i, n := range counts {
		if n > counts[bg] {
			bg = uint8(i)
		}
	}
	return bg
}

type decoder struct {
	l  Layout
	m  *image.Paletted
	bg uint8
}

func (d *decoder) cell(cx, cy int) []int {
	lines := make([]int, d.l.Lines)
	b := d.m.Bounds()
	for y := 0; y < d.l.Height; y++ {
		for x := 0; x < d.l.Width; x++ {
			if d.m.ColorIndexAt(b.Min.X+cx*d.l.Width+x, b.Min.Y+cy*d.l.Height+y) != d.bg {
				lines[d.l.Params.Skip+y] |= 1 << (uint(x) + d.l.Params.Shift)
			}
		}
	}
	return lines
}

func (d *decoder) decode() table.Table {
	rows := d.m.Bounds().Dy() / d.l.Height

	t := make(table.Table, rows*d.l.Columns)
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < d.l.Columns; cx++ {
			code := d.l.First + cy*d.l.Columns + cx
			t[strconv.Itoa(code)] = d.cell(cx, cy)
		}
	}
	return t
}

// Decode reads a glyph sheet from r and returns it as a font table.
func Decode(r io.Reader, l Layout) (table.Table, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}

	m, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	b := m.Bounds()
	if b.Dx() != l.Columns*l.Width || b.Dy()%l.Height != 0 {
		return nil, errBadSize
	}

	pm, err := twoColor(m)
	if err != nil {
		return nil, err
	}

	d := decoder{
		l:  l,
		m:  pm,
		bg: background(pm),
	}

	return d.decode(), nil
}

// File is a table.Source backed by a glyph sheet image on disk.
type File struct {
	Name   string
	Layout Layout
}

// Table opens and decodes the glyph sheet.
func (f File) Table() (table.Table, error) {
	file, err := os.Open(f.Name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Decode(file, f.Layout)
}
