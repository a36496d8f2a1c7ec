/*
Package glyph implements the encoder for 6 by 6 pixel glyphs.

Each glyph in the source font is described by twelve raster lines, one
integer per pixel row. The first six lines are header rows and are ignored,
the remaining six hold the pixels. Each of those lines is shifted right by
two bits, formatted as an 8-bit binary number and then mirrored so the
leftmost pixel ends up in the most significant bit, which is the scan order
the display firmware expects.
*/
package glyph

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

const (
	// RasterLines is the number of raster lines per glyph in the source font
	RasterLines = 12
	// SkipLines is the number of header lines preceding the pixel rows
	SkipLines = 6
	// Height is the number of pixel rows in an encoded glyph
	Height = 6
	// Shift is the number of don't-care low bits dropped from each line
	Shift = 2

	literalWidth = 8
)

var (
	// ErrShortGlyph is returned when a glyph has fewer raster lines than
	// the window requires
	ErrShortGlyph = errors.New("glyph: not enough raster lines")
	// ErrNegativeLine is returned for raster lines below zero
	ErrNegativeLine = errors.New("glyph: negative raster line")
	// ErrOverflow is returned when packing a line that doesn't fit in a byte
	ErrOverflow = errors.New("glyph: raster line overflows 8 bits")
)

// Params selects the raster window and bit shift used when encoding.
type Params struct {
	Skip   int
	Height int
	Shift  uint
}

// DefaultParams returns the parameters of the 6x6 font.
func DefaultParams() Params {
	return Params{
		Skip:   SkipLines,
		Height: Height,
		Shift:  Shift,
	}
}

// Lines returns the minimum number of raster lines a glyph must have.
func (p Params) Lines() int {
	return p.Skip + p.Height
}

// Glyph is one encoded character.
type Glyph struct {
	Code     int
	Literals []string

	values []int
}

// Encode converts the raster lines of a single glyph into its binary
// literals. Only lines[p.Skip:p.Skip+p.Height] are considered.
func Encode(code int, lines []int, p Params) (Glyph, error) {
	if len(lines) < p.Lines() {
		return Glyph{}, fmt.Errorf("%w: character %d has %d, need %d", ErrShortGlyph, code, len(lines), p.Lines())
	}

	g := Glyph{
		Code:     code,
		Literals: make([]string, 0, p.Height),
		values:   make([]int, 0, p.Height),
	}
	for _, line := range lines[p.Skip:p.Lines()] {
		if line < 0 {
			return Glyph{}, fmt.Errorf("%w: character %d has %d", ErrNegativeLine, code, line)
		}
		v := line >> p.Shift
		g.values = append(g.values, v)
		g.Literals = append(g.Literals, Literal(v))
	}

	return g, nil
}

// Literal formats an already shifted raster line as a mirrored binary
// literal, e.g. 1 becomes 0b10000000. Values wider than 8 bits are not
// truncated and produce a correspondingly wider literal.
func Literal(v int) string {
	s := strconv.FormatInt(int64(v), 2)
	if n := literalWidth - len(s); n > 0 {
		s = strings.Repeat("0", n) + s
	}
	return "0b" + reverse(s)
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// Overflow reports whether any line of the glyph needed more than 8 bits.
func (g Glyph) Overflow() bool {
	for _, v := range g.values {
		if v > 0xff {
			return true
		}
	}
	return false
}

// Bytes returns the packed form of the glyph, one mirrored byte per row.
func (g Glyph) Bytes() ([]byte, error) {
	b := make([]byte, len(g.values))
	for i, v := range g.values {
		if v > 0xff {
			return nil, fmt.Errorf("%w: character %d row %d", ErrOverflow, g.Code, i)
		}
		b[i] = bits.Reverse8(uint8(v))
	}
	return b, nil
}

// Block renders the glyph as a braced C initializer with a trailing comma
// and newline, ready to be concatenated into a larger array.
func (g Glyph) Block() string {
	var sb strings.Builder
	sb.WriteString("    {\n         ")
	sb.WriteString(strings.Join(g.Literals, ",\n         "))
	sb.WriteString("\n    },\n")
	return sb.String()
}

// FromBytes rebuilds a glyph from its packed form.
func FromBytes(code int, b []byte) Glyph {
	g := Glyph{
		Code:     code,
		Literals: make([]string, len(b)),
		values:   make([]int, len(b)),
	}
	for i, v := range b {
		g.values[i] = int(bits.Reverse8(v))
		g.Literals[i] = Literal(g.values[i])
	}
	return g
}
