package glyph

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	magic     = "F6X6"
	maxGlyphs = 256
)

var errBadMagic = errors.New("glyph: invalid font signature")

// Font is an ordered set of encoded glyphs. It implements the
// encoding.BinaryMarshaler and encoding.BinaryUnmarshaler interfaces.
type Font struct {
	height int
	glyphs []Glyph
}

// NewFont returns an empty font whose glyphs are height rows tall
func NewFont(height int) *Font {
	return &Font{
		height: height,
	}
}

// Height returns the number of rows per glyph
func (f *Font) Height() int {
	return f.height
}

// Length returns the number of glyphs in the font
func (f *Font) Length() int {
	return len(f.glyphs)
}

// Glyphs returns the glyphs in ascending character code order
func (f *Font) Glyphs() []Glyph {
	return f.glyphs
}

// Add appends a glyph. Glyphs must be added in strictly ascending order of
// character code.
func (f *Font) Add(g Glyph) error {
	if len(g.Literals) != f.height {
		return fmt.Errorf("glyph: character %d has %d rows, font has %d", g.Code, len(g.Literals), f.height)
	}
	if n := len(f.glyphs); n > 0 && g.Code <= f.glyphs[n-1].Code {
		return fmt.Errorf("glyph: character %d added after %d", g.Code, f.glyphs[n-1].Code)
	}
	f.glyphs = append(f.glyphs, g)
	return nil
}

// MarshalBinary encodes the font into binary form and returns the result
func (f *Font) MarshalBinary() ([]byte, error) {
	if len(f.glyphs) > maxGlyphs {
		return nil, fmt.Errorf("glyph: more than %d glyphs", maxGlyphs)
	}

	b := new(bytes.Buffer)
	b.WriteString(magic)
	b.WriteByte(byte(f.height))

	if err := binary.Write(b, binary.LittleEndian, uint16(len(f.glyphs))); err != nil {
		return nil, err
	}

	for _, g := range f.glyphs {
		if g.Code < 0 || g.Code > 0xff {
			return nil, fmt.Errorf("glyph: character %d doesn't fit in a byte", g.Code)
		}
		rows, err := g.Bytes()
		if err != nil {
			return nil, err
		}
		b.WriteByte(byte(g.Code))
		b.Write(rows)
	}

	return b.Bytes(), nil
}

// UnmarshalBinary decodes the font from binary form
func (f *Font) UnmarshalBinary(b []byte) error {
	r := bytes.NewReader(b)

	var sig [len(magic)]byte
	if _, err := io.ReadFull(r, sig[:]); err != nil || string(sig[:]) != magic {
		return errBadMagic
	}

	height, err := r.ReadByte()
	if err != nil {
		return err
	}

	var length uint16
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		return err
	}

	f.height = int(height)
	f.glyphs = nil

	for i := 0; i < int(length); i++ {
		code, err := r.ReadByte()
		if err != nil {
			return errors.New("glyph: insufficient data")
		}
		rows := make([]byte, f.height)
		if _, err := io.ReadFull(r, rows); err != nil {
			return errors.New("glyph: insufficient data")
		}
		if err := f.Add(FromBytes(int(code), rows)); err != nil {
			return err
		}
	}

	if r.Len() != 0 {
		return errors.New("glyph: trailing data")
	}

	return nil
}
