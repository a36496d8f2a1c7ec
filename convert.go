package font6x6

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/bodgit/font6x6/glyph"
	"github.com/bodgit/font6x6/header"
	"github.com/bodgit/font6x6/sheet"
	"github.com/bodgit/font6x6/table"
)

// Format selects how the encoded font is written.
type Format int

const (
	// FormatHeader writes a C header declaring the font array
	FormatHeader Format = iota
	// FormatBinary writes the packed glyphs as raw bytes
	FormatBinary
)

func (f Format) String() string {
	switch f {
	case FormatHeader:
		return "c"
	case FormatBinary:
		return "bin"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat returns the format named by s.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "c", "h", "header":
		return FormatHeader, nil
	case "bin", "binary":
		return FormatBinary, nil
	default:
		return 0, fmt.Errorf("font6x6: unknown format %q", s)
	}
}

// Encode encodes every retained glyph of t in ascending character code
// order. The space glyph is replaced by a blank one before the character
// range is applied.
func (c *Converter) Encode(t table.Table) (*glyph.Font, error) {
	records := table.Retain(t, c.config.Range, c.config.Space, make([]int, c.config.RasterLines))
	c.logger.Debugf("Retained %d of %d entries", len(records), len(t))

	f := glyph.NewFont(c.config.Height)
	for _, r := range records {
		g, err := glyph.Encode(r.Code, r.Lines, c.config.Params())
		if err != nil {
			return nil, err
		}
		if g.Overflow() {
			c.logger.Warnf("Character %d has raster lines wider than 8 bits", r.Code)
		}
		if err := f.Add(g); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func (c *Converter) load(src table.Source) (*glyph.Font, error) {
	t, err := src.Table()
	if err != nil {
		return nil, err
	}
	c.logger.Debugf("Loaded %d entries", len(t))

	return c.Encode(t)
}

// Marshal writes the font f in the given format and returns the result.
func (c *Converter) Marshal(f *glyph.Font, format Format) ([]byte, error) {
	switch format {
	case FormatHeader:
		b := new(bytes.Buffer)
		if err := header.Encode(b, f, c.config.Name); err != nil {
			return nil, err
		}
		return b.Bytes(), nil
	case FormatBinary:
		return f.MarshalBinary()
	default:
		return nil, fmt.Errorf("font6x6: unknown format %v", format)
	}
}

// Convert loads the font table from src, encodes it and writes it to the
// file output, replacing any existing file. Nothing is written unless every
// glyph was encoded successfully.
func (c *Converter) Convert(src table.Source, output string, format Format) error {
	f, err := c.load(src)
	if err != nil {
		return err
	}

	b, err := c.Marshal(f, format)
	if err != nil {
		return err
	}

	if err := ioutil.WriteFile(output, b, 0644); err != nil {
		return err
	}
	c.logger.Debugf("Wrote %d glyphs to %s", f.Length(), output)

	return nil
}

// Preview loads and encodes the font table from src and renders the result
// as a PNG glyph sheet in the file output.
func (c *Converter) Preview(src table.Source, output string) error {
	f, err := c.load(src)
	if err != nil {
		return err
	}

	b := new(bytes.Buffer)
	if err := sheet.Encode(b, f, c.config.Layout()); err != nil {
		return err
	}

	if err := ioutil.WriteFile(output, b.Bytes(), 0644); err != nil {
		return err
	}
	c.logger.Debugf("Rendered %d glyphs to %s", f.Length(), output)

	return nil
}
