package font6x6

import (
	"errors"

	"github.com/bodgit/font6x6/glyph"
	"github.com/bodgit/font6x6/header"
	"github.com/bodgit/font6x6/sheet"
	"github.com/bodgit/font6x6/table"
)

const (
	// DefaultInput is the font table converted when no input is given
	DefaultInput = "Resources/6x6_font.json"
	// DefaultOutput is the header written when no output is given
	DefaultOutput = "Resources/6x6_font.h"

	spaceCode   = 32
	sheetWidth  = 6
	sheetColumn = 16
)

// Config holds the geometry of the font and the character range to keep.
type Config struct {
	// RasterLines is the number of lines per glyph in the source
	RasterLines int
	// Skip is the number of header lines before the pixel rows
	Skip int
	// Height is the number of pixel rows per glyph
	Height int
	// Width is the number of pixel columns per glyph, only used by sheets
	Width int
	// Shift is the number of low bits dropped from each raster line
	Shift uint

	Range table.Range
	// Space is always replaced by a blank glyph
	Space int

	// Name of the generated array
	Name string
}

// DefaultConfig returns the configuration for the 6x6 font.
func DefaultConfig() Config {
	return Config{
		RasterLines: glyph.RasterLines,
		Skip:        glyph.SkipLines,
		Height:      glyph.Height,
		Width:       sheetWidth,
		Shift:       glyph.Shift,
		Range:       table.Printable,
		Space:       spaceCode,
		Name:        header.DefaultName,
	}
}

// Validate checks the configuration is consistent.
func (c Config) Validate() error {
	switch {
	case c.Height < 1:
		return errors.New("glyph height must be positive")
	case c.Width < 1:
		return errors.New("glyph width must be positive")
	case c.Skip < 0:
		return errors.New("header lines can't be negative")
	case c.RasterLines < c.Skip+c.Height:
		return errors.New("not enough raster lines for header and glyph")
	case c.Shift > 32:
		return errors.New("shift too large")
	case c.Range.Min < 0 || c.Range.Min > c.Range.Max:
		return errors.New("invalid character range")
	case c.Name == "":
		return errors.New("empty array name")
	}
	return nil
}

// Params returns the glyph encoder parameters.
func (c Config) Params() glyph.Params {
	return glyph.Params{
		Skip:   c.Skip,
		Height: c.Height,
		Shift:  c.Shift,
	}
}

// Layout returns the glyph sheet layout matching the configuration.
func (c Config) Layout() sheet.Layout {
	return sheet.Layout{
		Columns: sheetColumn,
		Width:   c.Width,
		Height:  c.Height,
		First:   c.Range.Min,
		Lines:   c.RasterLines,
		Params:  c.Params(),
	}
}
