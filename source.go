package font6x6

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/font6x6/db"
	"github.com/bodgit/font6x6/sheet"
	"github.com/bodgit/font6x6/table"
)

func nop() error { return nil }

// Open returns the font table source for file based on its extension; a
// JSON document, a glyph database or a glyph sheet image. The returned
// function releases the source once the conversion is done.
func (c *Converter) Open(file string) (table.Source, func() error, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		return table.File(file), nop, nil
	case ".db", ".sqlite", ".sqlite3":
		// Opening would otherwise create an empty database
		if _, err := os.Stat(file); err != nil {
			return nil, nil, err
		}
		g, err := db.New(file)
		if err != nil {
			return nil, nil, err
		}
		return g, g.Close, nil
	case ".png", ".gif", ".jpg", ".jpeg":
		return sheet.File{Name: file, Layout: c.config.Layout()}, nop, nil
	default:
		return nil, nil, fmt.Errorf("font6x6: don't know how to read %q", file)
	}
}
