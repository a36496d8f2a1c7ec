/*
Package table implements the font table read from a JSON document.

The document is a single object keyed by decimal character codes where each
value is the array of raster lines for that character. Keys that aren't
numbers are ignored, as are their values, so the document may carry any
other metadata alongside the glyphs.
*/
package table

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

// Table maps textual character codes to their raster lines.
type Table map[string][]int

// Source is anything that can produce a font table.
type Source interface {
	Table() (Table, error)
}

// Record is one retained glyph of a table.
type Record struct {
	Code  int
	Lines []int
}

// Range is an inclusive range of character codes.
type Range struct {
	Min int
	Max int
}

// Printable is the printable ASCII range.
var Printable = Range{Min: 32, Max: 126}

// Contains reports whether code lies within the range.
func (r Range) Contains(code int) bool {
	return code >= r.Min && code <= r.Max
}

type line int

func (l *line) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(s)
	}
	v, err := strconv.Atoi(string(b))
	if err != nil {
		return fmt.Errorf("table: invalid raster line %s", b)
	}
	*l = line(v)
	return nil
}

// IsCode reports whether key is a character code, i.e. consists only of
// decimal digits.
func IsCode(key string) bool {
	if key == "" {
		return false
	}
	for _, c := range key {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Decode reads a font table from r.
func Decode(r io.Reader) (Table, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}
	if raw == nil {
		return nil, errors.New("table: document is not an object")
	}

	t := make(Table, len(raw))
	for k, v := range raw {
		if !IsCode(k) {
			continue
		}
		var lines []line
		if err := json.Unmarshal(v, &lines); err != nil {
			return nil, fmt.Errorf("table: character %s: %w", k, err)
		}
		t[k] = make([]int, len(lines))
		for i, l := range lines {
			t[k][i] = int(l)
		}
	}

	return t, nil
}

// File is a Source backed by a JSON file on disk.
type File string

// Table opens and decodes the file.
func (f File) Table() (Table, error) {
	file, err := os.Open(string(f))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Decode(file)
}

// Load is a convenience wrapper around File.
func Load(file string) (Table, error) {
	return File(file).Table()
}

// Retain returns the glyphs of t to be encoded, in ascending character code
// order. The space character is always replaced by override before the
// range is applied so any source data for it is discarded.
func Retain(t Table, r Range, space int, override []int) []Record {
	codes := make(map[int][]int, len(t)+1)
	for k, v := range t {
		if !IsCode(k) {
			continue
		}
		code, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		// "65" wins over "065"
		if _, ok := codes[code]; ok && k != strconv.Itoa(code) {
			continue
		}
		codes[code] = v
	}
	codes[space] = override

	records := make([]Record, 0, len(codes))
	for code, lines := range codes {
		if r.Contains(code) {
			records = append(records, Record{Code: code, Lines: lines})
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Code < records[j].Code })

	return records
}
