/*
Package db implements a SQLite database of glyph raster lines.

A font table imported into the database can be used in place of the JSON
document as the source of a conversion, which is handy when the glyphs are
maintained by other tooling.
*/
package db

import (
	"database/sql"
	"fmt"

	"github.com/bodgit/font6x6/table"
	_ "github.com/mattn/go-sqlite3"
)

// GlyphDB is a font table stored in SQLite. It implements table.Source.
type GlyphDB struct {
	db *sql.DB
}

var _ table.Source = (*GlyphDB)(nil)

// New opens or creates the database in file.
func New(file string) (*GlyphDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS glyph (id INTEGER PRIMARY KEY NOT NULL, key TEXT NOT NULL UNIQUE)"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS raster (glyph_id INTEGER NOT NULL, line INTEGER NOT NULL, value INTEGER NOT NULL, PRIMARY KEY(glyph_id, line), FOREIGN KEY(glyph_id) REFERENCES glyph(id))"); err != nil {
		db.Close()
		return nil, err
	}

	return &GlyphDB{
		db: db,
	}, nil
}

// Close closes the database.
func (db *GlyphDB) Close() error {
	return db.db.Close()
}

// ImportJSON replaces the content of the database with the font table in
// the JSON document file.
func (db *GlyphDB) ImportJSON(file string) error {
	t, err := table.Load(file)
	if err != nil {
		return err
	}
	return db.Import(t)
}

// Import replaces the content of the database with t.
func (db *GlyphDB) Import(t table.Table) error {
	tx, err := db.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.Exec("DELETE FROM raster"); err != nil {
		return err
	}

	if _, err = tx.Exec("DELETE FROM glyph"); err != nil {
		return err
	}

	for key, lines := range t {
		if !table.IsCode(key) {
			continue
		}

		result, err := tx.Exec("INSERT INTO glyph (key) VALUES (?)", key)
		if err != nil {
			return err
		}
		id, err := result.LastInsertId()
		if err != nil {
			return err
		}

		for i, v := range lines {
			if _, err := tx.Exec("INSERT INTO raster (glyph_id, line, value) VALUES (?, ?, ?)", id, i, v); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// Length returns the number of glyphs in the database.
func (db *GlyphDB) Length() (int, error) {
	var n int
	if err := db.db.QueryRow("SELECT COUNT(*) FROM glyph").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Table reads the font table back out of the database.
func (db *GlyphDB) Table() (table.Table, error) {
	rows, err := db.db.Query("SELECT g.key, r.value FROM glyph AS g LEFT JOIN raster AS r ON r.glyph_id = g.id ORDER BY g.id, r.line")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	t := make(table.Table)
	for rows.Next() {
		var key string
		var value sql.NullInt64
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		if _, ok := t[key]; !ok {
			t[key] = []int{}
		}
		if value.Valid {
			t[key] = append(t[key], int(value.Int64))
		}
	}

	return t, rows.Err()
}
