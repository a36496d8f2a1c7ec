package db

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/font6x6/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempDB(t *testing.T) (*GlyphDB, string, func()) {
	dir, err := ioutil.TempDir("", "db")
	require.NoError(t, err)

	db, err := New(filepath.Join(dir, "font6x6.db"))
	if err != nil {
		os.RemoveAll(dir)
		t.Fatal(err)
	}

	return db, dir, func() {
		db.Close()
		os.RemoveAll(dir)
	}
}

func TestImport(t *testing.T) {
	db, _, cleanup := tempDB(t)
	defer cleanup()

	want := table.Table{
		"65": {0, 0, 0, 0, 0, 0, 8, 20, 20, 62, 34, 34},
		"32": {1, 2, 3},
		"7":  {},
	}
	in := table.Table{"name": {1}}
	for k, v := range want {
		in[k] = v
	}

	require.NoError(t, db.Import(in))

	n, err := db.Length()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	got, err := db.Table()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestImportReplaces(t *testing.T) {
	db, _, cleanup := tempDB(t)
	defer cleanup()

	require.NoError(t, db.Import(table.Table{"65": {1, 2}, "66": {3}}))
	require.NoError(t, db.Import(table.Table{"67": {4}}))

	got, err := db.Table()
	require.NoError(t, err)
	assert.Equal(t, table.Table{"67": {4}}, got)
}

func TestImportJSON(t *testing.T) {
	db, dir, cleanup := tempDB(t)
	defer cleanup()

	file := filepath.Join(dir, "font.json")
	require.NoError(t, ioutil.WriteFile(file, []byte(`{"version": 2, "65": [0,0,0,0,0,0,4,4,4,4,4,4]}`), 0644))

	require.NoError(t, db.ImportJSON(file))

	got, err := db.Table()
	require.NoError(t, err)
	assert.Equal(t, table.Table{"65": {0, 0, 0, 0, 0, 0, 4, 4, 4, 4, 4, 4}}, got)

	assert.Error(t, db.ImportJSON(filepath.Join(dir, "missing.json")))
}
