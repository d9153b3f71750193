package wordtrie

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/oarkflow/squealx"
	"github.com/oarkflow/squealx/connection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(t *testing.T) squealx.Config {
	t.Helper()
	return squealx.Config{
		Driver:   "sqlite",
		Database: filepath.Join(t.TempDir(), "words.db"),
	}
}

func seedSQLite(t *testing.T, cfg squealx.Config) *squealx.DB {
	t.Helper()
	db, _, err := connection.FromConfig(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	stmts := []string{
		`CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT)`,
		`INSERT INTO notes (id, body) VALUES (1, 'The Apple and the apps')`,
		`INSERT INTO notes (id, body) VALUES (2, 'ape, apple!')`,
		`INSERT INTO notes (id, body) VALUES (3, NULL)`,
	}
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}
	return db
}

func TestDictionary_LoadRows(t *testing.T) {
	db := seedSQLite(t, sqliteConfig(t))
	d := NewDictionary("notes", WithAnalyzer(NewSimpleAnalyzer(SimpleAnalyzerWithStopWords("the", "and"))))

	stats, err := d.LoadRows(context.Background(), db, "SELECT id, body FROM notes ORDER BY id", "body")
	require.NoError(t, err)
	assert.Equal(t, LoadStats{Lines: 3, Words: 4, Added: 3, Duplicates: 1}, stats)

	for _, w := range []string{"apple", "apps", "ape"} {
		ok, err := d.Contains(w)
		require.NoError(t, err)
		assert.True(t, ok, w)
	}
	ok, err := d.Contains("the")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDictionary_LoadRowsMissingColumn(t *testing.T) {
	db := seedSQLite(t, sqliteConfig(t))
	d := NewDictionary("notes")

	_, err := d.LoadRows(context.Background(), db, "SELECT id FROM notes", "body")
	assert.ErrorIs(t, err, ErrColumnNotFound)

	_, err = d.LoadRows(context.Background(), db, "", "body")
	assert.Error(t, err)
}

func TestDictionary_LoadSQL(t *testing.T) {
	cfg := sqliteConfig(t)
	seedSQLite(t, cfg)
	d := NewDictionary("notes")

	stats, err := d.LoadSQL(context.Background(), cfg, "SELECT body FROM notes WHERE id = 2", "body")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Lines)
	assert.Equal(t, 2, stats.Added)
	assert.Equal(t, 2, d.Stats().Words)
}

func TestShell_LoadSQL(t *testing.T) {
	cfg := sqliteConfig(t)
	seedSQLite(t, cfg)

	s, err := NewShell(NewManager(nil), "default")
	require.NoError(t, err)
	out := runShell(t, s, "loadsql sqlite "+cfg.Database+" body SELECT body FROM notes ORDER BY id\nsearch apps\nloadsql sqlite\n")
	assert.Equal(t, "loaded 6 words (5 new) from 3 rows\ntrue\nerror: loadsql needs a driver, database, column and query\n", out)
}
