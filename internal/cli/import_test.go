package cli

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeFirefoxProfile writes a minimal places.sqlite and returns its path.
func makeFirefoxProfile(t *testing.T, visits map[string]time.Time) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "places.sqlite")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE moz_places (
		id INTEGER PRIMARY KEY,
		url TEXT,
		title TEXT,
		last_visit_date INTEGER
	)`)
	require.NoError(t, err)

	for u, at := range visits {
		_, err = db.Exec("INSERT INTO moz_places (url, title, last_visit_date) VALUES (?, ?, ?)",
			u, "", at.UnixMicro())
		require.NoError(t, err)
	}
	return path
}

func TestImportCommand_FirefoxVisitsKeepTimestamps(t *testing.T) {
	visitedAt := time.Date(2015, 3, 13, 9, 30, 0, 0, time.UTC)
	profile := makeFirefoxProfile(t, map[string]time.Time{
		"https://example.org/imported": visitedAt,
	})

	d := newTestDeps(t)
	cmd := &ImportCommand{From: profile, Browser: "firefox", deps: d}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.Execute(nil))
	})
	assert.Contains(t, output, "Imported 1 visits (0 skipped)")

	got := d.history.List()
	require.Len(t, got, 1)
	assert.Equal(t, "https://example.org/imported", got[0].URL().String())
	assert.True(t, got[0].CreatedAt().Equal(visitedAt), "imported visit keeps its original timestamp")
}

func TestImportCommand_DryRunWritesNothing(t *testing.T) {
	profile := makeFirefoxProfile(t, map[string]time.Time{
		"https://example.org/one": time.Date(2015, 3, 13, 9, 30, 0, 0, time.UTC),
	})

	d := newTestDeps(t)
	cmd := &ImportCommand{From: profile, Browser: "firefox", DryRun: true, deps: d}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.Execute(nil))
	})

	assert.Contains(t, output, "Would import 1 visits")
	assert.Zero(t, d.history.Len())
}

func TestImportCommand_SinceFilter(t *testing.T) {
	profile := makeFirefoxProfile(t, map[string]time.Time{
		"https://example.org/recent":  time.Now().Add(-time.Hour),
		"https://example.org/ancient": time.Now().Add(-90 * 24 * time.Hour),
	})

	d := newTestDeps(t)
	cmd := &ImportCommand{From: profile, Browser: "firefox", Since: "7d", deps: d}
	captureOutput(t, func() {
		require.NoError(t, cmd.Execute(nil))
	})

	got := d.history.List()
	require.Len(t, got, 1)
	assert.Equal(t, "https://example.org/recent", got[0].URL().String())
}

func TestImportCommand_BadDuration(t *testing.T) {
	cmd := &ImportCommand{From: "whatever.sqlite", Browser: "firefox", Since: "soon", deps: newTestDeps(t)}
	assert.ErrorContains(t, cmd.Execute(nil), "invalid duration")
}

func TestImportCommand_MissingProfile(t *testing.T) {
	cmd := &ImportCommand{From: filepath.Join(t.TempDir(), "nope.sqlite"), Browser: "chrome", deps: newTestDeps(t)}
	assert.Error(t, cmd.Execute(nil))
}
