package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/djmckee/waybook/internal/config"
	"github.com/djmckee/waybook/internal/store"
)

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// newTestDeps builds a deps bundle over stores backed by a temp dir, so
// commands run without touching the user's real config or data.
func newTestDeps(t *testing.T) deps {
	t.Helper()
	dir := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.Storage.Dir = dir

	bookmarks, err := store.OpenBookmarks(filepath.Join(dir, store.DefaultBookmarksFile))
	require.NoError(t, err)
	history, err := store.OpenHistory(filepath.Join(dir, store.DefaultHistoryFile))
	require.NoError(t, err)

	return deps{
		cfg:       cfg,
		cfgPath:   filepath.Join(dir, "config.yaml"),
		bookmarks: bookmarks,
		history:   history,
	}
}
