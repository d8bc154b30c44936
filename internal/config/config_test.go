package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultHomepage, cfg.Homepage)
	assert.Equal(t, "~/.config/waybook", cfg.Storage.Dir)
	assert.Equal(t, "bookmarks.json", cfg.Storage.BookmarksFile)
	assert.Equal(t, "history.json", cfg.Storage.HistoryFile)
}

func TestLoadValidYAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	yamlContent := `
homepage: "https://example.com/start"
storage:
  dir: "/var/lib/waybook"
`
	err := os.WriteFile(cfgPath, []byte(yamlContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	// Overridden values
	assert.Equal(t, "https://example.com/start", cfg.Homepage)
	assert.Equal(t, "/var/lib/waybook", cfg.Storage.Dir)

	// Non-overridden values remain defaults
	assert.Equal(t, "bookmarks.json", cfg.Storage.BookmarksFile)
	assert.Equal(t, "history.json", cfg.Storage.HistoryFile)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAMLFails(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("homepage: [unclosed"), 0644))

	_, err := Load(cfgPath)
	assert.Error(t, err)
}

func TestLoadOrCreateAtWritesDefaults(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := LoadOrCreateAt(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, DefaultHomepage, cfg.Homepage)

	// The file now exists and loads back to the same values.
	loaded, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestHomepageURLFallsBackWhenBroken(t *testing.T) {
	tests := []struct {
		name     string
		homepage string
		want     string
	}{
		{"custom", "https://example.com/start", "https://example.com/start"},
		{"empty", "", DefaultHomepage},
		{"no host", "not-a-url", DefaultHomepage},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Homepage = tc.homepage
			assert.Equal(t, tc.want, cfg.HomepageURL().String())
		})
	}
}

func TestSetHomepage(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.SetHomepage("https://example.com/new"))
	assert.Equal(t, "https://example.com/new", cfg.Homepage)

	assert.Error(t, cfg.SetHomepage("not a url"))
	assert.Error(t, cfg.SetHomepage(""))
	assert.Equal(t, "https://example.com/new", cfg.Homepage, "failed set must not clobber the stored value")
}

func TestStoragePathsJoinDirAndFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.Dir = "/data/waybook"

	bookmarks, err := cfg.BookmarksPath()
	require.NoError(t, err)
	assert.Equal(t, "/data/waybook/bookmarks.json", bookmarks)

	history, err := cfg.HistoryPath()
	require.NoError(t, err)
	assert.Equal(t, "/data/waybook/history.json", history)
}

func TestSetHomepageThenSaveRoundTrips(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := LoadOrCreateAt(cfgPath)
	require.NoError(t, err)
	require.NoError(t, cfg.SetHomepage("https://example.org/home"))
	require.NoError(t, cfg.SaveTo(cfgPath))

	loaded, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/home", loaded.HomepageURL().String())
}
