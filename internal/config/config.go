// Package config holds waybook's user preferences: where the bookmark
// and history files live and which page counts as home.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where preferences live unless told otherwise.
const DefaultConfigPath = "~/.config/waybook/config.yaml"

// Config holds all waybook configuration.
type Config struct {
	Homepage string        `yaml:"homepage"`
	Storage  StorageConfig `yaml:"storage"`
}

// StorageConfig locates the backing files, one per store kind. Each file
// holds one whole-blob collection and must have a single owning process;
// waybook does not lock them.
type StorageConfig struct {
	Dir           string `yaml:"dir"`
	BookmarksFile string `yaml:"bookmarks_file"`
	HistoryFile   string `yaml:"history_file"`
}

// Load reads a YAML config file at path and merges it with defaults.
// Returns an error if the file cannot be read or contains invalid YAML.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// DefaultPath returns the default config location with ~ expanded.
func DefaultPath() (string, error) {
	return expandPath(DefaultConfigPath)
}

// LoadOrCreate loads the config from the default path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreate() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadOrCreateAt(path)
}

// LoadOrCreateAt loads the config from the given path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreateAt(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cfg.SaveTo(path); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return Load(path)
}

// SaveTo writes the config as YAML to path, creating the directory
// structure as needed.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// HomepageURL returns the configured homepage as a URL. A missing or
// unparseable value falls back to the default homepage rather than
// failing: a broken preference should never stop the browser opening.
func (c *Config) HomepageURL() *url.URL {
	if c.Homepage != "" {
		if u, err := url.Parse(c.Homepage); err == nil && u.Host != "" {
			return u
		}
	}
	u, _ := url.Parse(DefaultHomepage)
	return u
}

// SetHomepage validates and stores a new homepage URL.
func (c *Config) SetHomepage(rawURL string) error {
	u, err := url.ParseRequestURI(rawURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("invalid homepage URL: %s", rawURL)
	}
	c.Homepage = u.String()
	return nil
}

// BookmarksPath returns the expanded location of the bookmarks file.
func (c *Config) BookmarksPath() (string, error) {
	dir, err := expandPath(c.Storage.Dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, c.Storage.BookmarksFile), nil
}

// HistoryPath returns the expanded location of the history file.
func (c *Config) HistoryPath() (string, error) {
	dir, err := expandPath(c.Storage.Dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, c.Storage.HistoryFile), nil
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}
