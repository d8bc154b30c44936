package config

// DefaultHomepage is returned when the user has yet to set a custom
// homepage, or when the stored one cannot be parsed.
const DefaultHomepage = "https://www.ncl.ac.uk/computing/"

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Homepage: DefaultHomepage,
		Storage: StorageConfig{
			Dir:           "~/.config/waybook",
			BookmarksFile: "bookmarks.json",
			HistoryFile:   "history.json",
		},
	}
}
