package cli

import (
	"github.com/djmckee/waybook/internal/config"
	"github.com/djmckee/waybook/internal/record"
	"github.com/djmckee/waybook/internal/store"
)

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	JSON    bool   `long:"json" description:"Output in JSON format"`
	Verbose bool   `long:"verbose" description:"Enable verbose output"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// deps are the pieces a command needs to run. Tests inject them; outside
// tests they are loaded from the config file on demand.
type deps struct {
	cfg       *config.Config
	cfgPath   string
	bookmarks *store.Store[*record.Bookmark]
	history   *store.Store[*record.Record]
}

// ListCommand — list bookmarks or history, newest first.
type ListCommand struct {
	History bool `long:"history" description:"List browsing history instead of bookmarks"`
	Limit   int  `long:"limit" description:"Maximum records to show (0 = all)" default:"0"`

	globals *GlobalFlags
	version string
	deps    deps
}

// BookmarkCommand — save a bookmark with a title and URL.
type BookmarkCommand struct {
	Title string `long:"title" description:"Bookmark title (required)"`
	URL   string `long:"url" description:"URL to bookmark (required)"`

	globals *GlobalFlags
	version string
	deps    deps
}

// RemoveCommand — remove the most recent record matching a URL.
type RemoveCommand struct {
	URL     string `long:"url" description:"URL of the record to remove (required)"`
	History bool   `long:"history" description:"Remove from history instead of bookmarks"`

	globals *GlobalFlags
	version string
	deps    deps
}

// VisitCommand — record a page visit in the history store.
type VisitCommand struct {
	URL string `long:"url" description:"URL that was visited (required)"`

	globals *GlobalFlags
	version string
	deps    deps
}

// ClearCommand — clear bookmarks and/or history with safety confirmation.
type ClearCommand struct {
	Bookmarks bool `long:"bookmarks" description:"Clear all bookmarks"`
	History   bool `long:"history" description:"Clear all browsing history"`
	All       bool `long:"all" description:"Clear both stores"`
	Force     bool `long:"force" description:"Skip safety confirmation prompt"`

	globals *GlobalFlags
	version string
	deps    deps
}

// ImportCommand — import visits from another browser's profile database.
type ImportCommand struct {
	From    string `long:"from" description:"Path to the profile database (required)"`
	Browser string `long:"browser" description:"Profile layout: chrome | firefox" default:"chrome"`
	Since   string `long:"since" description:"Only import visits newer than duration (e.g., 7d, 24h, 2w)"`
	DryRun  bool   `long:"dry-run" description:"Show what would be imported without writing"`

	globals *GlobalFlags
	version string
	deps    deps
}

// HomepageCommand — show or set the configured homepage.
type HomepageCommand struct {
	Set string `long:"set" description:"New homepage URL"`

	globals *GlobalFlags
	version string
	deps    deps
}

// StatusCommand — show record counts, file locations, config summary.
type StatusCommand struct {
	globals *GlobalFlags
	version string
	deps    deps
}
