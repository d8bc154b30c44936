package cli

import (
	"fmt"
	"time"
)

// statusJSON is the JSON output structure for the status command.
type statusJSON struct {
	Version       string `json:"version"`
	ConfigPath    string `json:"config_path"`
	Homepage      string `json:"homepage"`
	BookmarksPath string `json:"bookmarks_path"`
	Bookmarks     int    `json:"bookmarks"`
	HistoryPath   string `json:"history_path"`
	HistoryItems  int    `json:"history_items"`
	OldestVisit   string `json:"oldest_visit,omitempty"`
	NewestVisit   string `json:"newest_visit,omitempty"`
}

// Execute implements the go-flags Commander interface for StatusCommand.
func (c *StatusCommand) Execute(args []string) error {
	if err := c.deps.resolve(c.globals); err != nil {
		return err
	}

	out := statusJSON{
		Version:       c.version,
		ConfigPath:    c.deps.cfgPath,
		Homepage:      c.deps.cfg.HomepageURL().String(),
		BookmarksPath: c.deps.bookmarks.Path(),
		Bookmarks:     c.deps.bookmarks.Len(),
		HistoryPath:   c.deps.history.Path(),
		HistoryItems:  c.deps.history.Len(),
	}

	history := c.deps.history.List()
	if len(history) > 0 {
		newest := history[0].CreatedAt()
		oldest := history[len(history)-1].CreatedAt()
		out.NewestVisit = newest.UTC().Format(time.RFC3339)
		out.OldestVisit = oldest.UTC().Format(time.RFC3339)
	}

	if c.globals != nil && c.globals.JSON {
		return printJSON(out)
	}

	fmt.Println("Waybook Status")
	fmt.Println("==============")
	fmt.Printf("Version:     %s\n", c.version)
	fmt.Printf("Config:      %s\n", out.ConfigPath)
	fmt.Printf("Homepage:    %s\n", out.Homepage)
	fmt.Printf("Bookmarks:   %d (%s)\n", out.Bookmarks, out.BookmarksPath)
	fmt.Printf("History:     %d (%s)\n", out.HistoryItems, out.HistoryPath)
	if len(history) > 0 {
		span := history[0].CreatedAt().Sub(history[len(history)-1].CreatedAt())
		fmt.Printf("Covering:    %s\n", formatDurationHuman(span))
	}
	return nil
}
