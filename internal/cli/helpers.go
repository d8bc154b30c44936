package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/djmckee/waybook/internal/config"
	"github.com/djmckee/waybook/internal/store"
)

// resolve fills any deps not injected by tests: the config file is
// loaded (created with defaults when absent) and both stores are opened
// from the configured paths.
func (d *deps) resolve(globals *GlobalFlags) error {
	if d.cfg == nil {
		var err error
		if globals != nil && globals.Config != "" {
			d.cfgPath = globals.Config
		} else if d.cfgPath, err = config.DefaultPath(); err != nil {
			return err
		}
		if d.cfg, err = config.LoadOrCreateAt(d.cfgPath); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	if d.bookmarks == nil {
		path, err := d.cfg.BookmarksPath()
		if err != nil {
			return err
		}
		d.bookmarks, err = store.OpenBookmarks(path)
		if err != nil {
			return fmt.Errorf("opening bookmark store: %w", err)
		}
	}

	if d.history == nil {
		path, err := d.cfg.HistoryPath()
		if err != nil {
			return err
		}
		d.history, err = store.OpenHistory(path)
		if err != nil {
			return fmt.Errorf("opening history store: %w", err)
		}
	}

	return nil
}

// parseDuration parses a human-friendly duration string like "30d", "7d", "24h", "2w".
func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("invalid duration: empty string")
	}

	if len(s) < 2 {
		return 0, fmt.Errorf("invalid duration: %q", s)
	}

	suffix := s[len(s)-1]
	numStr := s[:len(s)-1]

	n, err := strconv.Atoi(numStr)
	if err != nil {
		return 0, fmt.Errorf("invalid duration: %q", s)
	}

	switch suffix {
	case 'd':
		return time.Duration(n) * 24 * time.Hour, nil
	case 'h':
		return time.Duration(n) * time.Hour, nil
	case 'w':
		return time.Duration(n) * 7 * 24 * time.Hour, nil
	case 'm':
		return time.Duration(n) * time.Minute, nil
	default:
		return 0, fmt.Errorf("invalid duration: %q (use d, h, w, or m suffix)", s)
	}
}

// formatDurationHuman formats a duration into a human-readable string like "30 days".
func formatDurationHuman(d time.Duration) string {
	days := int(d.Hours() / 24)
	if days > 0 {
		if days == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", days)
	}
	hours := int(d.Hours())
	if hours > 0 {
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	return d.String()
}
