package cli

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/djmckee/waybook/internal/record"
	"github.com/djmckee/waybook/internal/store"
)

// Execute implements the go-flags Commander interface for BookmarkCommand.
func (c *BookmarkCommand) Execute(args []string) error {
	if c.URL == "" {
		return fmt.Errorf("--url is required for bookmark command")
	}
	if c.Title == "" {
		return fmt.Errorf("--title is required for bookmark command")
	}

	// Validate URL format before touching the store.
	parsed, err := url.ParseRequestURI(c.URL)
	if err != nil || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s", c.URL)
	}

	if err := c.deps.resolve(c.globals); err != nil {
		return err
	}

	b, err := record.NewBookmark(c.Title, c.URL)
	if err != nil {
		return err
	}

	if err := c.deps.bookmarks.Add(b); err != nil {
		// A failed write keeps the bookmark in memory but this process
		// is about to exit, so tell the user plainly.
		if errors.Is(err, store.ErrPersist) {
			return fmt.Errorf("bookmark could not be saved to disk: %w", err)
		}
		return err
	}

	if c.globals != nil && c.globals.JSON {
		return printJSON(b)
	}

	fmt.Printf("Bookmarked %q\n", b.String())
	fmt.Printf("  URL: %s\n", b.URL())
	fmt.Printf("  Added: %s\n", b.CreatedAtDisplay())
	return nil
}
