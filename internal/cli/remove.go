package cli

import (
	"fmt"
)

// Execute implements the go-flags Commander interface for RemoveCommand.
func (c *RemoveCommand) Execute(args []string) error {
	if c.URL == "" {
		return fmt.Errorf("--url is required for remove command")
	}

	if err := c.deps.resolve(c.globals); err != nil {
		return err
	}

	if c.History {
		return c.removeHistory()
	}
	return c.removeBookmark()
}

// removeBookmark drops the most recent bookmark whose URL matches. Store
// removal works on record equality (URL plus creation time), so the
// record to remove is looked up from the sorted listing first.
func (c *RemoveCommand) removeBookmark() error {
	for _, b := range c.deps.bookmarks.List() {
		if b.URL().String() != c.URL {
			continue
		}
		if err := c.deps.bookmarks.Remove(b); err != nil {
			return fmt.Errorf("removing bookmark: %w", err)
		}
		if c.globals != nil && c.globals.JSON {
			return printJSON(map[string]interface{}{"removed": true, "url": c.URL})
		}
		fmt.Printf("Removed bookmark %q\n", b.String())
		return nil
	}
	return fmt.Errorf("no bookmark found for %s", c.URL)
}

func (c *RemoveCommand) removeHistory() error {
	for _, r := range c.deps.history.List() {
		if r.URL().String() != c.URL {
			continue
		}
		if err := c.deps.history.Remove(r); err != nil {
			return fmt.Errorf("removing history entry: %w", err)
		}
		if c.globals != nil && c.globals.JSON {
			return printJSON(map[string]interface{}{"removed": true, "url": c.URL})
		}
		fmt.Printf("Removed history entry %s\n", r.String())
		return nil
	}
	return fmt.Errorf("no history entry found for %s", c.URL)
}
