package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Execute implements the go-flags Commander interface for ListCommand.
func (c *ListCommand) Execute(args []string) error {
	if err := c.deps.resolve(c.globals); err != nil {
		return err
	}

	if c.History {
		return c.listHistory()
	}
	return c.listBookmarks()
}

func (c *ListCommand) listBookmarks() error {
	items := c.deps.bookmarks.List()
	if c.Limit > 0 && len(items) > c.Limit {
		items = items[:c.Limit]
	}

	if c.globals != nil && c.globals.JSON {
		return printJSON(items)
	}

	if len(items) == 0 {
		fmt.Println("No bookmarks saved.")
		return nil
	}
	for _, b := range items {
		fmt.Printf("%s\n  %s (added %s)\n", b.String(), b.URL(), b.CreatedAtDisplay())
	}
	return nil
}

func (c *ListCommand) listHistory() error {
	items := c.deps.history.List()
	if c.Limit > 0 && len(items) > c.Limit {
		items = items[:c.Limit]
	}

	if c.globals != nil && c.globals.JSON {
		return printJSON(items)
	}

	if len(items) == 0 {
		fmt.Println("No history recorded.")
		return nil
	}
	for _, r := range items {
		fmt.Println(r.String())
	}
	return nil
}

// printJSON writes v to stdout as indented JSON. An empty collection
// prints as [] rather than null.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
