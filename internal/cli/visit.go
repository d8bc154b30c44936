package cli

import (
	"fmt"
	"net/url"

	"github.com/djmckee/waybook/internal/record"
)

// Execute implements the go-flags Commander interface for VisitCommand.
func (c *VisitCommand) Execute(args []string) error {
	if c.URL == "" {
		return fmt.Errorf("--url is required for visit command")
	}

	parsed, err := url.ParseRequestURI(c.URL)
	if err != nil || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s", c.URL)
	}

	if err := c.deps.resolve(c.globals); err != nil {
		return err
	}

	r, err := record.New(c.URL)
	if err != nil {
		return err
	}

	if err := c.deps.history.Add(r); err != nil {
		return fmt.Errorf("recording visit: %w", err)
	}

	if c.globals != nil && c.globals.JSON {
		return printJSON(r)
	}

	fmt.Printf("Recorded visit to %s\n", r.URL())
	return nil
}
