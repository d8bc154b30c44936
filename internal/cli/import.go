package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/djmckee/waybook/internal/browserdb"
	"github.com/djmckee/waybook/internal/record"
)

// Execute implements the go-flags Commander interface for ImportCommand.
func (c *ImportCommand) Execute(args []string) error {
	if c.From == "" {
		return fmt.Errorf("--from is required for import command")
	}

	var since time.Time
	if c.Since != "" {
		d, err := parseDuration(c.Since)
		if err != nil {
			return err
		}
		since = time.Now().Add(-d)
	}

	if err := c.deps.resolve(c.globals); err != nil {
		return err
	}

	ctx := context.Background()
	visits, err := browserdb.ReadVisits(ctx, c.From, browserdb.Flavor(c.Browser), since)
	if err != nil {
		return fmt.Errorf("reading %s profile: %w", c.Browser, err)
	}

	// Each visit keeps its original timestamp; entries the source
	// browser stored with unusable URLs are counted and skipped.
	var records []*record.Record
	skipped := 0
	for _, v := range visits {
		r, err := record.Restore(v.URL, v.VisitedAt)
		if err != nil {
			skipped++
			continue
		}
		records = append(records, r)
	}

	if !c.DryRun {
		if err := c.deps.history.AddAll(records); err != nil {
			return fmt.Errorf("importing visits: %w", err)
		}
	}

	if c.globals != nil && c.globals.JSON {
		return printJSON(map[string]interface{}{
			"imported": len(records),
			"skipped":  skipped,
			"dry_run":  c.DryRun,
		})
	}

	if c.DryRun {
		fmt.Printf("Would import %d visits (%d skipped) from %s\n", len(records), skipped, c.From)
		return nil
	}
	fmt.Printf("Imported %d visits (%d skipped) from %s\n", len(records), skipped, c.From)
	return nil
}
