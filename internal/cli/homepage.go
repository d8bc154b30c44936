package cli

import (
	"fmt"
)

// Execute implements the go-flags Commander interface for HomepageCommand.
func (c *HomepageCommand) Execute(args []string) error {
	if err := c.deps.resolve(c.globals); err != nil {
		return err
	}

	if c.Set == "" {
		if c.globals != nil && c.globals.JSON {
			return printJSON(map[string]interface{}{"homepage": c.deps.cfg.HomepageURL().String()})
		}
		fmt.Println(c.deps.cfg.HomepageURL())
		return nil
	}

	if err := c.deps.cfg.SetHomepage(c.Set); err != nil {
		return err
	}
	if err := c.deps.cfg.SaveTo(c.deps.cfgPath); err != nil {
		return fmt.Errorf("saving homepage: %w", err)
	}

	if c.globals != nil && c.globals.JSON {
		return printJSON(map[string]interface{}{"homepage": c.deps.cfg.HomepageURL().String(), "saved": true})
	}
	fmt.Printf("Homepage set to %s\n", c.deps.cfg.HomepageURL())
	return nil
}
