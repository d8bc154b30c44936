package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Execute implements the go-flags Commander interface for ClearCommand.
func (c *ClearCommand) Execute(args []string) error {
	clearBookmarks := c.Bookmarks || c.All
	clearHistory := c.History || c.All
	if !clearBookmarks && !clearHistory {
		return fmt.Errorf("clear requires --bookmarks, --history, or --all")
	}

	// Confirmation prompt unless --force
	if !c.Force {
		fmt.Println("⚠ WARNING: This will permanently delete:")
		if clearBookmarks {
			fmt.Println("  - All saved bookmarks")
		}
		if clearHistory {
			fmt.Println("  - All browsing history")
		}
		fmt.Println()
		fmt.Println("This action cannot be undone.")
		fmt.Println()
		fmt.Print(`Type "CLEAR" to confirm: `)

		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			return fmt.Errorf("aborted: no input received")
		}
		input := strings.TrimSpace(scanner.Text())
		if input != "CLEAR" {
			return fmt.Errorf("aborted: confirmation text did not match")
		}
	}

	if err := c.deps.resolve(c.globals); err != nil {
		return err
	}

	if clearBookmarks {
		if err := c.deps.bookmarks.Clear(); err != nil {
			return fmt.Errorf("clearing bookmarks: %w", err)
		}
	}
	if clearHistory {
		if err := c.deps.history.Clear(); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
	}

	if c.globals != nil && c.globals.JSON {
		return printJSON(map[string]interface{}{
			"bookmarks_cleared": clearBookmarks,
			"history_cleared":   clearHistory,
		})
	}

	switch {
	case clearBookmarks && clearHistory:
		fmt.Println("Cleared all bookmarks and history.")
	case clearBookmarks:
		fmt.Println("Cleared all bookmarks.")
	default:
		fmt.Println("Cleared all history.")
	}
	return nil
}
