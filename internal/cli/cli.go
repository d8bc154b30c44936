package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	List     *ListCommand
	Bookmark *BookmarkCommand
	Remove   *RemoveCommand
	Visit    *VisitCommand
	Clear    *ClearCommand
	Import   *ImportCommand
	Homepage *HomepageCommand
	Status   *StatusCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "waybook"
	parser.LongDescription = "Durable bookmarks, browsing history, and homepage preferences, kept in plain local files."

	cmds := &commands{
		List:     &ListCommand{globals: &globals, version: version},
		Bookmark: &BookmarkCommand{globals: &globals, version: version},
		Remove:   &RemoveCommand{globals: &globals, version: version},
		Visit:    &VisitCommand{globals: &globals, version: version},
		Clear:    &ClearCommand{globals: &globals, version: version},
		Import:   &ImportCommand{globals: &globals, version: version},
		Homepage: &HomepageCommand{globals: &globals, version: version},
		Status:   &StatusCommand{globals: &globals, version: version},
	}

	parser.AddCommand("list", "List saved records", "List bookmarks (default) or browsing history, newest first.", cmds.List)
	parser.AddCommand("bookmark", "Save a bookmark", "Save a bookmark with a title and URL.", cmds.Bookmark)
	parser.AddCommand("remove", "Remove a saved record", "Remove the most recent bookmark (or history entry) for a URL.", cmds.Remove)
	parser.AddCommand("visit", "Record a page visit", "Record a page visit in the browsing history.", cmds.Visit)
	parser.AddCommand("clear", "Clear stored records", "Clear bookmarks and/or history. Destructive operation with safety prompt.", cmds.Clear)
	parser.AddCommand("import", "Import history from another browser", "Import visits from a Chrome or Firefox profile database into the history store.", cmds.Import)
	parser.AddCommand("homepage", "Show or set the homepage", "Show the configured homepage, or set a new one with --set.", cmds.Homepage)
	parser.AddCommand("status", "Show store statistics", "Show record counts, backing file locations, and configuration summary.", cmds.Status)

	return parser, &globals, cmds
}

// Run is the main entry point for the waybook CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the matched subcommand.
func RunWithArgs(version string, args []string) error {
	// Handle --version before parser (go-flags requires a subcommand, but
	// --version is valid without one).
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("waybook %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
