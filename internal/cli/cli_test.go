package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionFlag(t *testing.T) {
	output := captureOutput(t, func() {
		err := RunWithArgs("0.1.0-test", []string{"--version"})
		assert.NoError(t, err)
	})

	assert.Contains(t, output, "waybook 0.1.0-test")
}

func TestVersionOutputFormat(t *testing.T) {
	output := captureOutput(t, func() {
		_ = RunWithArgs("1.2.3", []string{"--version"})
	})

	assert.Equal(t, "waybook 1.2.3", strings.TrimSpace(output))
}

func TestSubcommandsRegistered(t *testing.T) {
	parser, _, _ := buildParser("test")

	for _, name := range []string{"list", "bookmark", "remove", "visit", "clear", "import", "homepage", "status"} {
		assert.NotNil(t, parser.Find(name), "subcommand %q should be registered", name)
	}
}

func TestUnknownSubcommandFails(t *testing.T) {
	parser, _, _ := buildParser("test")
	_, err := parser.ParseArgs([]string{"frobnicate"})
	assert.Error(t, err)
}

func TestBookmarkCommandRequiresFlags(t *testing.T) {
	cmd := &BookmarkCommand{deps: newTestDeps(t)}
	err := cmd.Execute(nil)
	assert.ErrorContains(t, err, "--url is required")

	cmd.URL = "http://example.com"
	err = cmd.Execute(nil)
	assert.ErrorContains(t, err, "--title is required")
}

func TestVisitCommandRequiresURL(t *testing.T) {
	cmd := &VisitCommand{deps: newTestDeps(t)}
	assert.ErrorContains(t, cmd.Execute(nil), "--url is required")
}

func TestClearCommandRequiresScope(t *testing.T) {
	cmd := &ClearCommand{Force: true, deps: newTestDeps(t)}
	assert.ErrorContains(t, cmd.Execute(nil), "requires --bookmarks, --history, or --all")
}

func TestImportCommandRequiresFrom(t *testing.T) {
	cmd := &ImportCommand{deps: newTestDeps(t)}
	assert.ErrorContains(t, cmd.Execute(nil), "--from is required")
}
