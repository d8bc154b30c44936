package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearCommand_AllWithForce(t *testing.T) {
	d := newTestDeps(t)

	captureOutput(t, func() {
		require.NoError(t, (&BookmarkCommand{Title: "B", URL: "http://example.com/b", deps: d}).Execute(nil))
		require.NoError(t, (&VisitCommand{URL: "http://example.com/v", deps: d}).Execute(nil))
	})
	require.Equal(t, 1, d.bookmarks.Len())
	require.Equal(t, 1, d.history.Len())

	clear := &ClearCommand{All: true, Force: true, deps: d}
	output := captureOutput(t, func() {
		require.NoError(t, clear.Execute(nil))
	})

	assert.Contains(t, output, "Cleared all bookmarks and history.")
	assert.Zero(t, d.bookmarks.Len())
	assert.Zero(t, d.history.Len())
}

func TestClearCommand_BookmarksOnlyLeavesHistory(t *testing.T) {
	d := newTestDeps(t)

	captureOutput(t, func() {
		require.NoError(t, (&BookmarkCommand{Title: "B", URL: "http://example.com/b", deps: d}).Execute(nil))
		require.NoError(t, (&VisitCommand{URL: "http://example.com/v", deps: d}).Execute(nil))
	})

	clear := &ClearCommand{Bookmarks: true, Force: true, deps: d}
	captureOutput(t, func() {
		require.NoError(t, clear.Execute(nil))
	})

	assert.Zero(t, d.bookmarks.Len())
	assert.Equal(t, 1, d.history.Len())
}

func TestClearCommand_EmptyStoreSucceeds(t *testing.T) {
	d := newTestDeps(t)

	clear := &ClearCommand{All: true, Force: true, deps: d}
	captureOutput(t, func() {
		require.NoError(t, clear.Execute(nil))
	})
	// Clearing again is still fine.
	captureOutput(t, func() {
		require.NoError(t, clear.Execute(nil))
	})
}
