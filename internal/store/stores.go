package store

import "github.com/djmckee/waybook/internal/record"

// Default backing file names, one per store kind.
const (
	DefaultBookmarksFile = "bookmarks.json"
	DefaultHistoryFile   = "history.json"
)

// OpenBookmarks opens the bookmark store at path. Bookmarks are read far
// more often than they change, so the store is slice-backed for O(1)
// indexed access.
func OpenBookmarks(path string) (*Store[*record.Bookmark], error) {
	return Open(path, NewVector[*record.Bookmark]())
}

// OpenHistory opens the history store at path. History grows on every
// page visit and is only listed occasionally, so the store is
// linked-list-backed for O(1) appends.
func OpenHistory(path string) (*Store[*record.Record], error) {
	return Open(path, NewDeque[*record.Record]())
}
