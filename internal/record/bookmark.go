package record

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

// Bookmark is a Record with a human-readable title. Equality is inherited
// from Record and deliberately ignores the title: two bookmarks to the
// same URL created at the same instant are the same bookmark even when
// their titles differ.
type Bookmark struct {
	Record
	title string
}

// NewBookmark creates a Bookmark with the creation time set to now. The
// title must be non-empty; the URL is validated as for New.
func NewBookmark(title, rawURL string) (*Bookmark, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: bookmark requires a title", ErrInvalidArgument)
	}
	base, err := New(rawURL)
	if err != nil {
		return nil, err
	}
	return &Bookmark{Record: *base, title: title}, nil
}

// RestoreBookmark reconstructs a bookmark captured at a known instant.
func RestoreBookmark(title, rawURL string, createdAt time.Time) (*Bookmark, error) {
	b, err := NewBookmark(title, rawURL)
	if err != nil {
		return nil, err
	}
	b.createdAt = createdAt
	return b, nil
}

// Title returns the bookmark's title.
func (b *Bookmark) Title() string {
	return b.title
}

// Compare orders bookmarks newest-first, exactly as for Record.
func (b *Bookmark) Compare(other *Bookmark) int {
	return b.Record.Compare(&other.Record)
}

// Equal reports whether two bookmarks hold the same URL and creation
// time. The title takes no part in equality.
func (b *Bookmark) Equal(other *Bookmark) bool {
	if other == nil {
		return false
	}
	return b.Record.Equal(&other.Record)
}

// Clone returns a fully independent copy of the bookmark.
func (b *Bookmark) Clone() *Bookmark {
	cp := *b
	return &cp
}

// String renders the bookmark as its title, falling back to the URL
// string when the title is empty. Users care about what they bookmarked,
// not when.
func (b *Bookmark) String() string {
	if b.title == "" {
		return b.URL().String()
	}
	return b.title
}

type bookmarkJSON struct {
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
	Title     string    `json:"title"`
}

// MarshalJSON implements json.Marshaler.
func (b *Bookmark) MarshalJSON() ([]byte, error) {
	return json.Marshal(bookmarkJSON{
		URL:       b.URL().String(),
		CreatedAt: b.CreatedAt(),
		Title:     b.title,
	})
}

// UnmarshalJSON implements json.Unmarshaler, keeping the persisted
// timestamp and title as-is.
func (b *Bookmark) UnmarshalJSON(data []byte) error {
	var bj bookmarkJSON
	if err := json.Unmarshal(data, &bj); err != nil {
		return err
	}
	if bj.URL == "" {
		return fmt.Errorf("persisted bookmark is missing a URL")
	}
	u, err := url.Parse(bj.URL)
	if err != nil {
		return fmt.Errorf("persisted bookmark URL %q: %w", bj.URL, err)
	}
	b.u = *u
	b.createdAt = bj.CreatedAt
	b.title = bj.Title
	return nil
}
