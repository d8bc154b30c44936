// Package record defines the time-stamped URL values persisted by the
// bookmark and history stores. Records are immutable after construction:
// the creation timestamp is set exactly once, in the constructor, and a
// record restored from disk keeps the timestamp it was persisted with.
package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"
)

// ErrInvalidArgument is wrapped by constructor failures: a required field
// was missing or unusable at the point of misuse.
var ErrInvalidArgument = errors.New("invalid argument")

// displayTimeLayout renders creation times in a human-readable form.
const displayTimeLayout = "02/01/2006 15:04:05"

// Record is one persisted URL entry: the address plus the instant it was
// created. All mutation happens through construction; accessors return
// copies so callers can never reach the internal state.
type Record struct {
	u         url.URL
	createdAt time.Time
}

// New creates a Record for rawURL with the creation time set to now.
func New(rawURL string) (*Record, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("%w: record requires a URL", ErrInvalidArgument)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: parse URL %q: %v", ErrInvalidArgument, rawURL, err)
	}
	return &Record{u: *u, createdAt: time.Now()}, nil
}

// Restore reconstructs a record captured at a known instant, as when
// importing visits from another browser's history. Unlike New, the
// creation time is taken from the caller instead of the clock.
func Restore(rawURL string, createdAt time.Time) (*Record, error) {
	r, err := New(rawURL)
	if err != nil {
		return nil, err
	}
	r.createdAt = createdAt
	return r, nil
}

// URL returns a copy of the record's URL. url.URL is a mutable struct, so
// the internal value is never handed out directly.
func (r *Record) URL() *url.URL {
	u := r.u
	return &u
}

// CreatedAt returns the instant the record was created.
func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

// CreatedAtDisplay returns the creation time formatted for display.
func (r *Record) CreatedAtDisplay() string {
	return r.createdAt.Format(displayTimeLayout)
}

// Compare orders records newest-first: it returns a negative value when r
// was created after other, zero when the timestamps are equal, and a
// positive value otherwise. Ties are possible; equal timestamps compare
// as equal regardless of URL.
func (r *Record) Compare(other *Record) int {
	switch {
	case r.createdAt.Equal(other.createdAt):
		return 0
	case r.createdAt.After(other.createdAt):
		return -1
	default:
		return 1
	}
}

// Equal reports whether two records hold the same URL and creation time.
func (r *Record) Equal(other *Record) bool {
	if other == nil {
		return false
	}
	return r.u.String() == other.u.String() && r.createdAt.Equal(other.createdAt)
}

// Clone returns a fully independent copy of the record.
func (r *Record) Clone() *Record {
	cp := *r
	return &cp
}

// String renders the record as "<timestamp> - <url>".
func (r *Record) String() string {
	return fmt.Sprintf("%s - %s", r.CreatedAtDisplay(), r.u.String())
}

// recordJSON is the wire shape of a persisted record. The timestamp
// round-trips at RFC 3339 nanosecond precision via time.Time's own
// marshaling.
type recordJSON struct {
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// MarshalJSON implements json.Marshaler.
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{URL: r.u.String(), CreatedAt: r.createdAt})
}

// UnmarshalJSON implements json.Unmarshaler. Restoring a record does not
// run the constructor: the persisted timestamp is kept as-is.
func (r *Record) UnmarshalJSON(data []byte) error {
	var rj recordJSON
	if err := json.Unmarshal(data, &rj); err != nil {
		return err
	}
	if rj.URL == "" {
		return fmt.Errorf("persisted record is missing a URL")
	}
	u, err := url.Parse(rj.URL)
	if err != nil {
		return fmt.Errorf("persisted record URL %q: %w", rj.URL, err)
	}
	r.u = *u
	r.createdAt = rj.CreatedAt
	return nil
}
