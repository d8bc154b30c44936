// Package store manages durable, sorted collections of URL records. One
// Store owns one backing file holding the whole collection as a single
// JSON blob, rewritten on every mutation. A given backing file must have
// exactly one live Store per process; nothing here locks the file against
// other processes, and concurrent writers would corrupt the blob.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	// ErrCorrupt is wrapped by Open when the backing file exists but
	// cannot be decoded. Fatal to that store: the data is never
	// silently dropped.
	ErrCorrupt = errors.New("persisted records cannot be decoded")

	// ErrPersist is wrapped when rewriting the backing file fails. The
	// in-memory collection has already been mutated and the store
	// remains usable.
	ErrPersist = errors.New("persisted records cannot be written")
)

// Store is a durable collection of records, kept sorted newest-first and
// rewritten to its backing file on every mutating call. Not safe for
// concurrent use without external synchronization.
type Store[T Item[T]] struct {
	path  string
	items Container[T]
}

// Open builds a Store over the given backing file and container
// strategy. An existing file is decoded into the collection; an absent
// file starts the store empty; a file that is present but truncated or
// of the wrong shape fails with an error wrapping ErrCorrupt. A file
// that cannot be read at all fails with the underlying I/O error.
func Open[T Item[T]](path string, c Container[T]) (*Store[T], error) {
	s := &Store[T]{path: path, items: c}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w: %w", path, ErrCorrupt, err)
	}

	// Decode element by element: encoding/json skips UnmarshalJSON for a
	// JSON null, which would otherwise land a nil record in the
	// collection instead of failing here.
	items := make([]T, 0, len(raw))
	for i, blob := range raw {
		if string(blob) == "null" {
			return nil, fmt.Errorf("decode %s: %w: record %d is null", path, ErrCorrupt, i)
		}
		var item T
		if err := json.Unmarshal(blob, &item); err != nil {
			return nil, fmt.Errorf("decode %s: %w: %w", path, ErrCorrupt, err)
		}
		items = append(items, item)
	}

	c.Set(items)
	c.Sort()
	return s, nil
}

// Path returns the backing file location.
func (s *Store[T]) Path() string {
	return s.path
}

// Len returns the number of records held.
func (s *Store[T]) Len() int {
	return s.items.Len()
}

// List returns the collection sorted newest-first. Every element is an
// independent clone; callers can never mutate store-internal state
// through the returned slice.
func (s *Store[T]) List() []T {
	s.items.Sort()
	out := make([]T, 0, s.items.Len())
	for _, item := range s.items.Items() {
		out = append(out, item.Clone())
	}
	return out
}

// Add appends a record, re-sorts, and rewrites the backing file. On a
// persist failure the add is not rolled back: the error is surfaced and
// the in-memory collection keeps the new record.
func (s *Store[T]) Add(item T) error {
	s.items.Append(item)
	s.items.Sort()
	return s.save()
}

// AddAll appends every given record, re-sorts, and rewrites the backing
// file once. Adding nothing is a no-op with no write.
func (s *Store[T]) AddAll(items []T) error {
	if len(items) == 0 {
		return nil
	}
	for _, item := range items {
		s.items.Append(item)
	}
	s.items.Sort()
	return s.save()
}

// Remove drops the first record equal to item and persists the change.
// Removing an absent record is a silent no-op and performs no write.
func (s *Store[T]) Remove(item T) error {
	if !s.items.Remove(item) {
		return nil
	}
	return s.save()
}

// Clear empties the collection and persists the empty state, even when
// the store was already empty.
func (s *Store[T]) Clear() error {
	s.items.Clear()
	return s.save()
}

// save rewrites the whole collection. The blob is written to a temp file
// in the same directory and renamed into place so a crash mid-write
// cannot leave a truncated backing file.
func (s *Store[T]) save() error {
	data, err := json.MarshalIndent(s.items.Items(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w: %w", s.path, ErrPersist, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w: %w", tmp, ErrPersist, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w: %w", s.path, ErrPersist, err)
	}
	return nil
}
