package store

import "sort"

// Item is the contract a stored record must meet: newest-first ordering,
// content equality, and the ability to produce an independent copy for
// defensive reads.
type Item[T any] interface {
	Compare(other T) int
	Equal(other T) bool
	Clone() T
}

// Container is the collection strategy a Store is built over. The choice
// is a deliberate performance decision made at Open time, not an
// implementation detail: pick Vector for collections read far more often
// than they change, Deque for collections that mostly grow.
type Container[T Item[T]] interface {
	// Append adds an item in O(1) amortized (Vector) or O(1) (Deque).
	Append(item T)
	// Remove drops the first item Equal to the given one, reporting
	// whether anything was removed.
	Remove(item T) bool
	// Clear empties the container.
	Clear()
	// Len returns the number of items held.
	Len() int
	// Sort orders the contents newest-first, keeping ties stable.
	Sort()
	// Items returns a fresh slice of the held items in container order.
	// The slice is the caller's; the elements are still shared.
	Items() []T
	// Set replaces the contents with the given items.
	Set(items []T)
}

// Vector is a slice-backed Container: O(1) indexed reads, append may
// reallocate. The right choice for bookmarks, which are listed far more
// often than they are edited.
type Vector[T Item[T]] struct {
	items []T
}

// NewVector returns an empty slice-backed container.
func NewVector[T Item[T]]() *Vector[T] {
	return &Vector[T]{}
}

func (v *Vector[T]) Append(item T) {
	v.items = append(v.items, item)
}

func (v *Vector[T]) Remove(item T) bool {
	for i, it := range v.items {
		if it.Equal(item) {
			v.items = append(v.items[:i], v.items[i+1:]...)
			return true
		}
	}
	return false
}

func (v *Vector[T]) Clear() {
	v.items = nil
}

func (v *Vector[T]) Len() int {
	return len(v.items)
}

func (v *Vector[T]) Sort() {
	sortNewestFirst(v.items)
}

func (v *Vector[T]) Items() []T {
	out := make([]T, len(v.items))
	copy(out, v.items)
	return out
}

func (v *Vector[T]) Set(items []T) {
	v.items = items
}

// Deque is a linked-list-backed Container: appends never reallocate,
// indexed access is O(n). The right choice for history, which grows on
// every page visit and is only read occasionally.
type Deque[T Item[T]] struct {
	head, tail *dequeNode[T]
	n          int
}

type dequeNode[T any] struct {
	val  T
	next *dequeNode[T]
}

// NewDeque returns an empty linked-list-backed container.
func NewDeque[T Item[T]]() *Deque[T] {
	return &Deque[T]{}
}

func (d *Deque[T]) Append(item T) {
	node := &dequeNode[T]{val: item}
	if d.tail == nil {
		d.head = node
	} else {
		d.tail.next = node
	}
	d.tail = node
	d.n++
}

func (d *Deque[T]) Remove(item T) bool {
	var prev *dequeNode[T]
	for node := d.head; node != nil; node = node.next {
		if node.val.Equal(item) {
			if prev == nil {
				d.head = node.next
			} else {
				prev.next = node.next
			}
			if node == d.tail {
				d.tail = prev
			}
			d.n--
			return true
		}
		prev = node
	}
	return false
}

func (d *Deque[T]) Clear() {
	d.head, d.tail = nil, nil
	d.n = 0
}

func (d *Deque[T]) Len() int {
	return d.n
}

func (d *Deque[T]) Sort() {
	items := d.Items()
	sortNewestFirst(items)
	d.Set(items)
}

func (d *Deque[T]) Items() []T {
	out := make([]T, 0, d.n)
	for node := d.head; node != nil; node = node.next {
		out = append(out, node.val)
	}
	return out
}

func (d *Deque[T]) Set(items []T) {
	d.Clear()
	for _, item := range items {
		d.Append(item)
	}
}

// sortNewestFirst orders items by their Compare method, stably so that
// records with identical timestamps keep their relative order.
func sortNewestFirst[T Item[T]](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Compare(items[j]) < 0
	})
}
