// Package session implements back/forward navigation over two URL
// stacks. Nothing here is persisted: a Navigator lives and dies with one
// browsing session.
package session

import "net/url"

// Navigator holds the in-session back/forward state. The back stack
// descends chronologically with the most recently left page on top; the
// forward stack holds pages reachable again after going back. An address
// is in at most one of the two stacks at any instant. Not safe for
// concurrent use; one owner per session.
type Navigator struct {
	back    []*url.URL
	forward []*url.URL
}

// New returns a Navigator with empty back and forward stacks.
func New() *Navigator {
	return &Navigator{}
}

// HasBack reports whether there are pages to navigate back to.
func (n *Navigator) HasBack() bool {
	return len(n.back) > 0
}

// HasForward reports whether there are pages to navigate forward to.
func (n *Navigator) HasForward() bool {
	return len(n.forward) > 0
}

// PushBack records u as the most recent page to go back to. A nil URL is
// ignored.
func (n *Navigator) PushBack(u *url.URL) {
	if u == nil {
		return
	}
	n.back = append(n.back, u)
}

// StepBack pops the most recent back page and returns it, pushing
// current onto the forward stack so the user can return to it. This is
// the only way URLs enter the forward stack. Returns nil, with both
// stacks untouched, when there is nothing to go back to.
func (n *Navigator) StepBack(current *url.URL) *url.URL {
	if !n.HasBack() {
		return nil
	}
	top := n.back[len(n.back)-1]
	n.back = n.back[:len(n.back)-1]
	n.forward = append(n.forward, current)
	return top
}

// StepForward pops the most recent forward page and returns it, pushing
// current onto the back stack. Returns nil, with both stacks untouched,
// when there is nothing to go forward to.
func (n *Navigator) StepForward(current *url.URL) *url.URL {
	if !n.HasForward() {
		return nil
	}
	top := n.forward[len(n.forward)-1]
	n.forward = n.forward[:len(n.forward)-1]
	n.back = append(n.back, current)
	return top
}

// ClearForward empties the forward stack only. Called whenever the user
// deliberately navigates to a new address: you cannot redo past a fresh
// navigation.
func (n *Navigator) ClearForward() {
	n.forward = nil
}

// ClearAll empties both stacks, for use when the persisted history is
// wiped.
func (n *Navigator) ClearAll() {
	n.back = nil
	n.forward = nil
}
