package nav

import (
	"context"

	"github.com/atomicstack/command-menu/internal/menu"
)

// Transition describes one applied input.
type Transition struct {
	Cause   string
	Before  State
	After   State
	Changed bool
}

// Observer is notified after every applied input.
type Observer func(Transition)

// Session owns the state of one open menu and applies inputs strictly one at
// a time. It is not safe for concurrent use: the host serializes delivery.
type Session struct {
	state    State
	observer Observer
}

// NewSession opens a menu at root with the given default label highlighted.
func NewSession(root menu.List, defaultLabel string, observer Observer) *Session {
	return &Session{state: New(root, defaultLabel), observer: observer}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Apply runs evt against the current state.
func (s *Session) Apply(evt Event) (State, bool) {
	return s.commit(evt.String(), Apply(s.state, evt))
}

// Hover highlights the visible item with the given ID.
func (s *Session) Hover(id string) (State, bool) {
	return s.commit("hover", Hover(s.state, id))
}

// Select highlights the visible item with the given ID and drills into it.
func (s *Session) Select(id string) (State, bool) {
	return s.commit("select", Select(s.state, id))
}

// Run consumes events until the channel is closed or ctx is done. Each event
// is applied before the next one is received.
func (s *Session) Run(ctx context.Context, events <-chan Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case evt, ok := <-events:
			if !ok {
				return nil
			}
			s.Apply(evt)
		}
	}
}

func (s *Session) commit(cause string, next State) (State, bool) {
	before := s.state
	changed := !sameState(before, next)
	s.state = next
	if s.observer != nil {
		s.observer(Transition{Cause: cause, Before: before, After: next, Changed: changed})
	}
	return next, changed
}

// sameState compares the observable parts of two states: the active ID, the
// history depth and the identity of the visible list.
func sameState(a, b State) bool {
	if a.Active != b.Active || a.History.Depth() != b.History.Depth() {
		return false
	}
	if len(a.Visible) != len(b.Visible) {
		return false
	}
	if len(a.Visible) == 0 {
		return true
	}
	return &a.Visible[0] == &b.Visible[0]
}
