// Package nav implements the command menu navigation engine: the state of one
// open menu (visible list, active entry, history of replaced lists) and the
// transitions applied to it for each navigation event.
//
// States are values. Every transition takes a State and returns the next one
// without modifying its argument, so a caller may keep older states around
// (for undo, tests, or comparison) without copying them.
package nav

import "github.com/atomicstack/command-menu/internal/menu"

// Frame is one replaced list. Opened is the ID of the entry whose children
// replaced it; hosts use it for breadcrumbs and PopOut ignores it.
type Frame struct {
	Visible menu.List
	Opened  string
}

// History is a stack of previously visible lists, most recent last.
type History []Frame

// Depth reports how many lists have been replaced by drill-ins.
func (h History) Depth() int {
	return len(h)
}

// Push returns a new history with f on top. The receiver is left untouched,
// even when it has spare capacity.
func (h History) Push(f Frame) History {
	return append(h[:len(h):len(h)], f)
}

// Pop returns the history without its top frame, and that frame.
func (h History) Pop() (History, Frame, bool) {
	n := len(h)
	if n == 0 {
		return h, Frame{}, false
	}
	top := h[n-1]
	if n == 1 {
		return nil, top, true
	}
	return h[: n-1 : n-1], top, true
}

// Lists returns the replaced lists, oldest first.
func (h History) Lists() []menu.List {
	if len(h) == 0 {
		return nil
	}
	out := make([]menu.List, len(h))
	for i, f := range h {
		out[i] = f.Visible
	}
	return out
}

// State is the navigation state of one open menu.
type State struct {
	Visible menu.List
	// Active is the ID of the highlighted item in Visible, or empty when no
	// item is highlighted.
	Active  string
	History History
}

// New seeds a state at the root list. The active entry is the first item
// labelled defaultLabel, or the first item of the list when no item carries
// that label. A tree that has not been through menu.Build gets its IDs here.
func New(root menu.List, defaultLabel string) State {
	if !root.HasIDs() {
		root = menu.Build(root)
	}
	s := State{Visible: root}
	if defaultLabel != "" {
		for _, entry := range root {
			if entry.Selectable() && entry.Label == defaultLabel {
				s.Active = entry.ID
				return s
			}
		}
	}
	s.Active = firstSelectableID(root)
	return s
}

// ActiveEntry returns the highlighted entry.
func (s State) ActiveEntry() (menu.Entry, bool) {
	entry, ok := s.Visible.Find(s.Active)
	if !ok || !entry.Selectable() {
		return menu.Entry{}, false
	}
	return entry, true
}

// ActiveLabel returns the label of the highlighted entry, or "".
func (s State) ActiveLabel() string {
	entry, _ := s.ActiveEntry()
	return entry.Label
}

// AtRoot reports whether no drill-in is in effect.
func (s State) AtRoot() bool {
	return s.History.Depth() == 0
}

func firstSelectableID(l menu.List) string {
	if idx := l.FirstSelectable(); idx >= 0 {
		return l[idx].ID
	}
	return ""
}
