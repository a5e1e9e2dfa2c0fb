package nav

// Apply dispatches evt to its transition.
func Apply(s State, evt Event) State {
	switch evt {
	case Next:
		return MoveNext(s)
	case Previous:
		return MovePrevious(s)
	case Confirm:
		return DrillIn(s)
	case Back:
		return PopOut(s)
	}
	return s
}

// MoveNext highlights the next item below the active one, skipping titles.
// There is no wraparound: at the end of the list the state is unchanged.
// A stale or missing active entry resolves to the first item.
func MoveNext(s State) State {
	n := len(s.Visible)
	if n == 0 {
		return s
	}
	idx := s.Visible.IndexOf(s.Active)
	if idx < 0 {
		return s.withActive(firstSelectableID(s.Visible))
	}
	if idx == n-1 {
		return s
	}
	next := idx + 1
	for next < n && !s.Visible[next].Selectable() {
		next++
	}
	if next >= n {
		// trailing titles: keep the last item we had
		return s
	}
	return s.withActive(s.Visible[next].ID)
}

// MovePrevious highlights the previous item above the active one, skipping
// titles. At the top of the list the state is unchanged; running past a
// leading title falls back to the first item of the list.
func MovePrevious(s State) State {
	if len(s.Visible) == 0 {
		return s
	}
	idx := s.Visible.IndexOf(s.Active)
	if idx < 0 {
		return s.withActive(firstSelectableID(s.Visible))
	}
	if idx == 0 {
		return s
	}
	prev := idx - 1
	for prev >= 0 && !s.Visible[prev].Selectable() {
		prev--
	}
	if prev < 0 {
		return s.withActive(firstSelectableID(s.Visible))
	}
	return s.withActive(s.Visible[prev].ID)
}

// DrillIn replaces the visible list with the active entry's children and
// records the replaced list in the history. Entries without children leave
// the state unchanged. An empty child list is entered with no active item.
func DrillIn(s State) State {
	entry, ok := s.ActiveEntry()
	if !ok || !entry.HasChildren() {
		return s
	}
	return State{
		Visible: entry.Children,
		Active:  firstSelectableID(entry.Children),
		History: s.History.Push(Frame{Visible: s.Visible, Opened: s.Active}),
	}
}

// PopOut restores the most recently replaced list and highlights its first
// item: the first entry, or the one after it when the list opens with a
// title. The entry that was drilled into is not re-highlighted. With an empty
// history the state is unchanged.
func PopOut(s State) State {
	history, top, ok := s.History.Pop()
	if !ok {
		return s
	}
	return State{
		Visible: top.Visible,
		Active:  firstSelectableID(top.Visible),
		History: history,
	}
}

// Hover highlights the item with the given ID when it is a visible item.
func Hover(s State, id string) State {
	entry, ok := s.Visible.Find(id)
	if !ok || !entry.Selectable() {
		return s
	}
	return s.withActive(id)
}

// Select is the pointer equivalent of highlighting an entry and confirming it.
func Select(s State, id string) State {
	return DrillIn(Hover(s, id))
}

func (s State) withActive(id string) State {
	if id == "" || id == s.Active {
		return s
	}
	s.Active = id
	return s
}
