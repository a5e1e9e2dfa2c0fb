package menu

import (
	"strconv"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// Kind distinguishes section titles from selectable items.
type Kind int

const (
	KindItem Kind = iota
	KindTitle
)

func (k Kind) String() string {
	switch k {
	case KindTitle:
		return "title"
	default:
		return "item"
	}
}

// Entry is one node of the menu tree. Titles only carry a label; items may
// carry a shortcut, an icon token, a link target, a named action and a nested
// child list. A nil Children slice means the item is a leaf, a non-nil empty
// slice means the item opens an empty list.
type Entry struct {
	ID       string
	Kind     Kind
	Label    string
	Shortcut []string
	Icon     string
	Href     string
	Action   string
	Children List
}

// List is an ordered sequence of entries rendered top to bottom.
type List []Entry

// Title constructs a section header.
func Title(label string) Entry {
	return Entry{Kind: KindTitle, Label: label}
}

// Item constructs a selectable entry.
func Item(label string, children ...Entry) Entry {
	e := Entry{Kind: KindItem, Label: label}
	if len(children) > 0 {
		e.Children = List(children)
	}
	return e
}

// WithShortcut returns a copy of e displaying the given key names.
func (e Entry) WithShortcut(keys ...string) Entry {
	e.Shortcut = append([]string(nil), keys...)
	return e
}

// WithHref returns a copy of e linking to href.
func (e Entry) WithHref(href string) Entry {
	e.Href = href
	return e
}

// WithAction returns a copy of e bound to the named action.
func (e Entry) WithAction(name string) Entry {
	e.Action = name
	return e
}

// WithIcon returns a copy of e carrying an icon token.
func (e Entry) WithIcon(icon string) Entry {
	e.Icon = icon
	return e
}

// Selectable reports whether the entry can hold the active highlight.
func (e Entry) Selectable() bool {
	return e.Kind == KindItem
}

// HasChildren reports whether confirming the entry opens a nested list.
func (e Entry) HasChildren() bool {
	return e.Kind == KindItem && e.Children != nil
}

// IndexOf returns the position of the entry with the given id, or -1.
func (l List) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, entry := range l {
		if entry.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the entry with the given id.
func (l List) Find(id string) (Entry, bool) {
	if idx := l.IndexOf(id); idx >= 0 {
		return l[idx], true
	}
	return Entry{}, false
}

// FirstSelectable returns the index of the first item, or -1.
func (l List) FirstSelectable() int {
	for i, entry := range l {
		if entry.Selectable() {
			return i
		}
	}
	return -1
}

// Selectables counts the items in the list, ignoring titles.
func (l List) Selectables() int {
	n := 0
	for _, entry := range l {
		if entry.Selectable() {
			n++
		}
	}
	return n
}

// Clone copies the list and every nested child list.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	dup := make(List, len(l))
	for i, entry := range l {
		entry.Shortcut = cloneStrings(entry.Shortcut)
		entry.Children = entry.Children.Clone()
		dup[i] = entry
	}
	return dup
}

// HasIDs reports whether every entry of the tree carries an ID.
func (l List) HasIDs() bool {
	for _, entry := range l {
		if entry.ID == "" || !entry.Children.HasIDs() {
			return false
		}
	}
	return true
}

// Build returns a copy of the tree with a stable, path-qualified ID assigned
// to every entry: root entries get their index ("3"), nested entries get the
// parent ID plus their index ("3:0").
func Build(root List) List {
	return assignIDs(root.Clone(), "")
}

func assignIDs(l List, parent string) List {
	for i := range l {
		id := strconv.Itoa(i)
		if parent != "" {
			id = parent + idSeparator + id
		}
		l[i].ID = id
		if l[i].Children != nil {
			l[i].Children = assignIDs(l[i].Children, id)
		}
	}
	return l
}

const idSeparator = ":"

// ActionResult communicates the outcome of executing a leaf entry.
type ActionResult struct {
	Info string
	Href string
	Err  error
}

// ThemeToggleMsg asks the host to switch between the dark and light styles.
type ThemeToggleMsg struct{}

// Context carries host data needed by actions.
type Context struct {
	SessionID string
	Theme     string
}

type Action func(Context, Entry) tea.Cmd

// ActionHandlers maps action names usable in menu definitions to their logic.
func ActionHandlers() map[string]Action {
	return map[string]Action{
		"theme": ThemeAction,
		"open":  OpenAction,
	}
}

// ThemeAction toggles the overlay theme without closing it.
func ThemeAction(Context, Entry) tea.Cmd {
	return func() tea.Msg { return ThemeToggleMsg{} }
}

func prettyLabel(id string) string {
	if id == "" {
		return id
	}
	parts := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, part := range parts {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	dup := make([]string, len(in))
	copy(dup, in)
	return dup
}
