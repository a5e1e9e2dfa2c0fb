package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/command-menu/internal/nav"
)

// KeyMap binds host keys to overlay commands.
type KeyMap struct {
	Next     key.Binding
	Previous key.Binding
	Confirm  key.Binding
	Back     key.Binding
	Open     key.Binding
	Close    key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "back"),
		),
		Open: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "open"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp is part of the help.KeyMap interface.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Confirm, k.Back, k.Close}
}

// FullHelp is part of the help.KeyMap interface.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Previous, k.Next, k.Confirm, k.Back},
		{k.Open, k.Close, k.Quit},
	}
}

// Event maps a key press to the navigation input it represents.
func (k KeyMap) Event(msg tea.KeyMsg) (nav.Event, bool) {
	switch {
	case key.Matches(msg, k.Next):
		return nav.Next, true
	case key.Matches(msg, k.Previous):
		return nav.Previous, true
	case key.Matches(msg, k.Confirm):
		return nav.Confirm, true
	case key.Matches(msg, k.Back):
		return nav.Back, true
	}
	return 0, false
}

// shortcutKey turns the key names of an entry's shortcut into the string
// Bubble Tea reports for that key press, e.g. [shift t] becomes "T".
func shortcutKey(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	lowered := make([]string, len(keys))
	for i, k := range keys {
		lowered[i] = strings.ToLower(strings.TrimSpace(k))
	}
	if len(lowered) == 2 && lowered[0] == "shift" && len([]rune(lowered[1])) == 1 {
		return strings.ToUpper(lowered[1])
	}
	return strings.Join(lowered, "+")
}
