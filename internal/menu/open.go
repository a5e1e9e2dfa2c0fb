package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// OpenAction resolves a link entry. The host exits and reports the href.
func OpenAction(ctx Context, entry Entry) tea.Cmd {
	href := strings.TrimSpace(entry.Href)
	if href == "" {
		return func() tea.Msg {
			return ActionResult{Err: fmt.Errorf("%s has no link target", entry.Label)}
		}
	}
	return func() tea.Msg {
		return ActionResult{Info: fmt.Sprintf("Opening %s", href), Href: href}
	}
}

// ActionFor returns the handler that runs when a leaf entry is confirmed.
// Named actions win over links; entries with neither have no handler.
func ActionFor(entry Entry) (Action, bool) {
	if !entry.Selectable() || entry.HasChildren() {
		return nil, false
	}
	if entry.Action != "" {
		action, ok := ActionHandlers()[entry.Action]
		return action, ok
	}
	if entry.Href != "" {
		return OpenAction, true
	}
	return nil, false
}
