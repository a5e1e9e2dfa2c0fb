package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/command-menu/internal/logging/events"
	"github.com/atomicstack/command-menu/internal/menu"
	"github.com/atomicstack/command-menu/internal/nav"
	"github.com/atomicstack/command-menu/internal/ui/command"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		return tea.Quit
	}
	if !m.IsOpen() {
		switch {
		case key.Matches(keyMsg, m.keys.Open):
			m.openOverlay()
		case key.Matches(keyMsg, m.keys.Close):
			return tea.Quit
		}
		return nil
	}
	if key.Matches(keyMsg, m.keys.Close) {
		m.closeOverlay("escape")
		return nil
	}
	if m.loading {
		return nil
	}
	if evt, ok := m.keys.Event(keyMsg); ok {
		if evt == nav.Confirm {
			return m.confirmActive()
		}
		m.applyEvent(evt)
		return nil
	}
	return m.handleShortcut(keyMsg)
}

func (m *Model) applyEvent(evt nav.Event) {
	if _, changed := m.session.Apply(evt); changed {
		m.errMsg = ""
		m.clearInfo()
	}
}

// confirmActive drills into the active entry or, for a leaf, runs its action.
func (m *Model) confirmActive() tea.Cmd {
	entry, ok := m.session.State().ActiveEntry()
	if !ok {
		return nil
	}
	if action, ok := menu.ActionFor(entry); ok {
		return m.runAction(entry, action)
	}
	if !entry.HasChildren() {
		m.session.Apply(nav.Confirm)
		m.setInfo(fmt.Sprintf("Selected %s (no action defined)", entry.Label))
		return nil
	}
	m.applyEvent(nav.Confirm)
	return nil
}

func (m *Model) runAction(entry menu.Entry, action menu.Action) tea.Cmd {
	name := entry.Action
	if name == "" {
		name = "open"
	}
	m.loading = true
	m.pendingAction = name
	m.pendingLabel = entry.Label
	m.errMsg = ""
	m.forceClearInfo()
	return m.bus.Execute(m.menuContext(), command.Request{
		ID:      entry.ID,
		Label:   entry.Label,
		Handler: action,
		Entry:   entry,
	})
}

// handleShortcut highlights and confirms the visible item whose shortcut
// matches the pressed key.
func (m *Model) handleShortcut(msg tea.KeyMsg) tea.Cmd {
	pressed := msg.String()
	for _, entry := range m.session.State().Visible {
		if !entry.Selectable() || len(entry.Shortcut) == 0 {
			continue
		}
		if shortcutKey(entry.Shortcut) != pressed {
			continue
		}
		m.session.Hover(entry.ID)
		return m.confirmActive()
	}
	return nil
}

// handleMouseMsg maps pointer motion to Hover and a left click to Select.
// A click below the overlay closes it.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || !m.IsOpen() || m.loading {
		return nil
	}
	id, inside := m.entryAt(ev.Y)
	switch {
	case ev.Action == tea.MouseActionMotion:
		if id == "" {
			return nil
		}
		if _, changed := m.session.Hover(id); changed {
			events.UI.Hover(m.sessionID, id)
		}
	case ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft:
		if !inside {
			m.closeOverlay("click")
			return nil
		}
		if id == "" {
			return nil
		}
		entry, found := m.session.State().Visible.Find(id)
		if !found {
			return nil
		}
		if action, ok := menu.ActionFor(entry); ok {
			m.session.Hover(id)
			return m.runAction(entry, action)
		}
		if _, changed := m.session.Select(id); changed {
			m.errMsg = ""
			m.clearInfo()
		}
	}
	return nil
}
