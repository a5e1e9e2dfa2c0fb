package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/command-menu/internal/backend"
	"github.com/atomicstack/command-menu/internal/logging"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent swaps in a reloaded menu. IDs of the new tree are not
// comparable with the old one, so an open overlay restarts at the root.
func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Err != nil {
		logging.Error(evt.Err)
		m.errMsg = fmt.Sprintf("menu reload failed: %v", evt.Err)
		return
	}
	m.root = evt.Definition.Items
	if evt.Definition.Active != "" {
		m.defaultLabel = evt.Definition.Active
	}
	if m.IsOpen() {
		m.closeOverlay("reload")
		m.openOverlay()
	}
	m.errMsg = ""
	m.setInfo("Menu reloaded")
}
