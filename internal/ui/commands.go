package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/command-menu/internal/logging"
	"github.com/atomicstack/command-menu/internal/logging/events"
	"github.com/atomicstack/command-menu/internal/menu"
	"github.com/atomicstack/command-menu/internal/theme"
)

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.ActionResult)
	if !ok {
		return nil
	}
	name := m.finishAction(result.Err)
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		logging.Error(result.Err)
		return nil
	}
	events.Action.Success(result.Info)
	if result.Href != "" {
		m.href = result.Href
		m.closeOverlay(name)
		return tea.Quit
	}
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	}
	return nil
}

func (m *Model) handleThemeToggleMsg(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(menu.ThemeToggleMsg); !ok {
		return nil
	}
	m.finishAction(nil)
	m.styles = theme.Toggle(m.styles.Name)
	events.UI.ThemeToggle(m.styles.Name)
	if m.verbose {
		m.setInfo("Theme: " + m.styles.Name)
	}
	return nil
}

// finishAction clears the pending action and reports its outcome.
func (m *Model) finishAction(err error) string {
	name := m.pendingAction
	m.loading = false
	m.pendingAction = ""
	m.pendingLabel = ""
	if name != "" && m.onAction != nil {
		m.onAction(name, err)
	}
	return name
}
