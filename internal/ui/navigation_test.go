package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/command-menu/internal/menu"
	"github.com/atomicstack/command-menu/internal/theme"
)

func TestKeysDriveTheSession(t *testing.T) {
	m := newTestModel(Options{})
	h := NewHarness(m)

	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	if got := activeLabel(t, m); got != "Index Page" {
		t.Fatalf("expected Index Page, got %q", got)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if got := activeLabel(t, m); got != "Home" {
		t.Fatalf("expected Home after drilling in, got %q", got)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlN})
	if got := activeLabel(t, m); got != "About" {
		t.Fatalf("expected About after ctrl+n, got %q", got)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := activeLabel(t, m); got != "Theme" {
		t.Fatalf("expected first item Theme after popping out, got %q", got)
	}
	state, _ := m.State()
	if !state.AtRoot() {
		t.Fatalf("expected root list after popping out")
	}
}

func TestEscapeClosesAndCtrlKReopensAtRoot(t *testing.T) {
	m := newTestModel(Options{})
	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	firstSession := m.sessionID

	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	if m.IsOpen() {
		t.Fatalf("expected esc to close the overlay")
	}
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	if m.IsOpen() {
		t.Fatalf("navigation keys must not open the overlay")
	}

	h.Send(tea.KeyMsg{Type: tea.KeyCtrlK})
	if !m.IsOpen() {
		t.Fatalf("expected ctrl+k to open the overlay")
	}
	if got := activeLabel(t, m); got != "Theme" {
		t.Fatalf("expected a fresh session at Theme, got %q", got)
	}
	if m.sessionID == firstSession {
		t.Fatalf("expected a new session id after reopening")
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(Options{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}

	m.closeOverlay("test")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected esc on a closed overlay to quit")
	}
}

func TestConfirmingLinkQuitsWithHref(t *testing.T) {
	var actions []string
	m := newTestModel(Options{DefaultLabel: "About Me", OnAction: func(name string, err error) {
		if err != nil {
			t.Fatalf("unexpected action error: %v", err)
		}
		actions = append(actions, name)
	}})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected action command")
	}
	if !m.loading {
		t.Fatalf("expected model to wait for the action")
	}
	_, cmd = m.Update(cmd())
	if cmd == nil {
		t.Fatalf("expected quit after following a link")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if m.Href() != "/about" {
		t.Fatalf("expected href /about, got %q", m.Href())
	}
	if len(actions) != 1 || actions[0] != "open" {
		t.Fatalf("expected one open action, got %v", actions)
	}
}

func TestThemeActionTogglesStyles(t *testing.T) {
	m := newTestModel(Options{})
	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Theme() != theme.Light {
		t.Fatalf("expected light theme, got %q", m.Theme())
	}
	if !m.IsOpen() {
		t.Fatalf("theme toggle must keep the overlay open")
	}
	h.Send(keyRunes("T"))
	if m.Theme() != theme.Dark {
		t.Fatalf("expected shortcut to toggle back to dark, got %q", m.Theme())
	}
}

func TestShortcutDrillsIntoEntry(t *testing.T) {
	m := newTestModel(Options{})
	h := NewHarness(m)
	h.Send(keyRunes("h"))
	if got := activeLabel(t, m); got != "Home" {
		t.Fatalf("expected shortcut h to open Index Page, got %q", got)
	}
	h.Send(keyRunes("x"))
	if got := activeLabel(t, m); got != "Home" {
		t.Fatalf("unbound keys must not move the highlight, got %q", got)
	}
}

func TestActionErrorsAreShown(t *testing.T) {
	var gotErr error
	m := newTestModel(Options{OnAction: func(_ string, err error) { gotErr = err }})
	m.pendingAction = "open"
	m.loading = true
	h := NewHarness(m)
	h.Send(menu.ActionResult{Err: errors.New("no link target")})
	if m.loading {
		t.Fatalf("expected loading to clear")
	}
	if m.errMsg != "no link target" {
		t.Fatalf("expected error message, got %q", m.errMsg)
	}
	if gotErr == nil {
		t.Fatalf("expected action observer to see the error")
	}
	if !m.IsOpen() {
		t.Fatalf("errors must keep the overlay open")
	}
}

func TestLeafWithoutActionReportsInfo(t *testing.T) {
	root := menu.Build(menu.List{menu.Item("Plain")})
	m := newTestModel(Options{Root: root, DefaultLabel: "Plain"})
	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if m.currentInfo() == "" {
		t.Fatalf("expected info message for a leaf without action")
	}
	if got := activeLabel(t, m); got != "Plain" {
		t.Fatalf("expected highlight to stay on Plain, got %q", got)
	}
}

func TestMouseHoverAndClick(t *testing.T) {
	m := newTestModel(Options{Width: 40})
	h := NewHarness(m)

	lines, ids := m.layout()
	if len(lines) != len(ids) {
		t.Fatalf("layout returned %d lines but %d ids", len(lines), len(ids))
	}
	row := -1
	for i, id := range ids {
		if id == "3" {
			row = i
		}
	}
	if row < 0 {
		t.Fatalf("Index Page row not found in %v", ids)
	}
	top := m.styles.Frame.GetBorderTopSize()

	h.Send(tea.MouseMsg{X: 2, Y: row + top, Action: tea.MouseActionMotion})
	if got := activeLabel(t, m); got != "Index Page" {
		t.Fatalf("expected hover to highlight Index Page, got %q", got)
	}

	h.Send(tea.MouseMsg{X: 2, Y: top, Action: tea.MouseActionMotion})
	if got := activeLabel(t, m); got != "Index Page" {
		t.Fatalf("hovering the breadcrumb must not move the highlight, got %q", got)
	}

	h.Send(tea.MouseMsg{X: 2, Y: row + top, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got := activeLabel(t, m); got != "Home" {
		t.Fatalf("expected click to drill into Index Page, got %q", got)
	}

	h.Send(tea.MouseMsg{X: 2, Y: 500, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.IsOpen() {
		t.Fatalf("expected click outside the overlay to close it")
	}
}
