package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/command-menu/internal/backend"
	"github.com/atomicstack/command-menu/internal/menu"
)

func TestScenarioThroughHarness(t *testing.T) {
	m := newTestModel(Options{Width: 60, Height: 30})
	h := NewHarness(m)
	for _, msg := range []tea.Msg{
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyBackspace},
	} {
		h.Send(msg)
	}
	if got := activeLabel(t, h.Model()); got != "Theme" {
		t.Fatalf("expected Theme, got %q", got)
	}
	state, _ := h.Model().State()
	if state.History.Depth() != 0 {
		t.Fatalf("expected empty history, got depth %d", state.History.Depth())
	}
}

func TestBackendReloadReplacesMenu(t *testing.T) {
	m := newTestModel(Options{Width: 60})
	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})

	def := menu.Definition{
		Active: "Docs",
		Items:  menu.Build(menu.List{menu.Title("Help"), menu.Item("Docs").WithHref("/docs")}),
	}
	h.Send(backendEventMsg{event: backend.Event{Path: "menu.yaml", Definition: def}})

	state, ok := h.Model().State()
	if !ok {
		t.Fatalf("expected overlay to stay open after reload")
	}
	if state.ActiveLabel() != "Docs" || !state.AtRoot() {
		t.Fatalf("expected fresh session at Docs, got %q depth %d", state.ActiveLabel(), state.History.Depth())
	}
	if view := h.View(); !strings.Contains(view, "Menu reloaded") {
		t.Fatalf("expected reload notice, view =\n%s", view)
	}
}

func TestBackendReloadErrorKeepsMenu(t *testing.T) {
	m := newTestModel(Options{})
	h := NewHarness(m)
	h.Send(backendEventMsg{event: backend.Event{Err: errors.New("line 3: invalid menu entry")}})
	if !strings.Contains(m.errMsg, "menu reload failed") {
		t.Fatalf("expected reload error, got %q", m.errMsg)
	}
	if got := activeLabel(t, m); got != "Theme" {
		t.Fatalf("expected menu to stay unchanged, got %q", got)
	}
	h.Send(backendDoneMsg{})
	if m.backend != nil {
		t.Fatalf("expected backend to be cleared")
	}
}

func TestHarnessFollowsLinkAndQuits(t *testing.T) {
	m := newTestModel(Options{Width: 60, Height: 30})
	h := NewHarness(m)
	h.Press("h", "down", "enter")
	if !h.Quit() {
		t.Fatalf("expected the harness to observe a quit")
	}
	if got := h.Model().Href(); got != "/about" {
		t.Fatalf("expected href /about, got %q", got)
	}
	if h.Model().IsOpen() {
		t.Fatalf("expected overlay to close after following a link")
	}
	var sawResult bool
	for _, msg := range h.Messages() {
		if result, ok := msg.(menu.ActionResult); ok && result.Href == "/about" {
			sawResult = true
		}
	}
	if !sawResult {
		t.Fatalf("expected an action result for /about, got %#v", h.Messages())
	}

	h.Press("ctrl+k")
	if h.Model().IsOpen() {
		t.Fatalf("expected input after quit to be dropped")
	}
}
