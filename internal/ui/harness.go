package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the model without a terminal. Commands returned by Update
// run synchronously until they produce no message, which mirrors how the
// program applies one input at a time.
type Harness struct {
	model *Model
	quit  bool
	msgs  []tea.Msg
}

// NewHarness wraps model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes msg through the model and drains the resulting commands.
func (h *Harness) Send(msgs ...tea.Msg) {
	for _, msg := range msgs {
		if h.model == nil || h.quit {
			return
		}
		h.update(msg)
	}
}

// Press sends one key message per key string. Named keys use Bubble Tea's
// spelling ("down", "enter", "esc", "ctrl+k"); anything else is sent as runes.
func (h *Harness) Press(keys ...string) {
	for _, k := range keys {
		h.Send(keyMsg(k))
	}
}

// Click presses and releases the left button on row y of the view.
func (h *Harness) Click(y int) {
	h.Send(
		tea.MouseMsg{Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress},
		tea.MouseMsg{Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease},
	)
}

// Quit reports whether a command asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

// Messages returns every message produced by commands, in order.
func (h *Harness) Messages() []tea.Msg {
	return h.msgs
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

func (h *Harness) update(msg tea.Msg) {
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.run(cmd)
}

func (h *Harness) run(cmd tea.Cmd) {
	if cmd == nil || h.quit {
		return
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
		return
	case tea.QuitMsg:
		h.msgs = append(h.msgs, msg)
		h.quit = true
		return
	case tea.BatchMsg:
		for _, c := range msg {
			h.run(c)
		}
		return
	default:
		h.msgs = append(h.msgs, msg)
		h.update(msg)
	}
}

var namedKeys = map[string]tea.KeyType{
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"enter":     tea.KeyEnter,
	"backspace": tea.KeyBackspace,
	"esc":       tea.KeyEsc,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+k":    tea.KeyCtrlK,
	"ctrl+n":    tea.KeyCtrlN,
	"ctrl+p":    tea.KeyCtrlP,
}

func keyMsg(k string) tea.KeyMsg {
	if t, ok := namedKeys[k]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}
