package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/command-menu/internal/logging/events"
	"github.com/atomicstack/command-menu/internal/menu"
)

// Request names one action invocation for a confirmed entry.
type Request struct {
	ID      string
	Label   string
	Handler menu.Action
	Entry   menu.Entry
}

// Bus turns menu actions into Bubble Tea commands. Every command it returns
// produces a message, so the caller always sees the action finish.
type Bus struct {
	seq int
}

// New returns an empty bus.
func New() *Bus {
	return &Bus{}
}

// Executed counts the requests handed to Execute.
func (b *Bus) Executed() int {
	return b.seq
}

// Execute resolves req against ctx. Handlers are called synchronously; the
// command they return runs on the program's goroutine pool. Missing handlers
// and handlers without a command finish with an empty ActionResult.
func (b *Bus) Execute(ctx menu.Context, req Request) tea.Cmd {
	b.seq++
	id := req.ID
	if id == "" {
		id = fmt.Sprintf("request-%d", b.seq)
	}
	events.Command.Queue(id, req.Label)
	if req.Handler == nil {
		events.Command.Skip(id, req.Label)
		return done
	}
	cmd := req.Handler(ctx, req.Entry)
	if cmd == nil {
		events.Command.NoOp(id, req.Label)
		return done
	}
	return func() tea.Msg {
		msg := cmd()
		if msg == nil {
			events.Command.NoOp(id, req.Label)
			return menu.ActionResult{}
		}
		events.Command.Result(id, req.Label, describe(msg))
		return msg
	}
}

func done() tea.Msg {
	return menu.ActionResult{}
}

func describe(msg tea.Msg) string {
	if result, ok := msg.(menu.ActionResult); ok {
		switch {
		case result.Err != nil:
			return "error: " + result.Err.Error()
		case result.Href != "":
			return "href: " + result.Href
		}
	}
	return fmt.Sprintf("%T", msg)
}
