package events

import "github.com/atomicstack/command-menu/internal/logging"

type UITracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) Open(session, active string) {
	logging.Trace("overlay.open", map[string]interface{}{"session": session, "active": active})
}

func (UITracer) Close(session, reason string) {
	logging.Trace("overlay.close", map[string]interface{}{"session": session, "reason": reason})
}

func (UITracer) Hover(session, id string) {
	logging.Trace("overlay.hover", map[string]interface{}{"session": session, "item": id})
}

func (UITracer) ThemeToggle(name string) {
	logging.Trace("theme.toggle", map[string]interface{}{"theme": name})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, outcome string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "outcome": outcome})
}
