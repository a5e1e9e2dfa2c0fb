package events

import "github.com/atomicstack/command-menu/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

// Transition records one applied navigation input.
func (NavTracer) Transition(cause, from, to string, depth int, changed bool) {
	logging.Trace("nav.transition", map[string]interface{}{
		"cause":   cause,
		"from":    from,
		"to":      to,
		"depth":   depth,
		"changed": changed,
	})
}
