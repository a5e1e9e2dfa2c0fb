package metric

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/atomicstack/command-menu/internal/nav"
)

// Recorder counts navigation activity for one process.
type Recorder struct {
	transitions IncrementalCounter
	actions     IncrementalCounter
	depth       prometheus.Gauge
}

// NewRecorder registers the menu metrics on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	depth := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "command_menu_history_depth",
		Help: "Number of submenus currently drilled into.",
	})
	reg.MustRegister(depth)
	return &Recorder{
		transitions: NewCounterWithRegistry(reg, "command_menu_transitions_total",
			"Navigation inputs applied to the menu.", "cause", "changed"),
		actions: NewCounterWithRegistry(reg, "command_menu_actions_total",
			"Leaf actions dispatched from the menu.", "action", "result"),
		depth: depth,
	}
}

// Observe records a transition. It satisfies nav.Observer.
func (r *Recorder) Observe(tr nav.Transition) {
	if r == nil {
		return
	}
	r.transitions.Increment(tr.Cause, strconv.FormatBool(tr.Changed))
	r.depth.Set(float64(tr.After.History.Depth()))
}

// Action records the outcome of a dispatched leaf action.
func (r *Recorder) Action(name string, err error) {
	if r == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.actions.Increment(name, result)
}
