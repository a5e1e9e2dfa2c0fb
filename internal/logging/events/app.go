package events

import "github.com/atomicstack/command-menu/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(href string, err error) {
	payload := map[string]interface{}{"href": href}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.exit", payload)
}

func (AppTracer) MetricsListen(addr string) {
	logging.Trace("app.metrics.listen", map[string]interface{}{"addr": addr})
}
