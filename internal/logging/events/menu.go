package events

import "github.com/atomicstack/command-menu/internal/logging"

type MenuTracer struct{}

var Menu = MenuTracer{}

func (MenuTracer) Load(path string, entries, titles int) {
	logging.Trace("menu.load", map[string]interface{}{"path": path, "entries": entries, "titles": titles})
}

func (MenuTracer) Reload(path string, entries int) {
	logging.Trace("menu.reload", map[string]interface{}{"path": path, "entries": entries})
}

func (MenuTracer) ReloadFailed(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("menu.reload.error", map[string]interface{}{"path": path, "error": err.Error()})
}
