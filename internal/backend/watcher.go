package backend

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/atomicstack/command-menu/internal/logging/events"
	"github.com/atomicstack/command-menu/internal/menu"
)

// DefaultSettle is how long the watcher waits for a burst of writes to end
// before reloading.
const DefaultSettle = 150 * time.Millisecond

// Event conveys a reloaded menu definition or the error that prevented it.
type Event struct {
	Path       string
	Definition menu.Definition
	Err        error
}

// Watcher follows a menu definition file and publishes a freshly parsed
// definition after every change.
type Watcher struct {
	path     string
	settle   time.Duration
	throttle *throttle
	fs       *fsnotify.Watcher

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
	once   sync.Once
}

// NewWatcher starts watching path. Reloads happen once writes have been quiet
// for settle and never more often than every interval.
func NewWatcher(path string, settle, interval time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve menu path: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// editors replace files by renaming over them, so watch the directory
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	if settle <= 0 {
		settle = DefaultSettle
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     abs,
		settle:   settle,
		throttle: newThrottle(interval),
		fs:       fsw,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}

	w.wg.Add(1)
	go w.run()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Events returns a channel of reload events. It is closed after Stop once the
// watcher goroutine has exited.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher and releases the underlying notifier.
func (w *Watcher) Stop() {
	w.once.Do(func() {
		w.cancel()
		w.fs.Close()
	})
}

// Wait blocks until the watcher goroutine has exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) run() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.ctx.Done():
			return
		case evt, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.relevant(evt) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.settle)
			} else {
				timer.Reset(w.settle)
			}
			fire = timer.C
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.emit(Event{Path: w.path, Err: err})
		case <-fire:
			fire = nil
			if !w.reload() {
				return
			}
		}
	}
}

func (w *Watcher) relevant(evt fsnotify.Event) bool {
	if filepath.Clean(evt.Name) != w.path {
		return false
	}
	return evt.Op.Has(fsnotify.Write) || evt.Op.Has(fsnotify.Create)
}

func (w *Watcher) reload() bool {
	if !w.throttle.wait(w.ctx) {
		return false
	}
	def, err := menu.Load(w.path)
	if err != nil {
		events.Menu.ReloadFailed(w.path, err)
	} else {
		entries, _ := menu.NewRegistry(def.Items).Count()
		events.Menu.Reload(w.path, entries)
	}
	return w.emit(Event{Path: w.path, Definition: def, Err: err})
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}
