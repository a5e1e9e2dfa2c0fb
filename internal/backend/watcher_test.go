package backend

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func writeMenu(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write menu: %v", err)
	}
}

func nextEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case evt, ok := <-w.Events():
		if !ok {
			t.Fatalf("events channel closed")
		}
		return evt
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for reload")
	}
	return Event{}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "menu.yaml")
	writeMenu(t, path, "items:\n  - label: Home\n")

	w, err := NewWatcher(path, 20*time.Millisecond, 0)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	writeMenu(t, path, "active: About\nitems:\n  - label: Home\n  - label: About\n")
	evt := nextEvent(t, w)
	if evt.Err != nil {
		t.Fatalf("unexpected reload error: %v", evt.Err)
	}
	if evt.Definition.Active != "About" || len(evt.Definition.Items) != 2 {
		t.Fatalf("unexpected definition %#v", evt.Definition)
	}
	if evt.Definition.Items[1].ID != "1" {
		t.Fatalf("expected built IDs, got %q", evt.Definition.Items[1].ID)
	}

	writeMenu(t, path, "items:\n  - bogus: true\n")
	evt = nextEvent(t, w)
	if evt.Err == nil {
		t.Fatalf("expected reload error for invalid menu")
	}

	w.Stop()
	w.Wait()
	if _, ok := <-w.Events(); ok {
		t.Fatalf("expected closed events channel after stop")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "menu.yaml")
	writeMenu(t, path, "items:\n  - label: Home\n")

	w, err := NewWatcher(path, 10*time.Millisecond, 0)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer func() {
		w.Stop()
		w.Wait()
	}()

	writeMenu(t, filepath.Join(dir, "other.yaml"), "items: []\n")
	select {
	case evt := <-w.Events():
		t.Fatalf("unexpected event %#v", evt)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestNewWatcherRejectsMissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "menu.yaml"), 0, 0)
	if err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestThrottleHonoursContext(t *testing.T) {
	th := newThrottle(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	if !th.wait(ctx) {
		t.Fatalf("first wait should pass immediately")
	}
	cancel()
	if th.wait(ctx) {
		t.Fatalf("expected cancelled wait to report false")
	}
	var nilThrottle *throttle
	if !nilThrottle.wait(context.Background()) {
		t.Fatalf("nil throttle should never block")
	}
}
