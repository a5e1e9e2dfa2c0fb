package backend

import (
	"context"
	"sync"
	"time"
)

// throttle spaces reloads at least interval apart. A nil or zero throttle
// never waits.
type throttle struct {
	interval time.Duration

	mu   sync.Mutex
	last time.Time
}

func newThrottle(interval time.Duration) *throttle {
	return &throttle{interval: max(interval, 0)}
}

// wait reserves the next slot and sleeps until it starts. It reports false
// when ctx ends first; the slot is still consumed.
func (t *throttle) wait(ctx context.Context) bool {
	if t == nil || t.interval == 0 {
		return ctx.Err() == nil
	}
	t.mu.Lock()
	now := time.Now()
	slot := t.last.Add(t.interval)
	if slot.Before(now) {
		slot = now
	}
	t.last = slot
	t.mu.Unlock()

	delay := time.Until(slot)
	if delay <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
