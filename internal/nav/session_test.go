package nav

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSessionRunAppliesEventsInOrder(t *testing.T) {
	var causes []string
	var actives []string
	session := NewSession(scenarioRoot(), "Theme", func(tr Transition) {
		causes = append(causes, tr.Cause)
		actives = append(actives, tr.After.ActiveLabel())
	})

	events := make(chan Event, 8)
	for _, evt := range []Event{Next, Confirm, Next, Back, Back} {
		events <- evt
	}
	close(events)

	if err := session.Run(context.Background(), events); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"next", "confirm", "next", "back", "back"}, causes); diff != "" {
		t.Fatalf("unexpected causes (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Index Page", "Home", "About", "Theme", "Theme"}, actives); diff != "" {
		t.Fatalf("unexpected active sequence (-want +got):\n%s", diff)
	}
	if !session.State().AtRoot() {
		t.Fatalf("expected session back at root")
	}
}

func TestSessionReportsChanges(t *testing.T) {
	var changed []bool
	session := NewSession(scenarioRoot(), "Theme", func(tr Transition) {
		changed = append(changed, tr.Changed)
	})

	if _, ok := session.Apply(Back); ok {
		t.Fatalf("expected back at root to report no change")
	}
	if _, ok := session.Apply(Previous); ok {
		t.Fatalf("expected previous at top to report no change")
	}
	if _, ok := session.Hover("4"); !ok {
		t.Fatalf("expected hover to report a change")
	}
	if _, ok := session.Select("3"); !ok {
		t.Fatalf("expected select to report a change")
	}
	if diff := cmp.Diff([]bool{false, false, true, true}, changed); diff != "" {
		t.Fatalf("unexpected change flags (-want +got):\n%s", diff)
	}
	if session.State().ActiveLabel() != "Home" {
		t.Fatalf("expected Home after select, got %q", session.State().ActiveLabel())
	}
}

func TestSessionRunStopsOnCancel(t *testing.T) {
	session := NewSession(scenarioRoot(), "", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := session.Run(ctx, make(chan Event))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
