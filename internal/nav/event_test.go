package nav

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseEventAcceptsKeyNames(t *testing.T) {
	cases := map[string]Event{
		"next":      Next,
		"Down":      Next,
		"prev":      Previous,
		"up":        Previous,
		"previous":  Previous,
		" enter ":   Confirm,
		"confirm":   Confirm,
		"backspace": Back,
		"back":      Back,
	}
	for name, want := range cases {
		got, err := ParseEvent(name)
		if err != nil {
			t.Fatalf("ParseEvent(%q) error: %v", name, err)
		}
		if got != want {
			t.Fatalf("ParseEvent(%q) = %s, want %s", name, got, want)
		}
	}
	if _, err := ParseEvent("left"); err == nil {
		t.Fatalf("expected error for unsupported key")
	}
}

func TestParseEvents(t *testing.T) {
	got, err := ParseEvents("down, enter,,back")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]Event{Next, Confirm, Back}, got); diff != "" {
		t.Fatalf("unexpected events (-want +got):\n%s", diff)
	}
	if _, err := ParseEvents("down,sideways"); err == nil {
		t.Fatalf("expected error for unknown event")
	}
}

func TestEventString(t *testing.T) {
	if Back.String() != "back" {
		t.Fatalf("unexpected name %q", Back.String())
	}
	if Event(42).String() != "event(42)" {
		t.Fatalf("unexpected name for unknown event %q", Event(42).String())
	}
}
