package nav

import (
	"fmt"
	"strings"
)

// Event is one edge-triggered navigation input.
type Event int

const (
	Next Event = iota
	Previous
	Confirm
	Back
)

var eventNames = [...]string{
	Next:     "next",
	Previous: "previous",
	Confirm:  "confirm",
	Back:     "back",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return fmt.Sprintf("event(%d)", int(e))
	}
	return eventNames[e]
}

// ParseEvent maps an event name or its conventional key name to an Event.
func ParseEvent(name string) (Event, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "next", "down":
		return Next, nil
	case "previous", "prev", "up":
		return Previous, nil
	case "confirm", "enter":
		return Confirm, nil
	case "back", "backspace":
		return Back, nil
	}
	return 0, fmt.Errorf("unknown navigation event %q", name)
}

// ParseEvents parses a comma separated list of event names.
func ParseEvents(list string) ([]Event, error) {
	var out []Event
	for _, field := range strings.Split(list, ",") {
		if strings.TrimSpace(field) == "" {
			continue
		}
		evt, err := ParseEvent(field)
		if err != nil {
			return nil, err
		}
		out = append(out, evt)
	}
	return out, nil
}
