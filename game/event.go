package game

import (
	"fmt"
	"strings"
)

// Event is a discrete player input.
type Event uint8

const (
	Quit Event = iota + 1
	MoveLeft
	MoveRight
	RotateLeft
	RotateRight
	SoftDrop
	HardDrop
)

var eventNames = map[Event]string{
	Quit:        "quit",
	MoveLeft:    "left",
	MoveRight:   "right",
	RotateLeft:  "rotate-left",
	RotateRight: "rotate-right",
	SoftDrop:    "soft-drop",
	HardDrop:    "hard-drop",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Event(%d)", uint8(e))
}

// ParseEvent accepts the names printed by Event.String, case-insensitively.
func ParseEvent(s string) (Event, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for e, name := range eventNames {
		if name == s {
			return e, nil
		}
	}
	return 0, fmt.Errorf("game: unknown event %q", s)
}

// Input is the queue of events waiting for the next tick. It is not safe for
// concurrent use; push from the goroutine that steps the game.
type Input struct {
	events []Event
}

func NewInput() *Input {
	return &Input{}
}

// Push appends events in arrival order.
func (in *Input) Push(events ...Event) {
	in.events = append(in.events, events...)
}

// Len returns the number of pending events.
func (in *Input) Len() int {
	return len(in.events)
}

// Drain returns every pending event and empties the queue.
func (in *Input) Drain() []Event {
	events := in.events
	in.events = nil
	return events
}
