package quest

import (
	"time"

	"github.com/vovakirdan/tile-quest/internal/core"
)

// EventKind identifies what a presentation layer should do with an Event.
type EventKind int

const (
	// EventMessage shows transient on-screen text.
	EventMessage EventKind = iota
	// EventCue plays a sound.
	EventCue
	// EventNotification shows text after Delay has passed.
	EventNotification
)

func (k EventKind) String() string {
	switch k {
	case EventMessage:
		return "message"
	case EventCue:
		return "cue"
	case EventNotification:
		return "notification"
	default:
		return "unknown"
	}
}

// Event is a side effect requested by the simulation.
type Event struct {
	Kind  EventKind
	Text  string
	Cue   core.Cue
	Delay time.Duration
}

// Message creates a message event.
func Message(text string) Event {
	return Event{Kind: EventMessage, Text: text}
}

// CueEvent creates a sound event.
func CueEvent(c core.Cue) Event {
	return Event{Kind: EventCue, Cue: c}
}

// Notification creates a delayed notification event.
func Notification(text string, delay time.Duration) Event {
	return Event{Kind: EventNotification, Text: text, Delay: delay}
}
