package ui

// EventType is the category of a synthetic UI event.
type EventType string

const (
	EventClick   EventType = "click"
	EventKeyDown EventType = "keydown"
)

// KeyEnter is the key name carried by an Enter key-down event.
const KeyEnter = "Enter"

// Event is a synthetic UI event delivered to registered handlers.
type Event struct {
	Type   EventType
	Key    string // set for keydown events
	Target *Element

	defaultPrevented bool
}

// PreventDefault marks the event so the dispatcher skips its default
// action (e.g. form submission on Enter).
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Handler reacts to an event on an element.
type Handler func(*Event)
