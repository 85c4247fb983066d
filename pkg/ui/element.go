package ui

// Element is one node of the interface tree. Elements carry an optional
// id, a set of marker classes, string attributes, a value (for inputs),
// literal text content, and a hidden/disabled state.
type Element struct {
	id       string
	parent   *Element
	children []*Element

	classes map[string]struct{}
	attrs   map[string]string

	value    string
	text     string
	hidden   bool
	disabled bool

	scrollTop int

	handlers map[EventType][]Handler
}

func newElement(id string) *Element {
	return &Element{
		id:      id,
		classes: make(map[string]struct{}),
		attrs:   make(map[string]string),
	}
}

// ID returns the element id, which may be empty.
func (el *Element) ID() string { return el.id }

// AddClass adds a marker class.
func (el *Element) AddClass(name string) {
	el.classes[name] = struct{}{}
}

// RemoveClass removes a marker class. Removing an absent class is a no-op.
func (el *Element) RemoveClass(name string) {
	delete(el.classes, name)
}

// HasClass reports whether the element carries the marker class.
func (el *Element) HasClass(name string) bool {
	_, ok := el.classes[name]
	return ok
}

// SetAttr sets a string attribute.
func (el *Element) SetAttr(key, value string) {
	el.attrs[key] = value
}

// Attr returns the attribute value and whether it is set.
func (el *Element) Attr(key string) (string, bool) {
	v, ok := el.attrs[key]
	return v, ok
}

// Value returns the element's current value (inputs).
func (el *Element) Value() string { return el.value }

// SetValue replaces the element's value.
func (el *Element) SetValue(v string) { el.value = v }

// Text returns the element's literal text content.
func (el *Element) Text() string { return el.text }

// SetText replaces the element's literal text content. The text is
// inert: it is never interpreted as markup.
func (el *Element) SetText(t string) { el.text = t }

// Hidden reports whether the element is hidden.
func (el *Element) Hidden() bool { return el.hidden }

// SetHidden toggles visibility.
func (el *Element) SetHidden(hidden bool) { el.hidden = hidden }

// Disabled reports whether the element is disabled. Disabled elements
// do not deliver events.
func (el *Element) Disabled() bool { return el.disabled }

// SetDisabled toggles the disabled state.
func (el *Element) SetDisabled(disabled bool) { el.disabled = disabled }

// Parent returns the parent element, or nil for a detached root.
func (el *Element) Parent() *Element { return el.parent }

// Children returns the child elements in insertion order. The returned
// slice is the live backing slice; callers must not mutate it.
func (el *Element) Children() []*Element { return el.children }

// AppendChild attaches child as the last child of el.
func (el *Element) AppendChild(child *Element) {
	child.parent = el
	el.children = append(el.children, child)
}

// ScrollTop returns the current scroll offset.
func (el *Element) ScrollTop() int { return el.scrollTop }

// ScrollHeight returns the maximum scroll offset, modeled as the number
// of children of a scrollable container.
func (el *Element) ScrollHeight() int { return len(el.children) }

// ScrollToBottom sets the scroll offset to its maximum.
func (el *Element) ScrollToBottom() {
	el.scrollTop = el.ScrollHeight()
}

// On registers a handler for the given event type.
func (el *Element) On(t EventType, h Handler) {
	if el.handlers == nil {
		el.handlers = make(map[EventType][]Handler)
	}
	el.handlers[t] = append(el.handlers[t], h)
}

// Dispatch delivers an event to the element's handlers and returns it
// so the caller can inspect PreventDefault. Disabled elements swallow
// the event.
func (el *Element) Dispatch(ev *Event) *Event {
	ev.Target = el
	if el.disabled {
		return ev
	}
	for _, h := range el.handlers[ev.Type] {
		h(ev)
	}
	return ev
}

// Click dispatches a click event.
func (el *Element) Click() *Event {
	return el.Dispatch(&Event{Type: EventClick})
}

// KeyDown dispatches a key-down event for the named key.
func (el *Element) KeyDown(key string) *Event {
	return el.Dispatch(&Event{Type: EventKeyDown, Key: key})
}
