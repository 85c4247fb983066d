package view

import (
	"github.com/gymbuddy/gymbuddy/pkg/domain"
	"github.com/gymbuddy/gymbuddy/pkg/ui"
)

// Classes carried by transcript message nodes.
const (
	ClassMessage = "msg"
	ClassLabel   = "label"
	ClassText    = "text"
)

// MessageListener observes messages as they are appended. Listeners let
// a terminal front end or a persistence adapter mirror the transcript
// without the transcript knowing about either.
type MessageListener func(domain.Message)

// Transcript renders the ordered, append-only list of chat messages
// into the messages container.
type Transcript struct {
	doc       *ui.Document
	container *ui.Element
	listeners []MessageListener
}

// NewTranscript creates a transcript over the messages container.
func NewTranscript(doc *ui.Document, container *ui.Element) *Transcript {
	return &Transcript{doc: doc, container: container}
}

// OnAppend registers a listener invoked for every appended message.
func (t *Transcript) OnAppend(fn MessageListener) {
	t.listeners = append(t.listeners, fn)
}

// Append adds a message node to the container, labeled "GB" for the
// assistant role, "You" for anything else, with the literal text as
// inert content, and scrolls the container to its bottom edge. It
// never fails and performs no validation of role or text.
func (t *Transcript) Append(role domain.Role, text string) {
	msg := domain.Message{Role: role, Text: text}

	if t.container != nil {
		node := t.doc.CreateElement("")
		node.AddClass(ClassMessage)
		node.AddClass(string(role))

		label := t.doc.CreateElement("")
		label.AddClass(ClassLabel)
		label.SetText(role.Label())
		node.AppendChild(label)

		body := t.doc.CreateElement("")
		body.AddClass(ClassText)
		body.SetText(text)
		node.AppendChild(body)

		t.container.AppendChild(node)
		t.container.ScrollToBottom()
	}

	for _, fn := range t.listeners {
		fn(msg)
	}
}

// Messages reads the rendered transcript back out of the container.
func (t *Transcript) Messages() []domain.Message {
	if t.container == nil {
		return nil
	}
	var out []domain.Message
	for _, node := range t.container.Children() {
		if !node.HasClass(ClassMessage) {
			continue
		}
		var msg domain.Message
		if node.HasClass(string(domain.RoleAssistant)) {
			msg.Role = domain.RoleAssistant
		} else {
			msg.Role = domain.RoleUser
		}
		for _, child := range node.Children() {
			if child.HasClass(ClassText) {
				msg.Text = child.Text()
			}
		}
		out = append(out, msg)
	}
	return out
}
