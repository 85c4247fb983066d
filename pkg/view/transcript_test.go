package view_test

import (
	"testing"

	"github.com/gymbuddy/gymbuddy/pkg/domain"
	"github.com/gymbuddy/gymbuddy/pkg/ui"
	"github.com/gymbuddy/gymbuddy/pkg/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTranscript(t *testing.T) (*view.Transcript, *ui.Element) {
	t.Helper()
	doc := ui.NewDocument()
	container := doc.CreateElement("messages")
	doc.Root().AppendChild(container)
	return view.NewTranscript(doc, container), container
}

func TestTranscript_AppendOrderAndLabels(t *testing.T) {
	tr, container := newTranscript(t)

	tr.Append(domain.RoleUser, "hello")
	tr.Append(domain.RoleAssistant, "Hi there")

	msgs := tr.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, domain.Message{Role: domain.RoleUser, Text: "hello"}, msgs[0])
	assert.Equal(t, domain.Message{Role: domain.RoleAssistant, Text: "Hi there"}, msgs[1])

	// The assistant label is "GB", any other role shows "You".
	nodes := container.Children()
	require.Len(t, nodes, 2)
	assert.Equal(t, "You", nodes[0].Children()[0].Text())
	assert.Equal(t, "GB", nodes[1].Children()[0].Text())
}

func TestTranscript_TextIsInert(t *testing.T) {
	tr, container := newTranscript(t)

	raw := `<script>alert("x")</script> **bold**`
	tr.Append(domain.RoleAssistant, raw)

	node := container.Children()[0]
	assert.Equal(t, raw, node.Children()[1].Text())
}

func TestTranscript_ScrollsToBottom(t *testing.T) {
	tr, container := newTranscript(t)

	for i := 0; i < 5; i++ {
		tr.Append(domain.RoleUser, "line")
		assert.Equal(t, container.ScrollHeight(), container.ScrollTop())
	}
}

func TestTranscript_Listeners(t *testing.T) {
	tr, _ := newTranscript(t)

	var seen []domain.Message
	tr.OnAppend(func(m domain.Message) { seen = append(seen, m) })

	tr.Append(domain.RoleUser, "one")
	tr.Append(domain.RoleAssistant, "two")

	require.Len(t, seen, 2)
	assert.Equal(t, "one", seen[0].Text)
	assert.Equal(t, domain.RoleAssistant, seen[1].Role)
}
