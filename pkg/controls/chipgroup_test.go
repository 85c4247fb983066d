package controls_test

import (
	"testing"

	"github.com/gymbuddy/gymbuddy/pkg/controls"
	"github.com/gymbuddy/gymbuddy/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGroup(t *testing.T, id string, values ...string) (*ui.Document, *ui.Element) {
	t.Helper()
	doc := ui.NewDocument()
	group := doc.CreateElement(id)
	doc.Root().AppendChild(group)
	for _, v := range values {
		chip := doc.CreateElement("")
		chip.AddClass(ui.ClassChip)
		chip.SetAttr(ui.AttrValue, v)
		group.AppendChild(chip)
	}
	return doc, group
}

func activeCount(group *ui.Element) int {
	n := 0
	for _, c := range group.Children() {
		if c.HasClass(ui.ClassActive) {
			n++
		}
	}
	return n
}

func TestChipGroup_DefaultActivation(t *testing.T) {
	doc, group := newGroup(t, "main_goal", "hypertrophy", "strength", "fat_loss")

	controls.ConfigureChipGroup(doc, "main_goal", "strength")

	v, ok := controls.ActiveValue(doc, "main_goal")
	require.True(t, ok)
	assert.Equal(t, "strength", v)
	assert.Equal(t, 1, activeCount(group))
}

func TestChipGroup_ClickActivatesExactlyOne(t *testing.T) {
	doc, group := newGroup(t, "experience", "beginner", "intermediate", "advanced")
	controls.ConfigureChipGroup(doc, "experience", "beginner")

	chips := group.Children()

	// Arbitrary click sequence: the last clicked chip wins, and at most
	// one chip is ever active.
	for _, idx := range []int{2, 0, 1, 1, 2} {
		chips[idx].Click()
		assert.Equal(t, 1, activeCount(group))
		assert.True(t, chips[idx].HasClass(ui.ClassActive))
	}

	v, ok := controls.ActiveValue(doc, "experience")
	require.True(t, ok)
	assert.Equal(t, "advanced", v)
}

func TestChipGroup_NoDefault(t *testing.T) {
	doc, group := newGroup(t, "gender", "male", "female", "other")
	controls.ConfigureChipGroup(doc, "gender", "")

	assert.Equal(t, 0, activeCount(group))
	_, ok := controls.ActiveValue(doc, "gender")
	assert.False(t, ok)
}

func TestChipGroup_UnknownDefaultActivatesNothing(t *testing.T) {
	doc, _ := newGroup(t, "gender", "male", "female")
	controls.ConfigureChipGroup(doc, "gender", "robot")

	_, ok := controls.ActiveValue(doc, "gender")
	assert.False(t, ok)
}

func TestChipGroup_MissingContainer(t *testing.T) {
	doc := ui.NewDocument()

	// Both operations tolerate an absent container.
	controls.ConfigureChipGroup(doc, "nope", "x")
	v, ok := controls.ActiveValue(doc, "nope")
	assert.False(t, ok)
	assert.Empty(t, v)
}
