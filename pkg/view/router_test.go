package view_test

import (
	"testing"

	"github.com/gymbuddy/gymbuddy/pkg/domain"
	"github.com/gymbuddy/gymbuddy/pkg/ui"
	"github.com/gymbuddy/gymbuddy/pkg/view"
	"github.com/stretchr/testify/assert"
)

func TestRouter_LastCallWins(t *testing.T) {
	doc := ui.NewDocument()
	onboarding := doc.CreateElement("onboarding")
	chat := doc.CreateElement("chat")
	chat.SetHidden(true)

	r := view.NewRouter(onboarding, chat)

	r.ShowOnboarding()
	r.ShowChat()
	assert.True(t, onboarding.Hidden())
	assert.False(t, chat.Hidden())
	assert.Equal(t, domain.ViewChat, r.Current())

	// Order does not matter, only the final call.
	r.ShowChat()
	r.ShowOnboarding()
	assert.False(t, onboarding.Hidden())
	assert.True(t, chat.Hidden())
	assert.Equal(t, domain.ViewOnboarding, r.Current())
}

func TestRouter_ExactlyOneVisible(t *testing.T) {
	doc := ui.NewDocument()
	onboarding := doc.CreateElement("onboarding")
	chat := doc.CreateElement("chat")
	r := view.NewRouter(onboarding, chat)

	r.ShowChat()
	assert.NotEqual(t, onboarding.Hidden(), chat.Hidden())

	r.ShowOnboarding()
	assert.NotEqual(t, onboarding.Hidden(), chat.Hidden())
}

func TestRouter_NilSections(t *testing.T) {
	r := view.NewRouter(nil, nil)
	assert.NotPanics(t, func() {
		r.ShowChat()
		r.ShowOnboarding()
	})
	assert.Equal(t, domain.ViewOnboarding, r.Current())
}
