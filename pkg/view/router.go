package view

import (
	"github.com/gymbuddy/gymbuddy/pkg/domain"
	"github.com/gymbuddy/gymbuddy/pkg/ui"
)

// Router switches between the onboarding and chat sections. Exactly one
// section is visible after any call; the last call wins.
type Router struct {
	onboarding *ui.Element
	chat       *ui.Element
}

// NewRouter creates a router over the two page sections. Either element
// may be nil; a nil section is simply not toggled.
func NewRouter(onboarding, chat *ui.Element) *Router {
	return &Router{onboarding: onboarding, chat: chat}
}

// ShowOnboarding unhides the onboarding section and hides chat.
func (r *Router) ShowOnboarding() {
	setHidden(r.onboarding, false)
	setHidden(r.chat, true)
}

// ShowChat unhides the chat section and hides onboarding.
func (r *Router) ShowChat() {
	setHidden(r.onboarding, true)
	setHidden(r.chat, false)
}

// Current derives the active view from whichever section is unhidden.
func (r *Router) Current() domain.View {
	if r.chat != nil && !r.chat.Hidden() {
		return domain.ViewChat
	}
	return domain.ViewOnboarding
}

func setHidden(el *ui.Element, hidden bool) {
	if el != nil {
		el.SetHidden(hidden)
	}
}
