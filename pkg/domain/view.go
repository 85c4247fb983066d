package domain

// View names one of the two mutually exclusive page sections. Exactly
// one view is visible at any time; the router enforces the switch.
type View string

const (
	ViewOnboarding View = "onboarding"
	ViewChat       View = "chat"
)
