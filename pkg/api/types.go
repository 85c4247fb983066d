package api

import "github.com/gymbuddy/gymbuddy/pkg/domain"

// Endpoint paths of the coach service.
const (
	PathProfile    = "/api/profile"
	PathOnboarding = "/api/onboarding"
	PathChat       = "/api/chat"
)

// ProfileLookup is the result of a profile fetch. OK reports whether
// the server holds a profile; Profile and Summary are set when it does.
type ProfileLookup struct {
	OK      bool
	Profile *domain.Profile
	Summary string
}

// Wire envelopes. The profile object arrives untyped and is decoded
// with mapstructure so unknown server-side fields never break the
// client.
type profileEnvelope struct {
	OK             bool           `json:"ok"`
	Profile        map[string]any `json:"profile"`
	ProfileSummary string         `json:"profile_summary"`
}

type onboardingEnvelope struct {
	OK             bool   `json:"ok"`
	ProfileSummary string `json:"profile_summary"`
	Error          string `json:"error"`
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatEnvelope struct {
	OK    bool   `json:"ok"`
	Reply string `json:"reply"`
	Error string `json:"error"`
}
