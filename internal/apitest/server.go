// Package apitest provides a canned coach service for tests and
// examples. It implements the wire contract of the three endpoints and
// nothing else: bodies are configured per test, requests are recorded
// for assertions, and no profile or reply logic exists here.
package apitest

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/gymbuddy/gymbuddy/pkg/api"
)

// CoachServer serves configurable JSON bodies on the coach endpoints.
type CoachServer struct {
	mu sync.Mutex

	// Raw JSON bodies returned verbatim.
	ProfileBody    string
	OnboardingBody string
	ChatBody       string

	// Requests recorded in arrival order.
	OnboardingRequests []map[string]any
	ChatMessages       []string
}

// NewCoachServer creates a server with a profile-less default state:
// profile lookups answer ok:false, submissions and chats succeed with
// fixed bodies.
func NewCoachServer() *CoachServer {
	return &CoachServer{
		ProfileBody:    `{"ok":false}`,
		OnboardingBody: `{"ok":true,"profile_summary":"profile saved"}`,
		ChatBody:       `{"ok":true,"reply":"canned reply"}`,
	}
}

// Handler returns the chi router serving the three endpoints.
func (s *CoachServer) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get(api.PathProfile, func(w http.ResponseWriter, _ *http.Request) {
		s.respond(w, s.ProfileBody)
	})
	r.Post(api.PathOnboarding, func(w http.ResponseWriter, req *http.Request) {
		var payload map[string]any
		s.decode(req, &payload)
		s.mu.Lock()
		s.OnboardingRequests = append(s.OnboardingRequests, payload)
		s.mu.Unlock()
		s.respond(w, s.OnboardingBody)
	})
	r.Post(api.PathChat, func(w http.ResponseWriter, req *http.Request) {
		var payload struct {
			Message string `json:"message"`
		}
		s.decode(req, &payload)
		s.mu.Lock()
		s.ChatMessages = append(s.ChatMessages, payload.Message)
		s.mu.Unlock()
		s.respond(w, s.ChatBody)
	})
	return r
}

// SetBodies replaces the canned bodies. Empty strings keep the current value.
func (s *CoachServer) SetBodies(profile, onboarding, chat string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if profile != "" {
		s.ProfileBody = profile
	}
	if onboarding != "" {
		s.OnboardingBody = onboarding
	}
	if chat != "" {
		s.ChatBody = chat
	}
}

func (s *CoachServer) respond(w http.ResponseWriter, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, body)
}

func (s *CoachServer) decode(req *http.Request, out any) {
	data, err := io.ReadAll(req.Body)
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, out)
}
