// Package ports defines the driven-side interfaces of the client:
// session persistence and user alerting. Adapters implement them;
// the controller depends only on the interfaces.
package ports

import (
	"context"

	"github.com/gymbuddy/gymbuddy/pkg/domain"
)

// SessionStore persists conversation sessions so a chat can be resumed
// across runs.
type SessionStore interface {
	// Save persists the session snapshot for a given session ID.
	Save(ctx context.Context, sessionID string, session *domain.Session) error

	// Load retrieves the session for a given session ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*domain.Session, error)

	// Delete removes the session for a given session ID.
	Delete(ctx context.Context, sessionID string) error
}

// Alerter surfaces a blocking notification to the user (the Go
// rendition of a browser alert). Implementations must not fail.
type Alerter interface {
	Alert(message string)
}

// AlertFunc adapts a function to the Alerter interface.
type AlertFunc func(string)

func (f AlertFunc) Alert(message string) { f(message) }
