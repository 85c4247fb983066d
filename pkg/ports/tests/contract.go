package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/gymbuddy/gymbuddy/pkg/domain"
	"github.com/gymbuddy/gymbuddy/pkg/ports"
)

// SessionStoreContractTest is a reusable suite that verifies an adapter
// complies with ports.SessionStore.
func SessionStoreContractTest(t *testing.T, store ports.SessionStore) {
	t.Helper()
	ctx := context.Background()

	session := &domain.Session{
		Summary: "70kg, 175cm, age 25, goal: hypertrophy",
		Messages: []domain.Message{
			{Role: domain.RoleAssistant, Text: "Welcome back!"},
			{Role: domain.RoleUser, Text: "hello"},
		},
	}

	t.Run("SaveAndLoad", func(t *testing.T) {
		if err := store.Save(ctx, "contract-a", session); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		loaded, err := store.Load(ctx, "contract-a")
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if loaded.Summary != session.Summary {
			t.Errorf("summary mismatch: got %q, want %q", loaded.Summary, session.Summary)
		}
		if len(loaded.Messages) != len(session.Messages) {
			t.Fatalf("expected %d messages, got %d", len(session.Messages), len(loaded.Messages))
		}
		if loaded.Messages[1] != session.Messages[1] {
			t.Errorf("message mismatch: got %+v", loaded.Messages[1])
		}
	})

	t.Run("LoadIsolatedFromCaller", func(t *testing.T) {
		if err := store.Save(ctx, "contract-iso", session); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		first, _ := store.Load(ctx, "contract-iso")
		first.Messages = append(first.Messages, domain.Message{Role: domain.RoleUser, Text: "mutated"})

		second, err := store.Load(ctx, "contract-iso")
		if err != nil {
			t.Fatalf("reload failed: %v", err)
		}
		if len(second.Messages) != len(session.Messages) {
			t.Errorf("store leaked caller mutation: %d messages", len(second.Messages))
		}
	})

	t.Run("LoadMissing", func(t *testing.T) {
		_, err := store.Load(ctx, "contract-missing")
		if !errors.Is(err, domain.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := store.Save(ctx, "contract-del", session); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		if err := store.Delete(ctx, "contract-del"); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if _, err := store.Load(ctx, "contract-del"); !errors.Is(err, domain.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
		}
	})
}
