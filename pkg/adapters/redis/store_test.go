package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymbuddy/gymbuddy/pkg/adapters/redis"
	"github.com/gymbuddy/gymbuddy/pkg/domain"
	"github.com/gymbuddy/gymbuddy/pkg/ports/tests"
)

func newTestStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	return redis.NewFromClient(client, opts...), mr
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newTestStore(t)
	tests.SessionStoreContractTest(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	store, mr := newTestStore(t, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	session := &domain.Session{
		Summary:  "4x/week hypertrophy plan",
		Messages: []domain.Message{{Role: domain.RoleUser, Text: "hello"}},
	}

	require.NoError(t, store.Save(ctx, "session-ttl", session))

	loaded, err := store.Load(ctx, "session-ttl")
	require.NoError(t, err)
	assert.Equal(t, session.Summary, loaded.Summary)

	// Advance miniredis past the TTL.
	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, "session-ttl")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRedisStore_Prefix(t *testing.T) {
	store, mr := newTestStore(t, redis.WithPrefix("coach:chat:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", &domain.Session{Summary: "s"}))
	assert.True(t, mr.Exists("coach:chat:abc"))
}
