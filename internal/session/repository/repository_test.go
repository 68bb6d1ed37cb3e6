package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/session/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	require.NoError(t, client.Ping(context.Background()).Err())

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})
	return client, mr
}

func newSession(id, userID string, ttl time.Duration) *domain.Session {
	now := time.Now()
	return &domain.Session{ID: id, UserID: userID, CreatedAt: now, ExpiresAt: now.Add(ttl)}
}

func TestRedisStore(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewRedisStore(client)
	ctx := context.Background()

	t.Run("saves with ttl and reads back", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, newSession("s-1", "u-1", time.Hour)))

		got, err := store.Get(ctx, "s-1")
		require.NoError(t, err)
		assert.Equal(t, "u-1", got.UserID)

		ttl := mr.TTL("taskboard:session:s-1")
		assert.True(t, ttl > 59*time.Minute && ttl <= time.Hour)

		ids, err := store.ListByUser(ctx, "u-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"s-1"}, ids)
	})

	t.Run("expires with redis ttl", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, newSession("s-2", "u-1", time.Minute)))
		mr.FastForward(2 * time.Minute)

		_, err := store.Get(ctx, "s-2")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("delete revokes and is idempotent", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, newSession("s-3", "u-3", time.Hour)))
		require.NoError(t, store.Delete(ctx, "s-3"))
		require.NoError(t, store.Delete(ctx, "s-3"))

		_, err := store.Get(ctx, "s-3")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)

		ids, err := store.ListByUser(ctx, "u-3")
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("rejects already expired session", func(t *testing.T) {
		assert.Error(t, store.Save(ctx, newSession("s-4", "u-4", -time.Second)))
	})
}

func TestRedisStore_DeleteExpiredPrunesUserSets(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewRedisStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, newSession("short", "u-1", time.Minute)))
	require.NoError(t, store.Save(ctx, newSession("long", "u-1", time.Hour)))
	mr.FastForward(2 * time.Minute)

	removed, err := store.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	ids, err := store.ListByUser(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"long"}, ids)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, newSession("s-1", "u-1", time.Hour)))
	got, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.UserID)

	store.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = store.Get(ctx, "s-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	require.NoError(t, store.Delete(ctx, "missing"))
}

func TestMemoryStore_DeleteExpired(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		require.NoError(t, store.Save(ctx, newSession(fmt.Sprintf("old-%d", i), "u-1", time.Millisecond)))
	}
	require.NoError(t, store.Save(ctx, newSession("fresh", "u-1", time.Hour)))

	store.now = func() time.Time { return time.Now().Add(time.Minute) }
	removed, err := store.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, removed)
	assert.Len(t, store.sessions, 1)

	_, err = store.Get(ctx, "fresh")
	assert.NoError(t, err)
}
