package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/session/domain"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "taskboard:session:" // taskboard:session:{session_id}
	userSetPrefix    = "taskboard:user:"    // taskboard:user:{user_id}:sessions
)

// RedisStore keeps sessions in Redis with a TTL matching the token lifetime.
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

func (r *RedisStore) Save(ctx context.Context, s *domain.Session) error {
	ttl := s.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return fmt.Errorf("session %s already expired", s.ID)
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	userKey := r.userSetKey(s.UserID)
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.sessionKey(s.ID), data, ttl)
	pipe.SAdd(ctx, userKey, s.ID)
	pipe.Expire(ctx, userKey, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	data, err := r.client.Get(ctx, r.sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var s domain.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &s, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	s, err := r.Get(ctx, id)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, r.sessionKey(id))
	pipe.SRem(ctx, r.userSetKey(s.UserID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// ListByUser returns the ids of the user's live sessions.
func (r *RedisStore) ListByUser(ctx context.Context, userID string) ([]string, error) {
	ids, err := r.client.SMembers(ctx, r.userSetKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions for user: %w", err)
	}
	return ids, nil
}

// DeleteExpired prunes per-user sets of ids whose session key has expired.
// The session keys themselves expire through their Redis TTL.
func (r *RedisStore) DeleteExpired(ctx context.Context) (int, error) {
	removed := 0
	iter := r.client.Scan(ctx, 0, userSetPrefix+"*:sessions", 100).Iterator()
	for iter.Next(ctx) {
		userKey := iter.Val()
		userID := strings.TrimSuffix(strings.TrimPrefix(userKey, userSetPrefix), ":sessions")

		ids, err := r.ListByUser(ctx, userID)
		if err != nil {
			return removed, err
		}
		for _, id := range ids {
			n, err := r.client.Exists(ctx, r.sessionKey(id)).Result()
			if err != nil {
				return removed, fmt.Errorf("failed to check session: %w", err)
			}
			if n > 0 {
				continue
			}
			if err := r.client.SRem(ctx, userKey, id).Err(); err != nil {
				return removed, fmt.Errorf("failed to prune session set: %w", err)
			}
			removed++
		}
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("failed to scan session sets: %w", err)
	}
	return removed, nil
}

func (r *RedisStore) sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (r *RedisStore) userSetKey(userID string) string {
	return fmt.Sprintf("%s%s:sessions", userSetPrefix, userID)
}
