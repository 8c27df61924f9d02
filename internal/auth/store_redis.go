// Copyright (c) 2026 Codeflix. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/codeflix/catalog/internal/platform/constants"
)

// RedisSessionStore implements SessionStore on Redis.
//
// Each live session is a key under [constants.RedisPrefixSession] whose value
// is the session's username and whose TTL matches the token lifetime, so
// abandoned sessions expire on their own.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(sessionID string) string {
	return constants.RedisPrefixSession + sessionID
}

func (store *RedisSessionStore) Set(ctx context.Context, sessionID, username string, ttl time.Duration) error {
	if err := store.client.Set(ctx, sessionKey(sessionID), username, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}
	return nil
}

func (store *RedisSessionStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	err := store.client.Get(ctx, sessionKey(sessionID)).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis_session_get_failed: %w", err)
	}
	return true, nil
}

func (store *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := store.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}
	return nil
}
