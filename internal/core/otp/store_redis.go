// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package otp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/langgate/internal/platform/constants"
)

// RedisStore implements [ChallengeStore] with one expiring key per session.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed ChallengeStore.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (store *RedisStore) key(sessionID string) string {
	return constants.RedisPrefixOTPChallenge + sessionID
}

/*
Put stores the code under the session key with a TTL. A ttl <= 0 stores a
key without expiry.

Returns:
  - error: Storage failures
*/
func (store *RedisStore) Put(ctx context.Context, sessionID, code string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := store.client.Set(ctx, store.key(sessionID), code, ttl).Err(); err != nil {
		return fmt.Errorf("redis_otp_challenge_set_failed: %w", err)
	}
	return nil
}

/*
Get retrieves the code for a session.

Returns:
  - string: The issued code
  - error: ErrChallengeNotFound if absent or expired, or connectivity errors
*/
func (store *RedisStore) Get(ctx context.Context, sessionID string) (string, error) {
	code, err := store.client.Get(ctx, store.key(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrChallengeNotFound
		}
		return "", fmt.Errorf("redis_otp_challenge_get_failed: %w", err)
	}
	return code, nil
}

// Delete removes the session key.
func (store *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := store.client.Del(ctx, store.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis_otp_challenge_delete_failed: %w", err)
	}
	return nil
}
