package token

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const revokedKeyPrefix = "revoked_token:"

// RedisRevocationStore keeps revoked token ids as Redis keys that expire with the token
type RedisRevocationStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisRevocationStore creates a new Redis-backed revocation store
func NewRedisRevocationStore(client *redis.Client) *RedisRevocationStore {
	return &RedisRevocationStore{client: client, now: time.Now}
}

// Revoke stores the id with a TTL equal to the remaining token lifetime
func (s *RedisRevocationStore) Revoke(ctx context.Context, jti string, userID int, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		// Already expired, verification rejects it anyway
		return nil
	}
	if err := s.client.Set(ctx, revokedKeyPrefix+jti, strconv.Itoa(userID), ttl).Err(); err != nil {
		return fmt.Errorf("failed to store revoked token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the key for jti exists
func (s *RedisRevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}
	return n > 0, nil
}

// Purge is a no-op: Redis expires the keys by itself
func (s *RedisRevocationStore) Purge(ctx context.Context, now time.Time) (int, error) {
	return 0, nil
}
