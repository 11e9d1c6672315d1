package token

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisStore(t *testing.T) (*RedisRevocationStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisRevocationStore(client), mr
}

func TestRedisRevocationStore_RevokeAndCheck(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "jti-1", 42, time.Now().Add(10*time.Minute)))

	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	value, err := mr.Get("revoked_token:jti-1")
	require.NoError(t, err)
	assert.Equal(t, "42", value)
	assert.InDelta(t, (10 * time.Minute).Seconds(), mr.TTL("revoked_token:jti-1").Seconds(), 2)
}

func TestRedisRevocationStore_KeyExpiresWithToken(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "jti-2", 1, time.Now().Add(time.Minute)))
	mr.FastForward(2 * time.Minute)

	revoked, err := store.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisRevocationStore_RevokeExpired(t *testing.T) {
	store, mr := setupRedisStore(t)

	require.NoError(t, store.Revoke(context.Background(), "jti-3", 1, time.Now().Add(-time.Minute)))

	assert.False(t, mr.Exists("revoked_token:jti-3"))
}

func TestRedisRevocationStore_Errors(t *testing.T) {
	store, mr := setupRedisStore(t)
	mr.Close()

	_, err := store.IsRevoked(context.Background(), "jti-4")
	assert.Error(t, err)

	err = store.Revoke(context.Background(), "jti-4", 1, time.Now().Add(time.Minute))
	assert.Error(t, err)
}

func TestRedisRevocationStore_Purge(t *testing.T) {
	store, _ := setupRedisStore(t)

	n, err := store.Purge(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)
}
