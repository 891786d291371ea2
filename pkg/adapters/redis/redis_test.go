package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tessera/pkg/adapters/redis"
	"github.com/aretw0/tessera/pkg/ports"
)

func setup(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisCache_Contract(t *testing.T) {
	_, client := setup(t)
	ports.RunRenderCacheContract(t, redis.NewFromClient(client))
}

func TestRedisCache_PrefixAndTTL(t *testing.T) {
	mr, client := setup(t)
	ctx := context.Background()

	cache := redis.NewFromClient(client, redis.WithPrefix("test:"), redis.WithTTL(time.Minute))
	require.NoError(t, cache.Set(ctx, "k", "out"))

	assert.True(t, mr.Exists("test:k"))
	assert.Equal(t, time.Minute, mr.TTL("test:k"))

	mr.FastForward(2 * time.Minute)
	_, err := cache.Get(ctx, "k")
	assert.ErrorIs(t, err, ports.ErrCacheMiss)
}

func TestRedisCache_Unreachable(t *testing.T) {
	mr, client := setup(t)
	cache := redis.NewFromClient(client)
	mr.Close()

	_, err := cache.Get(context.Background(), "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrCacheMiss)
}

func TestRedisLocker_Contract(t *testing.T) {
	_, client := setup(t)
	ports.RunLockerContract(t, redis.NewLocker(client, "test:"))
}

func TestRedisLocker_Expiry(t *testing.T) {
	mr, client := setup(t)
	ctx := context.Background()
	locker := redis.NewLocker(client, "test:")

	_, err := locker.Lock(ctx, "k", time.Second)
	require.NoError(t, err)
	assert.True(t, mr.Exists("test:lock:k"))

	// An abandoned lock frees up once its ttl runs out.
	mr.FastForward(2 * time.Second)
	unlock, err := locker.Lock(ctx, "k", time.Second)
	require.NoError(t, err)
	require.NoError(t, unlock(ctx))
	assert.False(t, mr.Exists("test:lock:k"))
}
