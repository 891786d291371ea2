package ports

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunRenderCacheContract runs a suite of tests to verify that a RenderCache
// implementation adheres to the defined interface contract.
func RunRenderCacheContract(t *testing.T, cache RenderCache) {
	ctx := context.Background()
	key := "contract-" + time.Now().Format("20060102150405.000000000")

	t.Run("Miss", func(t *testing.T) {
		_, err := cache.Get(ctx, key+"-absent")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("Set and Get", func(t *testing.T) {
		out := "┌─┐\n│x│\n└─┘\n"
		require.NoError(t, cache.Set(ctx, key, out))

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, out, got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key, "first"))
		require.NoError(t, cache.Set(ctx, key, "second"))

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "second", got)
	})

	t.Run("Empty Output", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key+"-empty", ""))

		got, err := cache.Get(ctx, key+"-empty")
		require.NoError(t, err, "an empty render is a hit, not a miss")
		assert.Equal(t, "", got)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key, "value"))
		require.NoError(t, cache.Delete(ctx, key))

		_, err := cache.Get(ctx, key)
		assert.ErrorIs(t, err, ErrCacheMiss, "Get after Delete should miss")

		assert.NoError(t, cache.Delete(ctx, key), "deleting twice is not an error")
	})
}

// RunLockerContract runs a suite of tests to verify that a Locker
// implementation adheres to the defined interface contract.
func RunLockerContract(t *testing.T, locker Locker) {
	ctx := context.Background()
	key := "contract-lock-" + time.Now().Format("20060102150405.000000000")

	t.Run("Lock and Unlock", func(t *testing.T) {
		unlock, err := locker.Lock(ctx, key, time.Second)
		require.NoError(t, err)
		require.NoError(t, unlock(ctx))

		// The key is free again.
		unlock, err = locker.Lock(ctx, key, time.Second)
		require.NoError(t, err)
		require.NoError(t, unlock(ctx))
	})

	t.Run("Mutual Exclusion", func(t *testing.T) {
		var (
			wg      sync.WaitGroup
			holders atomic.Int32
			overlap atomic.Bool
		)
		for range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock, err := locker.Lock(ctx, key, 5*time.Second)
				if !assert.NoError(t, err) {
					return
				}
				if holders.Add(1) > 1 {
					overlap.Store(true)
				}
				time.Sleep(10 * time.Millisecond)
				holders.Add(-1)
				assert.NoError(t, unlock(ctx))
			}()
		}
		wg.Wait()
		assert.False(t, overlap.Load(), "two holders held the same lock")
	})

	t.Run("Context Cancel", func(t *testing.T) {
		unlock, err := locker.Lock(ctx, key, 5*time.Second)
		require.NoError(t, err)
		defer func() { _ = unlock(ctx) }()

		waitCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()
		_, err = locker.Lock(waitCtx, key, time.Second)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
