package ports

import (
	"context"
	"time"
)

// UnlockFunc releases a lock acquired with Locker.Lock.
type UnlockFunc func(ctx context.Context) error

// Locker provides mutual exclusion per key.
type Locker interface {
	// Lock acquires the lock for key, blocking until it is free or ctx is done.
	// The lock is released automatically after ttl if the holder never unlocks
	// (implementation specific). The returned UnlockFunc MUST be called.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
