package memory

import (
	"context"
	"sync"
	"time"

	"github.com/aretw0/tessera/pkg/ports"
)

// Locker implements ports.Locker within one process.
// The ttl passed to Lock is ignored: a holder in the same process is expected
// to unlock.
type Locker struct {
	mu    sync.Mutex
	slots map[string]*slot
}

// slot is the lock of one key. refs counts the holder and the waiters; the
// slot is dropped when it reaches zero.
type slot struct {
	ch   chan struct{}
	refs int
}

// NewLocker creates a new in-process locker.
func NewLocker() *Locker {
	return &Locker{
		slots: make(map[string]*slot),
	}
}

func (l *Locker) acquire(key string) *slot {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.slots[key]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		l.slots[key] = s
	}
	s.refs++
	return s
}

func (l *Locker) release(key string, s *slot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s.refs--
	if s.refs == 0 {
		delete(l.slots, key)
	}
}

// Lock acquires the lock for key.
func (l *Locker) Lock(ctx context.Context, key string, _ time.Duration) (ports.UnlockFunc, error) {
	s := l.acquire(key)
	select {
	case s.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(key, s)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func(context.Context) error {
		once.Do(func() {
			<-s.ch
			l.release(key, s)
		})
		return nil
	}, nil
}

// Len returns the number of keys that are locked or waited on.
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.slots)
}
