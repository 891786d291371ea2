package memory

import (
	"context"
	"sync"

	"github.com/aretw0/tessera/pkg/ports"
)

// Cache implements ports.RenderCache in memory.
// Safe for concurrent use.
type Cache struct {
	data  map[string]string
	order []string
	limit int
	mu    sync.RWMutex
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithLimit bounds the number of entries. When full, the oldest entry is evicted.
// Zero means unbounded.
func WithLimit(n int) CacheOption {
	return func(c *Cache) {
		c.limit = n
	}
}

// NewCache creates a new in-memory cache.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		data: make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached output for key.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out, ok := c.data[key]
	if !ok {
		return "", ports.ErrCacheMiss
	}
	return out, nil
}

// Set stores output under key.
func (c *Cache) Set(ctx context.Context, key string, output string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.data[key]; !exists {
		c.order = append(c.order, key)
	}
	c.data[key] = output

	for c.limit > 0 && len(c.order) > c.limit {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.data, oldest)
	}
	return nil
}

// Delete removes the entry for key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.data[key]; !ok {
		return nil
	}
	delete(c.data, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
