package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/tessera/pkg/ports"
)

const defaultPrefix = "tessera:render:"

// Cache implements ports.RenderCache using Redis.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration for cached renders.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cached renders.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a new Redis cache with options.
func New(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		prefix: defaultPrefix,
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

// Client exposes the underlying client, e.g. to build a Locker on it.
func (c *Cache) Client() *backend.Client {
	return c.client
}

func (c *Cache) key(key string) string {
	return c.prefix + key
}

// Get returns the cached output for key.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	out, err := c.client.Get(ctx, c.key(key)).Result()
	if errors.Is(err, backend.Nil) {
		return "", ports.ErrCacheMiss
	}
	if err != nil {
		return "", fmt.Errorf("failed to load render from redis: %w", err)
	}
	return out, nil
}

// Set stores output under key, honoring the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, output string) error {
	if err := c.client.Set(ctx, c.key(key), output, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save render to redis: %w", err)
	}
	return nil
}

// Delete removes the entry for key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete render from redis: %w", err)
	}
	return nil
}

// Ping checks connectivity with the server.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (c *Cache) Close() error {
	return c.client.Close()
}
