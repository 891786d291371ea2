package ports

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned by RenderCache.Get when no entry exists for a key.
var ErrCacheMiss = errors.New("render cache miss")

// RenderCache stores rendered output by key.
type RenderCache interface {
	// Get returns the output stored under key.
	// Returns ErrCacheMiss if there is none.
	Get(ctx context.Context, key string) (string, error)

	// Set stores output under key, replacing any previous entry.
	Set(ctx context.Context, key string, output string) error

	// Delete removes the entry for key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
