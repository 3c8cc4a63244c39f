// Package scoring implements the score and interests lookups on top of an
// opaque key-value store. The store's caching tier is best-effort: cache
// misses and cache failures both fall through to recomputation, while
// failures of the authoritative Get surface as errors.
package scoring

import (
	"context"
	"time"
)

// Store is the lookup collaborator the handlers depend on. Implementations
// must be safe for concurrent use.
type Store interface {
	// Get reads an authoritative value. A missing key returns ("", nil).
	Get(ctx context.Context, key string) (string, error)

	// CacheGet reads a cached value; ok is false on miss or cache failure.
	CacheGet(ctx context.Context, key string) (value string, ok bool)

	// CacheSet writes a cached value with a TTL, best-effort.
	CacheSet(ctx context.Context, key, value string, ttl time.Duration)
}
