package scoring

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store used in tests and when redis is not
// configured.
type MemoryStore struct {
	mu    sync.RWMutex
	data  map[string]string
	cache map[string]cacheEntry
	now   func() time.Time
}

type cacheEntry struct {
	value     string
	expiresAt time.Time
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data:  make(map[string]string),
		cache: make(map[string]cacheEntry),
		now:   time.Now,
	}
}

// Seed writes an authoritative value, for tests and local bootstrap.
func (s *MemoryStore) Seed(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[key], nil
}

// CacheGet implements Store.
func (s *MemoryStore) CacheGet(_ context.Context, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.cache[key]
	if !ok || s.now().After(entry.expiresAt) {
		return "", false
	}
	return entry.value, true
}

// CacheSet implements Store.
func (s *MemoryStore) CacheSet(_ context.Context, key, value string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[key] = cacheEntry{value: value, expiresAt: s.now().Add(ttl)}
}

// Health implements the transport health check.
func (s *MemoryStore) Health(context.Context) error { return nil }
