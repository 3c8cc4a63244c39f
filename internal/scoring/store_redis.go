package scoring

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"scoring-gateway/internal/platform/redis"
)

// RedisStore backs the Store contract with redis. Authoritative reads report
// connection failures; the cache tier swallows them.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps a platform redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("store get %q: %w", key, err)
	}
	return val, nil
}

// CacheGet implements Store.
func (s *RedisStore) CacheGet(ctx context.Context, key string) (string, bool) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// CacheSet implements Store.
func (s *RedisStore) CacheSet(ctx context.Context, key, value string, ttl time.Duration) {
	_ = s.client.Set(ctx, key, value, ttl).Err()
}

// Health implements the transport health check.
func (s *RedisStore) Health(ctx context.Context) error {
	return s.client.Health(ctx)
}
