package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"files-manager/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements domain.KeyValueStore on a Redis connection. It holds
// session state only; TTL expiry is Redis's own.
type RedisStore struct {
	client *redis.Client
	logger domain.Logger
}

// NewRedisStore creates a key-value store backed by the Redis server at addr.
func NewRedisStore(addr string, logger domain.Logger) *RedisStore {
	client := redis.NewClient(&redis.Options{Addr: addr})
	return &RedisStore{client: client, logger: logger}
}

// SetWithTTL stores key -> value with the given expiry.
func (s *RedisStore) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set key: %w", err)
	}
	return nil
}

// Get returns the value of key, or domain.ErrKeyNotFound for a missing or
// expired key.
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to get key: %w", err)
	}
	return value, nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete key: %w", err)
	}
	return nil
}

// IsAlive reports whether the connection to Redis is active.
func (s *RedisStore) IsAlive(ctx context.Context) bool {
	return s.client.Ping(ctx).Err() == nil
}

// Close releases the underlying connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
