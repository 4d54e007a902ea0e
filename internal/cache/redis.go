package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is the primary cache tier.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore parses redisURL and verifies connectivity.
func NewRedisStore(ctx context.Context, redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return b, nil
}

func (s *RedisStore) SetEx(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.SetEx(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis setex: %w", err)
	}
	return nil
}

func (s *RedisStore) Del(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (s *RedisStore) HIncrBy(ctx context.Context, hashKey, field string, n int64) error {
	if err := s.client.HIncrBy(ctx, hashKey, field, n).Err(); err != nil {
		return fmt.Errorf("redis hincrby: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error { return s.client.Close() }
