package cache

import (
	"context"
	"errors"
	"log"
	"time"
)

// FallbackStore reads from the primary tier and falls back to the secondary
// when the primary is down or missing the key. Writes and deletes go to both
// tiers so the fallback stays warm. Configured once at startup.
type FallbackStore struct {
	primary  Store
	fallback Store
}

func NewFallbackStore(primary, fallback Store) *FallbackStore {
	return &FallbackStore{primary: primary, fallback: fallback}
}

func (s *FallbackStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.primary.Get(ctx, key)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, ErrNotFound) {
		log.Printf("[cache] primary get failed, trying fallback: %v", err)
	}
	return s.fallback.Get(ctx, key)
}

func (s *FallbackStore) SetEx(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.primary.SetEx(ctx, key, value, ttl); err != nil {
		log.Printf("[cache] primary set failed: %v", err)
	}
	return s.fallback.SetEx(ctx, key, value, ttl)
}

func (s *FallbackStore) Del(ctx context.Context, key string) error {
	if err := s.primary.Del(ctx, key); err != nil {
		log.Printf("[cache] primary del failed: %v", err)
	}
	return s.fallback.Del(ctx, key)
}

func (s *FallbackStore) HIncrBy(ctx context.Context, hashKey, field string, n int64) error {
	return s.primary.HIncrBy(ctx, hashKey, field, n)
}

// Sweep delegates to whichever tiers support it.
func (s *FallbackStore) Sweep(ctx context.Context, now time.Time) (int, error) {
	total := 0
	for _, st := range []Store{s.primary, s.fallback} {
		if sw, ok := st.(Sweeper); ok {
			n, err := sw.Sweep(ctx, now)
			total += n
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}
