package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound marks an absent key on any tier.
var ErrNotFound = errors.New("cache: key not found")

// Store is the minimal KV protocol both cache tiers speak.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetEx(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	// HIncrBy mirrors a counter into the store. Tiers that cannot hold
	// hashes may treat it as a no-op.
	HIncrBy(ctx context.Context, hashKey, field string, n int64) error
}

// Sweeper is implemented by tiers with lazy expiry that need periodic
// garbage collection.
type Sweeper interface {
	Sweep(ctx context.Context, now time.Time) (removed int, err error)
}
