package source

import (
	"context"
	"sync/atomic"

	"globaljobhunter-engine/internal/cache"
)

// Metrics counts one adapter's cache and API activity. Counters are plain
// atomics; a cache.Manager may be attached to mirror increments into the
// primary store's metrics hash.
type Metrics struct {
	CacheHits    atomic.Int64
	CacheMisses  atomic.Int64
	APICalls     atomic.Int64
	TotalResults atomic.Int64
	Errors       atomic.Int64

	hashKey string
	mirror  *cache.Manager
}

// NewMetrics creates counters mirrored into the store under hashKey.
// A nil manager disables mirroring.
func NewMetrics(hashKey string, mirror *cache.Manager) *Metrics {
	return &Metrics{hashKey: hashKey, mirror: mirror}
}

func (m *Metrics) Hit(ctx context.Context)  { m.CacheHits.Add(1); m.push(ctx, "cache_hits", 1) }
func (m *Metrics) Miss(ctx context.Context) { m.CacheMisses.Add(1); m.push(ctx, "cache_misses", 1) }
func (m *Metrics) Call(ctx context.Context) { m.APICalls.Add(1); m.push(ctx, "api_calls", 1) }
func (m *Metrics) Err(ctx context.Context)  { m.Errors.Add(1); m.push(ctx, "errors", 1) }

func (m *Metrics) Results(ctx context.Context, n int) {
	m.TotalResults.Add(int64(n))
	m.push(ctx, "total_results", int64(n))
}

func (m *Metrics) push(ctx context.Context, field string, n int64) {
	if m.mirror == nil {
		return
	}
	m.mirror.HIncrBy(ctx, m.hashKey, field, n)
}

// Snapshot returns the current counter values for the stats endpoint.
func (m *Metrics) Snapshot() map[string]int64 {
	return map[string]int64{
		"cache_hits":    m.CacheHits.Load(),
		"cache_misses":  m.CacheMisses.Load(),
		"api_calls":     m.APICalls.Load(),
		"total_results": m.TotalResults.Load(),
		"errors":        m.Errors.Load(),
	}
}
