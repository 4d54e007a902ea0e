package httpapi

import (
	"net/http"

	"globaljobhunter-engine/internal/cache"
	"globaljobhunter-engine/internal/domain"
	"globaljobhunter-engine/internal/source"
)

type CacheHandler struct {
	Cache   *cache.Manager
	Metrics map[domain.SourceKind]*source.Metrics
}

// Stats aggregates the per-source counters into the shape the dashboard
// reads: totals plus a hit rate, with a per-source breakdown.
func (h CacheHandler) Stats(w http.ResponseWriter, r *http.Request) {
	var hits, misses, calls, results, errs int64
	perSource := make(map[string]map[string]int64, len(h.Metrics))
	for kind, m := range h.Metrics {
		snap := m.Snapshot()
		perSource[kind.String()] = snap
		hits += snap["cache_hits"]
		misses += snap["cache_misses"]
		calls += snap["api_calls"]
		results += snap["total_results"]
		errs += snap["errors"]
	}

	hitRate := 0.0
	if hits+misses > 0 {
		hitRate = float64(hits) / float64(hits+misses)
	}

	writeJSON(w, map[string]any{
		"cache_hits":       hits,
		"cache_misses":     misses,
		"hit_rate":         hitRate,
		"api_requests":     calls,
		"total_jobs_found": results,
		"errors":           errs,
		"ttl_hours":        h.Cache.TTL().Hours(),
		"sources":          perSource,
	})
}

// Cleanup runs an immediate expired-entry sweep, same as the cron schedule.
func (h CacheHandler) Cleanup(w http.ResponseWriter, r *http.Request) {
	h.Cache.SweepExpired(r.Context())
	writeJSON(w, map[string]any{"ok": true})
}
