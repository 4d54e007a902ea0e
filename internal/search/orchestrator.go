// Package search merges the per-source adapters into one federated search.
// Sources run concurrently; results stream out as they are classified and
// are merged first writer wins on the apply URL.
package search

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"globaljobhunter-engine/internal/cache"
	"globaljobhunter-engine/internal/domain"
	"globaljobhunter-engine/internal/source"
)

// sourceTimeout bounds one adapter's whole run inside a search.
const sourceTimeout = 5 * time.Minute

// Progress carries the caller's streaming callbacks. Any field may be nil.
type Progress struct {
	// Batch receives newly merged vacancies, duplicates already removed.
	Batch domain.BatchEmit
	// Tick reports per-source tuple progress.
	Tick func(src domain.SourceKind, current, total int)
	// Done fires once per source with its final count and error.
	Done func(src domain.SourceKind, count int, err error)
	// Cancelled is the cooperative cancellation predicate shared with all
	// adapters.
	Cancelled domain.CancelCheck
}

// Engine fans a search out over the registered adapters.
type Engine struct {
	adapters []source.Adapter
	cache    *cache.Manager
}

func NewEngine(cm *cache.Manager, adapters ...source.Adapter) *Engine {
	return &Engine{adapters: adapters, cache: cm}
}

// Adapters exposes the registered sources for the health surface.
func (e *Engine) Adapters() []source.Adapter { return e.adapters }

// Cache exposes the shared manager for the stats and cleanup surfaces.
func (e *Engine) Cache() *cache.Manager { return e.cache }

// Search runs every healthy adapter concurrently and merges their output.
// A source with a warm full-query cache is served from it without running.
// Per-source failures are contained: a rate-limited or failing source logs
// and drops out while the rest keep going. The merged result is returned
// even when every source failed.
func (e *Engine) Search(ctx context.Context, prefs domain.Preferences, prog Progress) []domain.Vacancy {
	var (
		mu   sync.Mutex
		out  []domain.Vacancy
		seen = make(map[string]bool)
	)
	merge := func(batch []domain.Vacancy) {
		mu.Lock()
		fresh := make([]domain.Vacancy, 0, len(batch))
		for _, v := range batch {
			if v.ApplyURL == "" || seen[v.ApplyURL] {
				continue
			}
			seen[v.ApplyURL] = true
			out = append(out, v)
			fresh = append(fresh, v)
		}
		mu.Unlock()
		if len(fresh) > 0 && prog.Batch != nil {
			prog.Batch(fresh)
		}
	}

	var g errgroup.Group
	for _, a := range e.adapters {
		a := a

		if hit, ok := e.cache.GetFullQuery(ctx, a.Kind(), prefs); ok {
			log.Printf("[search] %s served from full-query cache: %d jobs", a.Kind(), len(hit))
			merge(hit)
			if prog.Done != nil {
				prog.Done(a.Kind(), len(hit), nil)
			}
			continue
		}
		if !a.Healthy() {
			log.Printf("[search] %s unhealthy, skipping", a.Kind())
			if prog.Done != nil {
				prog.Done(a.Kind(), 0, nil)
			}
			continue
		}

		g.Go(func() error {
			sctx, cancel := context.WithTimeout(ctx, sourceTimeout)
			defer cancel()

			var tick domain.TickEmit
			if prog.Tick != nil {
				tick = func(cur, total int) { prog.Tick(a.Kind(), cur, total) }
			}

			jobs, err := a.Search(sctx, prefs, merge, tick, prog.Cancelled)
			switch {
			case err == nil:
			case errors.Is(err, source.ErrRateLimited):
				log.Printf("[search] %s rate limited, partial results kept", a.Kind())
			default:
				log.Printf("[search] %s: %v", a.Kind(), err)
			}
			if err == nil && len(jobs) > 0 && !cancelledNow(sctx, prog.Cancelled) {
				e.cache.PutFullQuery(sctx, a.Kind(), prefs, jobs)
			}
			if prog.Done != nil {
				prog.Done(a.Kind(), len(jobs), err)
			}
			return nil
		})
	}
	_ = g.Wait()

	mu.Lock()
	defer mu.Unlock()
	return out
}

// cancelledNow guards the final cache write: a cancelled search must not
// persist a truncated full-query result.
func cancelledNow(ctx context.Context, cancelled domain.CancelCheck) bool {
	if ctx.Err() != nil {
		return true
	}
	return cancelled != nil && cancelled()
}
