package search

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globaljobhunter-engine/internal/cache"
	"globaljobhunter-engine/internal/domain"
	"globaljobhunter-engine/internal/source"
	"globaljobhunter-engine/internal/timeutil"
)

type stubAdapter struct {
	kind    domain.SourceKind
	jobs    []domain.Vacancy
	err     error
	healthy bool
	runs    atomic.Int64
}

func (s *stubAdapter) Kind() domain.SourceKind { return s.kind }
func (s *stubAdapter) Supports(string) bool    { return true }
func (s *stubAdapter) Healthy() bool           { return s.healthy }

func (s *stubAdapter) Search(ctx context.Context, prefs domain.Preferences, emit domain.BatchEmit, tick domain.TickEmit, cancelled domain.CancelCheck) ([]domain.Vacancy, error) {
	s.runs.Add(1)
	if cancelled != nil && cancelled() {
		return nil, nil
	}
	if tick != nil {
		tick(1, 1)
	}
	if emit != nil && len(s.jobs) > 0 {
		emit(s.jobs)
	}
	return s.jobs, s.err
}

func vac(src domain.SourceKind, url, title string) domain.Vacancy {
	return domain.Vacancy{
		ID:       domain.StableID(src, url),
		Title:    title,
		ApplyURL: url,
		Source:   src,
	}
}

func testCache(t *testing.T) *cache.Manager {
	t.Helper()
	store, err := cache.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return cache.NewManager(store, time.Hour, timeutil.Real())
}

func testPrefs() domain.Preferences {
	return domain.Preferences{
		SelectedJobsMultilang: []string{"taxi driver"},
		Countries:             []string{"gb"},
	}
}

func TestSearchMergesAndDedupes(t *testing.T) {
	shared := "https://shared.example/job"
	a := &stubAdapter{kind: domain.SourceAdzuna, healthy: true, jobs: []domain.Vacancy{
		vac(domain.SourceAdzuna, shared, "Taxi Driver"),
		vac(domain.SourceAdzuna, "https://a.example/1", "Driver A"),
	}}
	b := &stubAdapter{kind: domain.SourceCareerjet, healthy: true, jobs: []domain.Vacancy{
		vac(domain.SourceCareerjet, shared, "Taxi Driver (dup)"),
		vac(domain.SourceCareerjet, "https://b.example/1", "Driver B"),
	}}

	e := NewEngine(testCache(t), a, b)
	out := e.Search(context.Background(), testPrefs(), Progress{})

	require.Len(t, out, 3)
	urls := make(map[string]int)
	for _, v := range out {
		urls[v.ApplyURL]++
	}
	assert.Equal(t, 1, urls[shared])
	assert.Equal(t, 1, urls["https://a.example/1"])
	assert.Equal(t, 1, urls["https://b.example/1"])
}

func TestSearchStreamsOnlyFreshBatches(t *testing.T) {
	shared := "https://shared.example/job"
	a := &stubAdapter{kind: domain.SourceAdzuna, healthy: true, jobs: []domain.Vacancy{
		vac(domain.SourceAdzuna, shared, "First"),
	}}
	b := &stubAdapter{kind: domain.SourceCareerjet, healthy: true, jobs: []domain.Vacancy{
		vac(domain.SourceCareerjet, shared, "Second"),
	}}

	var streamed atomic.Int64
	e := NewEngine(testCache(t), a, b)
	out := e.Search(context.Background(), testPrefs(), Progress{
		Batch: func(batch []domain.Vacancy) { streamed.Add(int64(len(batch))) },
	})

	assert.Len(t, out, 1)
	assert.EqualValues(t, 1, streamed.Load())
}

func TestSearchServedFromFullQueryCache(t *testing.T) {
	cm := testCache(t)
	prefs := testPrefs()
	warm := []domain.Vacancy{vac(domain.SourceAdzuna, "https://a.example/1", "Cached Driver")}
	cm.PutFullQuery(context.Background(), domain.SourceAdzuna, prefs, warm)

	a := &stubAdapter{kind: domain.SourceAdzuna, healthy: true, jobs: []domain.Vacancy{
		vac(domain.SourceAdzuna, "https://a.example/2", "Live Driver"),
	}}

	e := NewEngine(cm, a)
	out := e.Search(context.Background(), prefs, Progress{})

	require.Len(t, out, 1)
	assert.Equal(t, "Cached Driver", out[0].Title)
	assert.EqualValues(t, 0, a.runs.Load(), "warm source must not run live")
}

func TestSearchWritesFullQueryCacheOnSuccess(t *testing.T) {
	cm := testCache(t)
	a := &stubAdapter{kind: domain.SourceAdzuna, healthy: true, jobs: []domain.Vacancy{
		vac(domain.SourceAdzuna, "https://a.example/1", "Driver"),
	}}

	e := NewEngine(cm, a)
	prefs := testPrefs()
	_ = e.Search(context.Background(), prefs, Progress{})
	require.EqualValues(t, 1, a.runs.Load())

	_ = e.Search(context.Background(), prefs, Progress{})
	assert.EqualValues(t, 1, a.runs.Load(), "second search must hit the full-query cache")
}

func TestSearchRateLimitedSourceKeepsPartial(t *testing.T) {
	a := &stubAdapter{
		kind: domain.SourceAdzuna, healthy: true,
		jobs: []domain.Vacancy{vac(domain.SourceAdzuna, "https://a.example/1", "Partial")},
		err:  source.ErrRateLimited,
	}
	b := &stubAdapter{kind: domain.SourceCareerjet, healthy: true, jobs: []domain.Vacancy{
		vac(domain.SourceCareerjet, "https://b.example/1", "Fine"),
	}}

	cm := testCache(t)
	e := NewEngine(cm, a, b)
	prefs := testPrefs()

	var doneErrs = make(map[domain.SourceKind]error)
	out := e.Search(context.Background(), prefs, Progress{
		Done: func(src domain.SourceKind, count int, err error) { doneErrs[src] = err },
	})

	assert.Len(t, out, 2)
	assert.ErrorIs(t, doneErrs[domain.SourceAdzuna], source.ErrRateLimited)
	assert.NoError(t, doneErrs[domain.SourceCareerjet])

	// the aborted source's partial result must not be frozen into the cache
	_, ok := cm.GetFullQuery(context.Background(), domain.SourceAdzuna, prefs)
	assert.False(t, ok)
}

func TestSearchUnhealthySourceSkipped(t *testing.T) {
	a := &stubAdapter{kind: domain.SourceAdzuna, healthy: false, jobs: []domain.Vacancy{
		vac(domain.SourceAdzuna, "https://a.example/1", "Should not appear"),
	}}
	e := NewEngine(testCache(t), a)
	out := e.Search(context.Background(), testPrefs(), Progress{})
	assert.Empty(t, out)
	assert.EqualValues(t, 0, a.runs.Load())
}

func TestSearchCancelledWritesNothing(t *testing.T) {
	cm := testCache(t)
	a := &stubAdapter{kind: domain.SourceAdzuna, healthy: true, jobs: []domain.Vacancy{
		vac(domain.SourceAdzuna, "https://a.example/1", "Driver"),
	}}
	e := NewEngine(cm, a)
	prefs := testPrefs()

	out := e.Search(context.Background(), prefs, Progress{
		Cancelled: func() bool { return true },
	})
	assert.Empty(t, out)

	_, ok := cm.GetFullQuery(context.Background(), domain.SourceAdzuna, prefs)
	assert.False(t, ok)
}

func TestSearchTickCarriesSourceKind(t *testing.T) {
	a := &stubAdapter{kind: domain.SourceAdzuna, healthy: true, jobs: []domain.Vacancy{
		vac(domain.SourceAdzuna, "https://a.example/1", "Driver"),
	}}
	e := NewEngine(testCache(t), a)

	var got atomic.Value
	_ = e.Search(context.Background(), testPrefs(), Progress{
		Tick: func(src domain.SourceKind, cur, total int) { got.Store(src) },
	})
	assert.Equal(t, domain.SourceAdzuna, got.Load())
}
