package adzuna

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
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

func testManager(t *testing.T, clock timeutil.Clock) *cache.Manager {
	t.Helper()
	store, err := cache.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return cache.NewManager(store, time.Hour, clock)
}

func testAdapter(t *testing.T, baseURL string, clock timeutil.Clock) (*Adapter, *source.Metrics) {
	t.Helper()
	metrics := source.NewMetrics("adzuna_stats", nil)
	a := New(Config{
		AppID:     "id",
		AppKey:    "key",
		BaseURL:   baseURL + "/%s",
		PerMinute: 600,
	}, testManager(t, clock), metrics, clock, timeutil.Zero{})
	return a, metrics
}

func taxiPrefs() domain.Preferences {
	return domain.Preferences{
		SelectedJobsMultilang: []string{"taxi driver"},
		Countries:             []string{"gb"},
	}
}

const taxiPayload = `{"results":[{
	"id": 12345,
	"title": "Taxi Driver",
	"company": {"display_name": "City Cabs"},
	"location": {"display_name": "London"},
	"description": "<p>Drive a taxi around town.</p>",
	"salary_min": 24000,
	"salary_max": 28000,
	"redirect_url": "https://adzuna.example/job/12345",
	"created": "2026-08-20",
	"contract_time": "full_time"
}]}`

func TestSearchNormalizesAndCaches(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/gb", r.URL.Path)
		assert.Equal(t, "taxi driver", r.URL.Query().Get("what"))
		fmt.Fprint(w, taxiPayload)
	}))
	defer srv.Close()

	clock := timeutil.NewFake(time.Now())
	a, metrics := testAdapter(t, srv.URL, clock)

	var batches int
	jobs, err := a.Search(context.Background(), taxiPrefs(), func([]domain.Vacancy) { batches++ }, nil, nil)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, 1, batches)

	v := jobs[0]
	assert.Equal(t, domain.StableID(domain.SourceAdzuna, "https://adzuna.example/job/12345"), v.ID)
	assert.Equal(t, "City Cabs", v.Company)
	assert.Equal(t, "£24,000 - £28,000", v.Salary)
	assert.Equal(t, "Drive a taxi around town.", v.Description)
	assert.Equal(t, "Великобритания", v.Country)
	assert.Equal(t, "full_time", v.JobType)
	assert.Equal(t, domain.LangNoLanguage, v.LanguageRequirement)

	// second run is served from the term cache
	jobs, err = a.Search(context.Background(), taxiPrefs(), nil, nil, nil)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
	assert.EqualValues(t, 1, calls.Load())
	assert.EqualValues(t, 1, metrics.CacheHits.Load())
	assert.EqualValues(t, 1, metrics.APICalls.Load())
}

func TestSearchRateLimitTripsBreaker(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	clock := timeutil.NewFake(time.Now())
	a, _ := testAdapter(t, srv.URL, clock)

	_, err := a.Search(context.Background(), taxiPrefs(), nil, nil, nil)
	assert.ErrorIs(t, err, source.ErrRateLimited)
	assert.False(t, a.Healthy())

	// while cooling the adapter refuses to search at all
	jobs, err := a.Search(context.Background(), taxiPrefs(), nil, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, jobs)
	assert.EqualValues(t, 1, calls.Load())

	clock.Advance(121 * time.Second)
	assert.True(t, a.Healthy())
}

func TestSearchUnsupportedCountrySkippedOnce(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	clock := timeutil.NewFake(time.Now())
	a, metrics := testAdapter(t, srv.URL, clock)

	prefs := domain.Preferences{
		SelectedJobsMultilang: []string{"taxi driver", "bus driver"},
		Countries:             []string{"gb"},
	}
	jobs, err := a.Search(context.Background(), prefs, nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, jobs)

	// the first 404 marks the country unsupported; the remaining term does
	// not burn a request and the source takes no penalty
	assert.EqualValues(t, 1, calls.Load())
	assert.EqualValues(t, 0, metrics.Errors.Load())
	assert.True(t, a.Healthy())
}

func TestAPICallsCountedOnErrorResponses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	clock := timeutil.NewFake(time.Now())
	a, metrics := testAdapter(t, srv.URL, clock)

	prefs := domain.Preferences{
		SelectedJobsMultilang: []string{"taxi driver", "bus driver"},
		Countries:             []string{"gb"},
	}
	_, err := a.Search(context.Background(), prefs, nil, nil, nil)
	require.NoError(t, err)

	// failed requests still spent quota
	assert.EqualValues(t, 2, metrics.APICalls.Load())
	assert.EqualValues(t, 2, metrics.Errors.Load())
}

func TestSearchEmptyResultNotCached(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"results":[]}`)
	}))
	defer srv.Close()

	clock := timeutil.NewFake(time.Now())
	a, metrics := testAdapter(t, srv.URL, clock)

	jobs, err := a.Search(context.Background(), taxiPrefs(), nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, jobs)

	// a zero was not frozen into the cache: the tuple hits the API again
	_, err = a.Search(context.Background(), taxiPrefs(), nil, nil, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, calls.Load())
	assert.EqualValues(t, 0, metrics.CacheHits.Load())
}

func TestSearchSkipsWhileCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no call expected after cancellation")
	}))
	defer srv.Close()

	clock := timeutil.NewFake(time.Now())
	a, _ := testAdapter(t, srv.URL, clock)

	jobs, err := a.Search(context.Background(), taxiPrefs(), nil, nil, func() bool { return true })
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestSearchIrrelevantPostingsDropped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[
			{"title":"Sales Manager","description":"quota driven","redirect_url":"https://adzuna.example/a"},
			{"title":"Taxi Driver","description":"night shifts","redirect_url":"https://adzuna.example/b"},
			{"title":"No URL Driver","description":"","redirect_url":""}
		]}`)
	}))
	defer srv.Close()

	clock := timeutil.NewFake(time.Now())
	a, _ := testAdapter(t, srv.URL, clock)

	jobs, err := a.Search(context.Background(), taxiPrefs(), nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Taxi Driver", jobs[0].Title)
	assert.Equal(t, "No company", jobs[0].Company)
	assert.Equal(t, "No location", jobs[0].Location)
}

func TestSearchTickReportsProgress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[]}`)
	}))
	defer srv.Close()

	clock := timeutil.NewFake(time.Now())
	a, _ := testAdapter(t, srv.URL, clock)

	prefs := domain.Preferences{
		SelectedJobsMultilang: []string{"taxi driver", "bus driver"},
		Countries:             []string{"gb"},
	}
	var ticks [][2]int
	_, err := a.Search(context.Background(), prefs, nil, func(cur, total int) {
		ticks = append(ticks, [2]int{cur, total})
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 2}, {2, 2}}, ticks)
}
