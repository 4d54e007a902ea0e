package careerjet

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

func testAdapter(t *testing.T, baseURL string, clock timeutil.Clock, maxPages int) (*Adapter, *source.Metrics) {
	t.Helper()
	store, err := cache.NewFileStore(t.TempDir())
	require.NoError(t, err)
	cm := cache.NewManager(store, time.Hour, clock)
	metrics := source.NewMetrics("careerjet_stats", nil)
	a := New(Config{
		APIKey:    "key",
		BaseURL:   baseURL,
		PerMinute: 600,
		MaxPages:  maxPages,
	}, cm, metrics, clock, timeutil.Zero{})
	return a, metrics
}

func taxiPrefs() domain.Preferences {
	return domain.Preferences{
		SelectedJobsMultilang: []string{"taxi driver"},
		Countries:             []string{"gb"},
	}
}

func jobJSON(url string) string {
	return fmt.Sprintf(`{
		"title": "Taxi Driver",
		"company": "City Cabs",
		"locations": "London, UK",
		"salary": "£12 per hour",
		"description": "Drive a taxi.",
		"url": %q,
		"date": "Tue, 25 Aug 2026 10:00:00 GMT"
	}`, url)
}

func TestPaginationStopsAfterTwoEmptyPages(t *testing.T) {
	var pages []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		pages = append(pages, page)
		switch page {
		case "1":
			fmt.Fprintf(w, `{"type":"JOBS","jobs":[%s,%s]}`,
				jobJSON("https://cj.example/a"), jobJSON("https://cj.example/b"))
		case "2":
			fmt.Fprintf(w, `{"type":"JOBS","jobs":[%s]}`, jobJSON("https://cj.example/c"))
		default:
			fmt.Fprint(w, `{"type":"JOBS","jobs":[]}`)
		}
	}))
	defer srv.Close()

	a, _ := testAdapter(t, srv.URL, timeutil.NewFake(time.Now()), 10)
	jobs, err := a.Search(context.Background(), taxiPrefs(), nil, nil, nil)
	require.NoError(t, err)
	assert.Len(t, jobs, 3)
	assert.Equal(t, []string{"1", "2", "3", "4"}, pages)

	v := jobs[0]
	assert.Equal(t, domain.StableID(domain.SourceCareerjet, "https://cj.example/a"), v.ID)
	assert.Equal(t, "£12 per hour", v.Salary)
	assert.Equal(t, "United Kingdom", v.Country)
	assert.Equal(t, "2026-08-25", v.PostedDate)
}

func TestPaginationStopsOnDuplicatePage(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		// every page repeats the same posting
		fmt.Fprintf(w, `{"type":"JOBS","jobs":[%s]}`, jobJSON("https://cj.example/same"))
	}))
	defer srv.Close()

	a, _ := testAdapter(t, srv.URL, timeutil.NewFake(time.Now()), 10)
	jobs, err := a.Search(context.Background(), taxiPrefs(), nil, nil, nil)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
	assert.EqualValues(t, 2, calls.Load())
}

func TestPaginationHonorsPageCap(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		fmt.Fprintf(w, `{"type":"JOBS","jobs":[%s]}`,
			jobJSON(fmt.Sprintf("https://cj.example/%d", n)))
	}))
	defer srv.Close()

	a, _ := testAdapter(t, srv.URL, timeutil.NewFake(time.Now()), 2)
	jobs, err := a.Search(context.Background(), taxiPrefs(), nil, nil, nil)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
	assert.EqualValues(t, 2, calls.Load())
}

func TestMaxPagesHardCap(t *testing.T) {
	a, _ := testAdapter(t, "http://unused", timeutil.NewFake(time.Now()), 50)
	assert.Equal(t, 10, a.cfg.MaxPages)
}

func TestLocationSuggestionRetry(t *testing.T) {
	var locations []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loc := r.URL.Query().Get("location")
		locations = append(locations, loc)
		if loc == "London, United Kingdom" {
			fmt.Fprint(w, `{"type":"LOCATIONS","locations":["London, Greater London"]}`)
			return
		}
		if r.URL.Query().Get("page") == "1" {
			fmt.Fprintf(w, `{"type":"JOBS","jobs":[%s]}`, jobJSON("https://cj.example/x"))
			return
		}
		fmt.Fprint(w, `{"type":"JOBS","jobs":[]}`)
	}))
	defer srv.Close()

	a, _ := testAdapter(t, srv.URL, timeutil.NewFake(time.Now()), 10)
	prefs := taxiPrefs()
	prefs.Cities = []string{"London"}
	jobs, err := a.Search(context.Background(), prefs, nil, nil, nil)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
	assert.Equal(t, "London, United Kingdom", locations[0])
	assert.Equal(t, "London, Greater London", locations[1])
}

func TestRateLimitAbortsSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	clock := timeutil.NewFake(time.Now())
	a, metrics := testAdapter(t, srv.URL, clock, 10)

	_, err := a.Search(context.Background(), taxiPrefs(), nil, nil, nil)
	assert.ErrorIs(t, err, source.ErrRateLimited)
	assert.False(t, a.Healthy())
	assert.EqualValues(t, 1, metrics.APICalls.Load(), "the rejected request still spent quota")

	clock.Advance(151 * time.Second)
	assert.True(t, a.Healthy())
}

func TestTermCacheRoundTrip(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			fmt.Fprintf(w, `{"type":"JOBS","jobs":[%s]}`, jobJSON("https://cj.example/a"))
			return
		}
		fmt.Fprint(w, `{"type":"JOBS","jobs":[]}`)
	}))
	defer srv.Close()

	a, _ := testAdapter(t, srv.URL, timeutil.NewFake(time.Now()), 10)

	jobs, err := a.Search(context.Background(), taxiPrefs(), nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	before := calls.Load()

	jobs, err = a.Search(context.Background(), taxiPrefs(), nil, nil, nil)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
	assert.Equal(t, before, calls.Load())
}

func TestNormalizeDateFallback(t *testing.T) {
	assert.Equal(t, "2026-08-25", normalizeDate("Tue, 25 Aug 2026 10:00:00 GMT"))
	today := time.Now().Format("2006-01-02")
	assert.Equal(t, today, normalizeDate("not a date"))
}
