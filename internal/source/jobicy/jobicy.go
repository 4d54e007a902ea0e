// Package jobicy implements the Jobicy remote-jobs adapter: one bulk feed
// fetch per search, filtered in memory against the user's English terms.
package jobicy

import (
	"context"
	"errors"
	"log"
	"net/url"
	"regexp"
	"strings"
	"time"

	"globaljobhunter-engine/internal/cache"
	"globaljobhunter-engine/internal/domain"
	"globaljobhunter-engine/internal/ratelimit"
	"globaljobhunter-engine/internal/source"
	"globaljobhunter-engine/internal/taxonomy"
	"globaljobhunter-engine/internal/timeutil"
)

const (
	defaultBaseURL = "https://jobicy.com/api/v2/remote-jobs"

	// feedTerm keys the cached feed; the feed is global, not per tuple.
	feedTerm    = "remote_feed"
	feedCountry = "remote"

	batchSize      = 5
	descriptionMax = 500

	remoteLocation = "Remote (Удаленно)"
	remoteCountry  = "Remote"
)

// asciiTerm rejects terms the English-only feed cannot match anyway.
var asciiTerm = regexp.MustCompile(`^[a-z0-9 .,+\-]+$`)

type Config struct {
	BaseURL   string        // default is the public v2 endpoint
	PerMinute int           // default 10
	Cooldown  time.Duration // default 300s
	Timeout   time.Duration // default 20s
}

// Adapter is the Jobicy source. It has no country dimension: every posting
// is remote, so Supports always answers yes and filtering happens against
// the whole feed.
type Adapter struct {
	cfg     Config
	client  *source.Client
	cache   *cache.Manager
	metrics *source.Metrics
	limiter *ratelimit.Limiter
	breaker *ratelimit.Breaker
}

func New(cfg Config, cm *cache.Manager, metrics *source.Metrics, clock timeutil.Clock, jitter timeutil.Jitter) *Adapter {
	if cfg.PerMinute <= 0 {
		cfg.PerMinute = 10
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = 300 * time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Adapter{
		cfg:     cfg,
		client:  source.NewClient(cfg.Timeout, jitter),
		cache:   cm,
		metrics: metrics,
		limiter: ratelimit.NewLimiter(cfg.PerMinute, jitter),
		breaker: ratelimit.NewBreaker(clock),
	}
}

func (a *Adapter) Kind() domain.SourceKind { return domain.SourceJobicy }

func (a *Adapter) Supports(string) bool { return true }

func (a *Adapter) Healthy() bool { return !a.breaker.Cooling() }

// Search fetches (or rehydrates) the remote feed once and filters it by the
// request's English-capable terms. Matches stream out in small batches so
// the caller sees progress even though there is a single upstream call.
func (a *Adapter) Search(ctx context.Context, prefs domain.Preferences, emit domain.BatchEmit, tick domain.TickEmit, cancelled domain.CancelCheck) ([]domain.Vacancy, error) {
	if a.breaker.Cooling() {
		log.Printf("[jobicy] cooling down for %s, skipping", a.breaker.Remaining().Round(time.Second))
		return nil, nil
	}
	if cancelled != nil && cancelled() {
		return nil, nil
	}

	terms := englishTerms(prefs)
	if len(terms) == 0 && !prefs.HasWildcard() {
		return nil, nil
	}

	feed, ok := a.cache.GetTerm(ctx, domain.SourceJobicy, feedCountry, "", feedTerm)
	if ok {
		a.metrics.Hit(ctx)
		log.Printf("[jobicy] feed cache hit: %d jobs", len(feed))
	} else {
		a.metrics.Miss(ctx)
		if err := a.limiter.Wait(ctx, cancelled); err != nil {
			return nil, nil
		}
		// the request spends quota whether or not it succeeds
		a.metrics.Call(ctx)
		var err error
		feed, err = a.fetchFeed(ctx)
		switch {
		case err == nil:
		case errors.Is(err, source.ErrRateLimited):
			a.breaker.Trip(a.cfg.Cooldown)
			log.Printf("[jobicy] 429, cooldown %s", a.cfg.Cooldown)
			a.metrics.Err(ctx)
			return nil, err
		default:
			log.Printf("[jobicy] feed fetch: %v", err)
			a.metrics.Err(ctx)
			return nil, nil
		}
		if len(feed) > 0 {
			a.cache.PutTerm(ctx, domain.SourceJobicy, feedCountry, "", feedTerm, feed)
		}
	}

	matched := filterFeed(feed, terms, prefs.HasWildcard())
	a.metrics.Results(ctx, len(matched))
	if tick != nil {
		tick(1, 1)
	}

	var out []domain.Vacancy
	for start := 0; start < len(matched); start += batchSize {
		if cancelled != nil && cancelled() {
			return out, nil
		}
		end := start + batchSize
		if end > len(matched) {
			end = len(matched)
		}
		batch := matched[start:end]
		out = append(out, batch...)
		if emit != nil {
			emit(batch)
		}
	}
	return out, nil
}

// englishTerms collects the lowercased English-block terms of the selected
// professions plus any caller-supplied terms the feed can actually match.
func englishTerms(prefs domain.Preferences) []string {
	var raw []string
	if len(prefs.SelectedJobsMultilang) > 0 {
		raw = prefs.SelectedJobsMultilang
	} else {
		for _, name := range prefs.SelectedJobs {
			if name == domain.WildcardProfession {
				continue
			}
			p, ok := taxonomy.Find(name)
			if !ok {
				continue
			}
			start := taxonomy.English.Offset()
			end := start + 3
			if end > len(p.Terms) {
				end = len(p.Terms)
			}
			raw = append(raw, p.Terms[start:end]...)
		}
	}

	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] || !asciiTerm.MatchString(t) {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func filterFeed(feed []domain.Vacancy, terms []string, wildcard bool) []domain.Vacancy {
	if wildcard {
		return feed
	}
	var out []domain.Vacancy
	for _, v := range feed {
		title := strings.ToLower(v.Title)
		desc := strings.ToLower(v.Description)
		for _, t := range terms {
			if strings.Contains(title, t) || strings.Contains(desc, t) {
				out = append(out, v)
				break
			}
		}
	}
	return out
}

type apiResponse struct {
	Jobs []apiJob `json:"jobs"`
}

type apiJob struct {
	ID          any    `json:"id"`
	JobTitle    string `json:"jobTitle"`
	CompanyName string `json:"companyName"`
	JobExcerpt  string `json:"jobExcerpt"`
	URL         string `json:"url"`
	PubDate     string `json:"pubDate"`
}

func (a *Adapter) fetchFeed(ctx context.Context) ([]domain.Vacancy, error) {
	var resp apiResponse
	if err := a.client.GetJSON(ctx, a.cfg.BaseURL, url.Values{}, &resp); err != nil {
		return nil, err
	}
	jobs := make([]domain.Vacancy, 0, len(resp.Jobs))
	for _, raw := range resp.Jobs {
		if v, ok := normalize(raw); ok {
			jobs = append(jobs, v)
		}
	}
	log.Printf("[jobicy] feed fetched: %d jobs", len(jobs))
	return jobs, nil
}

func normalize(raw apiJob) (domain.Vacancy, bool) {
	if raw.URL == "" || raw.JobTitle == "" {
		return domain.Vacancy{}, false
	}
	company := raw.CompanyName
	if company == "" {
		company = "Not specified"
	}
	return domain.Vacancy{
		ID:                  domain.StableID(domain.SourceJobicy, raw.URL),
		Title:               raw.JobTitle,
		Company:             company,
		Location:            remoteLocation,
		Description:         source.Truncate(source.StripHTML(raw.JobExcerpt), descriptionMax),
		ApplyURL:            raw.URL,
		Source:              domain.SourceJobicy,
		PostedDate:          normalizeDate(raw.PubDate),
		Country:             remoteCountry,
		JobType:             "Remote",
		LanguageRequirement: domain.LangUnknown,
		RefugeeFriendly:     false,
	}, true
}

func normalizeDate(s string) string {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return time.Now().Format("2006-01-02")
}
