// Package adzuna implements the Adzuna search API adapter: one rate-limited
// call per planned (country, city, term) tuple, backed by the term cache.
package adzuna

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"globaljobhunter-engine/internal/cache"
	"globaljobhunter-engine/internal/domain"
	"globaljobhunter-engine/internal/geo"
	"globaljobhunter-engine/internal/ratelimit"
	"globaljobhunter-engine/internal/relevance"
	"globaljobhunter-engine/internal/source"
	"globaljobhunter-engine/internal/taxonomy"
	"globaljobhunter-engine/internal/timeutil"
)

const (
	defaultBaseURL = "https://api.adzuna.com/v1/api/jobs/%s/search/1"

	// wildcardQuery is what we actually send for the wildcard sentinel.
	wildcardQuery = "job work position"

	resultsPerTerm = 10
	descriptionMax = 500
)

type Config struct {
	AppID     string
	AppKey    string
	BaseURL   string        // %s is the country code; default is the public API
	PerMinute int           // request budget, default 30
	Cooldown  time.Duration // breaker advance on 429, default 120s
	Timeout   time.Duration // per-call connect+read, default 15s
}

// Adapter is the Adzuna source. It owns its limiter and breaker; the cache
// manager is shared with the orchestrator's full-query layer.
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
		cfg.PerMinute = 30
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = 120 * time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
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

func (a *Adapter) Kind() domain.SourceKind { return domain.SourceAdzuna }

func (a *Adapter) Supports(country string) bool { return taxonomy.Supported(country) }

func (a *Adapter) Healthy() bool { return !a.breaker.Cooling() }

// Search walks the planned tuples sequentially. Recovery is per tuple: a
// timeout or 5xx skips the term, a 429 trips the breaker and aborts the
// remaining tuples, cancellation returns the partial result.
func (a *Adapter) Search(ctx context.Context, prefs domain.Preferences, emit domain.BatchEmit, tick domain.TickEmit, cancelled domain.CancelCheck) ([]domain.Vacancy, error) {
	if a.breaker.Cooling() {
		log.Printf("[adzuna] cooling down for %s, skipping", a.breaker.Remaining().Round(time.Second))
		return nil, nil
	}

	tasks := taxonomy.PlanTasks(prefs)
	var out []domain.Vacancy
	skipCountry := make(map[string]bool)

	for i, task := range tasks {
		if cancelled != nil && cancelled() {
			return out, nil
		}
		if tick != nil {
			tick(i+1, len(tasks))
		}
		if skipCountry[task.Country] || !a.Supports(task.Country) {
			continue
		}

		city := geo.NormalizeCity(task.City)

		if hit, ok := a.cache.GetTerm(ctx, domain.SourceAdzuna, task.Country, city, task.Term); ok {
			a.metrics.Hit(ctx)
			log.Printf("[adzuna] term cache hit %s/%s %q: %d jobs", task.Country, city, task.Term, len(hit))
			out = append(out, hit...)
			if emit != nil {
				emit(hit)
			}
			continue
		}
		a.metrics.Miss(ctx)

		if err := a.limiter.Wait(ctx, cancelled); err != nil {
			return out, nil
		}

		// every issued request counts against quota, whatever comes back
		a.metrics.Call(ctx)

		jobs, err := a.fetchTerm(ctx, task, city)
		switch {
		case err == nil:
		case errors.Is(err, source.ErrRateLimited):
			a.breaker.Trip(a.cfg.Cooldown)
			log.Printf("[adzuna] 429, cooldown %s", a.cfg.Cooldown)
			a.metrics.Err(ctx)
			return out, err
		case errors.Is(err, source.ErrUnsupportedCountry):
			log.Printf("[adzuna] country %s unsupported, skipping", task.Country)
			skipCountry[task.Country] = true
			continue
		default:
			// timeout, 5xx after retry, protocol error: skip the term only
			log.Printf("[adzuna] term %q in %s: %v", task.Term, task.Country, err)
			a.metrics.Err(ctx)
			continue
		}
		a.metrics.Results(ctx, len(jobs))

		if len(jobs) > 0 {
			a.cache.PutTerm(ctx, domain.SourceAdzuna, task.Country, city, task.Term, jobs)
			out = append(out, jobs...)
			if emit != nil {
				emit(jobs)
			}
		}

		if i < len(tasks)-1 {
			if err := a.limiter.MicroYield(ctx, cancelled); err != nil {
				return out, nil
			}
		}
	}
	return out, nil
}

type apiResponse struct {
	Results []apiJob `json:"results"`
}

type apiJob struct {
	ID      json.Number `json:"id"`
	Title   string      `json:"title"`
	Company struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	Description  string  `json:"description"`
	SalaryMin    float64 `json:"salary_min"`
	SalaryMax    float64 `json:"salary_max"`
	RedirectURL  string  `json:"redirect_url"`
	Created      string  `json:"created"`
	ContractType string  `json:"contract_type"`
	ContractTime string  `json:"contract_time"`
}

func (a *Adapter) fetchTerm(ctx context.Context, task taxonomy.Task, city string) ([]domain.Vacancy, error) {
	query := task.Term
	filterTerm := task.Term
	if task.Wildcard {
		query = wildcardQuery
		filterTerm = domain.WildcardTerm
	}

	params := url.Values{}
	params.Set("app_id", a.cfg.AppID)
	params.Set("app_key", a.cfg.AppKey)
	params.Set("what", query)
	params.Set("results_per_page", fmt.Sprint(resultsPerTerm))
	params.Set("sort_by", "date")
	if city != "" {
		params.Set("where", city)
	}

	var resp apiResponse
	if err := a.client.GetJSON(ctx, fmt.Sprintf(a.cfg.BaseURL, task.Country), params, &resp); err != nil {
		// the country code is part of the URL path, so a 404 means the
		// market does not exist rather than a bad term
		if source.HTTPStatus(err) == http.StatusNotFound {
			return nil, fmt.Errorf("country %s: %w", task.Country, source.ErrUnsupportedCountry)
		}
		return nil, err
	}

	jobs := make([]domain.Vacancy, 0, len(resp.Results))
	for _, raw := range resp.Results {
		if v, ok := a.normalize(raw, task.Country, filterTerm); ok {
			jobs = append(jobs, v)
		}
	}
	return jobs, nil
}

// normalize maps a raw posting to the canonical record, dropping postings
// the classifier rejects and postings without an apply URL.
func (a *Adapter) normalize(raw apiJob, country, searchTerm string) (domain.Vacancy, bool) {
	if raw.RedirectURL == "" {
		return domain.Vacancy{}, false
	}
	title := raw.Title
	description := source.Truncate(source.StripHTML(raw.Description), descriptionMax)
	if !relevance.IsRelevant(title, description, searchTerm) {
		return domain.Vacancy{}, false
	}

	market := taxonomy.Countries[country]

	company := raw.Company.DisplayName
	if company == "" {
		company = "No company"
	}
	location := raw.Location.DisplayName
	if location == "" {
		location = "No location"
	}
	jobType := raw.ContractType
	if jobType == "" {
		jobType = raw.ContractTime
	}

	return domain.Vacancy{
		ID:                  domain.StableID(domain.SourceAdzuna, raw.RedirectURL),
		Title:               title,
		Company:             company,
		Location:            location,
		Salary:              source.FormatSalary(raw.SalaryMin, raw.SalaryMax, market.Currency),
		Description:         description,
		ApplyURL:            raw.RedirectURL,
		Source:              domain.SourceAdzuna,
		PostedDate:          raw.Created,
		Country:             market.Name,
		JobType:             jobType,
		LanguageRequirement: relevance.DetectLanguageRequirement(title, description),
		RefugeeFriendly:     relevance.IsRefugeeFriendly(title, description, searchTerm),
	}, true
}
