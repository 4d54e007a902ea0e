// Package careerjet implements the Careerjet v4 adapter: keyword search
// scaled across pagination with a page cap, duplicate-page early stop, and
// a per-source cooldown on quota signals.
package careerjet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
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
	defaultBaseURL = "https://search.api.careerjet.net/v4/query"

	wildcardQuery = "job work position"

	pageSize       = 20
	hardPageCap    = 10
	descriptionMax = 500
)

// countryNames maps market codes to the English names Careerjet locations
// are phrased in.
var countryNames = map[string]string{
	"gb": "United Kingdom", "us": "United States", "de": "Germany",
	"fr": "France", "es": "Spain", "it": "Italy", "nl": "Netherlands",
	"pl": "Poland", "ca": "Canada", "au": "Australia", "at": "Austria",
	"ch": "Switzerland", "be": "Belgium", "se": "Sweden", "no": "Norway",
	"dk": "Denmark", "cz": "Czech Republic", "sk": "Slovakia",
}

var localeCodes = map[string]string{
	"gb": "en_GB", "us": "en_US", "de": "de_DE", "fr": "fr_FR",
	"es": "es_ES", "it": "it_IT", "nl": "nl_NL", "pl": "pl_PL",
	"ca": "en_CA", "au": "en_AU", "at": "de_AT", "ch": "de_CH",
	"be": "nl_BE", "se": "sv_SE", "no": "no_NO", "dk": "da_DK",
	"cz": "cs_CZ", "sk": "sk_SK",
}

type Config struct {
	APIKey    string
	AffID     string
	BaseURL   string        // default is the public v4 endpoint
	Referer   string        // page URL Careerjet requires on every query
	UserAgent string
	UserIP    string
	PerMinute int           // default 25
	MaxPages  int           // per term, default 15 then capped at 10
	Cooldown  time.Duration // default 150s
	Timeout   time.Duration // default 15s
}

type Adapter struct {
	cfg     Config
	hc      *http.Client
	cache   *cache.Manager
	metrics *source.Metrics
	limiter *ratelimit.Limiter
	breaker *ratelimit.Breaker
}

func New(cfg Config, cm *cache.Manager, metrics *source.Metrics, clock timeutil.Clock, jitter timeutil.Jitter) *Adapter {
	if cfg.PerMinute <= 0 {
		cfg.PerMinute = 25
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 15
	}
	if cfg.MaxPages > hardPageCap {
		cfg.MaxPages = hardPageCap
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = 150 * time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.Referer == "" {
		cfg.Referer = "https://www.globaljobhunter.vip/results"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "Mozilla/5.0"
	}
	if cfg.UserIP == "" {
		cfg.UserIP = "0.0.0.0"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Adapter{
		cfg:     cfg,
		hc:      &http.Client{Timeout: cfg.Timeout},
		cache:   cm,
		metrics: metrics,
		limiter: ratelimit.NewLimiter(cfg.PerMinute, jitter),
		breaker: ratelimit.NewBreaker(clock),
	}
}

func (a *Adapter) Kind() domain.SourceKind { return domain.SourceCareerjet }

func (a *Adapter) Supports(country string) bool {
	_, ok := countryNames[country]
	return ok
}

func (a *Adapter) Healthy() bool { return !a.breaker.Cooling() }

func (a *Adapter) Search(ctx context.Context, prefs domain.Preferences, emit domain.BatchEmit, tick domain.TickEmit, cancelled domain.CancelCheck) ([]domain.Vacancy, error) {
	if a.breaker.Cooling() {
		log.Printf("[careerjet] cooling down for %s, skipping", a.breaker.Remaining().Round(time.Second))
		return nil, nil
	}

	tasks := taxonomy.PlanTasks(prefs)
	var out []domain.Vacancy

	for i, task := range tasks {
		if cancelled != nil && cancelled() {
			return out, nil
		}
		if tick != nil {
			tick(i+1, len(tasks))
		}
		countryName, ok := countryNames[task.Country]
		if !ok {
			continue
		}

		// Careerjet locations are phrased "City, Country" or just the
		// country when no city was requested.
		loc := countryName
		if city := geo.NormalizeCity(task.City); city != "" {
			loc = city + ", " + countryName
		}

		if hit, ok := a.cache.GetTerm(ctx, domain.SourceCareerjet, task.Country, loc, task.Term); ok {
			a.metrics.Hit(ctx)
			log.Printf("[careerjet] term cache hit %s %q: %d jobs", loc, task.Term, len(hit))
			out = append(out, hit...)
			if emit != nil {
				emit(hit)
			}
			continue
		}
		a.metrics.Miss(ctx)

		collected, err := a.fetchAllPages(ctx, task, loc, countryName, emit, cancelled)
		out = append(out, collected...)
		if errors.Is(err, source.ErrRateLimited) {
			a.breaker.Trip(a.cfg.Cooldown)
			log.Printf("[careerjet] 429, cooldown %s", a.cfg.Cooldown)
			a.metrics.Err(ctx)
			return out, err
		}
		if err != nil {
			log.Printf("[careerjet] term %q [%s]: %v", task.Term, loc, err)
			a.metrics.Err(ctx)
			continue
		}

		if len(collected) > 0 {
			a.cache.PutTerm(ctx, domain.SourceCareerjet, task.Country, loc, task.Term, collected)
		}
	}
	return out, nil
}

// fetchAllPages walks the pagination for one tuple: stops after two empty
// pages in a row, on a page of nothing but duplicates, or at the page cap.
// Batches are emitted page by page.
func (a *Adapter) fetchAllPages(ctx context.Context, task taxonomy.Task, loc, countryName string, emit domain.BatchEmit, cancelled domain.CancelCheck) ([]domain.Vacancy, error) {
	var collected []domain.Vacancy
	seen := make(map[string]bool)
	emptyStreak := 0

	for page := 1; page <= a.cfg.MaxPages; page++ {
		if cancelled != nil && cancelled() {
			return collected, nil
		}
		if err := a.limiter.Wait(ctx, cancelled); err != nil {
			return collected, nil
		}

		batch, err := a.requestPage(ctx, task, loc, countryName, page)
		if err != nil {
			return collected, err
		}
		if len(batch) == 0 {
			emptyStreak++
			if emptyStreak >= 2 {
				break
			}
			continue
		}
		emptyStreak = 0

		fresh := batch[:0:0]
		for _, j := range batch {
			if j.ApplyURL == "" || seen[j.ApplyURL] {
				continue
			}
			seen[j.ApplyURL] = true
			fresh = append(fresh, j)
		}
		if len(fresh) == 0 {
			log.Printf("[careerjet] %s %q page %d: duplicates only, stopping", loc, task.Term, page)
			break
		}
		a.metrics.Results(ctx, len(fresh))
		collected = append(collected, fresh...)
		if emit != nil {
			emit(fresh)
		}

		if page < a.cfg.MaxPages {
			if err := a.limiter.MicroYield(ctx, cancelled); err != nil {
				return collected, nil
			}
		}
	}
	return collected, nil
}

type apiResponse struct {
	Type      string   `json:"type"`
	Locations []string `json:"locations"`
	Jobs      []apiJob `json:"jobs"`
}

type apiJob struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Locations   string `json:"locations"`
	Salary      string `json:"salary"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Date        string `json:"date"`
}

// requestPage runs one query. A LOCATIONS answer (ambiguous location) is
// retried once against the first suggestion.
func (a *Adapter) requestPage(ctx context.Context, task taxonomy.Task, loc, countryName string, page int) ([]domain.Vacancy, error) {
	resp, err := a.query(ctx, task, loc, page)
	if err != nil {
		return nil, err
	}
	if resp.Type == "LOCATIONS" {
		if len(resp.Locations) == 0 {
			return nil, nil
		}
		resp, err = a.query(ctx, task, resp.Locations[0], page)
		if err != nil {
			return nil, err
		}
	}
	if resp.Type != "JOBS" {
		return nil, nil
	}

	jobs := make([]domain.Vacancy, 0, len(resp.Jobs))
	filterTerm := task.Term
	if task.Wildcard {
		filterTerm = domain.WildcardTerm
	}
	for _, raw := range resp.Jobs {
		if v, ok := a.normalize(raw, countryName, filterTerm); ok {
			jobs = append(jobs, v)
		}
	}
	log.Printf("[careerjet] %s %q page %d: +%d", loc, task.Term, page, len(jobs))
	return jobs, nil
}

func (a *Adapter) query(ctx context.Context, task taxonomy.Task, loc string, page int) (*apiResponse, error) {
	// counted per issued request, so a location-suggestion retry shows up too
	a.metrics.Call(ctx)

	keywords := task.Term
	if task.Wildcard {
		keywords = wildcardQuery
	}

	params := url.Values{}
	params.Set("locale_code", localeCode(task.Country))
	params.Set("keywords", keywords)
	params.Set("location", loc)
	params.Set("page", fmt.Sprint(page))
	params.Set("page_size", fmt.Sprint(pageSize))
	params.Set("user_ip", a.cfg.UserIP)
	params.Set("user_agent", a.cfg.UserAgent)
	if a.cfg.AffID != "" {
		params.Set("affid", a.cfg.AffID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(a.cfg.APIKey, "")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", a.cfg.Referer)
	req.Header.Set("User-Agent", a.cfg.UserAgent)

	res, err := a.hc.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("query: %w", source.ErrTimeout)
		}
		return nil, fmt.Errorf("query: %w", err)
	}
	defer res.Body.Close()

	if serr := source.StatusError(res.StatusCode); serr != nil {
		return nil, serr
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode body: %w", source.ErrProtocol)
	}
	return &resp, nil
}

func localeCode(country string) string {
	if lc, ok := localeCodes[country]; ok {
		return lc
	}
	return "en_GB"
}

func (a *Adapter) normalize(raw apiJob, countryName, searchTerm string) (domain.Vacancy, bool) {
	if raw.URL == "" {
		return domain.Vacancy{}, false
	}
	title := raw.Title
	description := source.Truncate(source.StripHTML(raw.Description), descriptionMax)
	if !relevance.IsRelevant(title, description, searchTerm) {
		return domain.Vacancy{}, false
	}

	company := raw.Company
	if company == "" {
		company = "Not specified"
	}
	location := raw.Locations
	if location == "" {
		location = "Not specified"
	}

	return domain.Vacancy{
		ID:                  domain.StableID(domain.SourceCareerjet, raw.URL),
		Title:               title,
		Company:             company,
		Location:            location,
		Salary:              raw.Salary,
		Description:         description,
		ApplyURL:            raw.URL,
		Source:              domain.SourceCareerjet,
		PostedDate:          normalizeDate(raw.Date),
		Country:             countryName,
		LanguageRequirement: relevance.DetectLanguageRequirement(title, description),
		RefugeeFriendly:     relevance.IsRefugeeFriendly(title, description, searchTerm),
	}, true
}

// normalizeDate converts the feed's RFC1123 timestamps to a plain ISO date,
// falling back to today when the feed sends something else.
func normalizeDate(s string) string {
	if t, err := time.Parse(time.RFC1123, s); err == nil {
		return t.Format("2006-01-02")
	}
	if t, err := time.Parse(time.RFC1123Z, s); err == nil {
		return t.Format("2006-01-02")
	}
	return time.Now().Format("2006-01-02")
}
