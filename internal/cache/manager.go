package cache

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/gob"
	"encoding/hex"
	"encoding/json"
	"log"
	"strings"
	"time"

	"globaljobhunter-engine/internal/domain"
	"globaljobhunter-engine/internal/timeutil"
)

const (
	fullQueryPrefix = "job_search:"
	termPrefix      = "term_search:"

	entryVersion = 1
)

// Entry is the versioned on-store record. Data holds the JSON-encoded
// vacancy list; KeyInputs keeps the canonical key object for diagnostics.
type Entry struct {
	Version   int
	Data      []byte
	CreatedAt time.Time
	ExpiresAt time.Time
	KeyInputs string
}

// Manager owns cache serialization for one source (or the merged result).
// TTL is enforced on every read; expired and corrupt entries are deleted on
// encounter. The term cache never persists empty payloads.
type Manager struct {
	store Store
	ttl   time.Duration
	clock timeutil.Clock
}

func NewManager(store Store, ttl time.Duration, clock timeutil.Clock) *Manager {
	if clock == nil {
		clock = timeutil.Real()
	}
	return &Manager{store: store, ttl: ttl, clock: clock}
}

func (m *Manager) TTL() time.Duration { return m.ttl }

type fullQueryKeyObj struct {
	Source                string              `json:"source"`
	IsRefugee             bool                `json:"is_refugee"`
	SelectedJobs          []string            `json:"selected_jobs"`
	SelectedJobsMultilang []string            `json:"selected_jobs_multilang"`
	Countries             []string            `json:"countries"`
	Cities                []string            `json:"cities"`
	LanguageVariants      map[string][]string `json:"language_variants"`
}

type termKeyObj struct {
	Source  string `json:"source"`
	Country string `json:"country"`
	City    string `json:"city"`
	Term    string `json:"term"`
}

// FullQueryKey hashes the canonicalized preferences. Every field that can
// change what the planner asks a provider participates; display-only fields
// such as the UI locale do not.
func FullQueryKey(source domain.SourceKind, prefs domain.Preferences) string {
	obj := fullQueryKeyObj{
		Source:                string(source),
		IsRefugee:             prefs.IsRefugee,
		SelectedJobs:          prefs.SelectedJobs,
		SelectedJobsMultilang: prefs.SelectedJobsMultilang,
		Countries:             prefs.Countries,
		Cities:                prefs.Cities,
		LanguageVariants:      prefs.LanguageVariants,
	}
	return fullQueryPrefix + hashKeyObj(obj)
}

// TermKey hashes the normalized (country, city, term) triple.
func TermKey(source domain.SourceKind, country, city, term string) string {
	obj := termKeyObj{
		Source:  string(source),
		Country: strings.ToLower(strings.TrimSpace(country)),
		City:    strings.TrimSpace(city),
		Term:    strings.ToLower(strings.TrimSpace(term)),
	}
	return termPrefix + hashKeyObj(obj)
}

func hashKeyObj(obj any) string {
	b, _ := json.Marshal(obj) // deterministic: field order is fixed, map keys sort
	sum := md5.Sum(b)
	return hex.EncodeToString(sum[:])
}

// GetFullQuery returns the cached merged result for these preferences, or
// absent. Expired and corrupt entries are deleted on read.
func (m *Manager) GetFullQuery(ctx context.Context, source domain.SourceKind, prefs domain.Preferences) ([]domain.Vacancy, bool) {
	return m.getJobs(ctx, FullQueryKey(source, prefs), false)
}

// GetFullQueryRaw returns the stored JSON payload verbatim, skipping
// rehydration. Used by callers that relay the list without touching it.
func (m *Manager) GetFullQueryRaw(ctx context.Context, source domain.SourceKind, prefs domain.Preferences) ([]byte, bool) {
	e, ok := m.getEntry(ctx, FullQueryKey(source, prefs))
	if !ok {
		return nil, false
	}
	return e.Data, true
}

// PutFullQuery caches a merged result. Empty results are not written;
// whether an empty answer is worth remembering is source policy, not ours.
func (m *Manager) PutFullQuery(ctx context.Context, source domain.SourceKind, prefs domain.Preferences, jobs []domain.Vacancy) {
	if len(jobs) == 0 {
		return
	}
	m.put(ctx, FullQueryKey(source, prefs), jobs)
}

// GetTerm returns the cached vacancies for one planned tuple. A stored empty
// payload is treated as absent and proactively deleted so the next request
// actually hits the API.
func (m *Manager) GetTerm(ctx context.Context, source domain.SourceKind, country, city, term string) ([]domain.Vacancy, bool) {
	return m.getJobs(ctx, TermKey(source, country, city, term), true)
}

// PutTerm caches a tuple result. Empty payloads are rejected: caching a zero
// would freeze the tuple at zero for the whole TTL window.
func (m *Manager) PutTerm(ctx context.Context, source domain.SourceKind, country, city, term string, jobs []domain.Vacancy) {
	if len(jobs) == 0 {
		return
	}
	m.put(ctx, TermKey(source, country, city, term), jobs)
}

// GetEntry fetches a live entry by explicit key, for diagnostics.
func (m *Manager) GetEntry(ctx context.Context, key string) (Entry, bool) {
	return m.getEntry(ctx, key)
}

func (m *Manager) getJobs(ctx context.Context, key string, rejectEmpty bool) ([]domain.Vacancy, bool) {
	e, ok := m.getEntry(ctx, key)
	if !ok {
		return nil, false
	}
	var jobs []domain.Vacancy
	if err := json.Unmarshal(e.Data, &jobs); err != nil {
		log.Printf("[cache] corrupt payload for %s, deleting: %v", shortKey(key), err)
		_ = m.store.Del(ctx, key)
		return nil, false
	}
	if rejectEmpty && len(jobs) == 0 {
		_ = m.store.Del(ctx, key)
		return nil, false
	}
	return jobs, true
}

func (m *Manager) getEntry(ctx context.Context, key string) (Entry, bool) {
	raw, err := m.store.Get(ctx, key)
	if err != nil {
		return Entry{}, false
	}
	var e Entry
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&e); err != nil {
		log.Printf("[cache] corrupt entry %s, deleting: %v", shortKey(key), err)
		_ = m.store.Del(ctx, key)
		return Entry{}, false
	}
	if m.clock.Now().After(e.ExpiresAt) {
		_ = m.store.Del(ctx, key)
		return Entry{}, false
	}
	return e, true
}

func (m *Manager) put(ctx context.Context, key string, jobs []domain.Vacancy) {
	data, err := json.Marshal(jobs)
	if err != nil {
		log.Printf("[cache] marshal failed for %s: %v", shortKey(key), err)
		return
	}
	now := m.clock.Now()
	e := Entry{
		Version:   entryVersion,
		Data:      data,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
		KeyInputs: key,
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(e); err != nil {
		log.Printf("[cache] encode failed for %s: %v", shortKey(key), err)
		return
	}
	if err := m.store.SetEx(ctx, key, buf.Bytes(), m.ttl); err != nil {
		log.Printf("[cache] set failed for %s: %v", shortKey(key), err)
	}
}

// SweepExpired garbage-collects tiers with lazy expiry.
func (m *Manager) SweepExpired(ctx context.Context) {
	if sw, ok := m.store.(Sweeper); ok {
		if _, err := sw.Sweep(ctx, m.clock.Now()); err != nil {
			log.Printf("[cache] sweep: %v", err)
		}
	}
}

// HIncrBy mirrors a metrics counter into the primary store.
func (m *Manager) HIncrBy(ctx context.Context, hashKey, field string, n int64) {
	if err := m.store.HIncrBy(ctx, hashKey, field, n); err != nil {
		log.Printf("[cache] hincrby %s.%s: %v", hashKey, field, err)
	}
}

func shortKey(key string) string {
	if len(key) > 24 {
		return key[:24] + "..."
	}
	return key
}
