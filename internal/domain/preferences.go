package domain

// WildcardProfession bypasses term expansion and relevance filtering.
const WildcardProfession = "__other__"

// WildcardTerm is the sentinel search term used for wildcard tasks.
const WildcardTerm = "search_for_other_jobs"

// Preferences is the inbound search request.
// Countries are ISO-3166-1 alpha-2, lower-case. Cities are free text; the
// first one is authoritative for analytics.
type Preferences struct {
	IsRefugee             bool                `json:"is_refugee"`
	SelectedJobs          []string            `json:"selected_jobs"`
	SelectedJobsMultilang []string            `json:"selected_jobs_multilang,omitempty"`
	Countries             []string            `json:"countries"`
	Cities                []string            `json:"cities,omitempty"`
	LanguageVariants      map[string][]string `json:"language_variants,omitempty"`
	// Language is the UI locale. Display-only: it never participates in
	// cache keys.
	Language string `json:"language,omitempty"`
}

// HasWildcard reports whether the wildcard profession was selected.
func (p Preferences) HasWildcard() bool {
	for _, j := range p.SelectedJobs {
		if j == WildcardProfession {
			return true
		}
	}
	return false
}

// BatchEmit receives the vacancies appended since the previous call.
type BatchEmit func(batch []Vacancy)

// TickEmit reports fine-grained planner progress.
type TickEmit func(current, total int)

// CancelCheck is the cooperative cancellation predicate. Adapters poll it
// between planned tuples and before every outbound call.
type CancelCheck func() bool
