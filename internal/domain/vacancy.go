package domain

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// SourceKind is the closed set of job-board providers the engine knows about.
type SourceKind string

const (
	SourceAdzuna    SourceKind = "adzuna"
	SourceCareerjet SourceKind = "careerjet"
	SourceJobicy    SourceKind = "jobicy"
)

func (k SourceKind) String() string { return string(k) }

// LanguageRequirement classifies how much local language a posting demands.
type LanguageRequirement string

const (
	LangUnknown    LanguageRequirement = "unknown"
	LangNoLanguage LanguageRequirement = "no_language_required"
)

// Vacancy is the canonical, source-agnostic job posting record.
// ApplyURL is the deduplication key within a single search response.
type Vacancy struct {
	ID                  string              `json:"id"`
	Title               string              `json:"title"`
	Company             string              `json:"company"`
	Location            string              `json:"location"`
	Salary              string              `json:"salary,omitempty"`
	Description         string              `json:"description"`
	ApplyURL            string              `json:"apply_url"`
	Source              SourceKind          `json:"source"`
	PostedDate          string              `json:"posted_date"`
	Country             string              `json:"country"`
	JobType             string              `json:"job_type,omitempty"`
	LanguageRequirement LanguageRequirement `json:"language_requirement"`
	RefugeeFriendly     bool                `json:"refugee_friendly"`
}

// StableID derives a vacancy ID from its apply URL so the same posting gets
// the same ID across runs.
func StableID(source SourceKind, applyURL string) string {
	sum := md5.Sum([]byte(strings.TrimSpace(applyURL)))
	return string(source) + "_" + hex.EncodeToString(sum[:])
}

// Dedup removes duplicates by apply URL, first writer wins, order preserved.
func Dedup(jobs []Vacancy) []Vacancy {
	seen := make(map[string]bool, len(jobs))
	out := make([]Vacancy, 0, len(jobs))
	for _, j := range jobs {
		if j.ApplyURL == "" || seen[j.ApplyURL] {
			continue
		}
		seen[j.ApplyURL] = true
		out = append(out, j)
	}
	return out
}
