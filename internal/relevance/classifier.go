// Package relevance is the deterministic rules engine deciding whether a
// fetched vacancy actually matches the search term that found it. It is the
// single place that decides relevance; adapters never bypass it.
package relevance

import (
	"strings"
	"unicode/utf8"

	"globaljobhunter-engine/internal/domain"
)

// IsRelevant classifies a vacancy against its originating search term.
// All matching is lower-cased substring containment. Domains are tried in
// fixed priority order; a term may belong to several domains, in which case
// a later domain can still accept what an earlier one passed on.
func IsRelevant(title, description, searchTerm string) bool {
	if searchTerm == domain.WildcardTerm {
		return true
	}

	titleLower := strings.ToLower(title)
	searchLower := strings.ToLower(searchTerm)
	combined := titleLower + " " + strings.ToLower(description)

	if containsAny(searchLower, refugeeTerms) && containsAny(combined, refugeeTerms) {
		return true
	}

	for _, rule := range domainRules {
		if !containsAny(searchLower, rule.searches) {
			continue
		}
		if containsAny(titleLower, rule.allow) && !containsAny(titleLower, rule.deny) {
			return true
		}
	}

	return fallbackAccept(titleLower, searchLower)
}

// fallbackAccept handles terms no domain claimed: the term must be at least
// five characters, one of its first two content words must appear in the
// title, and the title must not be an executive position.
func fallbackAccept(titleLower, searchLower string) bool {
	// length gate counts characters, not bytes, so Cyrillic terms measure
	// the same as Latin ones
	if utf8.RuneCountInString(searchLower) < 5 {
		return false
	}
	words := strings.Fields(searchLower)
	if len(words) > 2 {
		words = words[:2]
	}
	hit := false
	for _, w := range words {
		if utf8.RuneCountInString(w) > 3 && strings.Contains(titleLower, w) {
			hit = true
			break
		}
	}
	if !hit {
		return false
	}
	return !containsAny(titleLower, strictBlacklist)
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}

// noLanguageIndicators mark postings workable without the local language.
var noLanguageIndicators = []string{
	"no language", "без языка", "driver", "delivery", "warehouse", "physical",
}

// DetectLanguageRequirement inspects title and description for signals that
// the job needs no local language.
func DetectLanguageRequirement(title, description string) domain.LanguageRequirement {
	text := strings.ToLower(title + " " + description)
	if containsAny(text, noLanguageIndicators) {
		return domain.LangNoLanguage
	}
	return domain.LangUnknown
}

var refugeeFriendlyIndicators = []string{
	"refugee", "ukrainian", "ukraine", "asylum", "integration",
}

// IsRefugeeFriendly reports whether the posting explicitly welcomes
// displaced applicants.
func IsRefugeeFriendly(title, description, searchTerm string) bool {
	text := strings.ToLower(title + " " + description + " " + searchTerm)
	return containsAny(text, refugeeFriendlyIndicators)
}
