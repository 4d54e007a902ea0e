package taxonomy

import (
	"log"

	"globaljobhunter-engine/internal/domain"
)

// Task is one planned (country, city, term) tuple. Wildcard tasks carry the
// sentinel term and bypass expansion downstream.
type Task struct {
	Country  string
	City     string
	Term     string
	Wildcard bool
}

// PlanTasks expands preferences into the ordered tuple list one adapter will
// execute: countries outer, cities next (a single empty-city task when none
// are requested), then each selected profession's localized terms. The
// wildcard profession contributes exactly one task per (country, city) and
// is always planned last within it.
func PlanTasks(prefs domain.Preferences) []Task {
	cities := prefs.Cities
	if len(cities) == 0 {
		cities = []string{""}
	}

	var tasks []Task
	for _, country := range prefs.Countries {
		for _, city := range cities {
			terms := expandTerms(prefs, country)
			for _, term := range terms {
				tasks = append(tasks, Task{Country: country, City: city, Term: term})
			}
			if prefs.HasWildcard() {
				tasks = append(tasks, Task{
					Country:  country,
					City:     city,
					Term:     domain.WildcardTerm,
					Wildcard: true,
				})
			}
		}
	}
	return tasks
}

// expandTerms produces the deduplicated term list for one country: either the
// caller's pre-expanded multilingual list, or the localized terms of every
// selected catalog profession, each followed by its configured synonym
// variants.
func expandTerms(prefs domain.Preferences, country string) []string {
	var raw []string
	if len(prefs.SelectedJobsMultilang) > 0 {
		raw = prefs.SelectedJobsMultilang
	} else {
		for _, name := range prefs.SelectedJobs {
			if name == domain.WildcardProfession {
				continue
			}
			p, ok := Find(name)
			if !ok {
				log.Printf("[planner] unknown profession %q, skipping", name)
				continue
			}
			raw = append(raw, p.LocalizedTerms(country)...)
		}
	}

	seen := make(map[string]struct{}, len(raw))
	var out []string
	add := func(t string) {
		if t == "" {
			return
		}
		if _, dup := seen[t]; dup {
			return
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	for _, t := range raw {
		add(t)
		for _, v := range prefs.LanguageVariants[t] {
			add(v)
		}
	}
	return out
}
