// Package taxonomy holds the curated profession catalog and the country and
// language tables consumed by the query planner.
package taxonomy

// Language tags index the fixed three-term blocks inside a profession's
// term list. The block order is frozen; Offset depends on it.
type Language int

const (
	English Language = iota
	German
	French
	Spanish
	Italian
	Dutch
	Polish
	Czech
)

const termsPerLanguage = 3

// Offset returns the index of the language's block in a term list.
func (l Language) Offset() int { return int(l) * termsPerLanguage }

func (l Language) String() string {
	switch l {
	case English:
		return "english"
	case German:
		return "german"
	case French:
		return "french"
	case Spanish:
		return "spanish"
	case Italian:
		return "italian"
	case Dutch:
		return "dutch"
	case Polish:
		return "polish"
	case Czech:
		return "czech"
	}
	return "unknown"
}

// Profession is one entry of the static catalog: a category tag, the
// profession name shown to users, and its dense multilingual term list
// (8 languages x 3 terms when fully populated; gaps are empty strings).
type Profession struct {
	Category string
	Name     string
	Terms    []string
}

// Find looks a profession up by its display name.
func Find(name string) (Profession, bool) {
	for _, p := range Professions {
		if p.Name == name {
			return p, true
		}
	}
	return Profession{}, false
}

// Categories returns the catalog grouped by category, preserving order.
func Categories() map[string][]Profession {
	out := make(map[string][]Profession)
	for _, p := range Professions {
		out[p.Category] = append(out[p.Category], p)
	}
	return out
}

// maxLocalizedTerms caps how many terms one profession contributes for one
// country.
const maxLocalizedTerms = 6

// LocalizedTerms selects this profession's terms for a country by taking the
// three-term block of each of the country's active languages, bounded to
// what the list actually holds and capped at six terms. Countries without a
// language entry fall back to the English block.
func (p Profession) LocalizedTerms(countryCode string) []string {
	langs, ok := countryLanguages[countryCode]
	if !ok {
		langs = []Language{English}
	}
	var out []string
	for _, lang := range langs {
		start := lang.Offset()
		if start >= len(p.Terms) {
			continue
		}
		end := start + termsPerLanguage
		if end > len(p.Terms) {
			end = len(p.Terms)
		}
		for _, t := range p.Terms[start:end] {
			if t == "" {
				continue
			}
			out = append(out, t)
			if len(out) == maxLocalizedTerms {
				return out
			}
		}
	}
	return out
}
