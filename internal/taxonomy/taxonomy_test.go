package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globaljobhunter-engine/internal/domain"
)

func TestLanguageOffsets(t *testing.T) {
	assert.Equal(t, 0, English.Offset())
	assert.Equal(t, 3, German.Offset())
	assert.Equal(t, 6, French.Offset())
	assert.Equal(t, 9, Spanish.Offset())
	assert.Equal(t, 12, Italian.Offset())
	assert.Equal(t, 15, Dutch.Offset())
	assert.Equal(t, 18, Polish.Offset())
	assert.Equal(t, 21, Czech.Offset())
}

func TestCatalogShape(t *testing.T) {
	for _, p := range Professions {
		assert.Len(t, p.Terms, 24, "profession %q", p.Name)
		assert.NotEmpty(t, p.Category, "profession %q", p.Name)
	}
}

func TestLocalizedTermsGermany(t *testing.T) {
	p, ok := Find("Водитель такси")
	require.True(t, ok)

	// de activates english + german: two blocks of three, six total.
	terms := p.LocalizedTerms("de")
	assert.Equal(t, []string{
		"taxi driver", "cab driver", "uber driver",
		"taxifahrer", "taxi fahrer", "fahrdienst",
	}, terms)
}

func TestLocalizedTermsCapped(t *testing.T) {
	p, ok := Find("Уборщик")
	require.True(t, ok)

	// ch activates three languages but the cap keeps it at six terms.
	terms := p.LocalizedTerms("ch")
	assert.Len(t, terms, 6)
	assert.Equal(t, "cleaner", terms[0])
	assert.Equal(t, "putzkraft", terms[4])
}

func TestLocalizedTermsUnknownCountryFallsBackToEnglish(t *testing.T) {
	p, ok := Find("Повар")
	require.True(t, ok)

	terms := p.LocalizedTerms("jp")
	assert.Equal(t, []string{"chef", "cook", "kitchen chef"}, terms)
}

func TestLocalizedTermsShortList(t *testing.T) {
	p := Profession{Name: "x", Terms: []string{"only", "two"}}
	// german block starts past the end of the list; no panic, no terms.
	assert.Equal(t, []string{"only", "two"}, p.LocalizedTerms("de"))
}

func TestPlanTasksOrderAndWildcard(t *testing.T) {
	prefs := domain.Preferences{
		SelectedJobs: []string{"Водитель такси", domain.WildcardProfession},
		Countries:    []string{"de", "gb"},
	}

	tasks := PlanTasks(prefs)
	require.Len(t, tasks, 11) // de: 6 terms + wildcard, gb: 3 terms + wildcard

	assert.Equal(t, Task{Country: "de", Term: "taxi driver"}, tasks[0])
	last := tasks[6]
	assert.True(t, last.Wildcard)
	assert.Equal(t, "de", last.Country)
	assert.Equal(t, domain.WildcardTerm, last.Term)

	assert.Equal(t, "gb", tasks[7].Country)
	assert.True(t, tasks[10].Wildcard)
}

func TestPlanTasksCities(t *testing.T) {
	prefs := domain.Preferences{
		SelectedJobs: []string{"Повар"},
		Countries:    []string{"gb"},
		Cities:       []string{"London", "Manchester"},
	}

	tasks := PlanTasks(prefs)
	require.Len(t, tasks, 6)
	assert.Equal(t, "London", tasks[0].City)
	assert.Equal(t, "Manchester", tasks[3].City)
}

func TestPlanTasksMultilangBypassesCatalog(t *testing.T) {
	prefs := domain.Preferences{
		SelectedJobs:          []string{"Повар"},
		SelectedJobsMultilang: []string{"chef de partie", "sous chef"},
		Countries:             []string{"fr"},
	}

	tasks := PlanTasks(prefs)
	require.Len(t, tasks, 2)
	assert.Equal(t, "chef de partie", tasks[0].Term)
	assert.Equal(t, "sous chef", tasks[1].Term)
}

func TestPlanTasksLanguageVariants(t *testing.T) {
	prefs := domain.Preferences{
		SelectedJobsMultilang: []string{"nurse"},
		LanguageVariants:      map[string][]string{"nurse": {"registered nurse", "nurse"}},
		Countries:             []string{"gb"},
	}

	tasks := PlanTasks(prefs)
	require.Len(t, tasks, 2) // duplicate variant collapses
	assert.Equal(t, "nurse", tasks[0].Term)
	assert.Equal(t, "registered nurse", tasks[1].Term)
}

func TestPlanTasksUnknownProfessionSkipped(t *testing.T) {
	prefs := domain.Preferences{
		SelectedJobs: []string{"Несуществующая профессия"},
		Countries:    []string{"de"},
	}
	assert.Empty(t, PlanTasks(prefs))
}

func TestCountryTables(t *testing.T) {
	assert.Len(t, Countries, 18)
	assert.True(t, Supported("de"))
	assert.False(t, Supported("jp"))
	assert.Equal(t, "Германия", CountryName("de"))
	assert.Equal(t, "jp", CountryName("jp"))
	assert.Equal(t, []Language{English, German, French}, ActiveLanguages("ch"))
	assert.Equal(t, []Language{English}, ActiveLanguages("xx"))

	fr := Countries["fr"]
	assert.False(t, fr.WorkWithoutLanguage)
	assert.Equal(t, "€", fr.Currency)
}
