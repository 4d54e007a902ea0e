package relevance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"globaljobhunter-engine/internal/domain"
)

func TestWildcardAcceptsEverything(t *testing.T) {
	assert.True(t, IsRelevant("Chief Executive Officer", "", domain.WildcardTerm))
	assert.True(t, IsRelevant("", "", domain.WildcardTerm))
}

func TestTransportDomain(t *testing.T) {
	// German taxi search accepting a localized driver title.
	assert.True(t, IsRelevant("Taxifahrer (m/w/d) Vollzeit", "Fahrdienst in Berlin", "taxifahrer"))
	assert.True(t, IsRelevant("Delivery Driver - Full Time", "van route", "delivery driver"))

	// Dispatcher and mechanic roles surface for driver searches but are not driving jobs.
	assert.False(t, IsRelevant("Transport Dispatcher", "plan routes", "truck driver"))
	assert.False(t, IsRelevant("HGV Mechanic", "repair trucks", "truck driver"))

	// Unrelated sales roles returned by a provider for a driver query.
	assert.False(t, IsRelevant("Sales Manager", "quota driven", "taxi driver"))
}

func TestFoodRetailDomain(t *testing.T) {
	assert.True(t, IsRelevant("Waiter / Waitress", "busy restaurant", "waiter"))
	assert.True(t, IsRelevant("Kellner in Teilzeit", "Gastronomie", "kellner"))

	// Management and B2B sales titles are rejected even though they contain
	// allow-listed words.
	assert.False(t, IsRelevant("Restaurant Manager", "lead the team", "waiter"))
	assert.False(t, IsRelevant("Key Account Manager B2B", "grow accounts", "sales assistant"))
}

func TestCareDomain(t *testing.T) {
	assert.True(t, IsRelevant("Cleaner - Office Buildings", "evening shifts", "cleaner"))
	assert.False(t, IsRelevant("Cleaning Supervisor", "manage the crew", "cleaner"))
}

func TestRefugeeVocabulary(t *testing.T) {
	assert.True(t, IsRelevant(
		"Ukrainian Speaker Support Role",
		"help newly arrived families",
		"ukrainian support"))

	// Refugee term in the search but nothing refugee-related in the posting:
	// falls through; the fallback can still accept on word overlap.
	assert.False(t, IsRelevant("Data Entry Clerk", "office work", "refugee support"))
}

func TestFallback(t *testing.T) {
	// No domain claims "zookeeper"; title overlap on a >3 char word accepts.
	assert.True(t, IsRelevant("Zookeeper wanted", "feed the animals", "zookeeper"))

	// Executive blacklist blocks the fallback.
	assert.False(t, IsRelevant("Zookeeper Director - Head of Operations", "", "zookeeper"))

	// Terms under five characters never reach the fallback.
	assert.False(t, IsRelevant("Vet assistant", "", "vet"))

	// The length gate counts characters: "няня" is four characters even
	// though it is eight bytes, so it stays below the gate.
	assert.False(t, IsRelevant("Няня для детей", "", "няня"))
	assert.True(t, IsRelevant("Садовник в частный дом", "", "садовник"))
}

func TestDetectLanguageRequirement(t *testing.T) {
	assert.Equal(t, domain.LangNoLanguage,
		DetectLanguageRequirement("Warehouse Operative", "no language required"))
	assert.Equal(t, domain.LangNoLanguage,
		DetectLanguageRequirement("Delivery rider", "deliver food by bike"))
	assert.Equal(t, domain.LangUnknown,
		DetectLanguageRequirement("Accountant", "prepare reports"))
}

func TestIsRefugeeFriendly(t *testing.T) {
	assert.True(t, IsRefugeeFriendly("Support Worker", "integration program for refugees", "care"))
	assert.True(t, IsRefugeeFriendly("Translator", "", "ukrainian translator"))
	assert.False(t, IsRefugeeFriendly("Barista", "make coffee", "barista"))
}
