// Package geo fixes up user-typed city names before they reach providers.
package geo

import (
	"log"
	"strings"
)

// corrections maps frequent misspellings and Cyrillic spellings to the
// canonical provider-facing name.
var corrections = map[string]string{
	"rostok":  "Rostock",
	"berlinn": "Berlin",
	"munhen":  "Munich",
	"мюнхен":  "Munich",
	"варшава": "Warsaw",
	"kiev":    "Kyiv",
	"киев":    "Kyiv",
	"londonn": "London",
	"лондон":  "London",
	"париж":   "Paris",
}

// NormalizeCity corrects a known misspelling, logging the substitution.
// Unrecognized names pass through trimmed but otherwise untouched.
func NormalizeCity(city string) string {
	trimmed := strings.TrimSpace(city)
	if trimmed == "" {
		return ""
	}
	if fixed, ok := corrections[strings.ToLower(trimmed)]; ok {
		if fixed != trimmed {
			log.Printf("[geo] corrected city %q to %q", trimmed, fixed)
		}
		return fixed
	}
	return trimmed
}
