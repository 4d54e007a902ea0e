// Package source defines the adapter contract external job providers plug
// into, plus the shared HTTP, error, and metrics plumbing they reuse.
package source

import (
	"context"

	"globaljobhunter-engine/internal/domain"
)

// Adapter is one external provider. Implementations own their rate limiter
// and breaker; the orchestrator only asks whether the source is healthy and
// runs Search.
type Adapter interface {
	Kind() domain.SourceKind

	// Supports reports whether the provider can serve the country code.
	Supports(country string) bool

	// Healthy is false while the adapter's breaker is cooling down.
	Healthy() bool

	// Search executes the adapter's planned tuples for these preferences.
	// emit receives batches as they are classified; tick reports tuple
	// progress; cancelled is polled between tuples and before every call.
	// A partial result with a nil error is a valid outcome of cancellation.
	Search(ctx context.Context, prefs domain.Preferences, emit domain.BatchEmit, tick domain.TickEmit, cancelled domain.CancelCheck) ([]domain.Vacancy, error)
}
