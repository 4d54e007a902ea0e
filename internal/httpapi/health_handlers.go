package httpapi

import (
	"net/http"
	"time"

	"globaljobhunter-engine/internal/search"
)

type HealthHandler struct {
	Engine *search.Engine
}

// Health reports per-source breaker state alongside the liveness flag.
func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	sources := make(map[string]bool)
	for _, a := range h.Engine.Adapters() {
		sources[a.Kind().String()] = a.Healthy()
	}
	writeJSON(w, map[string]any{
		"ok":      true,
		"time":    time.Now().UTC().Format(time.RFC3339),
		"sources": sources,
	})
}
