package httpapi

import (
	"encoding/json"
	"net/http"
)

// writeJSON encodes v onto an already-started response, for handlers that
// manage their own status and headers.
func writeJSON(w http.ResponseWriter, v any) {
	enc := json.NewEncoder(w)
	_ = enc.Encode(v)
}

// methodMux dispatches one route by HTTP method so GET and PUT of the same
// path can live in different handlers.
func methodMux(m map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h, ok := m[r.Method]; ok {
			h(w, r)
			return
		}
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
