package httpapi

import "net/http"

func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	sh := SearchHandler{Engine: d.Engine, Hub: d.Hub}
	mux.HandleFunc("/search", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.Run,
	}))

	hh := HealthHandler{Engine: d.Engine}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	ch := CacheHandler{Cache: d.Engine.Cache(), Metrics: d.Metrics}
	mux.HandleFunc("/api/cache/stats", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Stats,
	}))
	mux.HandleFunc("/api/cache/cleanup", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ch.Cleanup,
	}))

	cfh := ConfigHandler{
		CfgVal:      d.CfgVal,
		OverlayPath: d.OverlayPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: cfh.Get,
		http.MethodPut: cfh.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: cfh.Path,
	}))

	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	return mux
}
