package httpapi

import (
	"sync/atomic"

	"globaljobhunter-engine/internal/config"
	"globaljobhunter-engine/internal/domain"
	"globaljobhunter-engine/internal/events"
	"globaljobhunter-engine/internal/search"
	"globaljobhunter-engine/internal/source"
)

type Deps struct {
	Engine *search.Engine

	// Hub carries search lifecycle events to passive observers on /events.
	Hub *events.Hub

	// Metrics holds the per-source counters surfaced on /api/cache/stats.
	Metrics map[domain.SourceKind]*source.Metrics

	// CfgVal stores config.Config and is swapped atomically on PUT /config.
	CfgVal      *atomic.Value
	OverlayPath string
	LoadCfg     func() (config.Config, error)
}
