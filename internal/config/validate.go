package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate rejects configurations the engine cannot run with. Warnings are
// not modeled; anything survivable gets a default instead.
func Validate(cfg Config) error {
	var errs []string

	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		errs = append(errs, "app.port must be 1..65535")
	}
	if cfg.App.CacheTTLHours <= 0 {
		errs = append(errs, "app.cache_ttl_hours must be > 0")
	}
	if strings.TrimSpace(cfg.App.CacheDir) == "" {
		errs = append(errs, "app.cache_dir is required")
	}

	checkSource := func(name string, sc SourceConfig) {
		if !sc.Enabled {
			return
		}
		if sc.PerMinute <= 0 {
			errs = append(errs, fmt.Sprintf("sources.%s.per_minute must be > 0", name))
		}
		if sc.CooldownSec <= 0 {
			errs = append(errs, fmt.Sprintf("sources.%s.cooldown_sec must be > 0", name))
		}
		if sc.TimeoutSec <= 0 {
			errs = append(errs, fmt.Sprintf("sources.%s.timeout_sec must be > 0", name))
		}
	}
	checkSource("adzuna", cfg.Sources.Adzuna)
	checkSource("careerjet", cfg.Sources.Careerjet)
	checkSource("jobicy", cfg.Sources.Jobicy)

	if cfg.Sources.Careerjet.Enabled && cfg.Sources.Careerjet.MaxPages <= 0 {
		errs = append(errs, "sources.careerjet.max_pages must be > 0")
	}

	if cfg.Sources.Adzuna.Enabled &&
		(cfg.Credentials.AdzunaAppID == "" || cfg.Credentials.AdzunaAppKey == "") {
		errs = append(errs, "ADZUNA_APP_ID and ADZUNA_APP_KEY are required when adzuna is enabled")
	}
	if cfg.Sources.Careerjet.Enabled && cfg.Credentials.CareerjetAPIKey == "" {
		errs = append(errs, "CAREERJET_API_KEY is required when careerjet is enabled")
	}

	if !cfg.Sources.Adzuna.Enabled && !cfg.Sources.Careerjet.Enabled && !cfg.Sources.Jobicy.Enabled {
		errs = append(errs, "no sources enabled")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}
