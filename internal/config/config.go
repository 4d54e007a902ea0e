// Package config assembles the engine configuration from environment
// variables, with an optional YAML overlay for limits and source toggles.
// Credentials come from the environment only and are never serialized.
package config

import (
	"os"
	"strconv"
)

type SourceConfig struct {
	Enabled     bool `yaml:"enabled"`
	PerMinute   int  `yaml:"per_minute"`
	CooldownSec int  `yaml:"cooldown_sec"`
	TimeoutSec  int  `yaml:"timeout_sec"`
	MaxPages    int  `yaml:"max_pages,omitempty"` // paginated sources only
}

type Config struct {
	App struct {
		Port          int    `yaml:"port"`
		CacheDir      string `yaml:"cache_dir"`
		CacheTTLHours int    `yaml:"cache_ttl_hours"`
		SweepCron     string `yaml:"sweep_cron"`
	} `yaml:"app"`

	Sources struct {
		Adzuna    SourceConfig `yaml:"adzuna"`
		Careerjet SourceConfig `yaml:"careerjet"`
		Jobicy    SourceConfig `yaml:"jobicy"`
	} `yaml:"sources"`

	// Credentials are env-only: excluded from the YAML overlay and from
	// SaveAtomic output.
	Credentials struct {
		RedisURL        string
		AdzunaAppID     string
		AdzunaAppKey    string
		CareerjetAPIKey string
		CareerjetAffID  string
	} `yaml:"-"`
}

// FromEnv builds the baseline configuration. Every knob has a default; a
// source without credentials comes up disabled.
func FromEnv() Config {
	var cfg Config

	cfg.App.Port = envInt("ENGINE_PORT", 38471)
	cfg.App.CacheDir = envStr("CACHE_DIR", "cache")
	cfg.App.CacheTTLHours = envInt("CACHE_TTL_HOURS", 24)
	cfg.App.SweepCron = envStr("SWEEP_CRON", "@hourly")

	cfg.Credentials.RedisURL = os.Getenv("REDIS_URL")
	cfg.Credentials.AdzunaAppID = os.Getenv("ADZUNA_APP_ID")
	cfg.Credentials.AdzunaAppKey = os.Getenv("ADZUNA_APP_KEY")
	cfg.Credentials.CareerjetAPIKey = os.Getenv("CAREERJET_API_KEY")
	cfg.Credentials.CareerjetAffID = os.Getenv("CAREERJET_AFFID")

	cfg.Sources.Adzuna = SourceConfig{
		Enabled:     cfg.Credentials.AdzunaAppID != "" && cfg.Credentials.AdzunaAppKey != "",
		PerMinute:   envInt("ADZUNA_PER_MINUTE", 30),
		CooldownSec: envInt("ADZUNA_COOLDOWN_SEC", 120),
		TimeoutSec:  envInt("ADZUNA_TIMEOUT_SEC", 15),
	}
	cfg.Sources.Careerjet = SourceConfig{
		Enabled:     cfg.Credentials.CareerjetAPIKey != "",
		PerMinute:   envInt("CAREERJET_PER_MINUTE", 25),
		CooldownSec: envInt("CAREERJET_COOLDOWN_SEC", 150),
		TimeoutSec:  envInt("CAREERJET_TIMEOUT_SEC", 15),
		MaxPages:    envInt("CAREERJET_MAX_PAGES", 15),
	}
	cfg.Sources.Jobicy = SourceConfig{
		Enabled:     envBool("JOBICY_ENABLED", true),
		PerMinute:   envInt("JOBICY_PER_MINUTE", 10),
		CooldownSec: envInt("JOBICY_COOLDOWN_SEC", 300),
		TimeoutSec:  envInt("JOBICY_TIMEOUT_SEC", 20),
	}
	return cfg
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
