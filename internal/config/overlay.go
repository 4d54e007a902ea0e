package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type overlayFile struct {
	App struct {
		Port          *int    `yaml:"port"`
		CacheDir      *string `yaml:"cache_dir"`
		CacheTTLHours *int    `yaml:"cache_ttl_hours"`
		SweepCron     *string `yaml:"sweep_cron"`
	} `yaml:"app"`
	Sources struct {
		Adzuna    *SourceConfig `yaml:"adzuna"`
		Careerjet *SourceConfig `yaml:"careerjet"`
		Jobicy    *SourceConfig `yaml:"jobicy"`
	} `yaml:"sources"`
}

// Overlay applies an optional YAML file on top of the env baseline. A
// missing file is not an error; operators that want file-driven limits opt
// in by creating one.
func Overlay(cfg *Config, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var of overlayFile
	if err := yaml.Unmarshal(b, &of); err != nil {
		return err
	}

	if of.App.Port != nil {
		cfg.App.Port = *of.App.Port
	}
	if of.App.CacheDir != nil {
		cfg.App.CacheDir = *of.App.CacheDir
	}
	if of.App.CacheTTLHours != nil {
		cfg.App.CacheTTLHours = *of.App.CacheTTLHours
	}
	if of.App.SweepCron != nil {
		cfg.App.SweepCron = *of.App.SweepCron
	}
	if of.Sources.Adzuna != nil {
		cfg.Sources.Adzuna = *of.Sources.Adzuna
	}
	if of.Sources.Careerjet != nil {
		cfg.Sources.Careerjet = *of.Sources.Careerjet
	}
	if of.Sources.Jobicy != nil {
		cfg.Sources.Jobicy = *of.Sources.Jobicy
	}
	return nil
}
