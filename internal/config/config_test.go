package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()
	assert.Equal(t, 38471, cfg.App.Port)
	assert.Equal(t, "cache", cfg.App.CacheDir)
	assert.Equal(t, 24, cfg.App.CacheTTLHours)
	assert.Equal(t, "@hourly", cfg.App.SweepCron)
	assert.Equal(t, 120, cfg.Sources.Adzuna.CooldownSec)
	assert.Equal(t, 150, cfg.Sources.Careerjet.CooldownSec)
	assert.True(t, cfg.Sources.Jobicy.Enabled)
}

func TestFromEnvCredentialsEnableSources(t *testing.T) {
	t.Setenv("ADZUNA_APP_ID", "id")
	t.Setenv("ADZUNA_APP_KEY", "key")
	t.Setenv("CAREERJET_API_KEY", "cjkey")
	t.Setenv("ENGINE_PORT", "9999")

	cfg := FromEnv()
	assert.True(t, cfg.Sources.Adzuna.Enabled)
	assert.True(t, cfg.Sources.Careerjet.Enabled)
	assert.Equal(t, 9999, cfg.App.Port)
	assert.Equal(t, "id", cfg.Credentials.AdzunaAppID)
}

func TestOverlayAppliesPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  cache_ttl_hours: 6
sources:
  careerjet:
    enabled: true
    per_minute: 10
    cooldown_sec: 60
    timeout_sec: 10
    max_pages: 3
`), 0o644))

	cfg := FromEnv()
	require.NoError(t, Overlay(&cfg, path))

	assert.Equal(t, 6, cfg.App.CacheTTLHours)
	assert.Equal(t, 38471, cfg.App.Port, "untouched fields keep env values")
	assert.Equal(t, 3, cfg.Sources.Careerjet.MaxPages)
	assert.Equal(t, 10, cfg.Sources.Careerjet.PerMinute)
}

func TestOverlayMissingFileIsFine(t *testing.T) {
	cfg := FromEnv()
	assert.NoError(t, Overlay(&cfg, filepath.Join(t.TempDir(), "absent.yml")))
}

func TestValidateRejectsBrokenConfig(t *testing.T) {
	cfg := FromEnv()
	cfg.App.Port = 0
	cfg.Sources.Careerjet.Enabled = true
	cfg.Sources.Careerjet.MaxPages = 0

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app.port")
	assert.Contains(t, err.Error(), "max_pages")
	assert.Contains(t, err.Error(), "CAREERJET_API_KEY")
}

func TestValidateRequiresAtLeastOneSource(t *testing.T) {
	cfg := FromEnv()
	cfg.Sources.Adzuna.Enabled = false
	cfg.Sources.Careerjet.Enabled = false
	cfg.Sources.Jobicy.Enabled = false

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sources enabled")
}

func TestSaveAtomicRoundTripExcludesCredentials(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yml")

	cfg := FromEnv()
	cfg.Credentials.AdzunaAppKey = "super-secret"
	require.NoError(t, SaveAtomic(path, cfg))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "super-secret")

	loaded := FromEnv()
	require.NoError(t, Overlay(&loaded, path))
	assert.Equal(t, cfg.App, loaded.App)
}

func TestEnsureOverlaySeedsOnce(t *testing.T) {
	dir := t.TempDir()
	cfg := FromEnv()

	path, err := EnsureOverlay(dir, cfg)
	require.NoError(t, err)
	assert.FileExists(t, path)

	// second call must not overwrite an edited file
	require.NoError(t, os.WriteFile(path, []byte("app:\n  port: 1234\n"), 0o644))
	again, err := EnsureOverlay(dir, cfg)
	require.NoError(t, err)
	assert.Equal(t, path, again)
	b, _ := os.ReadFile(path)
	assert.Contains(t, string(b), "1234")
}
