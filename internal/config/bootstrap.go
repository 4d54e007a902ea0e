package config

import (
	"errors"
	"os"
	"path/filepath"
)

// EnsureOverlay makes sure an editable overlay file exists next to the cache
// directory, seeding it from the current configuration on first run so
// operators have something concrete to tune.
func EnsureOverlay(dir string, cfg Config) (string, error) {
	path := filepath.Join(dir, "engine.yml")

	_, err := os.Stat(path)
	if err == nil {
		return path, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	if err := SaveAtomic(path, cfg); err != nil {
		return "", err
	}
	return path, nil
}
