package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.SetEx(ctx, "term_search:abc123", []byte("payload"), time.Hour))
	got, err := s.Get(ctx, "term_search:abc123")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)

	require.NoError(t, s.Del(ctx, "term_search:abc123"))
	_, err = s.Get(ctx, "term_search:abc123")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreMissingKey(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, s.Del(context.Background(), "nope"))
}

func TestFileStoreLazyExpiry(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	now := time.Now()
	s.now = func() time.Time { return now }
	require.NoError(t, s.SetEx(ctx, "k", []byte("v"), time.Minute))

	now = now.Add(2 * time.Minute)
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)

	// the expired file was removed on touch
	_, statErr := os.Stat(s.path("k"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestFileStoreSweep(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	now := time.Now()
	s.now = func() time.Time { return now }
	require.NoError(t, s.SetEx(ctx, "live", []byte("v"), time.Hour))
	require.NoError(t, s.SetEx(ctx, "dead", []byte("v"), time.Minute))
	// a truncated file counts as garbage
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stub"+fileExt), []byte("xx"), 0o644))

	removed, err := s.Sweep(ctx, now.Add(10*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, err = s.Get(ctx, "live")
	assert.NoError(t, err)
}

func TestFileStoreKeySanitization(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.SetEx(ctx, "job_search:../../etc/passwd", []byte("v"), time.Hour))
	got, err := s.Get(ctx, "job_search:../../etc/passwd")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	entries, err := os.ReadDir(s.dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), string(os.PathSeparator))
	}
}
