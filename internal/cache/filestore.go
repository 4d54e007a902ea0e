package cache

import (
	"context"
	"encoding/binary"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

// FileStore is the on-disk fallback tier: one file per key under a single
// directory. Expiry is lazy; entries are deleted on touch and swept
// periodically. Each file carries an 8-byte big-endian unix-nano expiry
// header followed by the payload.
type FileStore struct {
	dir   string
	now   func() time.Time
	sweep *flock.Flock
}

const fileExt = ".bin"

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file cache mkdir: %w", err)
	}
	return &FileStore{
		dir:   dir,
		now:   time.Now,
		sweep: flock.New(filepath.Join(dir, ".sweep.lock")),
	}, nil
}

func (s *FileStore) path(key string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, key)
	return filepath.Join(s.dir, safe+fileExt)
}

func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	p := s.path(key)
	raw, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("file cache read: %w", err)
	}
	if len(raw) < 8 {
		_ = os.Remove(p)
		return nil, ErrNotFound
	}
	expires := time.Unix(0, int64(binary.BigEndian.Uint64(raw[:8])))
	if s.now().After(expires) {
		_ = os.Remove(p)
		return nil, ErrNotFound
	}
	return raw[8:], nil
}

func (s *FileStore) SetEx(_ context.Context, key string, value []byte, ttl time.Duration) error {
	buf := make([]byte, 8+len(value))
	binary.BigEndian.PutUint64(buf[:8], uint64(s.now().Add(ttl).UnixNano()))
	copy(buf[8:], value)

	p := s.path(key)
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, buf, 0o644); err != nil {
		return fmt.Errorf("file cache write: %w", err)
	}
	if err := os.Rename(tmp, p); err != nil {
		return fmt.Errorf("file cache rename: %w", err)
	}
	return nil
}

func (s *FileStore) Del(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("file cache del: %w", err)
	}
	return nil
}

// HIncrBy is a no-op; metrics mirroring only makes sense on the remote tier.
func (s *FileStore) HIncrBy(context.Context, string, string, int64) error { return nil }

// Sweep removes expired and unreadable entries. The flock keeps concurrent
// processes from sweeping the same directory at once; if another sweeper
// holds the lock we simply skip this round.
func (s *FileStore) Sweep(_ context.Context, now time.Time) (int, error) {
	locked, err := s.sweep.TryLock()
	if err != nil {
		return 0, fmt.Errorf("file cache sweep lock: %w", err)
	}
	if !locked {
		return 0, nil
	}
	defer func() { _ = s.sweep.Unlock() }()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("file cache sweep readdir: %w", err)
	}

	removed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		p := filepath.Join(s.dir, e.Name())
		raw, err := os.ReadFile(p)
		if err != nil || len(raw) < 8 {
			// unreadable or truncated: drop it
			if rmErr := os.Remove(p); rmErr == nil {
				removed++
			}
			continue
		}
		expires := time.Unix(0, int64(binary.BigEndian.Uint64(raw[:8])))
		if now.After(expires) {
			if rmErr := os.Remove(p); rmErr == nil {
				removed++
			}
		}
	}
	if removed > 0 {
		log.Printf("[cache] sweep removed %d expired entries from %s", removed, s.dir)
	}
	return removed, nil
}
