package mast

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/gideongrinberg/tesslocate/internal/domain"
)

const cacheFileName = "tess_ffi_footprint_cache.json"

// Store caches the downloaded catalog on disk so repeated runs skip the
// network. The cache lives in one file under the store's directory.
type Store struct {
	dir    string
	client *Client
	logger *slog.Logger
}

// NewStore creates a Store rooted at dir. An empty dir selects a "tesslocate"
// directory under the user cache dir (respecting XDG_CACHE_HOME).
func NewStore(dir string, client *Client, logger *slog.Logger) (*Store, error) {
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolve cache dir: %w", err)
		}
		dir = filepath.Join(base, "tesslocate")
	}
	return &Store{dir: dir, client: client, logger: logger}, nil
}

// Path returns the location of the cache file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, cacheFileName)
}

// Load returns the catalog records, reading the cache file when present and
// downloading (then saving) otherwise. refresh forces a download. A cached
// file that no longer decodes is an error rather than a silent re-download,
// so corruption doesn't go unnoticed; --refresh recovers.
func (s *Store) Load(ctx context.Context, refresh bool) ([]domain.FootprintRecord, error) {
	path := s.Path()

	if !refresh {
		if data, err := os.ReadFile(path); err == nil {
			records, err := DecodeCatalog(data)
			if err != nil {
				return nil, fmt.Errorf("cached footprint catalog %s is unreadable (use --refresh to re-download): %w", path, err)
			}
			s.logger.Info("using cached FFI footprints", "path", path, "footprints", len(records))
			return records, nil
		}
		s.logger.Info("footprint cache not found, downloading", "path", path)
	}

	data, err := s.client.FetchCatalog(ctx)
	if err != nil {
		return nil, err
	}
	records, err := DecodeCatalog(data)
	if err != nil {
		return nil, err
	}

	if err := s.save(path, data); err != nil {
		// The in-memory catalog is still good; a failed save only costs the
		// next run a download.
		s.logger.Warn("failed to save footprint cache", "path", path, "error", err)
	} else {
		s.logger.Info("saved footprints to cache file", "path", path)
	}
	return records, nil
}

// save writes the catalog atomically under an advisory file lock so
// concurrent tesslocate runs don't interleave writes.
func (s *Store) save(path string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock cache file: %w", err)
	}
	if !locked {
		return fmt.Errorf("cache file %s is locked by another process", path)
	}
	defer lock.Unlock() //nolint:errcheck // advisory lock release is best-effort

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Info describes the current cache file for diagnostics.
type Info struct {
	Path    string
	Size    int64
	ModTime time.Time
	Exists  bool
}

// Stat reports the cache file's path, size, and age.
func (s *Store) Stat() (Info, error) {
	path := s.Path()
	fi, err := os.Stat(path)
	if os.IsNotExist(err) {
		return Info{Path: path}, nil
	}
	if err != nil {
		return Info{Path: path}, err
	}
	return Info{Path: path, Size: fi.Size(), ModTime: fi.ModTime(), Exists: true}, nil
}

// Clear removes the cache file if present.
func (s *Store) Clear() error {
	err := os.Remove(s.Path())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
