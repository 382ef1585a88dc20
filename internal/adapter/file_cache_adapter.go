package adapter

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"quizforge/internal/domain"
)

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)

// FileCacheAdapter implements the domain.Cache interface on a
// directory of JSON files, one file per key. Writes go to a temp file
// in the same directory followed by a rename, so concurrent writers
// never expose a partially written entry; the last writer wins.
//
// Expiration is ignored: entries never expire by time.
type FileCacheAdapter struct {
	dir string
}

// NewFileCacheAdapter creates the cache directory if needed and
// returns an adapter over it.
func NewFileCacheAdapter(dir string) (domain.Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCacheAdapter{dir: dir}, nil
}

func (f *FileCacheAdapter) path(key string) string {
	return filepath.Join(f.dir, unsafeKeyChars.ReplaceAllString(key, "_")+".json")
}

// Get retrieves an entry, translating a missing file to ErrCacheMiss.
func (f *FileCacheAdapter) Get(ctx context.Context, key string) (string, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", domain.ErrCacheMiss
		}
		return "", err
	}
	return string(data), nil
}

// Set writes an entry atomically via temp file plus rename.
func (f *FileCacheAdapter) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	tmp, err := os.CreateTemp(f.dir, "write-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, f.path(key)); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// Delete removes an entry; a missing file is not an error.
func (f *FileCacheAdapter) Delete(ctx context.Context, key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Ping verifies the cache directory is still present and writable.
func (f *FileCacheAdapter) Ping(ctx context.Context) error {
	info, err := os.Stat(f.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return domain.CacheError("cache: path is not a directory")
	}
	return nil
}
