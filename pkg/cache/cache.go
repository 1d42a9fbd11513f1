// Package cache stores rendered documents between runs.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory, the default for
//     the CLI (see [DefaultDir])
//   - [RedisCache]: a shared Redis instance, for several servers behind a
//     load balancer
//   - [NullCache]: stores nothing, used with --no-cache
//
// [Open] picks a backend from a URL.
//
// # Keys
//
// Keys come from a [Keyer]. [DefaultKeyer] hashes the graph source together
// with every option that changes the output, so equal requests share an
// entry:
//
//	key := cache.NewDefaultKeyer().DocumentKey(source, opts)
//	// doc:3f2a...
package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/matzehuels/stepdoc/pkg/errors"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value for key. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}

// DefaultTTL is how long rendered documents are kept.
const DefaultTTL = 7 * 24 * time.Hour

// DefaultDir returns the XDG cache directory for stepdoc, usually
// ~/.cache/stepdoc.
func DefaultDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "locate cache directory")
	}
	return filepath.Join(dir, "stepdoc"), nil
}

// Open returns the cache described by url:
//
//   - "" or "file": a FileCache in DefaultDir
//   - "file:///some/dir": a FileCache in /some/dir
//   - "redis://..." or "rediss://...": a RedisCache
//   - "none": a NullCache
func Open(ctx context.Context, url string) (Cache, error) {
	var (
		c   Cache
		err error
	)
	switch {
	case url == "none":
		return NewNullCache(), nil
	case url == "" || url == "file":
		var dir string
		if dir, err = DefaultDir(); err == nil {
			c, err = NewFileCache(dir)
		}
	case strings.HasPrefix(url, "file://"):
		c, err = NewFileCache(strings.TrimPrefix(url, "file://"))
	case strings.HasPrefix(url, "redis://"), strings.HasPrefix(url, "rediss://"):
		c, err = NewRedisCache(ctx, url)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unsupported cache URL %q", url)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
