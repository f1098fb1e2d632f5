// Package cache stores rendered markup so repeated renders of the same
// template for the same players are served without re-running the pipeline.
//
// # Backends
//
//   - [FileCache]: JSON entries under a directory, for the CLI
//   - [RedisCache]: shared cache for the HTTP service
//   - [NullCache]: caching disabled
//
// # Keys
//
// A [Keyer] derives keys from a template's content hash and the options
// that affect its output. [ScopedKeyer] prefixes every key, so several
// services can share one Redis without colliding.
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.RenderKey(cache.Hash([]byte(src)), cache.RenderKeyOpts{
//	    Format:  "ansi",
//	    Players: []string{"mick", "steve"},
//	})
package cache

import (
	"context"
	"time"
)

// Default entry lifetimes. Output depends only on the key, so entries never
// go stale; the TTLs bound disk and memory use.
const (
	TTLParse  = 24 * time.Hour
	TTLRender = 24 * time.Hour
)

// Cache is a byte-oriented key/value store with per-entry expiry.
//
// Get reports a miss as (nil, false, nil); errors are reserved for backend
// failures. A zero ttl passed to Set means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
