package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/brdgme/markup/pkg/cache"
	"github.com/brdgme/markup/pkg/observability"
	"github.com/brdgme/markup/pkg/render"
)

// Runner executes the pipeline with caching.
//
// A Runner holds no per-render state, so one Runner can serve many
// goroutines at once.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is the lifetime of cached output. Zero uses cache.TTLRender.
	TTL time.Duration
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses cache.DefaultKeyer and a nil logger discards output.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = discardLogger()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute renders opts.Template, serving it from the cache when possible.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger
	format := render.Format(opts.Format)
	key := r.Keyer.RenderKey(opts.TemplateHash(), opts.CacheKeyOpts())

	result := &Result{
		Format: format,
		Stats:  Stats{TemplateBytes: len(opts.Template)},
	}

	if !opts.Refresh {
		if data, ok := r.lookup(ctx, key, "render"); ok {
			result.Output = data
			result.Stats.OutputBytes = len(data)
			result.CacheHit = true
			logger.Debug("cache hit", "format", format, "bytes", len(data))
			return result, nil
		}
	}

	start := time.Now()
	nodes, err := r.Parse(ctx, opts.Template)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Stats.ParseTime = time.Since(start)

	start = time.Now()
	flat, err := r.Transform(ctx, nodes, opts.Players)
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}
	result.Nodes = flat
	result.Stats.NodeCount = len(flat)
	result.Stats.TransformTime = time.Since(start)

	start = time.Now()
	out, err := r.Render(ctx, format, flat)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Output = out
	result.Stats.OutputBytes = len(out)
	result.Stats.RenderTime = time.Since(start)

	r.store(ctx, key, "render", out)

	logger.Info("rendered",
		"format", format,
		"players", len(opts.Players),
		"bytes", len(out),
		"duration", result.Stats.Total())

	return result, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// lookup reads key from the cache. Backend errors are logged and treated
// as misses so a broken cache never fails a render.
func (r *Runner) lookup(ctx context.Context, key, keyType string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "key", key, "error", err)
		hit = false
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, keyType)
	} else {
		observability.Cache().OnCacheMiss(ctx, keyType)
	}
	return data, hit
}

// store writes data to the cache, retrying transient failures.
func (r *Runner) store(ctx context.Context, key, keyType string, data []byte) {
	ttl := r.TTL
	if ttl == 0 {
		ttl = cache.TTLRender
	}
	err := cache.RetryWithBackoff(ctx, func() error {
		return r.Cache.Set(ctx, key, data, ttl)
	})
	if err != nil {
		r.Logger.Warn("cache write failed", "key", key, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// applyLogger sets the runner's logger on opts if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
