package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/netcanvas/netcanvas/pkg/cache"
	"github.com/netcanvas/netcanvas/pkg/diagram"
	"github.com/netcanvas/netcanvas/pkg/errors"
	"github.com/netcanvas/netcanvas/pkg/layered"
	"github.com/netcanvas/netcanvas/pkg/layout"
	"github.com/netcanvas/netcanvas/pkg/observability"
)

// Runner encapsulates layout execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store layout results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Apply is a convenience wrapper that calls ApplyWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Apply(ctx context.Context, d *diagram.Diagram, opts Options) (layout.Result, error) {
	res, _, err := r.ApplyWithCacheInfo(ctx, d, opts)
	return res, err
}

// ApplyWithCacheInfo runs a layout pass with caching and returns cache hit
// info. The diagram is validated first; the input is never mutated - the
// result is a diff for the caller to merge.
func (r *Runner) ApplyWithCacheInfo(ctx context.Context, d *diagram.Diagram, opts Options) (layout.Result, bool, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()

	if err := errors.ValidateDiagram(d); err != nil {
		return layout.Result{}, false, err
	}

	engine := opts.Engine
	if engine == nil {
		engine = layered.NewGraphviz()
	}

	// Compute cache key from diagram content and options
	diagramData, err := diagram.Marshal(d)
	if err != nil {
		return layout.Result{}, false, fmt.Errorf("serialize diagram for cache key: %w", err)
	}
	cacheKey := r.Keyer.LayoutKey(cache.Hash(diagramData), opts.LayoutKeyOpts())

	// Try cache first (unless refresh requested or the pass is uncacheable)
	if opts.Cacheable() && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached layout.Result
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached, true, nil
			}
			// If deserialization fails, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	start := time.Now()
	observability.Layout().OnLayoutStart(ctx, opts.Boundary, d.NodeCount())

	res, err := layout.Apply(ctx, engine, opts.Boundary, d.Nodes, d.Edges, opts.LayoutOptions())
	observability.Layout().OnLayoutComplete(ctx, opts.Boundary, time.Since(start), err)
	if err != nil {
		return layout.Result{}, false, err
	}

	if res.Collision != nil {
		observability.Layout().OnCollisionPass(ctx, opts.Boundary,
			res.Collision.NudgedCount, res.Collision.HadCollisions)
	}

	r.Logger.Debug("computed layout",
		"boundary", opts.Boundary,
		"positions", len(res.Positions),
		"duration", time.Since(start))

	// Cache the result
	if opts.Cacheable() {
		if data, err := json.Marshal(res); err == nil {
			_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}

	return res, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
