package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stepdoc/pkg/cache"
	"github.com/matzehuels/stepdoc/pkg/graph"
	"github.com/matzehuels/stepdoc/pkg/observability"
	"github.com/matzehuels/stepdoc/pkg/traverse"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration
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
		TTL:    cache.DefaultTTL,
	}
}

// cachedDoc is the cache entry of a rendered document.
type cachedDoc struct {
	PDF   []byte `json:"pdf"`
	Pages int    `json:"pages"`
}

// Execute runs the complete parse → layout → render pipeline with caching.
// Layout is skipped on a cache hit since the cached document already holds
// the drawing.
func (r *Runner) Execute(ctx context.Context, opts Options, source []byte) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	result := &Result{}

	// Stage 1: Parse
	parseStart := time.Now()
	g, err := Parse(ctx, source, opts)
	if err != nil {
		return nil, err
	}
	result.Graph = g
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.NodeCount = g.Len()
	result.Stats.ArcCount = len(g.Arcs())
	result.Stats.Positioned = g.HasPositions()
	opts.Logger.Debug("parsed graph", "nodes", g.Len(), "arcs", result.Stats.ArcCount, "duration", result.Stats.ParseTime)

	result.Key = r.Keyer.DocumentKey(source, opts)
	if !opts.Refresh {
		if doc, ok := r.lookup(ctx, result.Key); ok {
			result.PDF, result.Pages, result.CacheHit = doc.PDF, doc.Pages, true
			if opts.Algorithm == AlgorithmDijkstra {
				if result.Distances, err = traverse.Distances(g, opts.Start-1); err != nil {
					return nil, err
				}
			}
			opts.Logger.Debug("document from cache", "key", result.Key)
			return result, nil
		}
	}

	// Stage 2: Layout
	layoutStart := time.Now()
	if _, err := Layout(ctx, g, opts); err != nil {
		return nil, err
	}
	result.Stats.LayoutTime = time.Since(layoutStart)

	// Stage 3: Render
	renderStart := time.Now()
	out, err := Render(ctx, g, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.RenderTime = time.Since(renderStart)
	result.PDF, result.Pages, result.Distances = out.PDF, out.Pages, out.Distances
	opts.Logger.Debug("rendered document", "pages", out.Pages, "bytes", len(out.PDF), "duration", result.Stats.RenderTime)

	r.store(ctx, result.Key, cachedDoc{PDF: out.PDF, Pages: out.Pages})
	return result, nil
}

// Distances parses source and returns the distance table from the start
// node without rendering anything.
func (r *Runner) Distances(ctx context.Context, opts Options, source []byte) ([]float64, *graph.Graph, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, err
	}
	g, err := Parse(ctx, source, opts)
	if err != nil {
		return nil, nil, err
	}
	d, err := traverse.Distances(g, opts.Start-1)
	if err != nil {
		return nil, nil, err
	}
	return d, g, nil
}

func (r *Runner) lookup(ctx context.Context, key string) (cachedDoc, bool) {
	hooks := observability.Cache()
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "err", err)
	}
	var doc cachedDoc
	if err != nil || !hit || json.Unmarshal(data, &doc) != nil || len(doc.PDF) == 0 {
		hooks.OnCacheMiss(ctx, "doc")
		return cachedDoc{}, false
	}
	hooks.OnCacheHit(ctx, "doc")
	return doc, true
}

func (r *Runner) store(ctx context.Context, key string, doc cachedDoc) {
	data, err := json.Marshal(doc)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "doc", len(data))
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
