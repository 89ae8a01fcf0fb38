package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/soerensenkarl/DrawTruss/pkg/cache"
	"github.com/soerensenkarl/DrawTruss/pkg/errors"
	"github.com/soerensenkarl/DrawTruss/pkg/observability"
	"github.com/soerensenkarl/DrawTruss/pkg/render"
	"github.com/soerensenkarl/DrawTruss/pkg/sketch"
	"github.com/soerensenkarl/DrawTruss/pkg/truss"
	"github.com/soerensenkarl/DrawTruss/pkg/vectorize"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
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

// Execute runs the complete vectorize → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, sk sketch.Sketch, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}
	result.Stats.StrokeCount = sk.StrokeCount()

	// Stage 1: Vectorize
	vecStart := time.Now()
	g, vecHit, err := r.VectorizeWithCacheInfo(ctx, sk, opts)
	if err != nil {
		return nil, err
	}
	result.Graph = g
	result.Stats.VectorizeTime = time.Since(vecStart)
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()
	result.CacheInfo.VectorizeHit = vecHit

	// Compute graph hash for cache keys and API responses
	if graphData, err := truss.Marshal(g); err == nil {
		result.GraphHash = cache.Hash(graphData)
	}

	r.Logger.Info("vectorized sketch",
		"strokes", sk.StrokeCount(),
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.VectorizeTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, g, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// VectorizeWithCacheInfo converts a sketch with caching and returns cache hit info.
func (r *Runner) VectorizeWithCacheInfo(ctx context.Context, sk sketch.Sketch, opts Options) (truss.Graph, bool, error) {
	if err := opts.ValidateForVectorize(); err != nil {
		return truss.Graph{}, false, err
	}
	r.applyLogger(&opts)

	sketchHash, err := hashSketch(sk)
	if err != nil {
		return truss.Graph{}, false, err
	}
	cacheKey := r.Keyer.GraphKey(sketchHash, opts.graphKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if g, err := truss.Unmarshal(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "graph")
				return g, true, nil // Cache hit
			}
		}
		observability.Cache().OnCacheMiss(ctx, "graph")
	}

	// Vectorize
	vecStart := time.Now()
	observability.Pipeline().OnVectorizeStart(ctx, sk.StrokeCount())
	g := vectorize.Vectorize(sk.Strokes, vectorize.Options{
		SnapRadius:      opts.SnapRadius,
		SimplifyEpsilon: opts.Epsilon,
	})
	observability.Pipeline().OnVectorizeComplete(ctx, g.NodeCount(), g.EdgeCount(), time.Since(vecStart), nil)

	// Cache the result
	if data, err := truss.Marshal(g); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLGraph)
		observability.Cache().OnCacheSet(ctx, "graph", len(data))
	}

	return g, false, nil // Cache miss
}

// Vectorize is a convenience wrapper that calls VectorizeWithCacheInfo and discards the cache hit info.
func (r *Runner) Vectorize(ctx context.Context, sk sketch.Sketch, opts Options) (truss.Graph, error) {
	g, _, err := r.VectorizeWithCacheInfo(ctx, sk, opts)
	return g, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g truss.Graph, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	graphData, err := truss.Marshal(g)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "serialize graph for cache key")
	}
	graphHash := cache.Hash(graphData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(graphHash, opts.artifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil // All artifacts from cache
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	// Render all formats
	rendered := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		renderStart := time.Now()
		observability.Pipeline().OnRenderStart(ctx, format)
		data, err := r.renderFormat(ctx, g, format, opts)
		observability.Pipeline().OnRenderComplete(ctx, format, len(data), time.Since(renderStart), err)
		if err != nil {
			return nil, false, err
		}
		rendered[format] = data
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(graphHash, opts.artifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, g truss.Graph, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, g, opts)
	return artifacts, err
}

func (r *Runner) renderFormat(ctx context.Context, g truss.Graph, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		style, ok := render.StyleByName(opts.Style, opts.Seed)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q", opts.Style)
		}
		svgOpts := []render.SVGOption{render.WithStyle(style)}
		if opts.Labels {
			svgOpts = append(svgOpts, render.WithLabels())
		}
		if opts.Width > 0 && opts.Height > 0 {
			svgOpts = append(svgOpts, render.WithSize(opts.Width, opts.Height))
		}
		return render.RenderSVG(g, svgOpts...), nil
	case FormatJSON:
		return render.ExportJSON(g)
	case FormatDOT:
		return []byte(render.ToDOT(g)), nil
	case FormatPNG:
		return render.RenderDOTPNG(ctx, render.ToDOT(g))
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
	}
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

// hashSketch computes the content hash of a sketch's canonical JSON form.
func hashSketch(sk sketch.Sketch) (string, error) {
	var buf bytes.Buffer
	if err := sketch.WriteJSON(sk, &buf); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "serialize sketch for cache key")
	}
	return cache.Hash(buf.Bytes()), nil
}
