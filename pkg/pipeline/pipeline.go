// Package pipeline provides the core vectorization pipeline for DrawTruss.
//
// This package implements the complete decode → vectorize → render
// pipeline that can be used by CLI and API components. By centralizing
// this logic, we ensure consistent behavior across all entry points and
// avoid code duplication.
//
// # Architecture
//
// The pipeline consists of two computed stages over a decoded sketch:
//
//  1. Vectorize: Convert freehand strokes into a planar truss graph
//  2. Render: Generate output in various formats (SVG, JSON, DOT, PNG)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    SnapRadius: 10,
//	    Formats:    []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, sk, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/soerensenkarl/DrawTruss/pkg/cache"
	"github.com/soerensenkarl/DrawTruss/pkg/errors"
	"github.com/soerensenkarl/DrawTruss/pkg/truss"
	"github.com/soerensenkarl/DrawTruss/pkg/vectorize"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultSnapRadius is the endpoint clustering distance in sketch units.
	DefaultSnapRadius = vectorize.DefaultSnapRadius

	// DefaultSeed is the default jitter seed for the handdrawn style.
	DefaultSeed = uint64(42)

	// DefaultStyle is the default visual style.
	DefaultStyle = "simple"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatPNG  = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatPNG:  true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	"simple":    true,
	"handdrawn": true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the vectorization pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Vectorize options
	SnapRadius float64 `json:"snap_radius,omitempty"`
	Epsilon    float64 `json:"epsilon,omitempty"`
	Refresh    bool    `json:"refresh,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	Labels  bool     `json:"labels,omitempty"`
	Width   float64  `json:"width,omitempty"`
	Height  float64  `json:"height,omitempty"`
	Seed    uint64   `json:"seed,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the vectorized truss graph.
	Graph truss.Graph

	// GraphHash is the content hash of the graph.
	GraphHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	StrokeCount   int
	NodeCount     int
	EdgeCount     int
	VectorizeTime time.Duration
	RenderTime    time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	VectorizeHit bool // Whether the graph came from cache
	RenderHit    bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, json, dot, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be one of: simple, handdrawn)", style)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all fields and applies defaults for the
// full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForVectorize(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForVectorize validates and sets defaults for the vectorize stage.
func (o *Options) ValidateForVectorize() error {
	if o.SnapRadius == 0 {
		o.SnapRadius = DefaultSnapRadius
	}
	if err := errors.ValidateSnapRadius(o.SnapRadius); err != nil {
		return err
	}
	if err := errors.ValidateSketchParams(o.SnapRadius, o.Epsilon); err != nil {
		return err
	}
	o.setLoggerDefault()
	return nil
}

// ValidateForRender validates and sets defaults for the render stage.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	o.setLoggerDefault()
	return nil
}

func (o *Options) setLoggerDefault() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// graphKeyOpts maps the vectorize options onto cache key inputs.
func (o *Options) graphKeyOpts() cache.GraphKeyOpts {
	return cache.GraphKeyOpts{
		SnapRadius: o.SnapRadius,
		Epsilon:    o.Epsilon,
	}
}

// artifactKeyOpts maps the render options for one format onto cache key inputs.
func (o *Options) artifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Style:  o.Style,
		Width:  o.Width,
		Height: o.Height,
		Seed:   o.Seed,
		Labels: o.Labels,
	}
}
