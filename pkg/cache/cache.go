// Package cache provides the caching layer for the vectorization
// pipeline.
//
// A [Cache] stores opaque byte blobs under string keys with a TTL. The
// pipeline caches at two stages: vectorized graphs keyed by a hash of the
// sketch plus vectorization options, and rendered artifacts keyed by a
// hash of the graph plus render options. Keys are produced by a [Keyer]
// so the key scheme stays in one place.
//
// Backends: [NewFileCache] for CLI use, [NewRedisCache] for the server,
// and [NewNullCache] to disable caching.
package cache

import (
	"context"
	"time"
)

// TTLs for the two cached stages. Graphs are cheap to recompute but the
// inputs never go stale, so both tiers keep entries for a week.
const (
	TTLGraph    = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-blob cache with expiring entries.
type Cache interface {
	// Get retrieves the value for key. The second return reports whether
	// the key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A non-positive ttl stores the entry
	// without expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// GraphKeyOpts are the vectorization options that contribute to a graph
// cache key. Two sketches vectorized with different options must never
// share an entry.
type GraphKeyOpts struct {
	SnapRadius float64
	Epsilon    float64
}

// ArtifactKeyOpts are the render options that contribute to an artifact
// cache key.
type ArtifactKeyOpts struct {
	Format string
	Style  string
	Width  float64
	Height float64
	Seed   uint64
	Labels bool
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// GraphKey generates a key for a vectorized graph.
	GraphKey(sketchHash string, opts GraphKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(graphHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key scheme: a stage prefix plus a SHA-256
// hash over the stage inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// GraphKey generates a key for a vectorized graph.
func (k *DefaultKeyer) GraphKey(sketchHash string, opts GraphKeyOpts) string {
	return hashKey("graph", sketchHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", graphHash, opts)
}
