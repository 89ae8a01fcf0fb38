// Package vectorize converts freehand pen strokes into a clean planar
// graph of straight structural members.
//
// The pipeline runs in five stages: each stroke is simplified with
// Ramer-Douglas-Peucker and chopped into chord segments, the pooled
// segments of all strokes are split at their interior crossings, every
// segment endpoint is snapped into a joint cluster by a union-find pass,
// and finally the segments are mapped through the cluster centroids into
// deduplicated nodes and edges.
//
// Every stage is a pure function; all working state (the split lists, the
// union-find forest, the node registry) is local to one Vectorize call, so
// repeated calls with identical input produce identical graphs and
// independent calls may run concurrently.
package vectorize

import (
	"github.com/soerensenkarl/DrawTruss/pkg/geom"
	"github.com/soerensenkarl/DrawTruss/pkg/truss"
)

// DefaultSnapRadius is the merge distance, in pixels, below which two
// segment endpoints are considered the same joint when the caller does not
// supply one.
const DefaultSnapRadius = 10.0

// Options configures one vectorization pass.
type Options struct {
	// SnapRadius is the pixel distance below which endpoints merge into a
	// single joint. Must be positive; zero falls back to DefaultSnapRadius.
	SnapRadius float64

	// SimplifyEpsilon overrides the Ramer-Douglas-Peucker tolerance. When
	// zero it defaults to half the snap radius, which ties simplification
	// aggressiveness to how aggressively endpoints will later be merged.
	SimplifyEpsilon float64
}

// withDefaults returns a copy of o with zero values filled in.
func (o Options) withDefaults() Options {
	if o.SnapRadius <= 0 {
		o.SnapRadius = DefaultSnapRadius
	}
	if o.SimplifyEpsilon <= 0 {
		o.SimplifyEpsilon = o.SnapRadius * 0.5
	}
	return o
}

// Vectorize runs the full stroke-to-graph pipeline. Strokes shorter than
// two points contribute nothing; an empty stroke set yields an empty
// graph. The call always succeeds for finite input and never mutates its
// arguments.
func Vectorize(strokes [][]geom.Point, opts Options) truss.Graph {
	opts = opts.withDefaults()

	var segments []geom.Segment
	for _, stroke := range strokes {
		if len(stroke) < 2 {
			continue
		}
		simplified := Simplify(stroke, opts.SimplifyEpsilon)
		segments = append(segments, ToSegments(simplified)...)
	}
	if len(segments) == 0 {
		return truss.Graph{Nodes: []truss.Node{}, Edges: []truss.Edge{}}
	}

	segments = SplitAtCrossings(segments)

	endpoints := make([]geom.Point, 0, 2*len(segments))
	for _, s := range segments {
		endpoints = append(endpoints, s.A, s.B)
	}
	centroids := Cluster(endpoints, opts.SnapRadius)

	return BuildGraph(segments, centroids)
}
