package vectorize

import (
	"math"

	"github.com/soerensenkarl/DrawTruss/pkg/geom"
	"github.com/soerensenkarl/DrawTruss/pkg/truss"
)

// quantScale fixes the sub-pixel precision used to key the node registry.
// Centroid averaging leaves floating-point noise on coordinates that
// should be identical; rounding to two decimal digits absorbs it without
// merging genuinely distinct joints at pixel scale.
const quantScale = 100

type coordKey struct {
	x, y int64
}

func quantize(p geom.Point) coordKey {
	return coordKey{
		x: int64(math.Round(p.X * quantScale)),
		y: int64(math.Round(p.Y * quantScale)),
	}
}

// BuildGraph maps every segment's endpoints through the clustering result
// to node ids and assembles the output graph.
//
// Nodes are registered on first use and numbered densely from zero in
// first-use order. Segments whose two ends collapse into the same cluster
// are dropped (a short fragment swallowed by one joint), as are segments
// whose unordered node pair was already emitted. Edge ids follow emission
// order. The registry lives only for this call.
func BuildGraph(segments []geom.Segment, centroids []geom.Point) truss.Graph {
	g := truss.Graph{Nodes: []truss.Node{}, Edges: []truss.Edge{}}

	nodeIDs := make(map[coordKey]int)
	type pairKey struct{ lo, hi int }
	seen := make(map[pairKey]struct{})

	nodeFor := func(p geom.Point) int {
		key := quantize(p)
		if id, ok := nodeIDs[key]; ok {
			return id
		}
		id := len(g.Nodes)
		nodeIDs[key] = id
		g.Nodes = append(g.Nodes, truss.Node{ID: id, X: p.X, Y: p.Y})
		return id
	}

	for i := range segments {
		n1 := nodeFor(centroids[2*i])
		n2 := nodeFor(centroids[2*i+1])
		if n1 == n2 {
			continue
		}
		key := pairKey{lo: min(n1, n2), hi: max(n1, n2)}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		g.Edges = append(g.Edges, truss.Edge{ID: len(g.Edges), N1: n1, N2: n2})
	}
	return g
}
