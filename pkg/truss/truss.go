// Package truss defines the structural graph produced by vectorization and
// its canonical JSON serialization.
//
// A Graph is a flat list of nodes (joints) and undirected edges (members).
// The format is designed for round-trip fidelity: vectorize → export →
// re-import yields an identical graph. The types also carry BSON tags for
// storage in MongoDB-backed graph stores.
package truss

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrEdgeEndpoint is returned by [Graph.Validate] when an edge
	// references a node id outside the node list.
	ErrEdgeEndpoint = errors.New("edge references unknown node")

	// ErrSelfLoop is returned by [Graph.Validate] when an edge connects a
	// node to itself. Zero-length members are dropped during construction
	// and must never survive into a serialized graph.
	ErrSelfLoop = errors.New("edge connects node to itself")

	// ErrDuplicateEdge is returned by [Graph.Validate] when two edges
	// connect the same unordered node pair.
	ErrDuplicateEdge = errors.New("duplicate edge")

	// ErrNodeOrder is returned by [Graph.Validate] when node ids are not
	// the dense sequence 0..len(nodes)-1 in slice order.
	ErrNodeOrder = errors.New("node ids must be dense and ordered")

	// ErrEdgeOrder is returned by [Graph.Validate] when edge ids are not
	// the dense sequence 0..len(edges)-1 in slice order.
	ErrEdgeOrder = errors.New("edge ids must be dense and ordered")
)

// Node is a structural joint. ID is a dense zero-based index assigned in
// first-use order during graph construction; X and Y are the cluster
// centroid in pixel coordinates. Nodes are immutable once created.
type Node struct {
	ID int     `json:"id" bson:"id"`
	X  float64 `json:"x" bson:"x"`
	Y  float64 `json:"y" bson:"y"`
}

// Edge is an undirected structural member between two joints. N1/N2 order
// carries no meaning but is fixed at creation; ID follows emission order.
type Edge struct {
	ID int `json:"id" bson:"id"`
	N1 int `json:"n1" bson:"n1"`
	N2 int `json:"n2" bson:"n2"`
}

// Graph is the output of one vectorization pass. The caller owns it; no
// state is shared with the pipeline that produced it.
type Graph struct {
	Nodes []Node `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges" bson:"edges"`
}

// NodeCount returns the number of joints.
func (g Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of members.
func (g Graph) EdgeCount() int { return len(g.Edges) }

// Validate checks the structural invariants every well-formed graph
// carries: dense ordered ids, in-range edge endpoints, no self-loops, and
// no duplicate unordered node pairs.
func (g Graph) Validate() error {
	for i, n := range g.Nodes {
		if n.ID != i {
			return fmt.Errorf("node %d has id %d: %w", i, n.ID, ErrNodeOrder)
		}
	}
	type pair struct{ lo, hi int }
	seen := make(map[pair]struct{}, len(g.Edges))
	for i, e := range g.Edges {
		if e.ID != i {
			return fmt.Errorf("edge %d has id %d: %w", i, e.ID, ErrEdgeOrder)
		}
		if e.N1 < 0 || e.N1 >= len(g.Nodes) || e.N2 < 0 || e.N2 >= len(g.Nodes) {
			return fmt.Errorf("edge %d (%d-%d): %w", e.ID, e.N1, e.N2, ErrEdgeEndpoint)
		}
		if e.N1 == e.N2 {
			return fmt.Errorf("edge %d (node %d): %w", e.ID, e.N1, ErrSelfLoop)
		}
		p := pair{lo: min(e.N1, e.N2), hi: max(e.N1, e.N2)}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("edge %d (%d-%d): %w", e.ID, e.N1, e.N2, ErrDuplicateEdge)
		}
		seen[p] = struct{}{}
	}
	return nil
}

// Marshal converts a graph to pretty-printed JSON bytes.
func Marshal(g Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes JSON bytes into a validated graph.
func Unmarshal(data []byte) (Graph, error) {
	return Read(bytes.NewReader(data))
}

// Write encodes g as JSON to w.
func Write(g Graph, w io.Writer) error {
	if g.Nodes == nil {
		g.Nodes = []Node{}
	}
	if g.Edges == nil {
		g.Edges = []Edge{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Read decodes a JSON graph from r and validates it. Malformed documents
// and invariant violations are both reported as errors; a graph that fails
// Validate never escapes this function.
func Read(r io.Reader) (Graph, error) {
	var g Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return Graph{}, fmt.Errorf("decode: %w", err)
	}
	if g.Nodes == nil {
		g.Nodes = []Node{}
	}
	if g.Edges == nil {
		g.Edges = []Edge{}
	}
	if err := g.Validate(); err != nil {
		return Graph{}, err
	}
	return g, nil
}

// WriteFile writes a graph to a JSON file at path with 0644 permissions.
func WriteFile(g Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, f)
}

// ReadFile reads and validates a graph from a JSON file at path.
func ReadFile(path string) (Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return Graph{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
