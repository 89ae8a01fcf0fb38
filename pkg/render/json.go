package render

import (
	"encoding/json"
	"math"

	"github.com/soerensenkarl/DrawTruss/pkg/truss"
)

type jsonNode struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type jsonEdge struct {
	ID   int `json:"id"`
	From int `json:"from"`
	To   int `json:"to"`
}

type jsonOutput struct {
	Nodes []jsonNode `json:"nodes"`
	Edges []jsonEdge `json:"edges"`
}

// ExportJSON renders the graph as a pretty-printed JSON document, the
// primary interchange format for downstream analysis tools.
//
// Node coordinates are rounded to one decimal place. That rounding is
// cosmetic only: it happens after graph construction, so it can never
// merge nodes that the builder kept distinct. Every node and edge
// appears exactly once, in id order.
func ExportJSON(g truss.Graph) ([]byte, error) {
	out := jsonOutput{
		Nodes: make([]jsonNode, len(g.Nodes)),
		Edges: make([]jsonEdge, len(g.Edges)),
	}
	for i, n := range g.Nodes {
		out.Nodes[i] = jsonNode{ID: n.ID, X: round1(n.X), Y: round1(n.Y)}
	}
	for i, e := range g.Edges {
		out.Edges[i] = jsonEdge{ID: e.ID, From: e.N1, To: e.N2}
	}
	return json.MarshalIndent(out, "", "  ")
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
