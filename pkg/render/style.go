package render

import (
	"bytes"
	"fmt"
)

// Style defines the visual appearance for SVG rendering.
// Implementations control how edges, joints, and labels are drawn.
type Style interface {
	// Name returns the style identifier used in cache keys and exports.
	Name() string
	// RenderDefs writes SVG <defs> content (filters, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderEdge writes the SVG for a single truss member.
	RenderEdge(buf *bytes.Buffer, e EdgeMark)
	// RenderNode writes the SVG for a single joint marker.
	RenderNode(buf *bytes.Buffer, n NodeMark)
	// RenderLabel writes the SVG for a joint's numeric label.
	RenderLabel(buf *bytes.Buffer, n NodeMark)
}

// EdgeMark contains positioning data for rendering a truss member.
type EdgeMark struct {
	ID             int     // Edge identifier
	X1, Y1, X2, Y2 float64 // Line coordinates
}

// NodeMark contains positioning data for rendering a joint.
type NodeMark struct {
	ID   int     // Node identifier
	X, Y float64 // Joint coordinates
}

// Simple renders members as straight lines and joints as plain circles.
type Simple struct{}

func (Simple) Name() string { return "simple" }

func (Simple) RenderDefs(buf *bytes.Buffer) {}

func (Simple) RenderEdge(buf *bytes.Buffer, e EdgeMark) {
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#333" stroke-width="2" stroke-linecap="round"/>`+"\n",
		e.X1, e.Y1, e.X2, e.Y2)
}

func (Simple) RenderNode(buf *bytes.Buffer, n NodeMark) {
	fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="4" fill="#fff" stroke="#333" stroke-width="2"/>`+"\n",
		n.X, n.Y)
}

func (Simple) RenderLabel(buf *bytes.Buffer, n NodeMark) {
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="10" fill="#333">%d</text>`+"\n",
		n.X+6, n.Y-6, n.ID)
}

// Handdrawn renders members as slightly wobbled bezier strokes, giving
// the output a pencil-sketch look. The wobble is a pure function of the
// element identifier and the Seed, so rendering is reproducible.
type Handdrawn struct {
	Seed uint64
}

func (Handdrawn) Name() string { return "handdrawn" }

func (Handdrawn) RenderDefs(buf *bytes.Buffer) {}

func (h Handdrawn) RenderEdge(buf *bytes.Buffer, e EdgeMark) {
	fmt.Fprintf(buf, `  <path d="%s" fill="none" stroke="#222" stroke-width="2" stroke-linecap="round"/>`+"\n",
		wobbledLine(e.X1, e.Y1, e.X2, e.Y2, h.Seed, fmt.Sprintf("edge-%d", e.ID)))
}

func (h Handdrawn) RenderNode(buf *bytes.Buffer, n NodeMark) {
	r := 3.5 + jitter(fmt.Sprintf("node-%d", n.ID), h.Seed, 0.8)
	fmt.Fprintf(buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="#fff" stroke="#222" stroke-width="2"/>`+"\n",
		n.X+jitter(fmt.Sprintf("node-x-%d", n.ID), h.Seed, 0.6),
		n.Y+jitter(fmt.Sprintf("node-y-%d", n.ID), h.Seed, 0.6), r)
}

func (Handdrawn) RenderLabel(buf *bytes.Buffer, n NodeMark) {
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="'Comic Sans MS', cursive, sans-serif" font-size="10" fill="#222">%d</text>`+"\n",
		n.X+6, n.Y-6, n.ID)
}

// StyleByName returns the style for a known name ("simple" or
// "handdrawn"). It reports false for anything else.
func StyleByName(name string, seed uint64) (Style, bool) {
	switch name {
	case "", "simple":
		return Simple{}, true
	case "handdrawn":
		return Handdrawn{Seed: seed}, true
	}
	return nil, false
}
