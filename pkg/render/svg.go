package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/soerensenkarl/DrawTruss/pkg/truss"
)

const svgMargin = 20.0

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style  Style
	labels bool
	width  float64
	height float64
}

// WithStyle selects the visual style. Defaults to [Simple].
func WithStyle(s Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithLabels draws each joint's numeric id next to its marker.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithSize forces the output frame to the given dimensions instead of
// fitting the frame to the graph's bounding box.
func WithSize(w, h float64) SVGOption {
	return func(r *svgRenderer) { r.width, r.height = w, h }
}

// RenderSVG draws the graph as an SVG document. Members are drawn
// first, then joint markers, then optional labels, so joints always
// sit on top of the lines they connect.
//
// The viewBox is fitted to the graph's bounding box with a fixed
// margin. An empty graph renders as an empty frame.
func RenderSVG(g truss.Graph, opts ...SVGOption) []byte {
	r := svgRenderer{style: Simple{}}
	for _, opt := range opts {
		opt(&r)
	}

	minX, minY, maxX, maxY := bounds(g)
	vw := maxX - minX + 2*svgMargin
	vh := maxY - minY + 2*svgMargin

	w, h := r.width, r.height
	if w <= 0 || h <= 0 {
		w, h = vw, vh
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		minX-svgMargin, minY-svgMargin, vw, vh, w, h)

	r.style.RenderDefs(&buf)

	for _, e := range g.Edges {
		n1, n2 := g.Nodes[e.N1], g.Nodes[e.N2]
		r.style.RenderEdge(&buf, EdgeMark{ID: e.ID, X1: n1.X, Y1: n1.Y, X2: n2.X, Y2: n2.Y})
	}
	for _, n := range g.Nodes {
		r.style.RenderNode(&buf, NodeMark{ID: n.ID, X: n.X, Y: n.Y})
	}
	if r.labels {
		for _, n := range g.Nodes {
			r.style.RenderLabel(&buf, NodeMark{ID: n.ID, X: n.X, Y: n.Y})
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func bounds(g truss.Graph) (minX, minY, maxX, maxY float64) {
	if len(g.Nodes) == 0 {
		return 0, 0, 100, 100
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, n := range g.Nodes {
		minX = math.Min(minX, n.X)
		minY = math.Min(minY, n.Y)
		maxX = math.Max(maxX, n.X)
		maxY = math.Max(maxY, n.Y)
	}
	return minX, minY, maxX, maxY
}
