// Package geom provides the planar primitives used by the vectorization
// pipeline: points, line segments, and the small amount of analytic
// geometry (distances, parametric intersection) the pipeline needs.
//
// All types are plain values with no identity. Coordinates are pixel-scale
// float64; equality is never tested exactly, only through distances.
package geom

import "math"

// Point is a position in the drawing plane.
type Point struct {
	X float64
	Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Lerp returns the point at parameter t along the line from p to q,
// with t=0 at p and t=1 at q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Segment is a directed straight chord between two points. Segments are
// never mutated; operations that split a segment produce new ones.
type Segment struct {
	A Point
	B Point
}

// Length returns the segment's Euclidean length.
func (s Segment) Length() float64 { return s.A.Dist(s.B) }

// At returns the point at parameter t along the segment (t=0 at A, t=1 at B).
func (s Segment) At(t float64) Point { return s.A.Lerp(s.B, t) }

// PerpDist returns the perpendicular distance from p to the infinite line
// through a and b. When the chord is degenerate (a == b within floating
// point), it falls back to the straight-line distance to a.
func PerpDist(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	len2 := dx*dx + dy*dy
	if len2 == 0 {
		return p.Dist(a)
	}
	// Cross product magnitude over chord length.
	return math.Abs(dy*p.X-dx*p.Y+b.X*a.Y-b.Y*a.X) / math.Sqrt(len2)
}

// parallelEps bounds the determinant magnitude below which two segment
// direction vectors are treated as parallel. This is a numerical guard,
// unrelated to the clustering snap radius.
const parallelEps = 1e-9

// Intersect solves for the intersection of the infinite lines through s
// and o. On success it returns the parameters t (along s) and u (along o)
// of the intersection point. ok is false when the segments are parallel or
// close enough to parallel that the 2x2 solve is unreliable.
func Intersect(s, o Segment) (t, u float64, ok bool) {
	rx := s.B.X - s.A.X
	ry := s.B.Y - s.A.Y
	qx := o.B.X - o.A.X
	qy := o.B.Y - o.A.Y

	det := rx*qy - ry*qx
	if math.Abs(det) < parallelEps {
		return 0, 0, false
	}

	wx := o.A.X - s.A.X
	wy := o.A.Y - s.A.Y
	t = (wx*qy - wy*qx) / det
	u = (wx*ry - wy*rx) / det
	return t, u, true
}
