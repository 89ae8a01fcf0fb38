package vectorize

import "github.com/soerensenkarl/DrawTruss/pkg/geom"

// Simplify reduces a freehand polyline to its dominant vertices using the
// Ramer-Douglas-Peucker algorithm. Points whose perpendicular distance to
// the simplified chord stays within epsilon are dropped.
//
// Polylines of two or fewer points are returned unchanged. When several
// points tie for the maximum distance, the lowest index wins, which keeps
// the output reproducible for identical input.
func Simplify(points []geom.Point, epsilon float64) []geom.Point {
	if len(points) <= 2 {
		return points
	}
	out := make([]geom.Point, 0, len(points))
	out = append(out, points[0])
	out = rdp(points, 0, len(points)-1, epsilon, out)
	return out
}

// rdp simplifies points[first..last] and appends every kept vertex except
// points[first] to out. Recursing over index ranges avoids the subslice
// copies a naive formulation would allocate on long strokes.
func rdp(points []geom.Point, first, last int, epsilon float64, out []geom.Point) []geom.Point {
	maxDist := 0.0
	split := -1
	for i := first + 1; i < last; i++ {
		if d := geom.PerpDist(points[i], points[first], points[last]); d > maxDist {
			maxDist = d
			split = i
		}
	}

	if split < 0 || maxDist <= epsilon {
		return append(out, points[last])
	}
	out = rdp(points, first, split, epsilon, out)
	return rdp(points, split, last, epsilon, out)
}
