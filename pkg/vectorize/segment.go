package vectorize

import "github.com/soerensenkarl/DrawTruss/pkg/geom"

// ToSegments converts a simplified polyline into its chord segments, one
// per consecutive vertex pair, in order. Polylines with fewer than two
// vertices yield no segments.
func ToSegments(polyline []geom.Point) []geom.Segment {
	if len(polyline) < 2 {
		return nil
	}
	segs := make([]geom.Segment, 0, len(polyline)-1)
	for i := 1; i < len(polyline); i++ {
		segs = append(segs, geom.Segment{A: polyline[i-1], B: polyline[i]})
	}
	return segs
}
