package vectorize

import (
	"sort"

	"github.com/soerensenkarl/DrawTruss/pkg/geom"
)

// crossingMargin excludes near-endpoint touches from crossing detection.
// A crossing only counts when both parameters lie in (margin, 1-margin);
// junctions at segment ends are the clusterer's job, and handling them
// here too would split the same joint twice. The 2% figure is an
// empirical default, not a derived constant.
const crossingMargin = 0.02

// SplitAtCrossings detects interior crossings among the pooled segments of
// all strokes and splits every crossing segment at the crossing point.
//
// Each unordered pair of segments is intersected once; a hit inside both
// segments records a split parameter on each. Segments with splits are
// replaced in-place by their chain of sub-segments, ordered by parameter,
// so all fragments of one input segment stay contiguous. Segments without
// splits pass through unchanged. The scan is quadratic, which is fine for
// the tens-to-hundreds of segments a hand-drawn sketch produces.
func SplitAtCrossings(segments []geom.Segment) []geom.Segment {
	splits := make([][]float64, len(segments))

	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			t, u, ok := geom.Intersect(segments[i], segments[j])
			if !ok {
				continue
			}
			if !interior(t) || !interior(u) {
				continue
			}
			splits[i] = append(splits[i], t)
			splits[j] = append(splits[j], u)
		}
	}

	out := make([]geom.Segment, 0, len(segments))
	for i, seg := range segments {
		if len(splits[i]) == 0 {
			out = append(out, seg)
			continue
		}
		sort.Float64s(splits[i])
		prev := seg.A
		for _, t := range splits[i] {
			p := seg.At(t)
			out = append(out, geom.Segment{A: prev, B: p})
			prev = p
		}
		out = append(out, geom.Segment{A: prev, B: seg.B})
	}
	return out
}

func interior(t float64) bool {
	return t > crossingMargin && t < 1-crossingMargin
}
