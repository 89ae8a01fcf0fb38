package render

import (
	"fmt"
	"math"
	"strings"
)

// hash mixes a string key with a seed into a deterministic 64-bit value.
// FNV-1a with the seed folded into the offset basis.
func hash(s string, seed uint64) uint64 {
	h := uint64(14695981039346656037) ^ (seed * 0x9e3779b97f4a7c15)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 1099511628211
	}
	return h
}

// jitter returns a deterministic offset in [-amp, amp] for the given key.
func jitter(key string, seed uint64, amp float64) float64 {
	h := hash(key, seed)
	return (float64(h%2048)/2047*2 - 1) * amp
}

// wobbledLine builds an SVG path from (x1,y1) to (x2,y2) as a chain of
// quadratic beziers whose control points drift off the straight line.
// Short lines get a single segment, longer ones more, so the wobble
// stays proportional instead of turning into noise.
func wobbledLine(x1, y1, x2, y2 float64, seed uint64, id string) string {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)

	segments := int(length / 40)
	if segments < 1 {
		segments = 1
	}
	if segments > 4 {
		segments = 4
	}

	// Unit normal for perpendicular displacement.
	nx, ny := 0.0, 0.0
	if length > 0 {
		nx, ny = -dy/length, dx/length
	}

	var b strings.Builder
	fmt.Fprintf(&b, "M%.2f,%.2f", x1, y1)
	for i := 1; i <= segments; i++ {
		t := float64(i) / float64(segments)
		tm := t - 0.5/float64(segments)
		off := jitter(fmt.Sprintf("%s-%d", id, i), seed, 1.5)
		cx := x1 + dx*tm + nx*off
		cy := y1 + dy*tm + ny*off
		fmt.Fprintf(&b, " Q%.2f,%.2f %.2f,%.2f", cx, cy, x1+dx*t, y1+dy*t)
	}
	return b.String()
}
