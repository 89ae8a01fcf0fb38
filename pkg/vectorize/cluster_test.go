package vectorize

import (
	"math"
	"testing"

	"github.com/soerensenkarl/DrawTruss/pkg/geom"
)

func TestClusterMergesNearbyPoints(t *testing.T) {
	points := []geom.Point{
		{X: 0, Y: 0},
		{X: 2, Y: 1},
		{X: 50, Y: 50},
	}
	centroids := Cluster(points, 10)

	if centroids[0] != centroids[1] {
		t.Errorf("nearby points got different centroids: %v vs %v", centroids[0], centroids[1])
	}
	want := geom.Point{X: 1, Y: 0.5}
	if centroids[0] != want {
		t.Errorf("merged centroid = %v, want %v", centroids[0], want)
	}
	if centroids[2] != points[2] {
		t.Errorf("isolated point moved: %v", centroids[2])
	}
}

func TestClusterChains(t *testing.T) {
	// A near B, B near C, but A and C are 16 apart (> radius). Transitive
	// chaining still puts all three in one cluster.
	points := []geom.Point{
		{X: 0, Y: 0},
		{X: 8, Y: 0},
		{X: 16, Y: 0},
	}
	centroids := Cluster(points, 10)
	if centroids[0] != centroids[1] || centroids[1] != centroids[2] {
		t.Fatalf("chain did not merge: %v", centroids)
	}
	if math.Abs(centroids[0].X-8) > 1e-9 || centroids[0].Y != 0 {
		t.Errorf("chain centroid = %v, want (8,0)", centroids[0])
	}
}

func TestClusterExactRadiusDoesNotMerge(t *testing.T) {
	// The merge test is strictly less-than.
	points := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	centroids := Cluster(points, 10)
	if centroids[0] == centroids[1] {
		t.Error("points exactly at the snap radius must stay separate")
	}
}

func TestClusterDuplicatesShareCentroid(t *testing.T) {
	// Shared segment endpoints appear multiple times in the input.
	p := geom.Point{X: 5, Y: 5}
	points := []geom.Point{p, p, p, {X: 100, Y: 100}}
	centroids := Cluster(points, 1)
	for i := 0; i < 3; i++ {
		if centroids[i] != p {
			t.Errorf("duplicate %d centroid = %v, want %v", i, centroids[i], p)
		}
	}
}

func TestClusterRadiusMonotonicity(t *testing.T) {
	points := []geom.Point{
		{X: 0, Y: 0}, {X: 3, Y: 1}, {X: 9, Y: 2},
		{X: 30, Y: 0}, {X: 33, Y: 3}, {X: 60, Y: 60},
	}
	prev := len(points) + 1
	for _, radius := range []float64{0.5, 2, 5, 12, 40, 200} {
		centroids := Cluster(points, radius)
		distinct := make(map[geom.Point]struct{})
		for _, c := range centroids {
			distinct[c] = struct{}{}
		}
		if len(distinct) > prev {
			t.Errorf("radius %v produced %d clusters, more than %d at a smaller radius",
				radius, len(distinct), prev)
		}
		prev = len(distinct)
	}
}
