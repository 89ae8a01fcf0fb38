package vectorize

import "github.com/soerensenkarl/DrawTruss/pkg/geom"

// unionFind is a disjoint-set forest over point indices, local to one
// clustering pass. Find uses parent-pointer halving for amortized
// near-linear behavior.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent}
}

func (u *unionFind) find(i int) int {
	for u.parent[i] != i {
		u.parent[i] = u.parent[u.parent[i]]
		i = u.parent[i]
	}
	return i
}

func (u *unionFind) union(i, j int) {
	ri, rj := u.find(i), u.find(j)
	if ri != rj {
		u.parent[rj] = ri
	}
}

// Cluster merges endpoints closer than snapRadius into joint clusters and
// returns, for every input index, the centroid of its cluster.
//
// Merging is transitive: when A is near B and B is near C, all three share
// a cluster even if A and C are farther apart than the radius. The chain
// behavior is deliberate; a wobbly junction touched by several strokes
// should collapse to one joint. The centroid is the arithmetic mean of all
// member coordinates, not a representative member, so the merged joint
// sits between the raw endpoints.
func Cluster(points []geom.Point, snapRadius float64) []geom.Point {
	uf := newUnionFind(len(points))
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if points[i].Dist(points[j]) < snapRadius {
				uf.union(i, j)
			}
		}
	}

	type acc struct {
		sumX, sumY float64
		n          int
	}
	sums := make(map[int]*acc)
	for i, p := range points {
		root := uf.find(i)
		a := sums[root]
		if a == nil {
			a = &acc{}
			sums[root] = a
		}
		a.sumX += p.X
		a.sumY += p.Y
		a.n++
	}

	centroids := make([]geom.Point, len(points))
	for i := range points {
		a := sums[uf.find(i)]
		centroids[i] = geom.Point{
			X: a.sumX / float64(a.n),
			Y: a.sumY / float64(a.n),
		}
	}
	return centroids
}
