package delaunay

import (
	"math"

	"github.com/golang/geo/r2"

	"go.viam.com/triangulate/trimesh"
)

// Epsilons for the circumcircle predicate. The determinant threshold
// classifies near-collinear triangles as degenerate; the containment
// threshold keeps near-cocircular points out so ties resolve the same way
// on every run.
const (
	degenerateEpsilon = 1e-9
	insideEpsilon     = 1e-9
)

// edge is an undirected pair of point indices. The directed edges (a, b)
// and (b, a) share a key.
type edge struct {
	a, b uint32
}

func (e edge) key() edge {
	if e.a > e.b {
		return edge{a: e.b, b: e.a}
	}
	return e
}

// workTriangle is a triangle of the in-progress triangulation with its
// circumcircle cached at creation time. Degenerate triangles have no
// circumcircle and contain no points.
type workTriangle struct {
	tri        trimesh.Triangle
	center     r2.Point
	radiusSq   float64
	degenerate bool
}

func newWorkTriangle(a, b, c uint32, points []r2.Point) workTriangle {
	w := workTriangle{tri: trimesh.Triangle{A: a, B: b, C: c}}
	pa, pb, pc := points[a], points[b], points[c]
	d := 2 * (pa.X*(pb.Y-pc.Y) + pb.X*(pc.Y-pa.Y) + pc.X*(pa.Y-pb.Y))
	if math.Abs(d) < degenerateEpsilon {
		w.degenerate = true
		return w
	}
	aSq := pa.X*pa.X + pa.Y*pa.Y
	bSq := pb.X*pb.X + pb.Y*pb.Y
	cSq := pc.X*pc.X + pc.Y*pc.Y
	w.center = r2.Point{
		X: (aSq*(pb.Y-pc.Y) + bSq*(pc.Y-pa.Y) + cSq*(pa.Y-pb.Y)) / d,
		Y: (aSq*(pc.X-pb.X) + bSq*(pa.X-pc.X) + cSq*(pb.X-pa.X)) / d,
	}
	w.radiusSq = distSq(w.center, pa)
	return w
}

// circumcircleContains reports whether p lies strictly inside the cached
// circumcircle.
func (w workTriangle) circumcircleContains(p r2.Point) bool {
	if w.degenerate {
		return false
	}
	return distSq(w.center, p) < w.radiusSq-insideEpsilon
}

// edges returns the directed edges of the triangle in winding order.
func (w workTriangle) edges() [3]edge {
	return [3]edge{
		{a: w.tri.A, b: w.tri.B},
		{a: w.tri.B, b: w.tri.C},
		{a: w.tri.C, b: w.tri.A},
	}
}

func distSq(p, q r2.Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}
