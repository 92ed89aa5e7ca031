// Package delaunay triangulates planar point sets with the Bowyer-Watson
// incremental algorithm.
//
// Points are inserted one at a time into a triangulation seeded with a
// super triangle enclosing every input point. Each insertion removes the
// triangles whose circumcircle contains the new point and fans the new
// point to the boundary of the removed cavity. Triangles touching the
// super triangle are dropped at the end.
package delaunay

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"

	"go.viam.com/triangulate/pointset"
	"go.viam.com/triangulate/trimesh"
)

// minPoints is the smallest point set with a triangulation.
const minPoints = 3

// TooFewPointsError is returned for point sets below minPoints.
type TooFewPointsError struct {
	Have int
}

func (e TooFewPointsError) Error() string {
	return fmt.Sprintf("need at least %d points to triangulate, have %d", minPoints, e.Have)
}

// DuplicatePointError is returned when two points of a set have exactly
// equal coordinates.
type DuplicatePointError struct {
	Point  r2.Point
	First  int
	Second int
}

func (e DuplicatePointError) Error() string {
	return fmt.Sprintf("points %d and %d are both (%v, %v)", e.First, e.Second, e.Point.X, e.Point.Y)
}

// Triangulator computes the Delaunay triangulation of one point set.
type Triangulator struct {
	points *pointset.PointSet
}

// New returns a triangulator for ps after checking that it can be
// triangulated: at least three points, all pairwise distinct.
func New(ps *pointset.PointSet) (*Triangulator, error) {
	if ps.Size() < minPoints {
		return nil, TooFewPointsError{Have: ps.Size()}
	}
	seen := make(map[r2.Point]int, ps.Size())
	for i, p := range ps.Points() {
		if first, ok := seen[p]; ok {
			return nil, DuplicatePointError{Point: p, First: first, Second: i}
		}
		seen[p] = i
	}
	return &Triangulator{points: ps}, nil
}

// Triangulate validates ps and computes its Delaunay triangulation in one
// step.
func Triangulate(ps *pointset.PointSet) (*trimesh.Mesh, error) {
	tr, err := New(ps)
	if err != nil {
		return nil, err
	}
	return tr.Triangulate()
}

// Triangulate computes the triangulation. The mesh is a pure function of
// the point order, so repeated runs over the same set produce identical
// meshes.
func (tr *Triangulator) Triangulate() (*trimesh.Mesh, error) {
	n := tr.points.Size()
	points := make([]r2.Point, 0, n+3)
	points = append(points, tr.points.Points()...)
	points = append(points, superTriangle(tr.points.Bounds())...)

	working := make([]workTriangle, 0, 2*n+1)
	working = append(working, newWorkTriangle(uint32(n), uint32(n+1), uint32(n+2), points))

	var bad []int
	var boundary []edge
	for i := 0; i < n; i++ {
		p := points[i]

		bad = bad[:0]
		for j := range working {
			if working[j].circumcircleContains(p) {
				bad = append(bad, j)
			}
		}

		// Boundary edges belong to exactly one removed triangle; an edge
		// shared by two removed triangles is interior to the cavity.
		counts := make(map[edge]int, 3*len(bad))
		for _, j := range bad {
			for _, e := range working[j].edges() {
				counts[e.key()]++
			}
		}
		boundary = boundary[:0]
		for _, j := range bad {
			for _, e := range working[j].edges() {
				if counts[e.key()] == 1 {
					boundary = append(boundary, e)
				}
			}
		}

		// Swap removed triangles out from the back so positions not yet
		// processed stay valid.
		for k := len(bad) - 1; k >= 0; k-- {
			j := bad[k]
			working[j] = working[len(working)-1]
			working = working[:len(working)-1]
		}

		for _, e := range boundary {
			working = append(working, newWorkTriangle(e.a, e.b, uint32(i), points))
		}
	}

	// Drop every triangle that touches a super triangle vertex.
	limit := uint32(n)
	triangles := make([]trimesh.Triangle, 0, len(working))
	for _, w := range working {
		if w.tri.A >= limit || w.tri.B >= limit || w.tri.C >= limit {
			continue
		}
		triangles = append(triangles, w.tri)
	}
	return trimesh.New(tr.points, triangles)
}

// superTriangle returns three points enclosing the bounding box by a wide
// margin, ordered left, top, right.
func superTriangle(bounds r2.Rect) []r2.Point {
	size := bounds.Size()
	delta := math.Max(size.X, size.Y)
	center := bounds.Center()
	return []r2.Point{
		{X: center.X - 20*delta, Y: center.Y - delta},
		{X: center.X, Y: center.Y + 20*delta},
		{X: center.X + 20*delta, Y: center.Y - delta},
	}
}
