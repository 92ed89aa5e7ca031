// Package pointset defines an immutable set of 2D points and a compact
// binary encoding for moving point sets over the wire.
package pointset

import (
	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/mat"
)

// PointSet is a general purpose container of 2D points addressed by index.
// Once constructed it is never modified, so a set may be shared freely
// across goroutines.
type PointSet struct {
	points []r2.Point
}

// New returns a point set over the given points. The set takes ownership
// of the slice; callers must not modify it afterwards.
func New(points []r2.Point) *PointSet {
	return &PointSet{points: points}
}

// Size returns the number of points in the set.
func (ps *PointSet) Size() int {
	return len(ps.points)
}

// At returns the point at the given index.
func (ps *PointSet) At(i int) r2.Point {
	return ps.points[i]
}

// Points returns the underlying points in index order. The returned slice
// must not be modified.
func (ps *PointSet) Points() []r2.Point {
	return ps.points
}

// Bounds returns the axis-aligned bounding box of the set. The empty set
// yields the zero rectangle.
func (ps *PointSet) Bounds() r2.Rect {
	return r2.RectFromPoints(ps.points...)
}

// Matrix returns the coordinates as a dense n by 2 matrix, one row per
// point with x and y columns, for handing off to numeric routines. An
// empty set returns nil.
func (ps *PointSet) Matrix() *mat.Dense {
	if len(ps.points) == 0 {
		return nil
	}
	data := make([]float64, 0, 2*len(ps.points))
	for _, p := range ps.points {
		data = append(data, p.X, p.Y)
	}
	return mat.NewDense(len(ps.points), 2, data)
}
