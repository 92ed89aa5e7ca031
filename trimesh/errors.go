package trimesh

import "fmt"

// IndexCountError is returned when a flat index list cannot be grouped
// into whole triangles.
type IndexCountError struct {
	// Indices is the length of the offending list.
	Indices int
}

func (e IndexCountError) Error() string {
	return fmt.Sprintf("index list of length %d does not divide into triangles", e.Indices)
}

// IndexRangeError is returned when a triangle references a point index
// outside its point set.
type IndexRangeError struct {
	Position  int
	Triangle  Triangle
	NumPoints int
}

func (e IndexRangeError) Error() string {
	return fmt.Sprintf("triangle %d (%d, %d, %d) references a point outside a %d point set",
		e.Position, e.Triangle.A, e.Triangle.B, e.Triangle.C, e.NumPoints)
}

// RepeatedVertexError is returned when a triangle references the same
// point more than once.
type RepeatedVertexError struct {
	Position int
	Triangle Triangle
}

func (e RepeatedVertexError) Error() string {
	return fmt.Sprintf("triangle %d (%d, %d, %d) must reference three distinct points",
		e.Position, e.Triangle.A, e.Triangle.B, e.Triangle.C)
}

// DuplicateTriangleError is returned when two triangles reference the same
// three points, in any order.
type DuplicateTriangleError struct {
	Position int
	Triangle Triangle
}

func (e DuplicateTriangleError) Error() string {
	return fmt.Sprintf("triangle %d (%d, %d, %d) duplicates an earlier triangle",
		e.Position, e.Triangle.A, e.Triangle.B, e.Triangle.C)
}
