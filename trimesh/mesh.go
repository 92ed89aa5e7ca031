// Package trimesh defines an indexed triangle mesh over a point set and a
// binary encoding for it. Meshes validate their triangles on construction,
// so a mesh in hand always satisfies the index invariants.
package trimesh

import (
	"go.viam.com/triangulate/pointset"
)

// Triangle references three points of a point set by index. The declared
// order fixes the winding and survives encoding; two triangles over the
// same three indices in any order count as the same triangle.
type Triangle struct {
	A, B, C uint32
}

// Indices returns the vertex indices in declared order.
func (tri Triangle) Indices() [3]uint32 {
	return [3]uint32{tri.A, tri.B, tri.C}
}

// key returns the indices in ascending order, the identity used for
// duplicate detection.
func (tri Triangle) key() [3]uint32 {
	k := [3]uint32{tri.A, tri.B, tri.C}
	if k[0] > k[1] {
		k[0], k[1] = k[1], k[0]
	}
	if k[1] > k[2] {
		k[1], k[2] = k[2], k[1]
	}
	if k[0] > k[1] {
		k[0], k[1] = k[1], k[0]
	}
	return k
}

// Mesh is an immutable triangle mesh: a point set plus triangles indexing
// into it.
type Mesh struct {
	points    *pointset.PointSet
	triangles []Triangle
}

// New builds a mesh over ps, checking each triangle in order: every index
// must name a point of ps, the three indices must be distinct, and no two
// triangles may share a vertex set. The first violation is returned.
func New(ps *pointset.PointSet, triangles []Triangle) (*Mesh, error) {
	seen := make(map[[3]uint32]struct{}, len(triangles))
	for i, tri := range triangles {
		for _, idx := range tri.Indices() {
			if int(idx) >= ps.Size() {
				return nil, IndexRangeError{Position: i, Triangle: tri, NumPoints: ps.Size()}
			}
		}
		k := tri.key()
		if k[0] == k[1] || k[1] == k[2] {
			return nil, RepeatedVertexError{Position: i, Triangle: tri}
		}
		if _, ok := seen[k]; ok {
			return nil, DuplicateTriangleError{Position: i, Triangle: tri}
		}
		seen[k] = struct{}{}
	}
	return &Mesh{points: ps, triangles: triangles}, nil
}

// NewFromIndices builds a mesh from a flat index list laid out as
// consecutive triples.
func NewFromIndices(ps *pointset.PointSet, indices []uint32) (*Mesh, error) {
	if len(indices)%3 != 0 {
		return nil, IndexCountError{Indices: len(indices)}
	}
	triangles := make([]Triangle, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		triangles = append(triangles, Triangle{A: indices[i], B: indices[i+1], C: indices[i+2]})
	}
	return New(ps, triangles)
}

// Points returns the point set the mesh indexes into.
func (m *Mesh) Points() *pointset.PointSet {
	return m.points
}

// Size returns the number of triangles in the mesh.
func (m *Mesh) Size() int {
	return len(m.triangles)
}

// Triangles returns the triangles of the mesh in declared order. The
// returned slice must not be modified.
func (m *Mesh) Triangles() []Triangle {
	return m.triangles
}
