package trimesh

import (
	"encoding/binary"
	"io"
	"os"

	"go.uber.org/multierr"

	"go.viam.com/triangulate/pointset"
)

// The triangle block follows the encoded point set: a uint32 triangle
// count and then three uint32 indices per triangle, all little-endian.
const (
	countSize    = 4
	triangleSize = 12
)

// FromBytes decodes and validates a mesh. The point set block comes
// first; bytes past the triangle block are ignored.
func FromBytes(data []byte) (*Mesh, error) {
	ps, err := pointset.FromBytes(data)
	if err != nil {
		return nil, err
	}
	base := pointset.EncodedLen(ps.Size())
	if len(data) < base+countSize {
		return nil, pointset.ShortBufferError{Need: base + countSize, Have: len(data)}
	}
	count := int(binary.LittleEndian.Uint32(data[base:]))
	need := base + countSize + count*triangleSize
	if len(data) < need {
		return nil, pointset.ShortBufferError{Need: need, Have: len(data)}
	}
	triangles := make([]Triangle, 0, count)
	offset := base + countSize
	for i := 0; i < count; i++ {
		triangles = append(triangles, Triangle{
			A: binary.LittleEndian.Uint32(data[offset:]),
			B: binary.LittleEndian.Uint32(data[offset+4:]),
			C: binary.LittleEndian.Uint32(data[offset+8:]),
		})
		offset += triangleSize
	}
	return New(ps, triangles)
}

// ToBytes returns the binary encoding of the mesh: the point set block
// followed by the triangle block.
func (m *Mesh) ToBytes() []byte {
	buf := m.points.ToBytes()
	base := len(buf)
	buf = append(buf, make([]byte, countSize+len(m.triangles)*triangleSize)...)
	binary.LittleEndian.PutUint32(buf[base:], uint32(len(m.triangles)))
	offset := base + countSize
	for _, tri := range m.triangles {
		binary.LittleEndian.PutUint32(buf[offset:], tri.A)
		binary.LittleEndian.PutUint32(buf[offset+4:], tri.B)
		binary.LittleEndian.PutUint32(buf[offset+8:], tri.C)
		offset += triangleSize
	}
	return buf
}

// WriteTo writes the binary encoding of the mesh to out.
func (m *Mesh) WriteTo(out io.Writer) error {
	_, err := out.Write(m.ToBytes())
	return err
}

// FromFile decodes and validates a mesh from a file.
func FromFile(fn string) (*Mesh, error) {
	data, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	return FromBytes(data)
}

// WriteToFile writes the binary encoding of the mesh out to a file.
func (m *Mesh) WriteToFile(fn string) (err error) {
	f, err := os.Create(fn)
	if err != nil {
		return
	}
	defer func() {
		cerr := f.Close()
		err = multierr.Combine(err, cerr)
	}()
	return m.WriteTo(f)
}
