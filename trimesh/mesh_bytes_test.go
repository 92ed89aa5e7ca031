package trimesh

import (
	"bytes"
	"encoding/binary"
	"errors"
	"path/filepath"
	"testing"

	"go.viam.com/test"

	"go.viam.com/triangulate/pointset"
)

// triangleBytes builds an encoded triangle block by hand. The declared
// count may disagree with the number of indices given.
func triangleBytes(count uint32, indices ...uint32) []byte {
	buf := make([]byte, 4+4*len(indices))
	binary.LittleEndian.PutUint32(buf, count)
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(buf[4+4*i:], idx)
	}
	return buf
}

func TestMeshBytesRoundTrip(t *testing.T) {
	ps := makeTestPoints(4)
	m, err := New(ps, []Triangle{{A: 0, B: 1, C: 2}, {A: 2, B: 1, C: 3}})
	test.That(t, err, test.ShouldBeNil)

	encoded := m.ToBytes()
	want := append(ps.ToBytes(), triangleBytes(2, 0, 1, 2, 2, 1, 3)...)
	test.That(t, encoded, test.ShouldResemble, want)

	decoded, err := FromBytes(encoded)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, decoded.Triangles(), test.ShouldResemble, m.Triangles())
	test.That(t, decoded.Points().Points(), test.ShouldResemble, ps.Points())
	test.That(t, decoded.ToBytes(), test.ShouldResemble, encoded)
}

func TestMeshWriteTo(t *testing.T) {
	m, err := New(makeTestPoints(3), []Triangle{{A: 0, B: 1, C: 2}})
	test.That(t, err, test.ShouldBeNil)
	var buf bytes.Buffer
	test.That(t, m.WriteTo(&buf), test.ShouldBeNil)
	test.That(t, buf.Bytes(), test.ShouldResemble, m.ToBytes())
}

func TestMeshFile(t *testing.T) {
	m, err := New(makeTestPoints(4), []Triangle{{A: 0, B: 1, C: 2}, {A: 1, B: 2, C: 3}})
	test.That(t, err, test.ShouldBeNil)
	fn := filepath.Join(t.TempDir(), "mesh.bin")
	test.That(t, m.WriteToFile(fn), test.ShouldBeNil)

	decoded, err := FromFile(fn)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, decoded.ToBytes(), test.ShouldResemble, m.ToBytes())

	_, err = FromFile(filepath.Join(t.TempDir(), "missing.bin"))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestMeshFromBytesTrailingBytes(t *testing.T) {
	m, err := New(makeTestPoints(3), []Triangle{{A: 0, B: 1, C: 2}})
	test.That(t, err, test.ShouldBeNil)
	data := append(m.ToBytes(), 1, 2, 3)
	decoded, err := FromBytes(data)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, decoded.ToBytes(), test.ShouldResemble, m.ToBytes())
}

func TestMeshFromBytesShortBuffer(t *testing.T) {
	points := makeTestPoints(2).ToBytes()

	// Point set block cut off before its own end.
	_, err := FromBytes(points[:7])
	var sbErr pointset.ShortBufferError
	test.That(t, errors.As(err, &sbErr), test.ShouldBeTrue)

	// Missing triangle count.
	_, err = FromBytes(points)
	test.That(t, errors.As(err, &sbErr), test.ShouldBeTrue)
	test.That(t, sbErr.Need, test.ShouldEqual, len(points)+4)
	test.That(t, sbErr.Have, test.ShouldEqual, len(points))

	// Count promises more triangles than the buffer holds.
	data := append(points, triangleBytes(2, 0, 1, 1)...)
	_, err = FromBytes(data)
	test.That(t, errors.As(err, &sbErr), test.ShouldBeTrue)
	test.That(t, sbErr.Need, test.ShouldEqual, len(points)+4+2*12)
	test.That(t, sbErr.Have, test.ShouldEqual, len(data))
}

func TestMeshFromBytesInvalidTriangles(t *testing.T) {
	points := makeTestPoints(3).ToBytes()

	_, err := FromBytes(append(points, triangleBytes(1, 0, 1, 3)...))
	var rangeErr IndexRangeError
	test.That(t, errors.As(err, &rangeErr), test.ShouldBeTrue)

	_, err = FromBytes(append(points, triangleBytes(1, 0, 1, 1)...))
	var repErr RepeatedVertexError
	test.That(t, errors.As(err, &repErr), test.ShouldBeTrue)

	_, err = FromBytes(append(points, triangleBytes(2, 0, 1, 2, 2, 0, 1)...))
	var dupErr DuplicateTriangleError
	test.That(t, errors.As(err, &dupErr), test.ShouldBeTrue)
	test.That(t, dupErr.Position, test.ShouldEqual, 1)
}
