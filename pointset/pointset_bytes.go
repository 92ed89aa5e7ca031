package pointset

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/golang/geo/r2"
	"go.uber.org/multierr"
)

// Wire layout: a uint32 point count followed by count (x, y) pairs of
// float32s, everything little-endian.
const (
	countSize = 4
	pointSize = 8
)

// EncodedLen returns the number of bytes the encoding of an n point set
// occupies.
func EncodedLen(n int) int {
	return countSize + n*pointSize
}

// ShortBufferError is returned when a buffer ends before the data its
// count field promises.
type ShortBufferError struct {
	Need int
	Have int
}

func (e ShortBufferError) Error() string {
	return fmt.Sprintf("buffer too short: need %d bytes, have %d", e.Need, e.Have)
}

// FromBytes decodes a point set from its binary encoding. Bytes past the
// encoded points are ignored so that a point set can be read off the front
// of a larger message. Coordinates are not inspected; non-finite values
// pass through as given.
func FromBytes(data []byte) (*PointSet, error) {
	if len(data) < countSize {
		return nil, ShortBufferError{Need: countSize, Have: len(data)}
	}
	count := int(binary.LittleEndian.Uint32(data))
	need := EncodedLen(count)
	if len(data) < need {
		return nil, ShortBufferError{Need: need, Have: len(data)}
	}
	points := make([]r2.Point, 0, count)
	offset := countSize
	for i := 0; i < count; i++ {
		x := math.Float32frombits(binary.LittleEndian.Uint32(data[offset:]))
		y := math.Float32frombits(binary.LittleEndian.Uint32(data[offset+4:]))
		points = append(points, r2.Point{X: float64(x), Y: float64(y)})
		offset += pointSize
	}
	return &PointSet{points: points}, nil
}

// ToBytes returns the binary encoding of the set.
func (ps *PointSet) ToBytes() []byte {
	buf := make([]byte, EncodedLen(len(ps.points)))
	binary.LittleEndian.PutUint32(buf, uint32(len(ps.points)))
	offset := countSize
	for _, p := range ps.points {
		binary.LittleEndian.PutUint32(buf[offset:], math.Float32bits(float32(p.X)))
		binary.LittleEndian.PutUint32(buf[offset+4:], math.Float32bits(float32(p.Y)))
		offset += pointSize
	}
	return buf
}

// WriteTo writes the binary encoding of the set to out.
func (ps *PointSet) WriteTo(out io.Writer) error {
	_, err := out.Write(ps.ToBytes())
	return err
}

// FromFile decodes a point set from a file.
func FromFile(fn string) (*PointSet, error) {
	data, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	return FromBytes(data)
}

// WriteToFile writes the binary encoding of the set out to a file.
func (ps *PointSet) WriteToFile(fn string) (err error) {
	f, err := os.Create(fn)
	if err != nil {
		return
	}
	defer func() {
		cerr := f.Close()
		err = multierr.Combine(err, cerr)
	}()
	return ps.WriteTo(f)
}
