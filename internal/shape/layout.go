package shape

import "fmt"

// Layout is a validated shape together with its row-major strides.
//
// A Layout never changes after construction. The rightmost axis has stride 1
// and each axis to its left has a stride equal to the product of all extents
// to its right, so neighbours along the last coordinate are neighbours in memory.
type Layout struct {
	dims    Shape
	strides []int
	size    int
}

// NewLayout validates dims and precomputes strides and linear size.
func NewLayout(dims ...int) (*Layout, error) {
	s := Shape(dims)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Layout{
		dims:    s.Clone(),
		strides: s.ComputeStrides(),
		size:    s.NumElements(),
	}, nil
}

// MustLayout is like NewLayout but panics on an invalid shape.
func MustLayout(dims ...int) *Layout {
	l, err := NewLayout(dims...)
	if err != nil {
		panic(err)
	}
	return l
}

// Order returns the number of axes.
func (l *Layout) Order() int {
	return len(l.dims)
}

// Dims returns a copy of the per-axis extents.
func (l *Layout) Dims() Shape {
	return l.dims.Clone()
}

// Strides returns a copy of the row-major strides.
func (l *Layout) Strides() []int {
	return append([]int(nil), l.strides...)
}

// Size returns the linear size (product of all extents).
func (l *Layout) Size() int {
	return l.size
}

// Offset returns the linear offset of coords: sum of coords[i] * strides[i].
//
// No bounds validation is performed; callers that need it use Check first.
// Panics if len(coords) differs from Order.
func (l *Layout) Offset(coords ...int) int {
	l.checkArity(len(coords))
	offset := 0
	for i, c := range coords {
		offset += c * l.strides[i]
	}
	return offset
}

// Check verifies 0 <= coords[i] < Dims[i] for every axis.
// It reports the first failing axis as an *OutOfRangeError.
// Panics if len(coords) differs from Order.
func (l *Layout) Check(coords ...int) error {
	l.checkArity(len(coords))
	for i, c := range coords {
		if c < 0 || c >= l.dims[i] {
			return &OutOfRangeError{Axis: i, Coord: c, Extent: l.dims[i]}
		}
	}
	return nil
}

// Unravel converts a linear offset back into coordinates, writing them into
// coords (grown if needed) and returning it.
func (l *Layout) Unravel(offset int, coords []int) []int {
	if cap(coords) < len(l.dims) {
		coords = make([]int, len(l.dims))
	}
	coords = coords[:len(l.dims)]
	for i, stride := range l.strides {
		coords[i] = offset / stride
		offset %= stride
	}
	return coords
}

// String returns a human-readable representation of the layout.
func (l *Layout) String() string {
	return fmt.Sprintf("Layout%v strides=%v size=%d", l.dims, l.strides, l.size)
}

func (l *Layout) checkArity(n int) {
	if n != len(l.dims) {
		panic(fmt.Sprintf("expected %d coordinates for shape %v, got %d", len(l.dims), l.dims, n))
	}
}
