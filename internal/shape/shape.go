// Package shape maps multi-dimensional coordinates onto contiguous row-major storage.
package shape

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidShape is returned for shapes with no axes, a non-positive extent
// or an element count that overflows int.
var ErrInvalidShape = errors.New("invalid shape")

// Shape represents the per-axis extents of a fixed-shape array.
type Shape []int

// NumElements returns the total number of elements described by the shape.
// The result is only meaningful for shapes that pass Validate.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid: at least one axis, all dimensions > 0
// and a product that fits in an int.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: at least one axis required", ErrInvalidShape)
	}
	n := 1
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension at index %d is %d (must be > 0)", ErrInvalidShape, i, dim)
		}
		if n > math.MaxInt/dim {
			return fmt.Errorf("%w: element count of %v overflows int", ErrInvalidShape, s)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// String returns the shape as a parenthesised extent list, e.g. (2, 3, 4).
func (s Shape) String() string {
	buf := make([]byte, 0, 2+4*len(s))
	buf = append(buf, '(')
	for i, dim := range s {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = fmt.Appendf(buf, "%d", dim)
	}
	return string(append(buf, ')'))
}
