package array

import "github.com/born-ml/fixed/internal/shape"

// Unchecked accessors compute the row-major offset without validating each
// coordinate. A coordinate outside [0, Dims[i]) is a caller bug: it may
// silently address another element or panic on the slice bound. Every
// accessor panics if the number of coordinates differs from Order.

// Get returns the element at coords without bounds checking.
func (a *Array[T, S]) Get(coords ...int) T {
	return a.data[a.layout.Offset(coords...)]
}

// Set stores v at coords without bounds checking.
func (a *Array[T, S]) Set(v T, coords ...int) {
	a.data[a.layout.Offset(coords...)] = v
}

// Ref returns a pointer to the element at coords without bounds checking.
// The pointer stays tied to that storage slot for the array's lifetime.
func (a *Array[T, S]) Ref(coords ...int) *T {
	return &a.data[a.layout.Offset(coords...)]
}

// At returns the element at coords.
// It returns an *OutOfRangeError naming the first axis whose coordinate is
// outside [0, extent).
func (a *Array[T, S]) At(coords ...int) (T, error) {
	if err := a.layout.Check(coords...); err != nil {
		var zero T
		return zero, err
	}
	return a.Get(coords...), nil
}

// SetAt stores v at coords. Nothing is written when a coordinate is out of range.
func (a *Array[T, S]) SetAt(v T, coords ...int) error {
	if err := a.layout.Check(coords...); err != nil {
		return err
	}
	a.Set(v, coords...)
	return nil
}

// RefAt returns a pointer to the element at coords after bounds checking.
func (a *Array[T, S]) RefAt(coords ...int) (*T, error) {
	if err := a.layout.Check(coords...); err != nil {
		return nil, err
	}
	return a.Ref(coords...), nil
}

// View is a read-only handle on an Array.
type View[T any, S Extents] struct {
	a *Array[T, S]
}

// View returns a read-only handle on a. Writes through a remain visible.
func (a *Array[T, S]) View() View[T, S] {
	return View[T, S]{a: a}
}

// Get returns the element at coords without bounds checking.
func (v View[T, S]) Get(coords ...int) T {
	return v.a.Get(coords...)
}

// At returns the element at coords, or an *OutOfRangeError.
func (v View[T, S]) At(coords ...int) (T, error) {
	return v.a.At(coords...)
}

// Len returns the number of elements.
func (v View[T, S]) Len() int { return v.a.Len() }

// Order returns the number of axes.
func (v View[T, S]) Order() int { return v.a.Order() }

// Dims returns the per-axis extents.
func (v View[T, S]) Dims() shape.Shape { return v.a.Dims() }

// Each calls fn with a copy of every element in row-major order.
// The coords slice is reused between calls and must not be retained.
func (v View[T, S]) Each(fn func(coords []int, value T)) {
	v.a.Each(func(coords []int, p *T) {
		fn(coords, *p)
	})
}

// Clone returns a mutable element-wise copy of the viewed array.
func (v View[T, S]) Clone() *Array[T, S] {
	return v.a.Clone()
}

// String returns a human-readable representation of the viewed array.
func (v View[T, S]) String() string {
	return v.a.String()
}
