// Package array implements Array, a fixed-shape multi-dimensional container.
//
// An Array[T, S] stores exactly Len[S]() elements of type T contiguously in
// row-major order (the last axis varies fastest). The shape is part of the
// type through the marker type S, so arrays of different shapes never mix.
package array

import (
	"fmt"
	"slices"

	"github.com/born-ml/fixed/internal/shape"
)

// Array is a fixed-shape container of T with shape S.
//
// Arrays are handed out as pointers and exclusively own their buffer;
// use Clone or Copy to duplicate one. An Array is not safe for concurrent
// mutation; concurrent reads of an unmutated Array are safe.
type Array[T any, S Extents] struct {
	layout   *shape.Layout
	data     []T
	released bool
}

// alloc creates an array with a zero-valued buffer.
func alloc[T any, S Extents]() *Array[T, S] {
	l := layoutOf[S]()
	return &Array[T, S]{
		layout: l,
		data:   make([]T, l.Size()),
	}
}

// Order returns the number of axes.
func (a *Array[T, S]) Order() int {
	return a.layout.Order()
}

// Dims returns the per-axis extents.
func (a *Array[T, S]) Dims() shape.Shape {
	return a.layout.Dims()
}

// Len returns the number of elements.
func (a *Array[T, S]) Len() int {
	return a.layout.Size()
}

// Layout returns the shared, immutable layout of the array's shape.
func (a *Array[T, S]) Layout() *shape.Layout {
	return a.layout
}

// Data returns the backing slice in row-major order.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the array.
func (a *Array[T, S]) Data() []T {
	return a.data
}

// Each calls fn for every element in row-major order.
// The coords slice is reused between calls and must not be retained.
func (a *Array[T, S]) Each(fn func(coords []int, v *T)) {
	coords := make([]int, a.layout.Order())
	for i := range a.data {
		fn(a.layout.Unravel(i, coords), &a.data[i])
	}
}

// Released reports whether Release has been called.
func (a *Array[T, S]) Released() bool {
	return a.released
}

// Release destroys every element (running Releaser hooks once per element,
// last element first) and then drops the buffer. Calling Release again does
// nothing. The array must not be accessed afterwards.
func (a *Array[T, S]) Release() {
	if a.released {
		return
	}
	a.released = true
	releaseAll(a.data)
	a.data = nil
}

// String returns a human-readable representation of the array.
func (a *Array[T, S]) String() string {
	var zero T
	return fmt.Sprintf("Array[%T]%v", zero, a.layout.Dims())
}

// Equal reports whether a and b hold equal elements at every position.
func Equal[T comparable, S Extents](a, b *Array[T, S]) bool {
	return slices.Equal(a.data, b.data)
}

// mustLive panics when a has been released.
func (a *Array[T, S]) mustLive() {
	if a.released {
		panic(fmt.Sprintf("%v: use after Release", a))
	}
}
