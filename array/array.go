// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"github.com/born-ml/fixed/internal/array"
	"github.com/born-ml/fixed/internal/shape"
)

// Type aliases for public API

// Shape represents the per-axis extents of an array.
// Example: Shape{2, 3, 4} describes a 3-axis array with 24 elements.
type Shape = shape.Shape

// Layout is a validated shape with precomputed row-major strides.
type Layout = shape.Layout

// Extents is implemented by shape marker types.
type Extents = array.Extents

// Array is a fixed-shape multi-dimensional container.
//
// T is the element type, S the shape marker type.
//
// Example:
//
//	m := array.Zero[float32, array.Mat3x3]()
//	m.Set(1, 0, 0)
type Array[T any, S Extents] = array.Array[T, S]

// View is a read-only handle on an Array.
type View[T any, S Extents] = array.View[T, S]

// Defaulter is implemented by element types with a user-defined default state.
type Defaulter = array.Defaulter

// Releaser is implemented by element types that hold resources.
type Releaser = array.Releaser

// Number is the set of element types supported by Convert.
type Number = array.Number

// OutOfRangeError identifies the axis and coordinate that failed a bounds check.
type OutOfRangeError = shape.OutOfRangeError

// Errors.
var (
	ErrOutOfRange    = shape.ErrOutOfRange
	ErrInvalidShape  = shape.ErrInvalidShape
	ErrTooManyValues = array.ErrTooManyValues
	ErrShortBuffer   = array.ErrShortBuffer
)

// NewLayout validates dims and precomputes strides.
func NewLayout(dims ...int) (*Layout, error) {
	return shape.NewLayout(dims...)
}

// Introspection

// Order returns the number of axes of shape type S.
func Order[S Extents]() int {
	return array.Order[S]()
}

// Dims returns the per-axis extents of shape type S.
func Dims[S Extents]() Shape {
	return array.Dims[S]()
}

// Len returns the element count of shape type S.
func Len[S Extents]() int {
	return array.Len[S]()
}

// Construction functions

// New creates a default-initialized array.
//
// Example:
//
//	a := array.New[float32, array.Vec4]()
func New[T any, S Extents]() *Array[T, S] {
	return array.New[T, S]()
}

// NewIn creates a default-initialized array on top of buf.
// Trivial elements keep the contents buf already had.
func NewIn[T any, S Extents](buf []T) (*Array[T, S], error) {
	return array.NewIn[T, S](buf)
}

// Zero creates an array of zero values.
//
// Example:
//
//	a := array.Zero[int, array.Mat4x4]()
func Zero[T any, S Extents]() *Array[T, S] {
	return array.Zero[T, S]()
}

// ZeroIn creates a zero-initialized array on top of buf.
func ZeroIn[T any, S Extents](buf []T) (*Array[T, S], error) {
	return array.ZeroIn[T, S](buf)
}

// FromValues creates an array from values in row-major order.
// Missing trailing values are default-initialized.
//
// Example:
//
//	m, err := array.FromValues[int, array.Mat2x2](0, 1, 2, 3)
func FromValues[T any, S Extents](vals ...T) (*Array[T, S], error) {
	return array.FromValues[T, S](vals...)
}

// MustFromValues is like FromValues but panics on error.
func MustFromValues[T any, S Extents](vals ...T) *Array[T, S] {
	return array.MustFromValues[T, S](vals...)
}

// FromConverted creates an array from values converted with conv.
func FromConverted[T, U any, S Extents](conv func(U) T, vals ...U) (*Array[T, S], error) {
	return array.FromConverted[T, U, S](conv, vals...)
}

// TryFromConverted creates an array from values converted with a fallible conv.
func TryFromConverted[T, U any, S Extents](conv func(U) (T, error), vals ...U) (*Array[T, S], error) {
	return array.TryFromConverted[T, U, S](conv, vals...)
}

// Copy returns an element-wise copy of src.
func Copy[T any, S Extents](src *Array[T, S]) *Array[T, S] {
	return array.Copy(src)
}

// ConvertCopy creates an array by converting each element of src.
func ConvertCopy[T, U any, S Extents](src *Array[U, S], conv func(U) T) *Array[T, S] {
	return array.ConvertCopy(src, conv)
}

// TryConvertCopy is ConvertCopy with a fallible conversion.
func TryConvertCopy[T, U any, S Extents](src *Array[U, S], conv func(U) (T, error)) (*Array[T, S], error) {
	return array.TryConvertCopy(src, conv)
}

// Convert converts a numeric array element-wise.
//
// Example:
//
//	wide := array.Convert[int64](narrow)
func Convert[T, U Number, S Extents](src *Array[U, S]) *Array[T, S] {
	return array.Convert[T](src)
}

// Move transfers src's elements to a new array, leaving src zeroed.
func Move[T any, S Extents](src *Array[T, S]) *Array[T, S] {
	return array.Move(src)
}

// ConvertMove converts each element of src into a new array, zeroing src.
func ConvertMove[T, U any, S Extents](src *Array[U, S], conv func(U) T) *Array[T, S] {
	return array.ConvertMove(src, conv)
}

// TryConvertMove is ConvertMove with a fallible conversion.
func TryConvertMove[T, U any, S Extents](src *Array[U, S], conv func(U) (T, error)) (*Array[T, S], error) {
	return array.TryConvertMove(src, conv)
}

// Assignment functions

// AssignConverted overwrites dst with converted elements of src.
func AssignConverted[T, U any, S Extents](dst *Array[T, S], src *Array[U, S], conv func(U) T) {
	array.AssignConverted(dst, src, conv)
}

// TryAssignConverted is AssignConverted with a fallible conversion.
// On failure dst is left unchanged.
func TryAssignConverted[T, U any, S Extents](dst *Array[T, S], src *Array[U, S], conv func(U) (T, error)) error {
	return array.TryAssignConverted(dst, src, conv)
}

// MoveAssignConverted overwrites dst with converted elements of src, zeroing src.
func MoveAssignConverted[T, U any, S Extents](dst *Array[T, S], src *Array[U, S], conv func(U) T) {
	array.MoveAssignConverted(dst, src, conv)
}

// Swap exchanges the contents of a and b.
func Swap[T any, S Extents](a, b *Array[T, S]) {
	array.Swap(a, b)
}

// Equal reports whether a and b hold equal elements.
func Equal[T comparable, S Extents](a, b *Array[T, S]) bool {
	return array.Equal(a, b)
}
