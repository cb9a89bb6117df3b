package array

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types convertible with a plain Go conversion.
type Number interface {
	constraints.Integer | constraints.Float
}

// New creates a default-initialized array.
//
// Elements implementing Defaulter (directly or through nested array slots
// and exported fields) get SetDefault called once; other elements are left
// as allocated.
func New[T any, S Extents]() *Array[T, S] {
	a := alloc[T, S]()
	defaultInit(a.data)
	return a
}

// NewIn creates a default-initialized array on top of buf, which must hold at
// least Len[S]() elements. The array takes ownership of buf[:Len[S]()].
//
// Default initialization writes nothing for trivial element types, so prior
// contents of buf remain visible through the array.
func NewIn[T any, S Extents](buf []T) (*Array[T, S], error) {
	a, err := place[T, S](buf)
	if err != nil {
		return nil, err
	}
	defaultInit(a.data)
	return a, nil
}

// Zero creates an array whose elements are all zero values.
func Zero[T any, S Extents]() *Array[T, S] {
	return alloc[T, S]()
}

// ZeroIn creates a zero-initialized array on top of buf, overwriting the first
// Len[S]() elements with zero values. The array takes ownership of them.
func ZeroIn[T any, S Extents](buf []T) (*Array[T, S], error) {
	a, err := place[T, S](buf)
	if err != nil {
		return nil, err
	}
	clear(a.data)
	return a, nil
}

func place[T any, S Extents](buf []T) (*Array[T, S], error) {
	l := layoutOf[S]()
	n := l.Size()
	if len(buf) < n {
		return nil, fmt.Errorf("%w: need %d elements, got %d", ErrShortBuffer, n, len(buf))
	}
	return &Array[T, S]{
		layout: l,
		data:   buf[:n:n],
	}, nil
}

// FromValues creates an array whose element i (row-major) is vals[i].
// Elements past len(vals) are default-initialized as in New.
// Returns ErrTooManyValues if len(vals) exceeds Len[S]().
//
// Example:
//
//	m, err := array.FromValues[int, Mat2x2](0, 1, 2, 3)
//	m.Get(1, 0) // 2
func FromValues[T any, S Extents](vals ...T) (*Array[T, S], error) {
	a, err := allocFor[T, S](len(vals))
	if err != nil {
		return nil, err
	}
	copy(a.data, vals)
	defaultInit(a.data[len(vals):])
	return a, nil
}

// MustFromValues is like FromValues but panics on error.
func MustFromValues[T any, S Extents](vals ...T) *Array[T, S] {
	a, err := FromValues[T, S](vals...)
	if err != nil {
		panic(err)
	}
	return a
}

// FromConverted is FromValues with a per-element conversion from U to T.
func FromConverted[T, U any, S Extents](conv func(U) T, vals ...U) (*Array[T, S], error) {
	a, err := allocFor[T, S](len(vals))
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		a.data[i] = conv(v)
	}
	defaultInit(a.data[len(vals):])
	return a, nil
}

// TryFromConverted is FromConverted with a fallible conversion.
//
// The first conversion error is returned unmodified. Elements converted
// before the failure are released (last first) and no array is returned.
func TryFromConverted[T, U any, S Extents](conv func(U) (T, error), vals ...U) (*Array[T, S], error) {
	a, err := allocFor[T, S](len(vals))
	if err != nil {
		return nil, err
	}
	if err := convertInto(a.data, vals, conv); err != nil {
		return nil, err
	}
	defaultInit(a.data[len(vals):])
	return a, nil
}

func allocFor[T any, S Extents](n int) (*Array[T, S], error) {
	if size := Len[S](); n > size {
		return nil, fmt.Errorf("%w: %d values for %d elements", ErrTooManyValues, n, size)
	}
	return alloc[T, S](), nil
}

// convertInto fills dst[:len(src)] from src. On failure it releases what it
// already converted and returns the conversion error.
func convertInto[T, U any](dst []T, src []U, conv func(U) (T, error)) error {
	for i, v := range src {
		out, err := conv(v)
		if err != nil {
			releaseAll(dst[:i])
			clear(dst[:i])
			return err
		}
		dst[i] = out
	}
	return nil
}

// Clone returns an element-wise copy of a.
func (a *Array[T, S]) Clone() *Array[T, S] {
	a.mustLive()
	c := alloc[T, S]()
	copy(c.data, a.data)
	return c
}

// Copy returns an element-wise copy of src.
func Copy[T any, S Extents](src *Array[T, S]) *Array[T, S] {
	return src.Clone()
}

// ConvertCopy creates an array whose element i is conv(src element i).
// The source is not modified. Both arrays share shape S.
func ConvertCopy[T, U any, S Extents](src *Array[U, S], conv func(U) T) *Array[T, S] {
	src.mustLive()
	a := alloc[T, S]()
	for i, v := range src.data {
		a.data[i] = conv(v)
	}
	return a
}

// TryConvertCopy is ConvertCopy with a fallible conversion.
// See TryFromConverted for the failure contract.
func TryConvertCopy[T, U any, S Extents](src *Array[U, S], conv func(U) (T, error)) (*Array[T, S], error) {
	src.mustLive()
	a := alloc[T, S]()
	if err := convertInto(a.data, src.data, conv); err != nil {
		return nil, err
	}
	return a, nil
}

// Convert is ConvertCopy using Go's numeric conversion T(u).
//
// Example:
//
//	narrow := array.MustFromValues[int16, Vec3](1987, 4, 24)
//	wide := array.Convert[int64](narrow)
func Convert[T, U Number, S Extents](src *Array[U, S]) *Array[T, S] {
	return ConvertCopy(src, func(u U) T { return T(u) })
}

// Move transfers a's buffer to a new array. a is left valid with
// zero-valued elements.
func (a *Array[T, S]) Move() *Array[T, S] {
	a.mustLive()
	m := &Array[T, S]{
		layout: a.layout,
		data:   a.data,
	}
	a.data = make([]T, a.layout.Size())
	return m
}

// Move transfers src's buffer to a new array. See Array.Move.
func Move[T any, S Extents](src *Array[T, S]) *Array[T, S] {
	return src.Move()
}

// ConvertMove creates an array whose element i is conv(src element i) and
// resets each source element to its zero value afterwards.
func ConvertMove[T, U any, S Extents](src *Array[U, S], conv func(U) T) *Array[T, S] {
	src.mustLive()
	a := alloc[T, S]()
	var zero U
	for i := range src.data {
		a.data[i] = conv(src.data[i])
		src.data[i] = zero
	}
	return a
}

// TryConvertMove is ConvertMove with a fallible conversion.
//
// On failure, elements converted so far are released and the error is
// returned unmodified. Source elements consumed before the failure stay in
// their moved-from (zero) state; the rest are untouched.
func TryConvertMove[T, U any, S Extents](src *Array[U, S], conv func(U) (T, error)) (*Array[T, S], error) {
	src.mustLive()
	a := alloc[T, S]()
	var zero U
	for i := range src.data {
		out, err := conv(src.data[i])
		if err != nil {
			releaseAll(a.data[:i])
			return nil, err
		}
		a.data[i] = out
		src.data[i] = zero
	}
	return a, nil
}
