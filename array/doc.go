// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides fixed-shape multi-dimensional arrays.
//
// # Overview
//
// An Array[T, S] stores exactly Len[S]() elements of type T in one contiguous
// buffer. The shape is fixed by the marker type S, so it is known before any
// array exists and two arrays of the same type always have the same shape.
// This package provides:
//   - Row-major storage (the last axis varies fastest)
//   - Unchecked (Get, Set, Ref) and bounds-checked (At, SetAt, RefAt) access
//   - A closed set of construction modes: default, zero, aggregate, copy,
//     converting copy, move and converting move
//   - Assignment, swap, fill and release
//
// # Basic Usage
//
//	import "github.com/born-ml/fixed/array"
//
//	func main() {
//	    m := array.MustFromValues[int, array.Mat2x2](0, 1, 2, 3)
//
//	    m.Get(1, 0)            // 2, unchecked
//	    _, err := m.At(2, 0)   // err matches array.ErrOutOfRange
//
//	    f := array.Convert[float64](m)
//	    f.Fill(0.5)
//	}
//
// # Custom Shapes
//
// Any type with an Extents method can serve as a shape:
//
//	type Board struct{}
//
//	func (Board) Extents() array.Shape { return array.Shape{8, 8} }
//
//	b := array.Zero[rune, Board]()
//
// Extents is resolved once per type and cached; every extent must be positive.
//
// # Element Lifecycle
//
// Element types can opt into a default state (Defaulter) and into release of
// held resources (Releaser). Trivial element types pay nothing: default
// initialization does not write to them, which NewIn makes observable when
// building an array on top of an existing buffer.
//
// # Concurrency
//
// Arrays are plain values with no internal locking. Concurrent reads are safe;
// any concurrent write must be synchronized by the caller.
package array
