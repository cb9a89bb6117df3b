// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

// Predeclared shapes.
type (
	Vec2   struct{} // (2)
	Vec3   struct{} // (3)
	Vec4   struct{} // (4)
	Mat2x2 struct{} // (2, 2)
	Mat3x3 struct{} // (3, 3)
	Mat4x4 struct{} // (4, 4)
)

// Extents implements Extents.
func (Vec2) Extents() Shape { return Shape{2} }

// Extents implements Extents.
func (Vec3) Extents() Shape { return Shape{3} }

// Extents implements Extents.
func (Vec4) Extents() Shape { return Shape{4} }

// Extents implements Extents.
func (Mat2x2) Extents() Shape { return Shape{2, 2} }

// Extents implements Extents.
func (Mat3x3) Extents() Shape { return Shape{3, 3} }

// Extents implements Extents.
func (Mat4x4) Extents() Shape { return Shape{4, 4} }
