// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array_test

import (
	"errors"
	"fmt"

	"github.com/born-ml/fixed/array"
)

// Board is an 8x8 shape.
type Board struct{}

func (Board) Extents() array.Shape { return array.Shape{8, 8} }

// Elements are stored row-major: the last coordinate varies fastest.
func ExampleFromValues() {
	m := array.MustFromValues[int, array.Mat2x2](0, 1, 2, 3)

	fmt.Println(m.Get(0, 0), m.Get(0, 1))
	fmt.Println(m.Get(1, 0), m.Get(1, 1))

	// Output:
	// 0 1
	// 2 3
}

func ExampleOutOfRangeError() {
	m := array.MustFromValues[int, array.Mat2x2](0, 1, 2, 3)

	_, err := m.At(0, 2)
	fmt.Println(errors.Is(err, array.ErrOutOfRange))

	var oor *array.OutOfRangeError
	if errors.As(err, &oor) {
		fmt.Println(oor.Axis, oor.Coord, oor.Extent)
	}

	// Output:
	// true
	// 1 2 2
}

func ExampleConvert() {
	narrow := array.MustFromValues[int16, array.Vec3](1987, 4, 24)

	wide := array.Convert[int64](narrow)

	fmt.Println(wide.Data())
	// Output: [1987 4 24]
}

func ExampleSwap() {
	a := array.MustFromValues[string, array.Vec2]("a1", "a2")
	b := array.MustFromValues[string, array.Vec2]("b1", "b2")
	first := a.Ref(0)

	array.Swap(a, b)

	fmt.Println(*first, a.Data(), b.Data())
	// Output: b1 [b1 b2] [a1 a2]
}

func ExampleNewIn() {
	buf := []uint32{0xCAFE}

	def, _ := array.NewIn[uint32, array.Vec2](append(buf, 0xBEEF))
	zero, _ := array.ZeroIn[uint32, array.Vec2]([]uint32{0xCAFE, 0xBEEF})

	fmt.Printf("%#x %#x\n", def.Get(0), zero.Get(0))
	// Output: 0xcafe 0x0
}

func ExampleLen() {
	fmt.Println(array.Order[Board](), array.Dims[Board](), array.Len[Board]())
	// Output: 2 (8, 8) 64
}
