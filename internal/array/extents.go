package array

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/born-ml/fixed/internal/shape"
)

// Extents is implemented by shape marker types.
//
// A marker type is usually an empty struct whose Extents method returns a
// constant shape:
//
//	type Grid struct{}
//
//	func (Grid) Extents() shape.Shape { return shape.Shape{3, 4} }
//
// Extents is called once per marker type, on its zero value; the resulting
// layout is cached and shared by every array of that type. It must return the
// same shape each time. Marker types must be value types: a pointer marker's
// zero value is nil and is rejected with ErrInvalidShape.
type Extents interface {
	Extents() shape.Shape
}

// layouts caches one *shape.Layout per marker type.
var layouts sync.Map // reflect.Type -> *shape.Layout

// layoutOf resolves the layout of marker type S.
// Panics if S describes an invalid shape or is not a value type.
func layoutOf[S Extents]() *shape.Layout {
	key := reflect.TypeFor[S]()
	if l, ok := layouts.Load(key); ok {
		return l.(*shape.Layout)
	}

	switch key.Kind() {
	case reflect.Pointer, reflect.Interface:
		panic(fmt.Errorf("shape type %v: %w: marker must be a value type", key, shape.ErrInvalidShape))
	}

	var s S
	l, err := shape.NewLayout(s.Extents()...)
	if err != nil {
		panic(fmt.Errorf("shape type %v: %w", key, err))
	}
	actual, _ := layouts.LoadOrStore(key, l)
	return actual.(*shape.Layout)
}

// Order returns the number of axes of shape type S.
func Order[S Extents]() int {
	return layoutOf[S]().Order()
}

// Dims returns the per-axis extents of shape type S.
func Dims[S Extents]() shape.Shape {
	return layoutOf[S]().Dims()
}

// Len returns the linear size (element count) of shape type S.
func Len[S Extents]() int {
	return layoutOf[S]().Size()
}
