package array

import (
	"reflect"
	"sync"
)

// Defaulter is implemented (on the pointer) by element types with a
// user-defined default state. Default initialization calls SetDefault exactly
// once per element.
//
// Element types that do not implement Defaulter are still visited: array
// slots and exported struct fields whose types implement it are defaulted
// individually. A type that implements Defaulter is responsible for its own
// fields.
type Defaulter interface {
	SetDefault()
}

// Releaser is implemented (on the pointer) by element types that hold
// resources. Array.Release calls Release exactly once per element, in reverse
// linear order. Array slots and exported struct fields are visited the same
// way as for Defaulter, also in reverse.
type Releaser interface {
	Release()
}

var (
	defaulterType = reflect.TypeFor[Defaulter]()
	releaserType  = reflect.TypeFor[Releaser]()
)

// hooks records which lifecycle protocols an element type takes part in.
type hooks struct {
	defaults bool
	releases bool
}

var hookCache sync.Map // reflect.Type -> hooks

// hooksFor reports the lifecycle hooks of T. Trivial types report none and
// get no per-element work.
func hooksFor[T any]() hooks {
	t := reflect.TypeFor[T]()
	if h, ok := hookCache.Load(t); ok {
		return h.(hooks)
	}
	h := hooks{
		defaults: participates(t, defaulterType),
		releases: participates(t, releaserType),
	}
	hookCache.Store(t, h)
	return h
}

// participates reports whether values of t, or any array slot or exported
// field nested inside t, implement iface through a pointer receiver.
func participates(t, iface reflect.Type) bool {
	if reflect.PointerTo(t).Implements(iface) {
		return true
	}
	switch t.Kind() {
	case reflect.Array:
		return t.Len() > 0 && participates(t.Elem(), iface)
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.IsExported() && participates(f.Type, iface) {
				return true
			}
		}
	}
	return false
}

// defaultInit applies T's default initialization to every element of data.
// For trivial T nothing is written.
func defaultInit[T any](data []T) {
	if !hooksFor[T]().defaults {
		return
	}
	for i := range data {
		if d, ok := any(&data[i]).(Defaulter); ok {
			d.SetDefault()
			continue
		}
		setDefault(reflect.ValueOf(&data[i]).Elem())
	}
}

func setDefault(v reflect.Value) {
	t := v.Type()
	if reflect.PointerTo(t).Implements(defaulterType) {
		v.Addr().Interface().(Defaulter).SetDefault()
		return
	}
	switch t.Kind() {
	case reflect.Array:
		if !participates(t.Elem(), defaulterType) {
			return
		}
		for i := 0; i < v.Len(); i++ {
			setDefault(v.Index(i))
		}
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.IsExported() && participates(f.Type, defaulterType) {
				setDefault(v.Field(i))
			}
		}
	}
}

// releaseAll runs Release hooks on data in reverse order.
func releaseAll[T any](data []T) {
	if !hooksFor[T]().releases {
		return
	}
	for i := len(data) - 1; i >= 0; i-- {
		if r, ok := any(&data[i]).(Releaser); ok {
			r.Release()
			continue
		}
		release(reflect.ValueOf(&data[i]).Elem())
	}
}

func release(v reflect.Value) {
	t := v.Type()
	if reflect.PointerTo(t).Implements(releaserType) {
		v.Addr().Interface().(Releaser).Release()
		return
	}
	switch t.Kind() {
	case reflect.Array:
		if !participates(t.Elem(), releaserType) {
			return
		}
		for i := v.Len() - 1; i >= 0; i-- {
			release(v.Index(i))
		}
	case reflect.Struct:
		for i := t.NumField() - 1; i >= 0; i-- {
			f := t.Field(i)
			if f.IsExported() && participates(f.Type, releaserType) {
				release(v.Field(i))
			}
		}
	}
}
