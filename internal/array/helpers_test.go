package array

import "github.com/born-ml/fixed/internal/shape"

// Shape marker types used across the tests.

type vec1 struct{}

func (vec1) Extents() shape.Shape { return shape.Shape{1} }

type vec3 struct{}

func (vec3) Extents() shape.Shape { return shape.Shape{3} }

type mat2x2 struct{}

func (mat2x2) Extents() shape.Shape { return shape.Shape{2, 2} }

type cube234 struct{}

func (cube234) Extents() shape.Shape { return shape.Shape{2, 3, 4} }

type empty2x0 struct{}

func (empty2x0) Extents() shape.Shape { return shape.Shape{2, 0} }

// sideEffect counts how many times it was triggered.
type sideEffect struct {
	invoked int
}

func (s *sideEffect) trigger() { s.invoked++ }

// triggered reports whether trigger ran exactly once.
func (s *sideEffect) triggered() bool { return s.invoked == 1 }

// userDefined has a user-defined default state.
type userDefined struct {
	sideEffect
}

func (u *userDefined) SetDefault() { u.trigger() }

// composite has no default of its own but nests defaulted members.
type composite struct {
	Head   userDefined
	Slots  [2]userDefined
	hidden userDefined // unexported: never visited
	Plain  int
}

// tracker appends its id to log when released.
type tracker struct {
	id  int
	log *[]int
}

func (t *tracker) Release() {
	if t.log == nil {
		return
	}
	*t.log = append(*t.log, t.id)
}

// trackers returns n trackers with ids 0..n-1 sharing log.
func trackers(log *[]int, n int) []tracker {
	out := make([]tracker, n)
	for i := range out {
		out[i] = tracker{id: i, log: log}
	}
	return out
}

// pair nests releasable members to check field release order.
type pair struct {
	First  tracker
	Second tracker
}

// ptrMarker is only usable through a pointer, which is not a valid marker.
type ptrMarker struct{ dims shape.Shape }

func (p *ptrMarker) Extents() shape.Shape { return p.dims }

// huge overflows the element count.
type huge struct{}

func (huge) Extents() shape.Shape { return shape.Shape{1 << 40, 1 << 40} }

// recoverError runs fn and returns the error it panicked with.
func recoverError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}
