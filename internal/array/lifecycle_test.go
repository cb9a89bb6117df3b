package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Expect exactly one release per element by the end of the scope.
func TestRelease_OncePerElement(t *testing.T) {
	var log []int

	func() {
		a := MustFromValues[tracker, vec1](tracker{id: 7, log: &log})
		defer a.Release()
		assert.Empty(t, log)
	}()

	assert.Equal(t, []int{7}, log)
}

func TestRelease_ReverseOrderAndIdempotent(t *testing.T) {
	var log []int
	a := MustFromValues[tracker, mat2x2](trackers(&log, 4)...)

	a.Release()
	a.Release()

	assert.Equal(t, []int{3, 2, 1, 0}, log)
	assert.True(t, a.Released())
	assert.Nil(t, a.Data())
	assert.Equal(t, 4, a.Len(), "shape survives release")
}

func TestRelease_NestedMembers(t *testing.T) {
	var log []int
	a := MustFromValues[pair, vec1](pair{
		First:  tracker{id: 1, log: &log},
		Second: tracker{id: 2, log: &log},
	})

	a.Release()

	assert.Equal(t, []int{2, 1}, log, "fields released in reverse declaration order")
}

func TestRelease_ArrayTypedElements(t *testing.T) {
	var log []int
	a := MustFromValues[[2]tracker, vec1]([2]tracker{
		{id: 1, log: &log},
		{id: 2, log: &log},
	})

	a.Release()

	assert.Equal(t, []int{2, 1}, log)
}

func TestRelease_TrivialType(t *testing.T) {
	a := MustFromValues[int, vec3](1, 2, 3)

	assert.NotPanics(t, a.Release)
	assert.True(t, a.Released())
}

func TestUseAfterReleasePanics(t *testing.T) {
	a := Zero[int, vec3]()
	a.Release()

	assert.Panics(t, func() { a.Clone() })
	assert.Panics(t, func() { a.Fill(1) })
	assert.Panics(t, func() { Zero[int, vec3]().Assign(a) })
}

func TestMove_ReleasedOnceAcrossOwners(t *testing.T) {
	var log []int
	src := MustFromValues[tracker, vec3](trackers(&log, 3)...)

	dst := src.Move()
	src.Release() // moved-from zero trackers have no log
	dst.Release()

	assert.Equal(t, []int{2, 1, 0}, log)
}

func TestHooksFor(t *testing.T) {
	assert.Equal(t, hooks{}, hooksFor[int]())
	assert.Equal(t, hooks{}, hooksFor[[4]float32]())
	assert.Equal(t, hooks{defaults: true}, hooksFor[userDefined]())
	assert.Equal(t, hooks{defaults: true}, hooksFor[[1]userDefined]())
	assert.Equal(t, hooks{defaults: true}, hooksFor[composite]())
	assert.Equal(t, hooks{releases: true}, hooksFor[pair]())
	assert.Equal(t, hooks{}, hooksFor[[0]tracker]())
}

func TestString(t *testing.T) {
	a := Zero[float32, mat2x2]()
	require.Equal(t, "Array[float32](2, 2)", a.String())
}
