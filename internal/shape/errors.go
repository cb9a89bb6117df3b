package shape

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every *OutOfRangeError.
var ErrOutOfRange = errors.New("coordinate out of range")

// OutOfRangeError identifies the axis and coordinate that failed a bounds check.
type OutOfRangeError struct {
	Axis   int // Failing axis
	Coord  int // Offending coordinate
	Extent int // Extent of the axis; valid coordinates are [0, Extent)
}

// Error implements the error interface.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: axis %d: coordinate %d not in [0, %d)", ErrOutOfRange, e.Axis, e.Coord, e.Extent)
}

// Is reports whether target is ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
