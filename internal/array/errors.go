package array

import (
	"errors"

	"github.com/born-ml/fixed/internal/shape"
)

// Common errors.
var (
	ErrTooManyValues = errors.New("more initial values than elements")
	ErrShortBuffer   = errors.New("buffer shorter than array linear size")
	ErrOutOfRange    = shape.ErrOutOfRange
)

// OutOfRangeError is returned by checked accessors.
type OutOfRangeError = shape.OutOfRangeError
