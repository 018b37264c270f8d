package linalg

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
var ErrInvalidDimensions = errors.New("linalg: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("linalg: index out of bounds")

// ErrDimensionMismatch indicates an operation was given operands whose shapes
// are incompatible (e.g. Mul(a,b) with a.Cols != b.Rows).
var ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
