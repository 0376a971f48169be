package vecmath

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConstruction is returned when a vector or matrix cannot be
	// built from the supplied input.
	ErrInvalidConstruction = errors.New("invalid input values for construction")

	// ErrNotInvertible is returned by Inverse when the determinant is zero.
	ErrNotInvertible = errors.New("matrix is not invertible")
)

func errorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConstruction}, args...)...)
}
