package rootfind

import (
	"errors"
	"fmt"
)

// ErrNonConvergence is matched by every *NonConvergenceError.
var ErrNonConvergence = errors.New("root finder did not converge")

// NonConvergenceError reports the state of a failed solve.
type NonConvergenceError struct {
	Method     Method
	X          float64 // Last iterate
	Residual   float64 // f(X)
	Iterations int
	Reason     string
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("%s: %s after %d iterations (x=%g, f(x)=%g)",
		e.Method, e.Reason, e.Iterations, e.X, e.Residual)
}

// Unwrap lets errors.Is match ErrNonConvergence.
func (e *NonConvergenceError) Unwrap() error {
	return ErrNonConvergence
}
