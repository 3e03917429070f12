package rootfind

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Method selects the iteration scheme.
type Method string

const (
	Newton Method = "newton"
	Brent  Method = "brent"
)

// ParseMethod parses a method name (case-insensitive).
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(s))); m {
	case Newton, Brent:
		return m, nil
	default:
		return "", fmt.Errorf("unknown root finding method %q", s)
	}
}

// Func is a scalar objective.
type Func func(x float64) float64

// Config holds solver tolerances and the iteration budget.
type Config struct {
	Method  Method
	Tol     float64 // Converged when |f(x)| <= Tol
	XTol    float64 // Relative step below which no further progress is assumed
	MaxIter int     // Iteration budget
	Step    float64 // Relative finite-difference step for the derivative
}

// DefaultConfig returns Newton with |f| <= 1e-8 within 100 iterations.
func DefaultConfig() Config {
	return Config{
		Method:  Newton,
		Tol:     1e-8,
		XTol:    1e-12,
		MaxIter: 100,
		Step:    1e-6,
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Method != Newton && c.Method != Brent {
		return fmt.Errorf("method must be %q or %q, got %q", Newton, Brent, c.Method)
	}
	if !(c.Tol > 0) {
		return fmt.Errorf("tol must be > 0, got %g", c.Tol)
	}
	if !(c.XTol > 0) {
		return fmt.Errorf("xtol must be > 0, got %g", c.XTol)
	}
	if c.MaxIter < 1 {
		return errors.New("max_iter must be >= 1")
	}
	if c.Method == Newton && !(c.Step > 0) {
		return fmt.Errorf("step must be > 0, got %g", c.Step)
	}
	return nil
}

// Root is a converged solution.
type Root struct {
	X          float64
	Residual   float64 // f(X)
	Iterations int
}

// Solve finds x with |f(x)| <= cfg.Tol starting from x0.
func Solve(f Func, x0 float64, cfg Config) (Root, error) {
	if err := cfg.Validate(); err != nil {
		return Root{}, fmt.Errorf("root finder config: %w", err)
	}
	if !isFinite(x0) {
		return Root{}, fmt.Errorf("initial guess must be finite, got %g", x0)
	}

	var (
		root Root
		err  error
	)
	switch cfg.Method {
	case Brent:
		root, err = solveBrent(f, x0, cfg)
	default:
		root, err = solveNewton(f, x0, cfg)
	}
	if err != nil {
		return Root{}, err
	}
	if !crossesZero(f, root.X) {
		return Root{}, &NonConvergenceError{
			Method:     cfg.Method,
			X:          root.X,
			Residual:   root.Residual,
			Iterations: root.Iterations,
			Reason:     "objective does not change sign at candidate root",
		}
	}
	return root, nil
}

const (
	signStep      = 1e-6
	signWidenings = 6
)

// crossesZero reports whether f takes strictly opposite signs on either side
// of x, widening the probe interval tenfold up to signWidenings times.
// Points of a flat tail that merely sit within Tol of zero fail this check.
func crossesZero(f Func, x float64) bool {
	d := signStep * scale(x)
	for i := 0; i < signWidenings; i++ {
		lo, hi := f(x-d), f(x+d)
		if (lo < 0 && hi > 0) || (lo > 0 && hi < 0) {
			return true
		}
		d *= 10
	}
	return false
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func scale(x float64) float64 {
	return math.Max(math.Abs(x), 1)
}
