package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidParameter is returned when model parameters are rejected before solving.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParamError describes a single rejected parameter.
type ParamError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%g: %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidParameter.
func (e *ParamError) Unwrap() error {
	return ErrInvalidParameter
}

// -----------------------------------------------------------------------------
// Distribution family
// -----------------------------------------------------------------------------

// Family identifies the distribution of the fundamental value V.
type Family int

const (
	Normal Family = iota + 1
	Exponential
)

// String returns the lowercase family name used in config and reports.
func (f Family) String() string {
	switch f {
	case Normal:
		return "normal"
	case Exponential:
		return "exponential"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// Title returns the capitalised family name.
func (f Family) Title() string {
	switch f {
	case Normal:
		return "Normal"
	case Exponential:
		return "Exponential"
	default:
		return f.String()
	}
}

// ParseFamily parses a family name (case-insensitive).
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal", "gaussian":
		return Normal, nil
	case "exponential", "exp":
		return Exponential, nil
	default:
		return 0, fmt.Errorf("unknown distribution family %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Family) MarshalText() ([]byte, error) {
	if f != Normal && f != Exponential {
		return nil, fmt.Errorf("unknown distribution family %d", int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Family) UnmarshalText(b []byte) error {
	parsed, err := ParseFamily(string(b))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// -----------------------------------------------------------------------------
// Parameters
// -----------------------------------------------------------------------------

// Params are the inputs to a single equilibrium computation.
type Params struct {
	Family Family
	Mu     float64 // Normal mean
	Sigma  float64 // Normal standard deviation
	Lambda float64 // Exponential rate
	Pi     float64 // Probability the counterparty is informed
}

// NormalParams returns parameters for a Normal fundamental value.
func NormalParams(mu, sigma, pi float64) Params {
	return Params{Family: Normal, Mu: mu, Sigma: sigma, Pi: pi}
}

// ExponentialParams returns parameters for an Exponential fundamental value.
func ExponentialParams(lambda, pi float64) Params {
	return Params{Family: Exponential, Lambda: lambda, Pi: pi}
}

// DefaultNormal returns mu=100, sigma=10, pi=0.3.
func DefaultNormal() Params {
	return NormalParams(100, 10, 0.3)
}

// DefaultExponential returns lambda=0.5, pi=0.3.
func DefaultExponential() Params {
	return ExponentialParams(0.5, 0.3)
}

// WithPi returns a copy of p with a different informed-trade probability.
func (p Params) WithPi(pi float64) Params {
	p.Pi = pi
	return p
}

// Center returns the reference value quotes are placed around:
// mu for Normal, the mean 1/lambda for Exponential.
func (p Params) Center() float64 {
	if p.Family == Exponential {
		return 1 / p.Lambda
	}
	return p.Mu
}

// Validate checks the parameters for the selected family.
func (p Params) Validate() error {
	switch p.Family {
	case Normal:
		if !isFinite(p.Mu) {
			return &ParamError{Field: "mu", Value: p.Mu, Reason: "must be finite"}
		}
		if !isFinite(p.Sigma) || p.Sigma <= 0 {
			return &ParamError{Field: "sigma", Value: p.Sigma, Reason: "must be > 0"}
		}
	case Exponential:
		if !isFinite(p.Lambda) || p.Lambda <= 0 {
			return &ParamError{Field: "lambda", Value: p.Lambda, Reason: "must be > 0"}
		}
	default:
		return &ParamError{Field: "family", Value: float64(p.Family), Reason: "unknown distribution family"}
	}

	if math.IsNaN(p.Pi) || p.Pi < 0 || p.Pi > 1 {
		return &ParamError{Field: "pi", Value: p.Pi, Reason: "must be in [0, 1]"}
	}
	return nil
}

// String returns a compact description, e.g. "normal(mu=100, sigma=10, pi=0.3)".
func (p Params) String() string {
	switch p.Family {
	case Normal:
		return fmt.Sprintf("normal(mu=%g, sigma=%g, pi=%g)", p.Mu, p.Sigma, p.Pi)
	case Exponential:
		return fmt.Sprintf("exponential(lambda=%g, pi=%g)", p.Lambda, p.Pi)
	default:
		return fmt.Sprintf("%s(pi=%g)", p.Family, p.Pi)
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// -----------------------------------------------------------------------------
// Result
// -----------------------------------------------------------------------------

// Result is the equilibrium quote produced by one solve.
type Result struct {
	Bid    float64
	Ask    float64
	Spread float64 // Ask - Bid

	Params     Params  // Inputs that produced this result
	Iterations int     // Root-finder iterations used
	Residual   float64 // Expected profit at the returned spread
}

// NewResult builds a Result from the equilibrium spread around center.
func NewResult(p Params, center, spread float64) Result {
	ask := center + spread/2
	bid := center - spread/2
	return Result{
		Bid:    bid,
		Ask:    ask,
		Spread: ask - bid,
		Params: p,
	}
}

// Mid returns the midpoint of bid and ask.
func (r Result) Mid() float64 {
	return (r.Bid + r.Ask) / 2
}
