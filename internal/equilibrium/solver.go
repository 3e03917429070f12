package equilibrium

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/rickgao/cg-spread/internal/metrics"
	"github.com/rickgao/cg-spread/internal/model"
	"github.com/rickgao/cg-spread/internal/rootfind"
)

// DefaultInitialGuess is the spread the root finder starts from.
const DefaultInitialGuess = 1.0

// Solver finds equilibrium spreads. It holds only immutable configuration
// and is safe for concurrent use.
type Solver struct {
	root         rootfind.Config
	initialGuess float64
	logger       *slog.Logger
	report       io.Writer
	metrics      *metrics.Metrics
}

// Option configures a Solver.
type Option func(*Solver)

// New creates a Solver with the default root finder configuration and no report output.
func New(opts ...Option) *Solver {
	s := &Solver{
		root:         rootfind.DefaultConfig(),
		initialGuess: DefaultInitialGuess,
		logger:       slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithRootConfig sets the root finder method, tolerances and iteration budget.
func WithRootConfig(cfg rootfind.Config) Option {
	return func(s *Solver) {
		s.root = cfg
	}
}

// WithInitialGuess sets the starting spread.
func WithInitialGuess(spread float64) Option {
	return func(s *Solver) {
		s.initialGuess = spread
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Solver) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithReport writes a human-readable report of every successful solve to w.
func WithReport(w io.Writer) Option {
	return func(s *Solver) {
		s.report = w
	}
}

// WithMetrics records solve outcomes.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Solver) {
		s.metrics = m
	}
}

// SolveNormal solves for V ~ Normal(mu, sigma) with default options,
// reporting to stdout.
func SolveNormal(mu, sigma, pi float64) (model.Result, error) {
	return New(WithReport(os.Stdout)).SolveNormal(mu, sigma, pi)
}

// SolveExponential solves for V ~ Exponential(lambda) with default options,
// reporting to stdout.
func SolveExponential(lambda, pi float64) (model.Result, error) {
	return New(WithReport(os.Stdout)).SolveExponential(lambda, pi)
}

// SolveNormal solves for V ~ Normal(mu, sigma).
func (s *Solver) SolveNormal(mu, sigma, pi float64) (model.Result, error) {
	return s.Solve(model.NormalParams(mu, sigma, pi))
}

// SolveExponential solves for V ~ Exponential(lambda).
func (s *Solver) SolveExponential(lambda, pi float64) (model.Result, error) {
	return s.Solve(model.ExponentialParams(lambda, pi))
}

// Solve validates p, finds the zero-profit spread and derives bid and ask.
func (s *Solver) Solve(p model.Params) (model.Result, error) {
	if err := p.Validate(); err != nil {
		s.metrics.ObserveFailure(p.Family.String(), metrics.OutcomeInvalid)
		return model.Result{}, fmt.Errorf("solve %s: %w", p.Family, err)
	}

	var profit rootfind.Func
	switch p.Family {
	case model.Normal:
		profit = normalProfit(p.Sigma, p.Pi)
	case model.Exponential:
		profit = exponentialProfit(p.Lambda, p.Pi)
	}

	root, err := rootfind.Solve(profit, s.initialGuess, s.root)
	if err == nil {
		err = s.checkSpread(p, &root)
	}
	if err != nil {
		s.metrics.ObserveFailure(p.Family.String(), metrics.OutcomeNonConvergence)
		s.logger.Warn("equilibrium solve failed",
			"params", p.String(),
			"error", err,
		)
		return model.Result{}, fmt.Errorf("solve %s: %w", p, err)
	}

	result := model.NewResult(p, p.Center(), root.X)
	result.Iterations = root.Iterations
	result.Residual = root.Residual

	s.metrics.ObserveSolve(p.Family.String(), result.Iterations, result.Spread)
	s.logger.Debug("equilibrium solved",
		"params", p.String(),
		"spread", result.Spread,
		"bid", result.Bid,
		"ask", result.Ask,
		"iterations", result.Iterations,
		"residual", result.Residual,
	)

	if s.report != nil {
		if err := WriteReport(s.report, result); err != nil {
			s.logger.Warn("write report", "error", err)
		}
	}

	return result, nil
}

// checkSpread rejects roots with a negative spread. Values within the
// residual tolerance of zero are the degenerate pi = 0 root and snap to 0.
func (s *Solver) checkSpread(p model.Params, root *rootfind.Root) error {
	if root.X >= 0 {
		return nil
	}
	if root.X >= -s.root.Tol*math.Max(math.Abs(p.Center()), 1) {
		root.X = 0
		return nil
	}
	return &rootfind.NonConvergenceError{
		Method:     s.root.Method,
		X:          root.X,
		Residual:   root.Residual,
		Iterations: root.Iterations,
		Reason:     "converged to a negative spread",
	}
}

// quiet returns a copy of s without report output.
func (s *Solver) quiet() *Solver {
	c := *s
	c.report = nil
	return &c
}
