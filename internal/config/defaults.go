package config

import (
	"github.com/shopspring/decimal"

	"github.com/rickgao/cg-spread/internal/equilibrium"
	"github.com/rickgao/cg-spread/internal/model"
	"github.com/rickgao/cg-spread/internal/rootfind"
)

// Default values for optional configuration fields.
const (
	DefaultMethod       = string(rootfind.Newton)
	DefaultTol          = 1e-8
	DefaultXTol         = 1e-12
	DefaultMaxIter      = 100
	DefaultStep         = 1e-6
	DefaultInitialGuess = equilibrium.DefaultInitialGuess
	DefaultSweepWorkers = 4
	DefaultTickSize     = "0.01"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
	DefaultMetricsPath  = "/metrics"
)

// DefaultScenarios are solved when the config lists none.
func DefaultScenarios() []ScenarioConfig {
	return []ScenarioConfig{
		{Name: "normal", Family: model.Normal, Mu: 102, Sigma: 7, Pi: 0.3},
		{Name: "exponential", Family: model.Exponential, Lambda: 0.0075, Pi: 0.1},
	}
}

// DefaultSweepPis is the pi grid used when sweeping without an explicit list.
func DefaultSweepPis() []float64 {
	return []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var c Config
	c.applyDefaults()
	return &c
}

func (c *Config) applyDefaults() {
	// Solver defaults
	if c.Solver.Method == "" {
		c.Solver.Method = DefaultMethod
	}
	if c.Solver.Tol == 0 {
		c.Solver.Tol = DefaultTol
	}
	if c.Solver.XTol == 0 {
		c.Solver.XTol = DefaultXTol
	}
	if c.Solver.MaxIter == 0 {
		c.Solver.MaxIter = DefaultMaxIter
	}
	if c.Solver.Step == 0 {
		c.Solver.Step = DefaultStep
	}

	if len(c.Scenarios) == 0 {
		c.Scenarios = DefaultScenarios()
	}
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == "" {
			c.Scenarios[i].Name = c.Scenarios[i].Family.String()
		}
	}

	// Sweep defaults
	if len(c.Sweep.Pis) == 0 {
		c.Sweep.Pis = DefaultSweepPis()
	}
	if c.Sweep.Workers == 0 {
		c.Sweep.Workers = DefaultSweepWorkers
	}

	if c.Quote.TickSize == nil {
		tick := decimal.RequireFromString(DefaultTickSize)
		c.Quote.TickSize = &tick
	}

	// Logging defaults
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}
