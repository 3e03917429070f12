package config

import (
	"github.com/shopspring/decimal"

	"github.com/rickgao/cg-spread/internal/model"
	"github.com/rickgao/cg-spread/internal/rootfind"
)

// Config is the root configuration for a cgspread run.
type Config struct {
	Solver    SolverConfig     `yaml:"solver"`
	Scenarios []ScenarioConfig `yaml:"scenarios"`
	Sweep     SweepConfig      `yaml:"sweep"`
	Quote     QuoteConfig      `yaml:"quote"`
	Logging   LoggingConfig    `yaml:"logging"`
	Metrics   MetricsConfig    `yaml:"metrics"`
}

// SolverConfig holds root finder settings.
type SolverConfig struct {
	Method       string   `yaml:"method"` // newton or brent
	Tol          float64  `yaml:"tol"`
	XTol         float64  `yaml:"xtol"`
	MaxIter      int      `yaml:"max_iter"`
	Step         float64  `yaml:"step"`
	InitialGuess *float64 `yaml:"initial_guess"` // nil means DefaultInitialGuess
}

// RootConfig converts the solver section into a root finder configuration.
func (s SolverConfig) RootConfig() rootfind.Config {
	return rootfind.Config{
		Method:  rootfind.Method(s.Method),
		Tol:     s.Tol,
		XTol:    s.XTol,
		MaxIter: s.MaxIter,
		Step:    s.Step,
	}
}

// InitialGuessOrDefault returns the configured starting spread.
func (s SolverConfig) InitialGuessOrDefault() float64 {
	if s.InitialGuess == nil {
		return DefaultInitialGuess
	}
	return *s.InitialGuess
}

// ScenarioConfig is one set of model parameters to solve.
type ScenarioConfig struct {
	Name   string       `yaml:"name"`
	Family model.Family `yaml:"family"`
	Mu     float64      `yaml:"mu"`
	Sigma  float64      `yaml:"sigma"`
	Lambda float64      `yaml:"lambda"`
	Pi     float64      `yaml:"pi"`
}

// Params returns the model parameters of the scenario.
func (s ScenarioConfig) Params() model.Params {
	return model.Params{
		Family: s.Family,
		Mu:     s.Mu,
		Sigma:  s.Sigma,
		Lambda: s.Lambda,
		Pi:     s.Pi,
	}
}

// SweepConfig tabulates the spread over a range of informed-trade probabilities.
type SweepConfig struct {
	Enabled bool      `yaml:"enabled"`
	Pis     []float64 `yaml:"pis"`
	Workers int       `yaml:"workers"`
}

// QuoteConfig controls tick rounding of published quotes.
type QuoteConfig struct {
	Disabled bool             `yaml:"disabled"`  // skip printing the rounded quote
	TickSize *decimal.Decimal `yaml:"tick_size"` // nil means DefaultTickSize, 0 keeps four decimals
}

// Tick returns the configured tick size.
func (q QuoteConfig) Tick() decimal.Decimal {
	if q.TickSize == nil {
		return decimal.RequireFromString(DefaultTickSize)
	}
	return *q.TickSize
}

// LoggingConfig holds slog settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// MetricsConfig holds the Prometheus endpoint. An empty Addr disables it.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
	Path string `yaml:"path"`
}
