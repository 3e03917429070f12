package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if err := c.Solver.RootConfig().Validate(); err != nil {
		return fmt.Errorf("solver: %w", err)
	}
	if g := c.Solver.InitialGuessOrDefault(); math.IsNaN(g) || math.IsInf(g, 0) {
		return fmt.Errorf("solver.initial_guess must be finite, got %g", g)
	}

	if len(c.Scenarios) == 0 {
		return errors.New("at least one scenario is required")
	}
	for i, s := range c.Scenarios {
		if err := s.Params().Validate(); err != nil {
			return fmt.Errorf("scenarios[%d] (%s): %w", i, s.Name, err)
		}
	}

	if c.Sweep.Enabled {
		if len(c.Sweep.Pis) == 0 {
			return errors.New("sweep.pis must not be empty")
		}
		for i, pi := range c.Sweep.Pis {
			if math.IsNaN(pi) || pi < 0 || pi > 1 {
				return fmt.Errorf("sweep.pis[%d] must be in [0, 1], got %g", i, pi)
			}
		}
		if c.Sweep.Workers < 1 {
			return errors.New("sweep.workers must be >= 1")
		}
	}

	if tick := c.Quote.Tick(); tick.IsNegative() {
		return fmt.Errorf("quote.tick_size must be >= 0, got %s", tick)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}

	if c.Metrics.Addr != "" && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with /, got %q", c.Metrics.Path)
	}

	return nil
}
