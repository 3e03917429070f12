package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/rickgao/cg-spread/internal/config"
	"github.com/rickgao/cg-spread/internal/equilibrium"
	"github.com/rickgao/cg-spread/internal/metrics"
	"github.com/rickgao/cg-spread/internal/model"
	"github.com/rickgao/cg-spread/internal/quote"
	"github.com/rickgao/cg-spread/internal/version"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "cgspread: %v\n", err)
		os.Exit(1)
	}
}

// scenarioResult pairs a scenario with its solved quote for the health endpoint.
type scenarioResult struct {
	Name   string  `json:"name"`
	Params string  `json:"params"`
	Spread float64 `json:"spread"`
	Bid    float64 `json:"bid"`
	Ask    float64 `json:"ask"`
	Quote  string  `json:"quote,omitempty"`
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("cgspread", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to config file (defaults are used when empty)")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.String())
		return nil
	}

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Set up structured logging
	logger := newLogger(cfg.Logging, stderr).With("run_id", uuid.NewString())
	slog.SetDefault(logger)

	logger.Debug("starting cgspread",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
		"method", cfg.Solver.Method,
		"scenarios", len(cfg.Scenarios),
	)

	m := metrics.New()
	solver := equilibrium.New(
		equilibrium.WithRootConfig(cfg.Solver.RootConfig()),
		equilibrium.WithInitialGuess(cfg.Solver.InitialGuessOrDefault()),
		equilibrium.WithLogger(logger),
		equilibrium.WithReport(stdout),
		equilibrium.WithMetrics(m),
	)

	results := make([]scenarioResult, 0, len(cfg.Scenarios))
	for _, sc := range cfg.Scenarios {
		p := sc.Params()
		fmt.Fprintln(stdout, sectionHeader(sc))

		r, err := solver.Solve(p)
		if err != nil {
			return fmt.Errorf("scenario %s: %w", sc.Name, err)
		}

		sr := scenarioResult{
			Name:   sc.Name,
			Params: p.String(),
			Spread: r.Spread,
			Bid:    r.Bid,
			Ask:    r.Ask,
		}
		if !cfg.Quote.Disabled {
			tick := cfg.Quote.Tick()
			q := quote.FromResult(r, tick)
			sr.Quote = q.String()
			fmt.Fprintf(stdout, "Quote (tick %s): %s\n", tick, q)
		}
		results = append(results, sr)

		if cfg.Sweep.Enabled {
			sweep, err := solver.Sweep(ctx, p, cfg.Sweep.Pis, cfg.Sweep.Workers)
			if err != nil {
				return fmt.Errorf("scenario %s: %w", sc.Name, err)
			}
			fmt.Fprintln(stdout)
			if err := equilibrium.WriteSweep(stdout, sweep); err != nil {
				return fmt.Errorf("write sweep: %w", err)
			}
		}
	}

	if cfg.Metrics.Addr == "" {
		return nil
	}
	return serve(ctx, cfg.Metrics, m, results, logger)
}

// serve exposes metrics and the last results until ctx is cancelled.
func serve(ctx context.Context, cfg config.MetricsConfig, m *metrics.Metrics, results []scenarioResult, logger *slog.Logger) error {
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           createHandler(cfg.Path, m, results),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting metrics server", "addr", cfg.Addr, "path", cfg.Path)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("metrics server: %w", err)
		}
	}

	logger.Info("shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	return server.Shutdown(shutdownCtx)
}

// createHandler creates the HTTP handler for metrics and health checks.
func createHandler(metricsPath string, m *metrics.Metrics, results []scenarioResult) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(metricsPath, m.Handler())

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		health := struct {
			Status    string           `json:"status"`
			Version   string           `json:"version"`
			Scenarios []scenarioResult `json:"scenarios"`
		}{
			Status:    "healthy",
			Version:   version.Version,
			Scenarios: results,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(health)
	})

	return mux
}

func sectionHeader(sc config.ScenarioConfig) string {
	title := sc.Family.Title() + " Distribution"
	if sc.Name != "" && sc.Name != sc.Family.String() {
		title += " (" + sc.Name + ")"
	}
	if sc.Family == model.Normal {
		return "------- " + title + " -------"
	}
	return "----- " + title + " -----"
}

func newLogger(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
