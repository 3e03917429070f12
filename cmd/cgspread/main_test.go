package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rickgao/cg-spread/internal/equilibrium"
	"github.com/rickgao/cg-spread/internal/metrics"
	"github.com/rickgao/cg-spread/internal/model"
)

func TestRunDefaultScenarios(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), nil, &stdout, &stderr); err != nil {
		t.Fatalf("run() unexpected error: %v\nstderr: %s", err, stderr.String())
	}

	want := strings.Join([]string{
		"------- Normal Distribution -------",
		"Equilibrium spread: 3.3778",
		"Ask price: 103.6889",
		"Bid price: 100.3111",
		"Quote (tick 0.01): 100.31 / 103.69 (spread 3.38)",
		"----- Exponential Distribution -----",
		"Equilibrium spread: 22.6140",
		"Ask price: 144.6403",
		"Bid price: 122.0264",
		"Quote (tick 0.01): 122.02 / 144.65 (spread 22.63)",
		"",
	}, "\n")
	if stdout.String() != want {
		t.Errorf("stdout =\n%s\nwant\n%s", stdout.String(), want)
	}
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"-version"}, &stdout, &stderr); err != nil {
		t.Fatalf("run(-version) unexpected error: %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "cgspread ") {
		t.Errorf("stdout = %q, want version string", stdout.String())
	}
}

func TestRunSweep(t *testing.T) {
	path := writeConfig(t, `
scenarios:
  - name: desk
    family: normal
    mu: 100
    sigma: 10
    pi: 0.3
sweep:
  enabled: true
  pis: [0, 0.3, 0.6]
  workers: 2
quote:
  disabled: true
logging:
  level: error
`)

	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"-config", path}, &stdout, &stderr); err != nil {
		t.Fatalf("run() unexpected error: %v", err)
	}

	out := stdout.String()
	for _, want := range []string{
		"------- Normal Distribution (desk) -------",
		"Equilibrium spread: 4.8254",
		"spread",
		"0.60",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Quote") {
		t.Errorf("quote printed although disabled:\n%s", out)
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected log output at error level: %s", stderr.String())
	}
}

func TestRunInvalidScenario(t *testing.T) {
	path := writeConfig(t, `
scenarios:
  - family: exponential
    lambda: 0
    pi: 0.1
`)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-config", path}, &stdout, &stderr)
	if !errors.Is(err, model.ErrInvalidParameter) {
		t.Fatalf("run() error = %v, want ErrInvalidParameter", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want nothing before failure", stdout.String())
	}
}

func TestRunNonConvergence(t *testing.T) {
	path := writeConfig(t, `
solver:
  max_iter: 1
scenarios:
  - family: normal
    mu: 100
    sigma: 10
    pi: 0.9
logging:
  level: error
`)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-config", path}, &stdout, &stderr)
	if !errors.Is(err, equilibrium.ErrNonConvergence) {
		t.Fatalf("run() error = %v, want ErrNonConvergence", err)
	}
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"-nope"}, &stdout, &stderr); err == nil {
		t.Error("run(-nope) expected error")
	}
}

func TestCreateHandler(t *testing.T) {
	m := metrics.New()
	m.ObserveSolve("normal", 3, 3.3778)
	results := []scenarioResult{{Name: "normal", Spread: 3.3778, Bid: 100.3111, Ask: 103.6889}}
	h := createHandler("/metrics", m, results)

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		var body struct {
			Status    string           `json:"status"`
			Scenarios []scenarioResult `json:"scenarios"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("decode health: %v", err)
		}
		if body.Status != "healthy" {
			t.Errorf("status = %q, want healthy", body.Status)
		}
		if len(body.Scenarios) != 1 || body.Scenarios[0].Spread != 3.3778 {
			t.Errorf("scenarios = %+v", body.Scenarios)
		}
	})

	t.Run("metrics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		if !strings.Contains(rec.Body.String(), `cg_solves_total{family="normal",outcome="ok"} 1`) {
			t.Errorf("metrics body missing solve counter:\n%s", rec.Body.String())
		}
	})
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}
