package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jspall/gsbench/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gsbench.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
optimizer:
  command: ["./bin/oqnlp"]
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.Benchmarks.Dims; len(got) != 3 || got[0] != 10 || got[1] != 50 || got[2] != 100 {
		t.Errorf("default dims = %v, want [10 50 100]", got)
	}
	if cfg.Benchmarks.Trials != 20 {
		t.Errorf("default trials = %d, want 20", cfg.Benchmarks.Trials)
	}
	if cfg.Swap.Active != "src" || cfg.Swap.Candidate != "src-new" {
		t.Errorf("default swap dirs = %q/%q, want src/src-new", cfg.Swap.Active, cfg.Swap.Candidate)
	}
	if cfg.Swap.BaselineFile != "baseline_results.json" {
		t.Errorf("default baseline file = %q", cfg.Swap.BaselineFile)
	}
	if cfg.Results.Dir != "results" {
		t.Errorf("default results dir = %q", cfg.Results.Dir)
	}
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
optimizer:
  command: ["cargo", "run", "--release", "--bin", "oqnlp-cli"]
  population_size: 1000
  timeout_minutes: 30
benchmarks:
  dims: [2, 10]
  trials: 5
swap:
  root: "/srv/opt"
  active: "impl"
  candidate: "impl-new"
  rebuild: ["cargo", "clean", "-p", "globalsearch"]
results:
  dir: "out"
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Optimizer.Command) != 5 {
		t.Errorf("command = %v", cfg.Optimizer.Command)
	}
	if cfg.Optimizer.PopulationSize != 1000 {
		t.Errorf("population size = %d, want 1000", cfg.Optimizer.PopulationSize)
	}
	if cfg.Benchmarks.Trials != 5 {
		t.Errorf("trials = %d, want 5", cfg.Benchmarks.Trials)
	}
	if cfg.Swap.Root != "/srv/opt" || len(cfg.Swap.Rebuild) != 4 {
		t.Errorf("swap = %+v", cfg.Swap)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing optimizer command", "benchmarks:\n  trials: 5\n"},
		{"negative trials", "optimizer:\n  command: [x]\nbenchmarks:\n  trials: -1\n"},
		{"zero dimension", "optimizer:\n  command: [x]\nbenchmarks:\n  dims: [0]\n"},
		{"same active and candidate", "optimizer:\n  command: [x]\nswap:\n  active: a\n  candidate: a\n"},
		{"bad yaml", "optimizer: [unclosed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := config.Load(writeConfig(t, tt.content)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
