package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Optimizer  Optimizer  `yaml:"optimizer"`
	Benchmarks Benchmarks `yaml:"benchmarks"`
	Swap       Swap       `yaml:"swap"`
	Results    Results    `yaml:"results"`
}

// Optimizer describes how to invoke the implementation under test.
type Optimizer struct {
	Command        []string `yaml:"command"`
	PopulationSize int      `yaml:"population_size"`
	Iterations     int      `yaml:"iterations"`
	TimeoutMinutes int      `yaml:"timeout_minutes"`
}

type Benchmarks struct {
	Dims   []int `yaml:"dims"`
	Trials int   `yaml:"trials"`
}

// Swap configures the two-phase comparison: the root holding the
// active and candidate source trees, and the command that rebuilds
// the optimizer after the trees are exchanged.
type Swap struct {
	Root         string   `yaml:"root"`
	Active       string   `yaml:"active"`
	Candidate    string   `yaml:"candidate"`
	Rebuild      []string `yaml:"rebuild"`
	BaselineFile string   `yaml:"baseline_file"`
}

type Results struct {
	Dir string `yaml:"dir"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if len(cfg.Optimizer.Command) == 0 {
		return fmt.Errorf("optimizer command is required")
	}
	if len(cfg.Benchmarks.Dims) == 0 {
		cfg.Benchmarks.Dims = []int{10, 50, 100}
	}
	for _, d := range cfg.Benchmarks.Dims {
		if d < 1 {
			return fmt.Errorf("dimension must be at least 1, got %d", d)
		}
	}
	if cfg.Benchmarks.Trials == 0 {
		cfg.Benchmarks.Trials = 20
	}
	if cfg.Benchmarks.Trials < 1 {
		return fmt.Errorf("trials must be at least 1")
	}
	if cfg.Swap.Root == "" {
		cfg.Swap.Root = ".."
	}
	if cfg.Swap.Active == "" {
		cfg.Swap.Active = "src"
	}
	if cfg.Swap.Candidate == "" {
		cfg.Swap.Candidate = "src-new"
	}
	if cfg.Swap.Active == cfg.Swap.Candidate {
		return fmt.Errorf("swap active and candidate directories must differ")
	}
	if cfg.Swap.BaselineFile == "" {
		cfg.Swap.BaselineFile = "baseline_results.json"
	}
	if cfg.Results.Dir == "" {
		cfg.Results.Dir = "results"
	}
	return nil
}
