package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jspall/gsbench/internal/baseline"
	"github.com/jspall/gsbench/internal/config"
	"github.com/jspall/gsbench/internal/optimize"
	"github.com/jspall/gsbench/internal/problems"
	"github.com/jspall/gsbench/internal/report"
	"github.com/jspall/gsbench/internal/runner"
	"github.com/jspall/gsbench/internal/stats"
)

var (
	flagFunction string
	flagDim      int
	flagTrials   int
	flagParallel int
	flagSave     string
	flagBaseline string
	flagPlots    bool
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark suite once",
		RunE:  runBenchmarks,
	}
	cmd.Flags().StringVar(&flagFunction, "function", "", "run a single benchmark function")
	cmd.Flags().IntVar(&flagDim, "dim", 0, "override the dimension set with a single dimension")
	cmd.Flags().IntVar(&flagTrials, "trials", 0, "override trial count per dimension")
	cmd.Flags().IntVar(&flagParallel, "parallel", 1, "max concurrent trials")
	cmd.Flags().StringVar(&flagSave, "save", "", "save current stats to a JSON file")
	cmd.Flags().StringVar(&flagBaseline, "baseline", "", "load baseline stats from a JSON file to compare against")
	cmd.Flags().BoolVar(&flagPlots, "plots", true, "write HTML charts to the run directory")
	return cmd
}

func runBenchmarks(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	probs, err := selectProblems(flagFunction)
	if err != nil {
		return err
	}

	dims := cfg.Benchmarks.Dims
	if flagDim > 0 {
		dims = []int{flagDim}
	}
	trials := cfg.Benchmarks.Trials
	if flagTrials > 0 {
		trials = flagTrials
	}

	rs, err := runner.RunSuite(context.Background(), optimizerFromConfig(cfg), &runner.SuiteOpts{
		Problems: probs,
		Dims:     dims,
		Trials:   trials,
		Parallel: flagParallel,
		Params:   paramsFromConfig(cfg),
		Progress: os.Stdout,
	})
	if err != nil {
		return err
	}

	if flagSave != "" {
		if err := baseline.Save(flagSave, rs); err != nil {
			return fmt.Errorf("saving stats: %w", err)
		}
		fmt.Printf("Saved stats to %s\n", flagSave)
	}

	var base *stats.RunStats
	if flagBaseline != "" {
		base, err = baseline.Load(flagBaseline)
		if err != nil {
			return fmt.Errorf("loading baseline: %w", err)
		}
		fmt.Printf("Loaded baseline stats from %s\n", flagBaseline)
	}

	return writeArtifacts(cfg, rs, base, flagPlots)
}

// writeArtifacts prints the summary and stores stats plus charts under
// a timestamped run directory.
func writeArtifacts(cfg *config.Config, rs, base *stats.RunStats, plots bool) error {
	fmt.Println("\n--- Results ---")
	if err := report.Write(report.Summarize(rs, base), "table", os.Stdout); err != nil {
		return err
	}

	runDir, err := baseline.CreateRunDir(cfg.Results.Dir)
	if err != nil {
		return err
	}
	if err := baseline.Save(filepath.Join(runDir, "stats.json"), rs); err != nil {
		return fmt.Errorf("saving run stats: %w", err)
	}
	if plots {
		plotsDir := filepath.Join(runDir, "plots")
		if err := report.WritePlots(plotsDir, rs, base); err != nil {
			return fmt.Errorf("writing plots: %w", err)
		}
		fmt.Printf("Plots written to %s\n", plotsDir)
	}
	return nil
}

func selectProblems(name string) ([]problems.Problem, error) {
	if name == "" {
		return problems.All(), nil
	}
	p, ok := problems.Find(name)
	if !ok {
		return nil, fmt.Errorf("unknown benchmark function %q", name)
	}
	return []problems.Problem{p}, nil
}

func optimizerFromConfig(cfg *config.Config) *optimize.ExternalRunner {
	return &optimize.ExternalRunner{
		Command: cfg.Optimizer.Command,
		Timeout: time.Duration(cfg.Optimizer.TimeoutMinutes) * time.Minute,
	}
}

func paramsFromConfig(cfg *config.Config) optimize.Params {
	return optimize.Params{
		PopulationSize: cfg.Optimizer.PopulationSize,
		Iterations:     cfg.Optimizer.Iterations,
	}
}
