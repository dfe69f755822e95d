package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jspall/gsbench/internal/baseline"
	"github.com/jspall/gsbench/internal/config"
	"github.com/jspall/gsbench/internal/problems"
	"github.com/jspall/gsbench/internal/runner"
	"github.com/jspall/gsbench/internal/stats"
	"github.com/jspall/gsbench/internal/swap"
)

var (
	flagCompareTrials   int
	flagCompareParallel int
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Benchmark the active sources against a candidate tree",
		Long: `Runs two measurement phases: first against the active optimizer
sources, then against the candidate tree after swapping it into place
and forcing a rebuild. The original directory layout is restored on
every exit path. Without a candidate tree a single phase runs.`,
		RunE: runCompare,
	}
	cmd.Flags().IntVar(&flagCompareTrials, "trials", 0, "override trial count per dimension")
	cmd.Flags().IntVar(&flagCompareParallel, "parallel", 1, "max concurrent trials")
	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	root, err := filepath.Abs(cfg.Swap.Root)
	if err != nil {
		return fmt.Errorf("resolving swap root: %w", err)
	}
	guard := swap.NewGuard(root, cfg.Swap.Active, cfg.Swap.Candidate)

	if !guard.CandidateExists() {
		fmt.Printf("%q not found at %s. Running standard benchmarks only.\n",
			cfg.Swap.Candidate, guard.CandidatePath())
		rs, err := runPhase(cfg)
		if err != nil {
			return err
		}
		return writeArtifacts(cfg, rs, nil, true)
	}

	fmt.Printf("Found %q. Starting comparison benchmark suite.\n", cfg.Swap.Candidate)

	baselinePath := cfg.Swap.BaselineFile
	if _, err := os.Stat(baselinePath); err == nil {
		if err := os.Remove(baselinePath); err != nil {
			return fmt.Errorf("removing stale baseline file: %w", err)
		}
	}

	fmt.Println("\n- Phase 1: Baseline (Original Source)")
	phase1, err := runPhase(cfg)
	if err != nil {
		return err
	}
	if err := baseline.Save(baselinePath, phase1); err != nil {
		return fmt.Errorf("saving baseline: %w", err)
	}

	fmt.Println("\n- Swapping active sources with candidate")
	if err := guard.Swap(); err != nil {
		return fmt.Errorf("swapping sources: %w", err)
	}
	// Restore runs on every exit path below. A restore failure is
	// logged rather than returned so it never masks phase results.
	defer func() {
		if err := guard.Restore(); err != nil {
			log.Printf("warning: restoring directory layout: %v", err)
		}
	}()

	if err := swap.Rebuild(root, cfg.Swap.Rebuild); err != nil {
		log.Printf("warning: %v; rebuild might not pick up changes", err)
	}

	fmt.Println("\n- Phase 2: Comparison (New Source)")
	base, err := baseline.Load(baselinePath)
	if err != nil {
		return fmt.Errorf("loading baseline for comparison: %w", err)
	}
	phase2, err := runPhase(cfg)
	if err != nil {
		return err
	}

	if err := writeArtifacts(cfg, phase2, base, true); err != nil {
		return err
	}

	fmt.Println("\n- Restoring directory structure")
	if err := guard.Restore(); err != nil {
		log.Printf("warning: restoring directory layout: %v", err)
	}

	fmt.Println("Comparison complete.")
	return nil
}

func runPhase(cfg *config.Config) (*stats.RunStats, error) {
	trials := cfg.Benchmarks.Trials
	if flagCompareTrials > 0 {
		trials = flagCompareTrials
	}
	return runner.RunSuite(context.Background(), optimizerFromConfig(cfg), &runner.SuiteOpts{
		Problems: problems.All(),
		Dims:     cfg.Benchmarks.Dims,
		Trials:   trials,
		Parallel: flagCompareParallel,
		Params:   paramsFromConfig(cfg),
		Progress: os.Stdout,
	})
}
