package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jspall/gsbench/internal/config"
	"github.com/jspall/gsbench/internal/problems"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered benchmark functions",
		RunE: func(cmd *cobra.Command, args []string) error {
			dims := []int{10, 50, 100}
			if cfg, err := config.Load(cfgFile); err == nil {
				dims = cfg.Benchmarks.Dims
			}
			fmt.Println("Benchmark functions:")
			for _, p := range problems.All() {
				fmt.Printf("  - %s (dims: %v, optimum: %g)\n", p.Name(), p.SupportedDims(dims), p.Optimum())
			}
			return nil
		},
	}
}
