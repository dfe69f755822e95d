package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gsbench",
		Short: "Benchmark and A/B comparison harness for a global-search optimizer",
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "gsbench.yaml", "config file path")
	root.AddCommand(newRunCmd())
	root.AddCommand(newCompareCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newReportCmd())
	return root
}
