package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jspall/gsbench/internal/baseline"
	"github.com/jspall/gsbench/internal/config"
	"github.com/jspall/gsbench/internal/report"
	"github.com/jspall/gsbench/internal/stats"
)

var (
	flagFormat         string
	flagReportBaseline string
	flagPlotsDir       string
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [stats-file]",
		Short: "Generate summary and charts from saved stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			statsPath := ""
			if len(args) > 0 {
				statsPath = args[0]
			} else {
				cfg, err := config.Load(cfgFile)
				if err != nil {
					return err
				}
				latest, err := filepath.EvalSymlinks(filepath.Join(cfg.Results.Dir, "latest"))
				if err != nil {
					return fmt.Errorf("resolving latest run: %w", err)
				}
				statsPath = filepath.Join(latest, "stats.json")
			}

			rs, err := baseline.Load(statsPath)
			if err != nil {
				return fmt.Errorf("loading stats: %w", err)
			}

			var base *stats.RunStats
			if flagReportBaseline != "" {
				base, err = baseline.Load(flagReportBaseline)
				if err != nil {
					return fmt.Errorf("loading baseline: %w", err)
				}
			}

			if err := report.Write(report.Summarize(rs, base), flagFormat, os.Stdout); err != nil {
				return err
			}
			if flagPlotsDir != "" {
				if err := report.WritePlots(flagPlotsDir, rs, base); err != nil {
					return fmt.Errorf("writing plots: %w", err)
				}
				fmt.Printf("Plots written to %s\n", flagPlotsDir)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&flagFormat, "format", "table", "output format (table, markdown, json)")
	cmd.Flags().StringVar(&flagReportBaseline, "baseline", "", "baseline stats file to compare against")
	cmd.Flags().StringVar(&flagPlotsDir, "plots-dir", "", "also write HTML charts to this directory")
	return cmd
}
