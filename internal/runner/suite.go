package runner

import (
	"context"
	"fmt"
	"io"

	"github.com/jspall/gsbench/internal/optimize"
	"github.com/jspall/gsbench/internal/problems"
	"github.com/jspall/gsbench/internal/stats"
)

// SuiteOpts configures one measurement phase over a set of problems.
type SuiteOpts struct {
	Problems []problems.Problem
	Dims     []int
	Trials   int
	Parallel int
	Params   optimize.Params
	Progress io.Writer
}

// RunSuite measures every problem at every dimension it supports and
// aggregates each batch into a StatPoint. StatPoints keep the order
// the dimensions were tested in, so comparison and plotting stay
// by-index.
func RunSuite(ctx context.Context, opt optimize.Runner, o *SuiteOpts) (*stats.RunStats, error) {
	out := o.Progress
	if out == nil {
		out = io.Discard
	}

	rs := stats.NewRunStats()
	for _, prob := range o.Problems {
		fmt.Fprintf(out, "Running benchmark for: %s\n", prob.Name())
		var points []stats.StatPoint

		for _, dim := range prob.SupportedDims(o.Dims) {
			fmt.Fprintf(out, "  Dimension: %d\n", dim)
			results, err := Collect(ctx, opt, prob, dim, o.Trials, o.Parallel, o.Params)
			if err != nil {
				return nil, err
			}
			pt := stats.Summarize(dim, results)
			fmt.Fprintf(out, "    SR: %.2f, Avg T: %.4fs, Avg SolSize: %.1f\n",
				pt.SuccessRate, pt.AvgRuntimeSec, pt.AvgSolutionSetSize)
			points = append(points, pt)
		}
		rs.Add(prob.Name(), points)
	}
	return rs, nil
}
