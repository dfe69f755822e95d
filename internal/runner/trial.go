package runner

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/jspall/gsbench/internal/optimize"
	"github.com/jspall/gsbench/internal/problems"
	"github.com/jspall/gsbench/internal/stats"
)

// objectiveCheckEps bounds the disagreement tolerated between the
// objective the optimizer reports and our own re-evaluation at the
// returned point.
const objectiveCheckEps = 1e-6

// RunTrial executes one optimizer invocation and normalizes the
// outcome. Optimizer failure or an empty solution set is fatal: it
// indicates a correctness problem in the implementation under test,
// not measurement noise.
func RunTrial(ctx context.Context, opt optimize.Runner, prob problems.Problem, dim int, seed uint64, params optimize.Params) (*stats.TrialResult, error) {
	params.Seed = seed
	req := &optimize.Request{
		Problem: prob.Name(),
		Dim:     dim,
		Bounds:  prob.Bounds(dim),
		Params:  params,
	}

	start := time.Now()
	res, err := opt.Run(ctx, req)
	elapsed := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("running optimizer for %s dim %d seed %d: %w", prob.Name(), dim, seed, err)
	}

	best, ok := res.Best()
	if !ok {
		return nil, fmt.Errorf("%s dim %d seed %d: optimizer returned no solutions", prob.Name(), dim, seed)
	}

	// Re-evaluate the reported best point with our own objective as a
	// sanity check on the optimizer's bookkeeping.
	if len(best.Point) > 0 {
		if val, evalErr := prob.Objective(best.Point); evalErr == nil {
			if math.Abs(val-best.Objective) > objectiveCheckEps {
				log.Printf("warning: %s dim %d: reported objective %g differs from re-evaluated %g",
					prob.Name(), dim, best.Objective, val)
			}
		}
	}

	return &stats.TrialResult{
		Success:         prob.Solved(best.Objective),
		Runtime:         elapsed,
		Stage1:          res.Stage1(),
		Stage2:          res.Stage2(),
		BestObjective:   best.Objective,
		SolutionSetSize: len(res.Solutions),
	}, nil
}
