package optimize

import (
	"context"
	"time"
)

// Params are the optimizer settings carried into each invocation.
type Params struct {
	Seed           uint64 `json:"seed"`
	PopulationSize int    `json:"population_size,omitempty"`
	Iterations     int    `json:"iterations,omitempty"`
}

// Request describes one optimization job.
type Request struct {
	Problem string       `json:"problem"`
	Dim     int          `json:"dim"`
	Bounds  [][2]float64 `json:"bounds"`
	Params  Params       `json:"params"`
}

type Solution struct {
	Objective float64   `json:"objective"`
	Point     []float64 `json:"point"`
}

// Result is the optimizer's reported outcome: the retained solution
// set plus the internal stage timings from its observer.
type Result struct {
	Solutions []Solution `json:"solutions"`
	Stage1Sec float64    `json:"stage1_sec"`
	Stage2Sec float64    `json:"stage2_sec"`
}

// Best returns the solution with the lowest objective.
func (r *Result) Best() (Solution, bool) {
	if len(r.Solutions) == 0 {
		return Solution{}, false
	}
	best := r.Solutions[0]
	for _, s := range r.Solutions[1:] {
		if s.Objective < best.Objective {
			best = s
		}
	}
	return best, true
}

func (r *Result) Stage1() time.Duration {
	return time.Duration(r.Stage1Sec * float64(time.Second))
}

func (r *Result) Stage2() time.Duration {
	return time.Duration(r.Stage2Sec * float64(time.Second))
}

// Runner is the boundary to the optimizer under test.
type Runner interface {
	Run(ctx context.Context, req *Request) (*Result, error)
}
