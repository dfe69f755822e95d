package stats

import (
	"sort"
	"time"
)

// TrialResult is the outcome of a single optimizer invocation.
type TrialResult struct {
	Success         bool
	Runtime         time.Duration
	Stage1          time.Duration
	Stage2          time.Duration
	BestObjective   float64
	SolutionSetSize int
}

// StatPoint aggregates a batch of trials sharing one dimension. The
// JSON field names define the baseline file format.
type StatPoint struct {
	Dim                int     `json:"dim"`
	SuccessRate        float64 `json:"success_rate"`
	AvgRuntimeSec      float64 `json:"avg_runtime_sec"`
	StdRuntimeSec      float64 `json:"std_runtime_sec"`
	AvgStage1Sec       float64 `json:"avg_stage1_sec"`
	AvgStage2Sec       float64 `json:"avg_stage2_sec"`
	AvgSolutionSetSize float64 `json:"avg_solution_set_size"`
	StdSolutionSetSize float64 `json:"std_solution_set_size"`
	AvgBestObj         float64 `json:"avg_best_obj"`
}

// RunStats maps a problem name to its StatPoints, one per tested
// dimension in test order.
type RunStats struct {
	Data map[string][]StatPoint `json:"data"`
}

func NewRunStats() *RunStats {
	return &RunStats{Data: map[string][]StatPoint{}}
}

func (r *RunStats) Add(problem string, points []StatPoint) {
	if r.Data == nil {
		r.Data = map[string][]StatPoint{}
	}
	r.Data[problem] = points
}

// Problems returns the problem names in sorted order.
func (r *RunStats) Problems() []string {
	names := make([]string, 0, len(r.Data))
	for name := range r.Data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
