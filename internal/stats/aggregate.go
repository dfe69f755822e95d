package stats

import "math"

// SeedStride spaces trial seeds so repeated runs of the same trial
// index are reproducible and distinct indices never collide.
const SeedStride = 702983

// Seed derives the optimizer seed for a trial index.
func Seed(trial int) uint64 {
	return uint64(trial) * SeedStride
}

// Mean returns the arithmetic average of data.
func Mean(data []float64) float64 {
	var sum float64
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// PopStdDev returns the population standard deviation (divide by n,
// not n-1), so a single-element dataset has deviation zero.
func PopStdDev(data []float64, mean float64) float64 {
	var variance float64
	for _, v := range data {
		diff := mean - v
		variance += diff * diff
	}
	variance /= float64(len(data))
	return math.Sqrt(variance)
}

// Summarize reduces a batch of trials at one dimension into a
// StatPoint. The batch must be non-empty; the caller guarantees at
// least one trial per point.
func Summarize(dim int, results []TrialResult) StatPoint {
	runtimes := make([]float64, len(results))
	stage1 := make([]float64, len(results))
	stage2 := make([]float64, len(results))
	sizes := make([]float64, len(results))
	objs := make([]float64, len(results))
	successes := 0

	for i, r := range results {
		runtimes[i] = r.Runtime.Seconds()
		stage1[i] = r.Stage1.Seconds()
		stage2[i] = r.Stage2.Seconds()
		sizes[i] = float64(r.SolutionSetSize)
		objs[i] = r.BestObjective
		if r.Success {
			successes++
		}
	}

	avgRuntime := Mean(runtimes)
	avgSize := Mean(sizes)

	return StatPoint{
		Dim:                dim,
		SuccessRate:        float64(successes) / float64(len(results)),
		AvgRuntimeSec:      avgRuntime,
		StdRuntimeSec:      PopStdDev(runtimes, avgRuntime),
		AvgStage1Sec:       Mean(stage1),
		AvgStage2Sec:       Mean(stage2),
		AvgSolutionSetSize: avgSize,
		StdSolutionSetSize: PopStdDev(sizes, avgSize),
		AvgBestObj:         Mean(objs),
	}
}
