package runner

import (
	"context"
	"sync"

	"github.com/jspall/gsbench/internal/optimize"
	"github.com/jspall/gsbench/internal/problems"
	"github.com/jspall/gsbench/internal/stats"
)

// Collect runs the requested number of independent trials of prob at
// dim, seeding each trial from its index. Results come back slotted by trial index, so
// the batch is identical whether trials ran sequentially or in
// parallel.
func Collect(ctx context.Context, opt optimize.Runner, prob problems.Problem, dim, trials, parallel int, params optimize.Params) ([]stats.TrialResult, error) {
	results := make([]stats.TrialResult, trials)

	if parallel > 1 {
		if err := collectParallel(ctx, opt, prob, dim, parallel, params, results); err != nil {
			return nil, err
		}
		return results, nil
	}

	for i := 0; i < trials; i++ {
		r, err := RunTrial(ctx, opt, prob, dim, stats.Seed(i), params)
		if err != nil {
			return nil, err
		}
		results[i] = *r
	}
	return results, nil
}

// collectParallel bounds concurrency with a semaphore. Trials share no
// mutable state beyond the result slot each one owns, so ordering does
// not affect the aggregate.
func collectParallel(ctx context.Context, opt optimize.Runner, prob problems.Problem, dim, maxWorkers int, params optimize.Params, results []stats.TrialResult) error {
	var (
		mu       sync.Mutex
		firstErr error
		wg       sync.WaitGroup
	)
	sem := make(chan struct{}, maxWorkers)

	for i := range results {
		wg.Add(1)
		sem <- struct{}{}
		go func(trial int) {
			defer wg.Done()
			defer func() { <-sem }()
			r, err := RunTrial(ctx, opt, prob, dim, stats.Seed(trial), params)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			results[trial] = *r
		}(i)
	}
	wg.Wait()
	return firstErr
}
