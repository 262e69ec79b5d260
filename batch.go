package uniquelines

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job names one input/output file pair for a batch run.
type Job struct {
	Input  string
	Output string
}

// JobResult pairs a finished Job with the counters from its pass.
type JobResult struct {
	Job
	Result
}

// ProcessFiles runs a deduplication pass over each job, processing up to
// Config.NumWorkers files concurrently. Every file gets its own independent
// pass: lines that repeat across files are not duplicates of each other.
//
// Results are returned in job order regardless of completion order. The first
// job to fail cancels the rest, and its error is returned with no results.
func ProcessFiles(ctx context.Context, jobs []Job, config *Config) ([]JobResult, error) {
	cfg := mergeConfig(config)
	results := make([]JobResult, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	indexes := make(chan int)

	g.Go(func() error {
		defer close(indexes)
		for i := range jobs {
			select {
			case indexes <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < cfg.NumWorkers; w++ {
		g.Go(func() error {
			for i := range indexes {
				if err := ctx.Err(); err != nil {
					return err
				}
				res, err := ProcessFile(jobs[i].Input, jobs[i].Output, cfg)
				if err != nil {
					return err
				}
				results[i] = JobResult{Job: jobs[i], Result: res}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
