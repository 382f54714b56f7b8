// Package batch fans item work out across goroutines.
//
// Each job owns its input exclusively; parsers, engines and tables are shared
// read-only. Cancellation is checked between jobs, never inside one.
package batch

import (
	"context"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Options configures Run.
type Options struct {
	// Workers bounds concurrent jobs. Default: GOMAXPROCS.
	Workers int
	// FailFast stops scheduling new jobs after the first failure and makes
	// Run return that failure.
	FailFast bool
	// Logger receives one debug line per failed job. Nil discards.
	Logger *slog.Logger
}

// Result is the outcome of one job. Index is the job's position in the input.
type Result[R any] struct {
	Index int
	Value R
	Err   error
}

// Run calls fn for every job and returns one result per job in input order.
//
// Without FailFast, job failures are only reported in the results and Run
// returns ctx's error if it was cancelled. With FailFast, the first failure
// cancels the remaining jobs and is returned; unscheduled jobs carry the
// context error.
func Run[T, R any](ctx context.Context, jobs []T, fn func(context.Context, T) (R, error), opts Options) ([]Result[R], error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	results := make([]Result[R], len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, job := range jobs {
		results[i].Index = i
		if err := gctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			v, err := fn(gctx, job)
			results[i].Value = v
			results[i].Err = err
			if err != nil {
				log.Debug("batch job failed", "index", i, "err", err)
				if opts.FailFast {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

// Failed returns the results that carry an error.
func Failed[R any](results []Result[R]) []Result[R] {
	var out []Result[R]
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}
