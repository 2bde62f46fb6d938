package strmatch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/coregx/strmatch/rabinkarp"
)

// Job is one independent (text, pattern) pair.
type Job[S comparable] struct {
	Text    []S
	Pattern []S
}

// Result holds the outcome of one Job.
type Result struct {
	Offsets []int
	Err     error
}

// FindAllBatch matches every job with cfg, running up to workers jobs at a
// time (GOMAXPROCS if workers <= 0). Results are in job order. Per-job
// failures such as ErrInvalidPattern are reported in Result.Err and do not
// stop the batch; the returned error is non-nil only for an invalid cfg or
// a cancelled ctx, in which case the results are discarded.
//
// Each job is compiled and scanned independently, so nothing is shared
// between goroutines except cfg.Trace, which must then be safe for
// concurrent use (trace.Recorder and trace.Counter are).
func FindAllBatch[S comparable](ctx context.Context, jobs []Job[S], cfg Config, encode rabinkarp.Encoder[S], workers int) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := Compile(jobs[i].Pattern, cfg, encode)
			if err != nil {
				results[i] = Result{Err: err}
				return nil
			}
			offsets, err := p.FindAll(jobs[i].Text)
			results[i] = Result{Offsets: offsets, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
