// SPDX-License-Identifier: MIT

// Package batch evaluates rotconv job files. Jobs run concurrently on a
// bounded errgroup; results always come back in job order.
package batch

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvgeom/internal/config"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Runner runs job files.
type Runner struct {
	log      *zap.Logger
	workers  int
	failFast bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithWorkers overrides the file's worker count. n <= 0 keeps the file value.
func WithWorkers(n int) Option {
	return func(r *Runner) { r.workers = n }
}

// WithFailFast stops the run at the first failing job and returns its
// error. Without it failures are only recorded in Result.Error.
func WithFailFast(on bool) Option {
	return func(r *Runner) { r.failFast = on }
}

// New returns a Runner.
func New(opts ...Option) *Runner {
	r := &Runner{log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run evaluates every job of f. The returned slice has one Result per job
// even when an error is returned; jobs that never ran carry the context
// error.
func (r *Runner) Run(ctx context.Context, f *config.File) ([]Result, error) {
	if len(f.Jobs) == 0 {
		return nil, config.ErrNoJobs
	}
	order, err := f.DefaultOrder()
	if err != nil {
		return nil, err
	}

	workers := f.Workers
	if r.workers > 0 {
		workers = r.workers
	}
	if workers <= 0 {
		workers = 1
	}

	results := make([]Result, len(f.Jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	r.log.Info("batch started",
		zap.Int("jobs", len(f.Jobs)),
		zap.Int("workers", workers),
		zap.String("unit", f.Unit),
		zap.Stringer("order", order),
	)

	for i := range f.Jobs {
		job := f.Jobs[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = failed(job, err)
				return err
			}

			res, err := Evaluate(job, f.Unit, order)
			if err != nil {
				results[i] = failed(job, err)
				r.log.Warn("job failed",
					zap.String("job", job.Name),
					zap.String("kind", job.Kind),
					zap.Error(err),
				)
				if r.failFast {
					return fmt.Errorf("job %q: %w", job.Name, err)
				}
				return nil
			}

			results[i] = res
			r.log.Debug("job done", zap.String("job", job.Name), zap.String("kind", job.Kind))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	r.log.Info("batch finished", zap.Int("failed", countFailed(results)))
	return results, nil
}

func failed(job config.Job, err error) Result {
	return Result{Name: job.Name, Kind: job.Kind, Error: err.Error()}
}

func countFailed(rs []Result) int {
	n := 0
	for i := range rs {
		if rs[i].Error != "" {
			n++
		}
	}
	return n
}
