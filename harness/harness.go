// SPDX-License-Identifier: MIT

package harness

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/facloc/uflp"
	"golang.org/x/sync/errgroup"
)

// ErrEnginePanic wraps a panic recovered from an engine or oracle.
var ErrEnginePanic = errors.New("harness: engine panicked")

// job is the result of one budgeted call.
type job struct {
	res     uflp.Result
	outcome Outcome
	elapsed time.Duration
	err     error
}

// Run executes every configuration of cfg.Algorithms on every instance.
//
// When cfg.Exact is set the optimum of each instance is computed first, once,
// under the same per-job budget; an oracle that fails or times out leaves the
// optimum unknown (NaN) rather than failing the batch.
//
// Engine errors and timeouts are recorded, not returned. Run returns an error
// only for an invalid Config or when ctx is cancelled, in which case the
// partial report is discarded.
func Run(ctx context.Context, instances []*uflp.Instance, cfg Config) (Report, error) {
	if err := validateConfig(cfg); err != nil {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	var (
		nAlg = len(cfg.Algorithms)
		rep  = Report{
			Optima:  make([]float64, len(instances)),
			Records: make([]Record, len(instances)*nAlg),
		}
	)
	for k := range rep.Optima {
		rep.Optima[k] = math.NaN()
	}

	if cfg.Exact != nil {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.Workers)
		for k, inst := range instances {
			k, inst := k, inst
			g.Go(func() error {
				j, err := budgeted(gctx, cfg.Timeout, func() (uflp.Result, error) {
					ex, err := cfg.Exact.SolveExact(inst)
					if err == nil && ex.Status != uflp.StatusOptimal {
						err = fmt.Errorf("exact oracle status %s", ex.Status)
					}

					return uflp.Result{Solution: ex.Solution, Algorithm: uflp.ExactEnumeration, LowerBound: ex.Cost}, err
				})
				if err != nil {
					return err
				}
				if j.outcome == OutcomeOK {
					rep.Optima[k] = j.res.Cost
				}

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return Report{}, err
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for k, inst := range instances {
		k, inst := k, inst
		for a, opts := range cfg.Algorithms {
			a, opts := a, opts
			g.Go(func() error {
				j, err := budgeted(gctx, cfg.Timeout, func() (uflp.Result, error) {
					return uflp.Solve(inst, opts)
				})
				if err != nil {
					return err
				}
				rec := Record{
					Instance:   k,
					Config:     a,
					Algorithm:  opts.Algo,
					Outcome:    j.outcome,
					Solution:   j.res.Solution,
					LowerBound: j.res.LowerBound,
					Optimum:    rep.Optima[k],
					Ratio:      math.NaN(),
					Duration:   j.elapsed,
					Err:        j.err,
				}
				if j.outcome == OutcomeOK {
					rec.Ratio = ratio(j.res.Cost, rec.Optimum)
				}
				cfg.Metrics.observe(rec)
				rep.Records[k*nAlg+a] = rec

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	rep.Summaries = summarize(cfg, rep.Records)

	return rep, nil
}

// budgeted runs fn under a timeout derived from parent. The returned error is
// non-nil only when parent itself is done.
func budgeted(parent context.Context, timeout time.Duration, fn func() (uflp.Result, error)) (job, error) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	var (
		done  = make(chan job, 1) // buffered: an abandoned engine must not block
		start = time.Now()
	)
	go func() {
		var j job
		defer func() {
			if r := recover(); r != nil {
				j = job{err: fmt.Errorf("%w: %v", ErrEnginePanic, r)}
			}
			done <- j
		}()
		j.res, j.err = fn()
	}()

	select {
	case j := <-done:
		j.elapsed = time.Since(start)
		j.outcome = OutcomeOK
		if j.err != nil {
			j.outcome = OutcomeFailed
		}

		return j, nil
	case <-ctx.Done():
		if err := parent.Err(); err != nil {
			return job{}, err
		}

		return job{outcome: OutcomeTimeout, elapsed: time.Since(start), err: ctx.Err()}, nil
	}
}

// ratio returns cost/opt, NaN for an unknown optimum. A zero optimum gives 1
// for a zero cost and +Inf otherwise.
func ratio(cost, opt float64) float64 {
	switch {
	case math.IsNaN(opt):
		return math.NaN()
	case opt == 0 && cost == 0:
		return 1
	case opt == 0:
		return math.Inf(1)
	default:
		return cost / opt
	}
}
