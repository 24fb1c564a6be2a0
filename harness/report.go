// SPDX-License-Identifier: MIT

package harness

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/facloc/uflp"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Outcome classifies a finished job.
type Outcome int

const (
	// OutcomeOK: the engine returned a solution within budget.
	OutcomeOK Outcome = iota
	// OutcomeTimeout: the budget expired first.
	OutcomeTimeout
	// OutcomeFailed: the engine returned an error.
	OutcomeFailed
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Record is one (instance, engine) job.
type Record struct {
	Instance   int // index into the instances passed to Run
	Config     int // index into Config.Algorithms
	Algorithm  uflp.Algorithm
	Outcome    Outcome
	Solution   uflp.Solution
	LowerBound float64
	Optimum    float64 // NaN without an exact optimum
	Ratio      float64 // Solution.Cost / Optimum, NaN when unknown
	Duration   time.Duration
	Err        error // engine error or context.DeadlineExceeded
}

// HasRatio reports whether Ratio is defined.
func (r Record) HasRatio() bool { return !math.IsNaN(r.Ratio) }

// Summary aggregates the records of one engine configuration.
type Summary struct {
	Config    int
	Algorithm uflp.Algorithm
	Runs      int
	OK        int
	Timeouts  int
	Failures  int
	MeanRatio float64 // NaN when no successful run has a ratio
	MaxRatio  float64 // NaN when no successful run has a ratio
}

// Report is the outcome of Run.
type Report struct {
	// Optima[k] is the exact optimum of instance k, NaN if unknown.
	Optima []float64
	// Records are ordered by (Instance, Config).
	Records []Record
	// Summaries follow Config.Algorithms order.
	Summaries []Summary
}

// summarize folds records into per-configuration summaries.
func summarize(cfg Config, records []Record) []Summary {
	out := make([]Summary, len(cfg.Algorithms))
	ratios := make([][]float64, len(cfg.Algorithms))
	for k, o := range cfg.Algorithms {
		out[k] = Summary{Config: k, Algorithm: o.Algo}
	}
	for _, r := range records {
		s := &out[r.Config]
		s.Runs++
		switch r.Outcome {
		case OutcomeOK:
			s.OK++
			if r.HasRatio() {
				ratios[r.Config] = append(ratios[r.Config], r.Ratio)
			}
		case OutcomeTimeout:
			s.Timeouts++
		case OutcomeFailed:
			s.Failures++
		}
	}
	for k := range out {
		if len(ratios[k]) == 0 {
			out[k].MeanRatio, out[k].MaxRatio = math.NaN(), math.NaN()
			continue
		}
		out[k].MeanRatio = stat.Mean(ratios[k], nil)
		out[k].MaxRatio = floats.Max(ratios[k])
	}

	return out
}
