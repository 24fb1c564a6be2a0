// SPDX-License-Identifier: MIT

package harness

import "github.com/prometheus/client_golang/prometheus"

// Metrics groups the collectors updated by Run.
type Metrics struct {
	// Runs counts jobs by algorithm and outcome.
	Runs *prometheus.CounterVec
	// Duration records job wall-clock time in seconds.
	Duration *prometheus.HistogramVec
	// Ratio records cost/optimum for successful jobs with a known optimum.
	Ratio *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
// Registering twice on the same registry fails with prometheus.AlreadyRegisteredError.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "facloc_runs_total", Help: "Engine runs by algorithm and outcome."},
			[]string{"algorithm", "outcome"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "facloc_run_duration_seconds", Help: "Engine run duration in seconds.", Buckets: prometheus.DefBuckets},
			[]string{"algorithm"},
		),
		Ratio: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "facloc_approx_ratio", Help: "Cost over exact optimum.", Buckets: []float64{1, 1.01, 1.05, 1.1, 1.25, 1.5, 2, 3}},
			[]string{"algorithm"},
		),
	}
	for _, c := range []prometheus.Collector{m.Runs, m.Duration, m.Ratio} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// observe records one finished job; a nil receiver is a no-op.
func (m *Metrics) observe(rec Record) {
	if m == nil {
		return
	}
	algo := rec.Algorithm.String()
	m.Runs.WithLabelValues(algo, rec.Outcome.String()).Inc()
	m.Duration.WithLabelValues(algo).Observe(rec.Duration.Seconds())
	if rec.Outcome == OutcomeOK && rec.HasRatio() {
		m.Ratio.WithLabelValues(algo).Observe(rec.Ratio)
	}
}
