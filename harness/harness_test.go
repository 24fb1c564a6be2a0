// SPDX-License-Identifier: MIT

package harness_test

import (
	"context"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/katalvlaran/facloc/harness"
	"github.com/katalvlaran/facloc/uflp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsRatio = 1e-6

// randomBatch builds count Euclidean instances with n clients and p facilities.
func randomBatch(t testing.TB, seed int64, count, n, p int) []*uflp.Instance {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	out := make([]*uflp.Instance, count)
	for k := range out {
		cx, cy := make([]float64, n), make([]float64, n)
		fx, fy := make([]float64, p), make([]float64, p)
		open := make([]float64, p)
		for i := range cx {
			cx[i], cy[i] = rng.Float64()*100, rng.Float64()*100
		}
		for j := range fx {
			fx[j], fy[j] = rng.Float64()*100, rng.Float64()*100
			open[j] = rng.Float64() * 50
		}
		cost := make([][]float64, n)
		for i := range cost {
			cost[i] = make([]float64, p)
			for j := range cost[i] {
				cost[i][j] = math.Hypot(cx[i]-fx[j], cy[i]-fy[j])
			}
		}
		inst, err := uflp.NewInstance(cost, open)
		require.NoError(t, err)
		out[k] = inst
	}

	return out
}

func algo(a uflp.Algorithm) uflp.Options {
	o := uflp.DefaultOptions()
	o.Algo = a

	return o
}

func TestRun_RatiosAndOrder(t *testing.T) {
	instances := randomBatch(t, 1, 6, 6, 4)
	cfg := harness.DefaultConfig()
	cfg.Workers = 3
	cfg.Algorithms = []uflp.Options{algo(uflp.PrimalDual), algo(uflp.ExactEnumeration)}

	rep, err := harness.Run(context.Background(), instances, cfg)
	require.NoError(t, err)
	require.Len(t, rep.Records, 12)
	require.Len(t, rep.Optima, 6)

	for idx, rec := range rep.Records {
		assert.Equal(t, idx/2, rec.Instance)
		assert.Equal(t, idx%2, rec.Config)
		require.Equal(t, harness.OutcomeOK, rec.Outcome, "record %d: %v", idx, rec.Err)
		require.True(t, rec.HasRatio())
		assert.GreaterOrEqual(t, rec.Ratio, 1-epsRatio)
		assert.LessOrEqual(t, rec.Ratio, 3+epsRatio)
		if rec.Algorithm == uflp.ExactEnumeration {
			assert.InDelta(t, 1.0, rec.Ratio, epsRatio)
		}
	}

	require.Len(t, rep.Summaries, 2)
	pd := rep.Summaries[0]
	assert.Equal(t, uflp.PrimalDual, pd.Algorithm)
	assert.Equal(t, 6, pd.Runs)
	assert.Equal(t, 6, pd.OK)
	assert.GreaterOrEqual(t, pd.MaxRatio, pd.MeanRatio)
	assert.InDelta(t, 1.0, rep.Summaries[1].MaxRatio, epsRatio)
}

// TestRun_TimeoutIsDistinct: a slow oracle yields OutcomeTimeout, not a failure.
func TestRun_TimeoutIsDistinct(t *testing.T) {
	instances := randomBatch(t, 2, 1, 3, 2)
	release := make(chan struct{})
	defer close(release)

	slow := algo(uflp.ClusterRounding)
	slow.Oracle = uflp.LPOracleFunc(func(*uflp.Instance) (uflp.LPRelaxation, error) {
		<-release
		return uflp.LPRelaxation{}, nil
	})

	cfg := harness.Config{
		Workers:    1,
		Timeout:    20 * time.Millisecond,
		Algorithms: []uflp.Options{slow, algo(uflp.PrimalDual)},
	}
	rep, err := harness.Run(context.Background(), instances, cfg)
	require.NoError(t, err)

	require.Equal(t, harness.OutcomeTimeout, rep.Records[0].Outcome)
	require.ErrorIs(t, rep.Records[0].Err, context.DeadlineExceeded)
	assert.False(t, rep.Records[0].HasRatio())
	assert.Equal(t, harness.OutcomeOK, rep.Records[1].Outcome)
	assert.False(t, rep.Records[1].HasRatio()) // no exact oracle configured
	assert.True(t, math.IsNaN(rep.Optima[0]))

	assert.Equal(t, 1, rep.Summaries[0].Timeouts)
	assert.Equal(t, 0, rep.Summaries[0].Failures)
	assert.True(t, math.IsNaN(rep.Summaries[0].MeanRatio))
}

func TestRun_FailureRecorded(t *testing.T) {
	instances := randomBatch(t, 3, 2, 3, 2)
	cfg := harness.DefaultConfig()
	cfg.Algorithms = []uflp.Options{algo(uflp.ClusterRounding)} // no oracle

	rep, err := harness.Run(context.Background(), instances, cfg)
	require.NoError(t, err)
	for _, rec := range rep.Records {
		assert.Equal(t, harness.OutcomeFailed, rec.Outcome)
		assert.ErrorIs(t, rec.Err, uflp.ErrNoOracle)
	}
	assert.Equal(t, 2, rep.Summaries[0].Failures)
}

// TestRun_ExactFailureLeavesOptimumUnknown: a panicking oracle is contained.
func TestRun_ExactFailureLeavesOptimumUnknown(t *testing.T) {
	instances := randomBatch(t, 4, 1, 3, 2)
	cfg := harness.DefaultConfig()
	cfg.Exact = uflp.ExactOracleFunc(func(*uflp.Instance) (uflp.ExactResult, error) {
		panic("boom")
	})

	rep, err := harness.Run(context.Background(), instances, cfg)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(rep.Optima[0]))
	assert.Equal(t, harness.OutcomeOK, rep.Records[0].Outcome)
	assert.False(t, rep.Records[0].HasRatio())
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := harness.Run(ctx, randomBatch(t, 5, 2, 3, 2), harness.DefaultConfig())
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_BadConfig(t *testing.T) {
	instances := randomBatch(t, 6, 1, 2, 2)
	for name, mutate := range map[string]func(*harness.Config){
		"workers":    func(c *harness.Config) { c.Workers = 0 },
		"timeout":    func(c *harness.Config) { c.Timeout = -time.Second },
		"algorithms": func(c *harness.Config) { c.Algorithms = nil },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := harness.DefaultConfig()
			mutate(&cfg)
			_, err := harness.Run(context.Background(), instances, cfg)
			require.ErrorIs(t, err, harness.ErrBadConfig)
		})
	}
}

func TestRun_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := harness.NewMetrics(reg)
	require.NoError(t, err)

	cfg := harness.DefaultConfig()
	cfg.Metrics = m
	cfg.Algorithms = []uflp.Options{algo(uflp.PrimalDual), algo(uflp.ClusterRounding)}

	_, err = harness.Run(context.Background(), randomBatch(t, 7, 3, 4, 3), cfg)
	require.NoError(t, err)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.Runs.WithLabelValues("primal-dual", "ok")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Runs.WithLabelValues("cluster-rounding", "failed")))
	n, err := testutil.GatherAndCount(reg, "facloc_approx_ratio")
	require.NoError(t, err)
	assert.Equal(t, 1, n) // only primal-dual has ratios

	_, err = harness.NewMetrics(reg)
	require.Error(t, err)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "ok", harness.OutcomeOK.String())
	assert.Equal(t, "timeout", harness.OutcomeTimeout.String())
	assert.Equal(t, "failed", harness.OutcomeFailed.String())
}
