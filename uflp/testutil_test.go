// SPDX-License-Identifier: MIT

// Package uflp_test provides helpers shared across *_test.go files:
// deterministic metric instance generators, hand-built relaxations and
// assertions for the properties every engine must satisfy.
package uflp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/facloc/uflp"
	"github.com/stretchr/testify/require"
)

const (
	// epsCost is the tolerance for comparing costs that went through round1e9.
	epsCost = 1e-6

	// approxFactor is the primal-dual guarantee on metric instances.
	approxFactor = 3.0

	// randomRuns is the number of seeded instances per property test.
	randomRuns = 40
)

// mustInstance builds an instance or fails the test.
func mustInstance(t testing.TB, cost [][]float64, open []float64) *uflp.Instance {
	t.Helper()
	inst, err := uflp.NewInstance(cost, open)
	require.NoError(t, err)

	return inst
}

// twoByTwoSymmetric: C=[[0,10],[10,0]], f=[1,1]; optimum opens both (cost 2).
func twoByTwoSymmetric(t testing.TB) *uflp.Instance {
	return mustInstance(t, [][]float64{{0, 10}, {10, 0}}, []float64{1, 1})
}

// twoByTwoSkewed: C=[[0,100],[100,0]], f=[1,1000]; optimum opens {0} (cost 101).
func twoByTwoSkewed(t testing.TB) *uflp.Instance {
	return mustInstance(t, [][]float64{{0, 100}, {100, 0}}, []float64{1, 1000})
}

// randomMetric places n clients and p facilities uniformly in [0,100)² and
// uses Euclidean distances, so C satisfies the bipartite triangle inequality.
// Opening costs are uniform in [0,50).
func randomMetric(t testing.TB, seed int64, n, p int) *uflp.Instance {
	t.Helper()
	var (
		rng  = rand.New(rand.NewSource(seed))
		cx   = make([]float64, n)
		cy   = make([]float64, n)
		cost = make([][]float64, n)
		open = make([]float64, p)
		fx   = make([]float64, p)
		fy   = make([]float64, p)
		i, j int
	)
	for i = 0; i < n; i++ {
		cx[i], cy[i] = rng.Float64()*100, rng.Float64()*100
	}
	for j = 0; j < p; j++ {
		fx[j], fy[j] = rng.Float64()*100, rng.Float64()*100
		open[j] = rng.Float64() * 50
	}
	for i = 0; i < n; i++ {
		cost[i] = make([]float64, p)
		for j = 0; j < p; j++ {
			cost[i][j] = math.Hypot(cx[i]-fx[j], cy[i]-fy[j])
		}
	}

	return mustInstance(t, cost, open)
}

// randomShape derives a small (n,p) pair from a seed so property tests cover
// several shapes while keeping exact enumeration cheap.
func randomShape(seed int64) (n, p int) {
	return 2 + int(seed%7), 1 + int(seed%6)
}

// integralRelaxation turns an integral solution into an "optimal" relaxation:
// X and Y are the 0/1 indicator values and V[i] is the connection cost of i.
func integralRelaxation(inst *uflp.Instance, sol uflp.Solution) uflp.LPRelaxation {
	var (
		n     = inst.Clients()
		p     = inst.Facilities()
		relax = uflp.LPRelaxation{
			Status:    uflp.StatusOptimal,
			X:         make([][]float64, n),
			Y:         make([]float64, p),
			V:         make([]float64, n),
			Objective: sol.Cost,
		}
	)
	for _, j := range sol.Open {
		relax.Y[j] = 1
	}
	for i := 0; i < n; i++ {
		relax.X[i] = make([]float64, p)
		relax.X[i][sol.Assignment[i]] = 1
		relax.V[i] = inst.ConnectionCost(i, sol.Assignment[i])
	}

	return relax
}

// requireNearestOpen checks that every client pays min_{j∈open} C[i,j].
func requireNearestOpen(t testing.TB, inst *uflp.Instance, sol uflp.Solution) {
	t.Helper()
	for i, a := range sol.Assignment {
		best := math.Inf(1)
		for _, j := range sol.Open {
			best = math.Min(best, inst.ConnectionCost(i, j))
		}
		require.Equal(t, best, inst.ConnectionCost(i, a), "client %d not at its nearest open facility", i)
	}
}

// requireConsistentCost recomputes the cost from (Open, Assignment).
func requireConsistentCost(t testing.TB, inst *uflp.Instance, sol uflp.Solution) {
	t.Helper()
	cost, err := uflp.TotalCost(inst, sol.Open, sol.Assignment)
	require.NoError(t, err)
	require.Equal(t, cost, sol.Cost)
}

// recordFallbacks returns Options with a hook appending into the returned slice.
func recordFallbacks() (uflp.Options, *[]uflp.FallbackEvent) {
	var events []uflp.FallbackEvent
	opts := uflp.DefaultOptions()
	opts.OnFallback = func(ev uflp.FallbackEvent) { events = append(events, ev) }

	return opts, &events
}
