// SPDX-License-Identifier: MIT

package uflp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// Enumerator is an ExactOracle that tries every non-empty facility subset.
//
// Subsets are visited by size, then lexicographically; the first strict
// minimum wins, so the result is deterministic. Every client is served by its
// nearest facility in the subset.
//
// MaxFacilities bounds p (0 ⇒ DefaultMaxExactFacilities); larger instances
// fail with ErrTooLarge.
//
// Complexity: O(2^p · n · p) time, O(n + p) extra memory.
type Enumerator struct {
	MaxFacilities int
}

var _ ExactOracle = Enumerator{}

// SolveExact implements ExactOracle.
func (en Enumerator) SolveExact(inst *Instance) (ExactResult, error) {
	if err := checkInstance(inst); err != nil {
		return ExactResult{}, err
	}
	limit := en.MaxFacilities
	if limit <= 0 {
		limit = DefaultMaxExactFacilities
	}
	if inst.p > limit {
		return ExactResult{}, fmt.Errorf("%w: p=%d > %d", ErrTooLarge, inst.p, limit)
	}

	var (
		p       = inst.p
		best    = math.Inf(1)
		bestSet []int
		subset  []int
		cost    float64
		k       int
	)
	for k = 1; k <= p; k++ {
		gen := combin.NewCombinationGenerator(p, k)
		subset = make([]int, k)
		for gen.Next() {
			gen.Combination(subset)
			cost = subsetCost(inst, subset, best)
			if cost < best {
				best = cost
				bestSet = append(bestSet[:0], subset...)
			}
		}
	}

	isOpen := make([]bool, p)
	for _, j := range bestSet {
		isOpen[j] = true
	}
	assignment := make([]int, inst.n)
	for i := range assignment {
		assignment[i] = nearestOpen(inst, isOpen, i)
	}
	sol, err := finish(inst, isOpen, assignment)
	if err != nil {
		return ExactResult{}, err
	}

	return ExactResult{Solution: sol, Status: StatusOptimal}, nil
}

// subsetCost returns Σ f[S] + Σ_i min_{j∈S} C[i,j]. It stops early and
// returns +Inf once the partial sum reaches cutoff.
func subsetCost(inst *Instance, subset []int, cutoff float64) float64 {
	var (
		sum  float64
		m, c float64
		i    int
	)
	for _, j := range subset {
		sum += inst.f[j]
	}
	for i = 0; i < inst.n; i++ {
		if sum >= cutoff {
			return math.Inf(1)
		}
		m = math.Inf(1)
		for _, j := range subset {
			if c = inst.c[i*inst.p+j]; c < m {
				m = c
			}
		}
		sum += m
	}

	return sum
}
