// SPDX-License-Identifier: MIT

// Package uflp - cost utilities shared by all engines.
//
// Costs are summed in index order and rounded to 1e-9 so that results are
// reproducible across platforms and optimisation levels.
package uflp

import (
	"fmt"
	"math"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// round1e9 rounds x to 1e-9; ±Inf and NaN pass through unchanged.
func round1e9(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}

// TotalCost returns Σ f[j] over open plus Σ C[i, assignment[i]], rounded to 1e-9.
//
// Errors (ErrInvalidSolution, wrapped with context):
//   - len(assignment) != n, or an index out of range;
//   - a duplicate in open;
//   - a client assigned to a facility not in open.
//
// A +Inf connection yields +Inf, not an error.
// Complexity: O(n + p).
func TotalCost(inst *Instance, open []int, assignment []int) (float64, error) {
	if err := checkInstance(inst); err != nil {
		return 0, err
	}
	if len(assignment) != inst.n {
		return 0, fmt.Errorf("%w: len(assignment)=%d, n=%d", ErrInvalidSolution, len(assignment), inst.n)
	}
	var (
		isOpen = make([]bool, inst.p)
		sum    float64
		i, j   int
	)
	for _, j = range open {
		if j < 0 || j >= inst.p {
			return 0, fmt.Errorf("%w: open facility %d out of range [0,%d)", ErrInvalidSolution, j, inst.p)
		}
		if isOpen[j] {
			return 0, fmt.Errorf("%w: facility %d opened twice", ErrInvalidSolution, j)
		}
		isOpen[j] = true
		sum += inst.f[j]
	}
	for i = 0; i < inst.n; i++ {
		j = assignment[i]
		if j < 0 || j >= inst.p || !isOpen[j] {
			return 0, fmt.Errorf("%w: client %d assigned to unopened facility %d", ErrInvalidSolution, i, j)
		}
		sum += inst.c[i*inst.p+j]
	}

	return round1e9(sum), nil
}

// nearestOpen returns the opened facility with minimal C[i,·], ties to the
// lowest index. It returns -1 when every opened facility is at +Inf.
// Complexity: O(p).
func nearestOpen(inst *Instance, isOpen []bool, i int) int {
	var (
		best  = -1
		bestC = math.Inf(1)
		row   = inst.row(i)
		j     int
	)
	for j = 0; j < inst.p; j++ {
		if isOpen[j] && row[j] < bestC {
			best, bestC = j, row[j]
		}
	}

	return best
}

// cheapestSingle returns argmin_j C[i,j]+f[j] over finite-cost facilities,
// ties to the lowest index. Instances guarantee at least one finite entry.
// Complexity: O(p).
func cheapestSingle(inst *Instance, i int) int {
	var (
		best  = -1
		bestV = math.Inf(1)
		row   = inst.row(i)
		v     float64
		j     int
	)
	for j = 0; j < inst.p; j++ {
		if math.IsInf(row[j], 1) {
			continue
		}
		v = row[j] + inst.f[j]
		if best < 0 || v < bestV {
			best, bestV = j, v
		}
	}

	return best
}

// openList returns the ascending indices j with isOpen[j].
func openList(isOpen []bool) []int {
	out := make([]int, 0, len(isOpen))
	for j, ok := range isOpen {
		if ok {
			out = append(out, j)
		}
	}

	return out
}

// finish builds a Solution from an open set and a complete assignment.
func finish(inst *Instance, isOpen []bool, assignment []int) (Solution, error) {
	open := openList(isOpen)
	cost, err := TotalCost(inst, open, assignment)
	if err != nil {
		return Solution{}, err
	}

	return Solution{Open: open, Assignment: assignment, Cost: cost}, nil
}
