// SPDX-License-Identifier: MIT

package uflp

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/facloc/matrix"
)

// Instance is a validated, immutable UFLP instance: n clients, p facilities,
// connection costs C (n×p, row-major) and opening costs f (length p).
//
// Invariants established by the constructors:
//   - n ≥ 1, p ≥ 1, len(f) == p;
//   - every C[i,j] is ≥ 0 or +Inf ("no connection"), never NaN;
//   - every f[j] is finite and ≥ 0;
//   - every client has at least one finite-cost facility.
type Instance struct {
	n, p int
	c    []float64 // offset i*p + j
	f    []float64
}

// NewInstance validates and copies a cost table and opening costs.
//
// Errors (all match ErrInvalidInstance as well):
//   - ErrNilInstance when cost is nil;
//   - ErrNoClients / ErrNoFacilities for empty dimensions;
//   - ErrDimensionMismatch for ragged rows or len(open) != p;
//   - ErrNaNCost, ErrNegativeCost, ErrInvalidOpeningCost, ErrUnreachableClient.
func NewInstance(cost [][]float64, open []float64) (*Instance, error) {
	if cost == nil {
		return nil, invalidf(ErrNilInstance, "cost table is nil")
	}
	if len(cost) == 0 {
		return nil, invalidf(ErrNoClients, "cost table has no rows")
	}
	if len(cost[0]) == 0 {
		return nil, invalidf(ErrNoFacilities, "cost table has no columns")
	}
	m, err := matrix.NewDenseFromRows(cost)
	if err != nil {
		return nil, invalidf(ErrDimensionMismatch, "%v", err)
	}

	return NewInstanceFromMatrix(m, open)
}

// NewInstanceFromMatrix validates and copies m and open into a new Instance.
// Same error contract as NewInstance.
func NewInstanceFromMatrix(m matrix.Matrix, open []float64) (*Instance, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, invalidf(ErrNilInstance, "%v", err)
	}
	var (
		n = m.Rows()
		p = m.Cols()
	)
	if n <= 0 {
		return nil, invalidf(ErrNoClients, "n=%d", n)
	}
	if p <= 0 {
		return nil, invalidf(ErrNoFacilities, "p=%d", p)
	}
	if err := matrix.ValidateVecLen(open, p); err != nil {
		return nil, invalidf(ErrDimensionMismatch, "len(f)=%d, p=%d", len(open), p)
	}
	if err := matrix.ValidateNonNegative(m); err != nil {
		switch {
		case errors.Is(err, matrix.ErrNaN):
			return nil, invalidf(ErrNaNCost, "%v", err)
		case errors.Is(err, matrix.ErrNegative):
			return nil, invalidf(ErrNegativeCost, "%v", err)
		default:
			return nil, invalidf(ErrDimensionMismatch, "%v", err)
		}
	}

	inst := &Instance{n: n, p: p, c: make([]float64, n*p), f: make([]float64, p)}
	var (
		i, j int
		v    float64
		err  error
	)
	for j = 0; j < p; j++ {
		v = open[j]
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, invalidf(ErrInvalidOpeningCost, "f[%d]=%g", j, v)
		}
		inst.f[j] = v
	}
	for i = 0; i < n; i++ {
		reachable := false
		for j = 0; j < p; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, invalidf(ErrDimensionMismatch, "%v", err)
			}
			inst.c[i*p+j] = v
			if !math.IsInf(v, 1) {
				reachable = true
			}
		}
		if !reachable {
			return nil, invalidf(ErrUnreachableClient, "client %d", i)
		}
	}

	return inst, nil
}

// Clients returns n.
func (in *Instance) Clients() int { return in.n }

// Facilities returns p.
func (in *Instance) Facilities() int { return in.p }

// ConnectionCost returns C[i,j]; it panics on out-of-range indices like a slice.
func (in *Instance) ConnectionCost(i, j int) float64 {
	if i < 0 || i >= in.n || j < 0 || j >= in.p {
		panic(fmt.Sprintf("uflp: ConnectionCost(%d,%d) out of range [%d×%d]", i, j, in.n, in.p))
	}

	return in.c[i*in.p+j]
}

// OpeningCost returns f[j].
func (in *Instance) OpeningCost(j int) float64 { return in.f[j] }

// CostMatrix returns a fresh copy of C.
func (in *Instance) CostMatrix() *matrix.Dense {
	m, _ := matrix.NewDense(in.n, in.p) // n,p ≥ 1 by construction
	var i, j int
	for i = 0; i < in.n; i++ {
		for j = 0; j < in.p; j++ {
			_ = m.Set(i, j, in.c[i*in.p+j])
		}
	}

	return m
}

// OpeningCosts returns a copy of f.
func (in *Instance) OpeningCosts() []float64 {
	out := make([]float64, in.p)
	copy(out, in.f)

	return out
}

// row returns the internal cost row of client i (no copy).
func (in *Instance) row(i int) []float64 { return in.c[i*in.p : (i+1)*in.p] }

// IsMetric reports whether C satisfies the bipartite triangle inequality
//
//	C[i,j] ≤ C[i,j'] + C[i',j'] + C[i',j]   for all i, i', j, j'
//
// within tol. +Inf entries on the right-hand side make the check vacuous.
// Complexity: O(n²·p²).
func IsMetric(inst *Instance, tol float64) bool {
	if inst == nil {
		return false
	}
	var (
		i, k, j, l int
		lhs, rhs   float64
	)
	for i = 0; i < inst.n; i++ {
		for k = 0; k < inst.n; k++ {
			if i == k {
				continue
			}
			for j = 0; j < inst.p; j++ {
				lhs = inst.c[i*inst.p+j]
				for l = 0; l < inst.p; l++ {
					if l == j {
						continue
					}
					rhs = inst.c[i*inst.p+l] + inst.c[k*inst.p+l] + inst.c[k*inst.p+j]
					if lhs > rhs+tol {
						return false
					}
				}
			}
		}
	}

	return true
}
