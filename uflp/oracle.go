// SPDX-License-Identifier: MIT

package uflp

// LPRelaxation is the output of an LP oracle for the UFLP relaxation
//
//	min Σ C[i,j]·x[i,j] + Σ f[j]·y[j]
//	s.t. Σ_j x[i,j] = 1, x[i,j] ≤ y[j], x,y ≥ 0.
//
// V holds the optimal duals of the per-client demand constraints.
type LPRelaxation struct {
	Status    Status
	X         [][]float64 // n×p primal assignment values in [0,1]
	Y         []float64   // p primal opening values in [0,1]
	V         []float64   // n dual values, ≥ 0
	Objective float64     // optimal objective value
}

// ExactResult is the output of an exact oracle.
type ExactResult struct {
	Solution
	Status Status
}

// LPOracle solves the LP relaxation of an instance.
// Infeasibility or numerical trouble is reported through LPRelaxation.Status;
// a non-nil error means the oracle could not run at all.
type LPOracle interface {
	SolveRelaxation(inst *Instance) (LPRelaxation, error)
}

// ExactOracle computes an optimal integral solution.
type ExactOracle interface {
	SolveExact(inst *Instance) (ExactResult, error)
}

// LPOracleFunc adapts a function to LPOracle.
type LPOracleFunc func(inst *Instance) (LPRelaxation, error)

// SolveRelaxation calls f(inst).
func (f LPOracleFunc) SolveRelaxation(inst *Instance) (LPRelaxation, error) { return f(inst) }

// ExactOracleFunc adapts a function to ExactOracle.
type ExactOracleFunc func(inst *Instance) (ExactResult, error)

// SolveExact calls f(inst).
func (f ExactOracleFunc) SolveExact(inst *Instance) (ExactResult, error) { return f(inst) }
