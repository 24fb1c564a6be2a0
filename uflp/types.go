// SPDX-License-Identifier: MIT

package uflp

import (
	"errors"
	"fmt"
)

// Sentinel errors. Instance validation failures always match ErrInvalidInstance
// and, additionally, the specific cause below.
var (
	// ErrInvalidInstance is the umbrella for every malformed-instance failure.
	ErrInvalidInstance = errors.New("uflp: invalid instance")

	// ErrNilInstance is returned when a nil *Instance or nil cost matrix is supplied.
	ErrNilInstance = errors.New("uflp: nil instance")

	// ErrNoClients is returned for an instance without clients.
	ErrNoClients = errors.New("uflp: no clients")

	// ErrNoFacilities is returned for an instance without facilities.
	ErrNoFacilities = errors.New("uflp: no facilities")

	// ErrDimensionMismatch is returned when C, f or oracle output shapes disagree.
	ErrDimensionMismatch = errors.New("uflp: dimension mismatch")

	// ErrNegativeCost is returned for a negative connection cost.
	ErrNegativeCost = errors.New("uflp: negative connection cost")

	// ErrNaNCost is returned for a NaN connection cost.
	ErrNaNCost = errors.New("uflp: NaN connection cost")

	// ErrInvalidOpeningCost is returned for a negative, NaN or infinite opening cost.
	ErrInvalidOpeningCost = errors.New("uflp: opening cost must be finite and non-negative")

	// ErrUnreachableClient is returned when a client has no finite-cost facility.
	ErrUnreachableClient = errors.New("uflp: client has no finite-cost facility")

	// ErrOracle is returned when the LP relaxation is not optimal or malformed.
	ErrOracle = errors.New("uflp: LP relaxation not optimal")

	// ErrNoOracle is returned when ClusterRounding is requested without an LPOracle.
	ErrNoOracle = errors.New("uflp: no LP oracle configured")

	// ErrUnsupportedAlgorithm is returned for an unknown Options.Algo.
	ErrUnsupportedAlgorithm = errors.New("uflp: unsupported algorithm")

	// ErrBadOptions is returned for out-of-range tolerances or limits.
	ErrBadOptions = errors.New("uflp: invalid options")

	// ErrTooLarge is returned when exact enumeration exceeds MaxFacilities.
	ErrTooLarge = errors.New("uflp: instance too large for exact enumeration")

	// ErrInvalidSolution is returned by TotalCost for a structurally broken solution.
	ErrInvalidSolution = errors.New("uflp: invalid solution")
)

// invalidf joins ErrInvalidInstance with a specific cause and context.
func invalidf(cause error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: "+format, append([]any{ErrInvalidInstance, cause}, args...)...)
}

// Algorithm selects the engine used by Solve.
type Algorithm int

const (
	// PrimalDual runs the Jain–Vazirani event simulation with pruning.
	PrimalDual Algorithm = iota

	// ClusterRounding runs the LP-duals clustering heuristic; needs Options.Oracle.
	ClusterRounding

	// ExactEnumeration enumerates all facility subsets (small p only).
	ExactEnumeration
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case PrimalDual:
		return "primal-dual"
	case ClusterRounding:
		return "cluster-rounding"
	case ExactEnumeration:
		return "exact"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Status reports how an oracle terminated.
type Status int

const (
	// StatusOptimal means the oracle proved optimality.
	StatusOptimal Status = iota

	// StatusInfeasible means the oracle proved infeasibility.
	StatusInfeasible

	// StatusOther covers every other termination (numerical failure, limits, …).
	StatusOther
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusOther:
		return "other"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Solution is an integral UFLP solution.
type Solution struct {
	// Open lists opened facility indices, ascending and unique.
	Open []int

	// Assignment maps client i to the facility serving it; len == n.
	Assignment []int

	// Cost is Σ f[Open] + Σ C[i, Assignment[i]], rounded to 1e-9.
	Cost float64
}

// Result is the engine-independent outcome returned by Solve.
type Result struct {
	Solution

	// Algorithm is the engine that produced the solution.
	Algorithm Algorithm

	// LowerBound is a certified lower bound on the optimum when available:
	// the dual value for PrimalDual, the LP objective for ClusterRounding and
	// the optimum itself for ExactEnumeration.
	LowerBound float64
}

// RoundingResult is the outcome of SolveRounding.
type RoundingResult struct {
	Solution

	// Centers lists cluster centers in pick order.
	Centers []int

	// Clusters[k] lists the (ascending) members of the cluster around Centers[k].
	Clusters [][]int
}

// PrimalDualResult is the outcome of SolvePrimalDual.
type PrimalDualResult struct {
	Solution

	// DualValue is Σ Alpha; a lower bound on the optimum for metric instances.
	DualValue float64

	// Alpha holds each client's dual value frozen at connection time.
	Alpha []float64

	// Witness is the facility each client connected to during the simulation.
	Witness []int

	// Tentative lists tentatively opened facilities in opening order.
	Tentative []int

	// Contributors[j] lists (ascending) the clients that contributed to facility j.
	Contributors [][]int

	// Forced lists clients connected by the exhausted-events fallback.
	Forced []int

	// Readmitted lists pruned facilities reopened because some client had no
	// finite-cost facility left.
	Readmitted []int
}
