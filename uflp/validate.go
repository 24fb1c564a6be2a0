// SPDX-License-Identifier: MIT

// Package uflp - validation shared by the engines and the dispatcher.
//
// Instances are validated once by their constructors; the helpers here only
// re-check what a caller can still get wrong: a nil or zero-value *Instance,
// out-of-range Options, and malformed oracle output.
// No logging, no panics on user input: only sentinel errors from types.go.
package uflp

import (
	"fmt"
	"math"
)

// Validate reports whether inst is usable by the engines: it rejects nil and
// zero-value instances with the ErrInvalidInstance family. Instances from
// NewInstance always pass.
func Validate(inst *Instance) error { return checkInstance(inst) }

// checkInstance rejects nil and zero-value instances.
// Complexity: O(1).
func checkInstance(inst *Instance) error {
	if inst == nil {
		return invalidf(ErrNilInstance, "instance is nil")
	}
	if inst.n <= 0 {
		return invalidf(ErrNoClients, "instance was not built with NewInstance")
	}
	if inst.p <= 0 {
		return invalidf(ErrNoFacilities, "instance was not built with NewInstance")
	}

	return nil
}

// validateOptions checks tolerances and limits. Algo is validated by Solve.
// Complexity: O(1).
func validateOptions(opts Options) error {
	if math.IsNaN(opts.LinkEps) || opts.LinkEps < 0 {
		return fmt.Errorf("%w: LinkEps=%g", ErrBadOptions, opts.LinkEps)
	}
	if math.IsNaN(opts.ThresholdEps) || opts.ThresholdEps < 0 {
		return fmt.Errorf("%w: ThresholdEps=%g", ErrBadOptions, opts.ThresholdEps)
	}
	if opts.MaxExactFacilities <= 0 {
		return fmt.Errorf("%w: MaxExactFacilities=%d", ErrBadOptions, opts.MaxExactFacilities)
	}

	return nil
}

// validateRelaxation checks oracle status and output shapes against inst.
//
// Errors:
//   - ErrOracle if Status != StatusOptimal;
//   - ErrOracle wrapping ErrDimensionMismatch if X, Y or V have the wrong shape,
//     or if any value is NaN.
//
// Complexity: O(n·p).
func validateRelaxation(inst *Instance, relax LPRelaxation) error {
	if relax.Status != StatusOptimal {
		return fmt.Errorf("%w: status %s", ErrOracle, relax.Status)
	}
	if len(relax.X) != inst.n || len(relax.Y) != inst.p || len(relax.V) != inst.n {
		return fmt.Errorf("%w: %w: |X|=%d |Y|=%d |V|=%d, want n=%d p=%d",
			ErrOracle, ErrDimensionMismatch, len(relax.X), len(relax.Y), len(relax.V), inst.n, inst.p)
	}
	var i, j int
	for i = 0; i < inst.n; i++ {
		if len(relax.X[i]) != inst.p {
			return fmt.Errorf("%w: %w: |X[%d]|=%d, want %d",
				ErrOracle, ErrDimensionMismatch, i, len(relax.X[i]), inst.p)
		}
		if math.IsNaN(relax.V[i]) {
			return fmt.Errorf("%w: %w: V[%d] is NaN", ErrOracle, ErrDimensionMismatch, i)
		}
		for j = 0; j < inst.p; j++ {
			if math.IsNaN(relax.X[i][j]) {
				return fmt.Errorf("%w: %w: X[%d][%d] is NaN", ErrOracle, ErrDimensionMismatch, i, j)
			}
		}
	}

	return nil
}
