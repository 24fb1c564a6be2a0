// SPDX-License-Identifier: MIT

// Package uflp - unified dispatcher.
//
// Solve validates the options, re-checks the instance, and routes to the
// engine selected by Options.Algo:
//
//   - PrimalDual        → SolvePrimalDual; LowerBound = Σα.
//   - ClusterRounding   → Options.Oracle, then SolveRounding; LowerBound = LP objective.
//   - ExactEnumeration  → Enumerator; LowerBound = optimum.
package uflp

import "fmt"

// Solve runs the engine chosen by opts.Algo on inst.
//
// Errors:
//   - ErrBadOptions, ErrUnsupportedAlgorithm, ErrNoOracle;
//   - ErrInvalidInstance family;
//   - ErrOracle when the LP oracle fails or returns a non-optimal relaxation;
//   - ErrTooLarge from exact enumeration.
func Solve(inst *Instance, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if err := checkInstance(inst); err != nil {
		return Result{}, err
	}

	switch opts.Algo {
	case PrimalDual:
		res, err := SolvePrimalDual(inst, opts)
		if err != nil {
			return Result{}, err
		}

		return Result{Solution: res.Solution, Algorithm: PrimalDual, LowerBound: res.DualValue}, nil

	case ClusterRounding:
		if opts.Oracle == nil {
			return Result{}, ErrNoOracle
		}
		relax, err := opts.Oracle.SolveRelaxation(inst)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrOracle, err)
		}
		res, err := SolveRounding(inst, relax, opts)
		if err != nil {
			return Result{}, err
		}

		return Result{Solution: res.Solution, Algorithm: ClusterRounding, LowerBound: round1e9(relax.Objective)}, nil

	case ExactEnumeration:
		res, err := Enumerator{MaxFacilities: opts.MaxExactFacilities}.SolveExact(inst)
		if err != nil {
			return Result{}, err
		}

		return Result{Solution: res.Solution, Algorithm: ExactEnumeration, LowerBound: res.Cost}, nil

	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, opts.Algo)
	}
}
