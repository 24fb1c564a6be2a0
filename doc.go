// SPDX-License-Identifier: MIT

// Package facloc is a toolkit for the Uncapacitated Facility Location Problem:
// open a subset of candidate facilities and assign every client to an open
// one, minimising opening plus connection cost.
//
// Everything lives in four subpackages:
//
//	matrix/  - rectangular dense float matrix + validators (cost tables)
//	uflp/    - instances, cost model, engines and the Solve dispatcher:
//	           • SolveRounding   – LP-duals clustering/rounding
//	           • SolvePrimalDual – Jain–Vazirani primal-dual (3-approx on metric instances)
//	           • Enumerator      – exact optimum for small facility counts
//	lprelax/ - LP relaxation oracle on gonum's simplex (primal + dual)
//	harness/ - concurrent batch runner with timeouts, ratios and Prometheus metrics
//
// Quick example:
//
//	inst, _ := uflp.NewInstance(
//		[][]float64{{0, 100}, {100, 0}}, // C: clients × facilities
//		[]float64{1, 1000},              // f: opening costs
//	)
//	res, _ := uflp.SolvePrimalDual(inst, uflp.DefaultOptions())
//	// res.Open == [0], res.Cost == 101, res.DualValue == 101
//
// Design:
//
//   - Deterministic: every tie is broken by lowest index; no map iteration
//     influences a result.
//   - No logging inside engines: fallback branches surface through
//     Options.OnFallback hooks.
//   - Sentinel errors per package, matched with errors.Is.
//   - Engines keep all state per call and are safe for concurrent use.
package facloc
