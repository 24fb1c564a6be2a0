// SPDX-License-Identifier: MIT

// Package uflp provides approximation engines for the Uncapacitated Facility
// Location Problem (UFLP).
//
// Given n clients, p candidate facilities, a connection-cost matrix C (n×p)
// and opening costs f (length p), a solution opens a subset of facilities and
// assigns every client to one opened facility; its cost is
//
//	Σ f[j] over opened j  +  Σ C[i, assignment[i]] over all clients i.
//
// Engines:
//
//   - SolveRounding - deterministic greedy clustering driven by the duals of
//     the LP relaxation (supplied by an LPOracle, see package lprelax).
//     Centers are picked by ascending dual value; each cluster opens its
//     cheapest fractionally-linked facility.
//
//   - SolvePrimalDual - the Jain–Vazirani primal-dual algorithm as a
//     discrete-event simulation of continuous dual growth, followed by
//     independent-set pruning of the tentatively opened facilities.
//     On metric instances the cost is at most 3× the returned dual value,
//     which itself lower-bounds the optimum.
//
//   - Enumerator - exact optimum by exhaustive subset enumeration, for small p.
//
// Solve dispatches between them from Options.Algo.
//
// Instances:
//
//   - Built with NewInstance / NewInstanceFromMatrix; validated once and
//     immutable afterwards.
//   - A connection cost of math.Inf(1) means "no connection". Every client
//     needs at least one finite-cost facility.
//   - The triangle inequality is assumed for the approximation bound but not
//     enforced; IsMetric reports it.
//
// Determinism & concurrency:
//
//   - Every engine is a pure function of (instance, options). Ties are broken
//     by lowest index; no map iteration influences results.
//   - Engines keep all state local to the call and may run concurrently on
//     any instances, including the same one.
//
// Fallback branches (events exhausted with unconnected clients, empty pruning
// result, unreachable clients) never fail a run; they are reported through
// Options.OnFallback.
package uflp
