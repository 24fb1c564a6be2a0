// SPDX-License-Identifier: MIT

// Package lprelax solves the LP relaxation of an uncapacitated facility
// location instance and implements uflp.LPOracle.
//
// Two standard-form programs are solved with gonum's simplex
// (gonum.org/v1/gonum/optimize/convex/lp), each from an explicit feasible basis:
//
// Primal, over finite pairs E and facilities F reachable by some client:
//
//	min  Σ_E C[i,j]·x[i,j] + Σ_F f[j]·y[j]
//	s.t. Σ_j x[i,j] = 1                  ∀ i
//	     x[i,j] − y[j] + s[i,j] = 0      ∀ (i,j) ∈ E
//	     x, y, s ≥ 0
//
// Dual:
//
//	max  Σ v[i]
//	s.t. v[i] − w[i,j] ≤ C[i,j]          ∀ (i,j) ∈ E
//	     Σ_i w[i,j] ≤ f[j]               ∀ j ∈ F
//	     v, w ≥ 0
//
// V in the returned relaxation is the optimal v. The status is StatusOptimal
// only when both programs solve and their objectives agree within
// 1e-6·(1+|z|).
package lprelax
