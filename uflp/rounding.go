// SPDX-License-Identifier: MIT

// Package uflp - LP-duals clustering/rounding (engine A).
//
// Algorithm:
//  1. While unassigned clients remain, pick the unassigned client i* with the
//     smallest dual V[i] (ties → lowest index).
//  2. linked(i*) = { j : X[i*][j] > LinkEps }.
//  3. The cluster is i* plus every unassigned client with X[i][j] > LinkEps
//     for some j in linked(i*).
//  4. Open argmin f[j] over linked(i*) (ties → lowest index) and assign the
//     cluster to it. An empty linked set serves i* by its cheapest individual
//     facility argmin_j C[i*,j]+f[j].
//  5. Reassign every client to its nearest opened facility.
//
// Each iteration assigns at least i*, so the loop ends after ≤ n iterations.
// Complexity: O(n·p) per iteration, O(n²·p) worst case.
package uflp

// SolveRounding runs the clustering heuristic on inst with the given LP relaxation.
//
// Errors:
//   - ErrInvalidInstance family for a nil/zero instance;
//   - ErrBadOptions for out-of-range tolerances;
//   - ErrOracle when relax is not optimal or has the wrong shape.
func SolveRounding(inst *Instance, relax LPRelaxation, opts Options) (RoundingResult, error) {
	if err := checkInstance(inst); err != nil {
		return RoundingResult{}, err
	}
	if err := validateOptions(opts); err != nil {
		return RoundingResult{}, err
	}
	if err := validateRelaxation(inst, relax); err != nil {
		return RoundingResult{}, err
	}

	var (
		n          = inst.n
		p          = inst.p
		eps        = opts.LinkEps
		assigned   = make([]bool, n)
		assignment = make([]int, n)
		isOpen     = make([]bool, p)
		linked     = make([]bool, p)
		left       = n
		res        RoundingResult
		i, j, c    int
	)

	for left > 0 {
		// Center: smallest dual among unassigned clients.
		c = -1
		for i = 0; i < n; i++ {
			if !assigned[i] && (c < 0 || relax.V[i] < relax.V[c]) {
				c = i
			}
		}

		var (
			target  = -1
			hasLink bool
		)
		for j = 0; j < p; j++ {
			linked[j] = relax.X[c][j] > eps
			if linked[j] {
				hasLink = true
				if target < 0 || inst.f[j] < inst.f[target] {
					target = j
				}
			}
		}

		var members []int
		if !hasLink {
			// Degenerate LP row: serve the center alone.
			target = cheapestSingle(inst, c)
			members = []int{c}
			opts.fallback(FallbackEvent{Kind: FallbackUnlinkedCluster, Client: c, Facility: target})
		} else {
			for i = 0; i < n; i++ {
				if assigned[i] {
					continue
				}
				if i == c || sharesLink(relax.X[i], linked, eps) {
					members = append(members, i)
				}
			}
		}

		isOpen[target] = true
		for _, i = range members {
			assigned[i] = true
			assignment[i] = target
		}
		left -= len(members)
		res.Centers = append(res.Centers, c)
		res.Clusters = append(res.Clusters, members)
	}

	// Nearest-open reassignment; open a private facility for anyone left at +Inf.
	for i = 0; i < n; i++ {
		j = nearestOpen(inst, isOpen, i)
		if j < 0 {
			j = cheapestSingle(inst, i)
			isOpen[j] = true
			opts.fallback(FallbackEvent{Kind: FallbackUnreachable, Client: i, Facility: j})
		}
		assignment[i] = j
	}
	// Facilities opened by the fallback above may be nearer for earlier clients.
	for i = 0; i < n; i++ {
		assignment[i] = nearestOpen(inst, isOpen, i)
	}

	sol, err := finish(inst, isOpen, assignment)
	if err != nil {
		return RoundingResult{}, err
	}
	res.Solution = sol

	return res, nil
}

// sharesLink reports whether row has X > eps on any linked facility.
func sharesLink(row []float64, linked []bool, eps float64) bool {
	for j, ok := range linked {
		if ok && row[j] > eps {
			return true
		}
	}

	return false
}
