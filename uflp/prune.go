// SPDX-License-Identifier: MIT

package uflp

// prune walks tentative (opening order) and keeps a facility iff none of its
// contributors is already claimed by a kept facility. The kept facilities form
// an independent set of the conflict graph, where two facilities are adjacent
// iff their contributor sets intersect.
// Complexity: O(Σ|contributors|).
func prune(tentative []int, contributors [][]int, n int) []int {
	var (
		claimed = make([]bool, n)
		kept    = make([]int, 0, len(tentative))
		free    bool
	)
	for _, j := range tentative {
		free = true
		for _, i := range contributors[j] {
			if claimed[i] {
				free = false
				break
			}
		}
		if !free {
			continue
		}
		for _, i := range contributors[j] {
			claimed[i] = true
		}
		kept = append(kept, j)
	}

	return kept
}

// Independent reports whether no two facilities in open share a contributor.
// Indices outside contributors are treated as having none.
func Independent(contributors [][]int, open []int) bool {
	owner := make(map[int]int)
	for _, j := range open {
		if j < 0 || j >= len(contributors) {
			continue
		}
		for _, i := range contributors[j] {
			if o, ok := owner[i]; ok && o != j {
				return false
			}
			owner[i] = j
		}
	}

	return true
}
