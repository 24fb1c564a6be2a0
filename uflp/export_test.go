// SPDX-License-Identifier: MIT

package uflp

// Test-only access to unexported engine internals.

// Prune exposes prune.
var Prune = prune

// ForceConnectAll runs only the exhausted-events fallback of the primal-dual
// engine on a fresh state, as if no event had fired.
func ForceConnectAll(inst *Instance, opts Options) (forced, witness, tentative []int) {
	e := newPDEngine(inst, opts)
	e.forceRemaining()
	witness = make([]int, inst.n)
	for i := range witness {
		witness[i] = e.clients[i].witness
	}

	return e.forced, witness, e.tentative
}
