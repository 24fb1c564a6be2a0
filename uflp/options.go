// SPDX-License-Identifier: MIT

package uflp

import "fmt"

const (
	// DefaultLinkEps is the LP-linkage tolerance: x[i,j] > LinkEps links i to j.
	DefaultLinkEps = 1e-6

	// DefaultThresholdEps is the accumulator tolerance: a facility is tight once
	// its accumulated contribution reaches f[j] − ThresholdEps.
	DefaultThresholdEps = 1e-9

	// DefaultMaxExactFacilities caps exact enumeration (2^p subsets).
	DefaultMaxExactFacilities = 20
)

// FallbackKind names a fallback branch taken by an engine.
type FallbackKind int

const (
	// FallbackUnlinkedCluster: a rounding center had no facility with x > LinkEps;
	// it was served by its cheapest individual facility instead.
	FallbackUnlinkedCluster FallbackKind = iota

	// FallbackUnreachable: after rounding, a client had no finite-cost opened
	// facility; its cheapest individual facility was opened.
	FallbackUnreachable

	// FallbackForcedConnect: the event list ran out with the client unconnected.
	FallbackForcedConnect

	// FallbackEmptyPrune: pruning kept no facility.
	FallbackEmptyPrune

	// FallbackReadmit: a client had no finite-cost kept facility; its witness was reopened.
	FallbackReadmit
)

// String implements fmt.Stringer.
func (k FallbackKind) String() string {
	switch k {
	case FallbackUnlinkedCluster:
		return "unlinked-cluster"
	case FallbackUnreachable:
		return "unreachable"
	case FallbackForcedConnect:
		return "forced-connect"
	case FallbackEmptyPrune:
		return "empty-prune"
	case FallbackReadmit:
		return "readmit"
	default:
		return fmt.Sprintf("FallbackKind(%d)", int(k))
	}
}

// FallbackEvent describes one fallback branch. Client is -1 when the branch
// is not tied to a client; Time is the simulated time for primal-dual branches.
type FallbackEvent struct {
	Kind     FallbackKind
	Client   int
	Facility int
	Time     float64
}

// Options configures the engines and the Solve dispatcher.
//
// Algo               – engine selected by Solve (default PrimalDual).
// Oracle             – LP relaxation provider; required for ClusterRounding.
// LinkEps            – LP linkage tolerance (default 1e-6, must be ≥ 0).
// ThresholdEps       – accumulator threshold tolerance (default 1e-9, must be ≥ 0).
// MaxExactFacilities – upper bound on p for ExactEnumeration (default 20, must be > 0).
// OnFallback         – optional hook invoked for every fallback branch taken.
type Options struct {
	Algo               Algorithm
	Oracle             LPOracle
	LinkEps            float64
	ThresholdEps       float64
	MaxExactFacilities int
	OnFallback         func(FallbackEvent)
}

// DefaultOptions returns Options with the documented defaults and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Algo:               PrimalDual,
		LinkEps:            DefaultLinkEps,
		ThresholdEps:       DefaultThresholdEps,
		MaxExactFacilities: DefaultMaxExactFacilities,
		OnFallback:         func(FallbackEvent) {},
	}
}

// fallback forwards ev to OnFallback when set.
func (o Options) fallback(ev FallbackEvent) {
	if o.OnFallback != nil {
		o.OnFallback(ev)
	}
}
