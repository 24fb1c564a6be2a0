// SPDX-License-Identifier: MIT

// Package uflp - Jain–Vazirani primal-dual algorithm (engine B).
//
// Phase 1 simulates continuous dual growth as a discrete-event process:
//   - every unconnected client's α grows at unit rate with simulated time t;
//   - at t = C[i,j] client i starts paying toward facility j (one event per
//     finite pair, sorted by time, client, facility);
//   - a facility opens tentatively when its accumulator reaches f[j]; its
//     unconnected contributors connect with α frozen at the exact crossing time;
//   - an event whose facility is already open connects the client at once
//     (α = C[i,j]) without contributing.
//
// Time never jumps past a crossing: each step advances to the earlier of the
// next relevant event and the earliest projected crossing
// t + (f[j] − acc[j]) / active[j]. After every step all unopened facilities are
// checked in index order, so simultaneous crossings open in a fixed order.
//
// Phase 2 keeps the tentatively opened facilities, in opening order, whose
// contributor sets are disjoint from every kept one (see prune.go). Clients
// are finally assigned to their nearest kept facility.
//
// On metric instances Σα ≤ OPT and the returned cost is ≤ 3·Σα.
//
// Complexity: O(np log np) for the event sort, O(p) per step, O(np²) worst case.
package uflp

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// contributeEvent: client i reaches facility j at time t = C[i,j].
type contributeEvent struct {
	t    float64
	i, j int
}

type clientState struct {
	connected bool
	alpha     float64
	witness   int
	paying    []int // facilities i has joined as a contributor
}

type facilityState struct {
	acc          float64 // accumulated contribution
	accPrev      float64 // acc before the last time step
	open         bool
	order        int   // position in the opening order, -1 while closed
	contributors []int // in join order
	active       int   // unconnected contributors
}

// pdEngine holds the per-call simulation state.
type pdEngine struct {
	inst *Instance
	opts Options
	eps  float64

	t, prevT float64

	clients    []clientState
	facilities []facilityState
	events     []contributeEvent
	tentative  []int // opening order
	waiting    int   // unconnected clients

	forced []int
}

// SolvePrimalDual runs the primal-dual simulation and pruning on inst.
//
// Errors: ErrInvalidInstance family for a nil/zero instance, ErrBadOptions.
// Defensive branches are reported through opts.OnFallback, never as errors.
func SolvePrimalDual(inst *Instance, opts Options) (PrimalDualResult, error) {
	if err := checkInstance(inst); err != nil {
		return PrimalDualResult{}, err
	}
	if err := validateOptions(opts); err != nil {
		return PrimalDualResult{}, err
	}

	e := newPDEngine(inst, opts)
	e.simulate()
	e.forceRemaining()

	contributors := e.contributorSets()
	kept := prune(e.tentative, contributors, inst.n)
	if len(kept) == 0 {
		j := cheapestOverall(inst)
		kept = []int{j}
		opts.fallback(FallbackEvent{Kind: FallbackEmptyPrune, Client: -1, Facility: j, Time: e.t})
	}

	var (
		n          = inst.n
		isOpen     = make([]bool, inst.p)
		assignment = make([]int, n)
		alpha      = make([]float64, n)
		witness    = make([]int, n)
		readmitted []int
		i, j       int
	)
	for _, j = range kept {
		isOpen[j] = true
	}
	for i = 0; i < n; i++ {
		alpha[i] = e.clients[i].alpha
		witness[i] = e.clients[i].witness
		if nearestOpen(inst, isOpen, i) >= 0 {
			continue
		}
		// Only reachable through +Inf entries: no kept facility serves i.
		j = witness[i]
		if !isOpen[j] {
			isOpen[j] = true
			readmitted = append(readmitted, j)
			opts.fallback(FallbackEvent{Kind: FallbackReadmit, Client: i, Facility: j, Time: alpha[i]})
		}
	}
	for i = 0; i < n; i++ {
		assignment[i] = nearestOpen(inst, isOpen, i)
	}

	sol, err := finish(inst, isOpen, assignment)
	if err != nil {
		return PrimalDualResult{}, err
	}
	tentative := make([]int, len(e.tentative))
	copy(tentative, e.tentative)

	return PrimalDualResult{
		Solution:     sol,
		DualValue:    round1e9(floats.Sum(alpha)),
		Alpha:        alpha,
		Witness:      witness,
		Tentative:    tentative,
		Contributors: contributors,
		Forced:       e.forced,
		Readmitted:   readmitted,
	}, nil
}

// newPDEngine builds fresh per-call state and the sorted event list.
func newPDEngine(inst *Instance, opts Options) *pdEngine {
	e := &pdEngine{
		inst:       inst,
		opts:       opts,
		eps:        opts.ThresholdEps,
		clients:    make([]clientState, inst.n),
		facilities: make([]facilityState, inst.p),
		events:     make([]contributeEvent, 0, inst.n*inst.p),
		waiting:    inst.n,
	}
	var (
		i, j int
		c    float64
	)
	for i = 0; i < inst.n; i++ {
		e.clients[i].witness = -1
		for j = 0; j < inst.p; j++ {
			c = inst.c[i*inst.p+j]
			if !math.IsInf(c, 1) {
				e.events = append(e.events, contributeEvent{t: c, i: i, j: j})
			}
		}
	}
	for j = 0; j < inst.p; j++ {
		e.facilities[j].order = -1
	}
	sort.Slice(e.events, func(a, b int) bool {
		ea, eb := e.events[a], e.events[b]
		if ea.t != eb.t {
			return ea.t < eb.t
		}
		if ea.i != eb.i {
			return ea.i < eb.i
		}

		return ea.j < eb.j
	})

	return e
}

// simulate runs phase 1 until every client is connected or nothing can happen.
func (e *pdEngine) simulate() {
	// Free facilities are tight at t=0.
	e.openTight()

	var (
		k    int
		next float64
		ev   contributeEvent
	)
	for e.waiting > 0 {
		for k < len(e.events) && e.clients[e.events[k].i].connected {
			k++ // stale
		}
		next = math.Inf(1)
		if k < len(e.events) {
			next = e.events[k].t
		}
		cross, jc := e.earliestCrossing()
		if jc < 0 && k == len(e.events) {
			return
		}

		if jc >= 0 && cross <= next {
			e.advance(cross)
			// Snap the projected facility so rounding cannot leave it a hair short.
			e.facilities[jc].acc = e.inst.f[jc]
			e.openTight()
			continue
		}

		e.advance(next)
		e.openTight()

		ev = e.events[k]
		k++
		if e.clients[ev.i].connected {
			continue
		}
		if e.facilities[ev.j].open {
			e.connect(ev.i, ev.j, e.t)
			continue
		}
		fs := &e.facilities[ev.j]
		fs.contributors = append(fs.contributors, ev.i)
		fs.active++
		e.clients[ev.i].paying = append(e.clients[ev.i].paying, ev.j)
	}
}

// earliestCrossing returns the earliest projected opening time among unopened
// facilities with active contributors, ties → lowest index; (+Inf, -1) if none.
func (e *pdEngine) earliestCrossing() (float64, int) {
	var (
		best  = math.Inf(1)
		bestJ = -1
		tau   float64
		j     int
	)
	for j = range e.facilities {
		fs := &e.facilities[j]
		if fs.open || fs.active == 0 {
			continue
		}
		tau = e.t + (e.inst.f[j]-fs.acc)/float64(fs.active)
		if tau < e.t {
			tau = e.t
		}
		if tau < best {
			best, bestJ = tau, j
		}
	}

	return best, bestJ
}

// advance moves simulated time to `to`, growing every unopened accumulator by
// active·Δt.
func (e *pdEngine) advance(to float64) {
	if to < e.t {
		to = e.t
	}
	dt := to - e.t
	for j := range e.facilities {
		fs := &e.facilities[j]
		if fs.open {
			continue
		}
		fs.accPrev = fs.acc
		fs.acc += float64(fs.active) * dt
	}
	e.prevT, e.t = e.t, to
}

// openTight opens, in index order, every unopened facility with acc ≥ f − eps.
func (e *pdEngine) openTight() {
	var (
		f   float64
		tau float64
	)
	for j := range e.facilities {
		fs := &e.facilities[j]
		f = e.inst.f[j]
		if fs.open || fs.acc < f-e.eps {
			continue
		}
		tau = e.t
		if fs.active > 0 {
			// Exact crossing inside the last step.
			tau = e.prevT + (f-fs.accPrev)/float64(fs.active)
			tau = math.Max(e.prevT, math.Min(tau, e.t))
		}
		e.openFacility(j, tau)
	}
}

// openFacility marks j open at time tau and connects its waiting contributors.
func (e *pdEngine) openFacility(j int, tau float64) {
	fs := &e.facilities[j]
	fs.open = true
	fs.acc = e.inst.f[j]
	fs.order = len(e.tentative)
	e.tentative = append(e.tentative, j)
	for _, i := range fs.contributors {
		if !e.clients[i].connected {
			e.connect(i, j, tau)
		}
	}
}

// connect freezes client i at alpha with witness j and stops its payments.
func (e *pdEngine) connect(i, j int, alpha float64) {
	cs := &e.clients[i]
	cs.connected = true
	cs.alpha = alpha
	cs.witness = j
	e.waiting--
	for _, jj := range cs.paying {
		e.facilities[jj].active--
	}
}

// forceRemaining connects clients left over after the events ran out to the
// nearest tentatively opened facility (ties → earlier opening), opening the
// client's cheapest individual facility if none is open yet.
func (e *pdEngine) forceRemaining() {
	if e.waiting == 0 {
		return
	}
	var (
		i, j, best int
		c, bestC   float64
	)
	for i = 0; i < e.inst.n; i++ {
		if e.clients[i].connected {
			continue
		}
		best, bestC = -1, math.Inf(1)
		for _, j = range e.tentative {
			c = e.inst.c[i*e.inst.p+j]
			if best < 0 || c < bestC {
				best, bestC = j, c
			}
		}
		if best < 0 {
			best = cheapestSingle(e.inst, i)
			e.openFacility(best, e.t)
		}
		e.connect(i, best, e.t)
		e.forced = append(e.forced, i)
		e.opts.fallback(FallbackEvent{Kind: FallbackForcedConnect, Client: i, Facility: best, Time: e.t})
	}
}

// contributorSets returns per-facility ascending copies of the contributor lists.
func (e *pdEngine) contributorSets() [][]int {
	out := make([][]int, len(e.facilities))
	for j := range e.facilities {
		out[j] = append([]int(nil), e.facilities[j].contributors...)
		sort.Ints(out[j])
	}

	return out
}

// cheapestOverall returns argmin_j f[j] + Σ_i C[i,j], ties → lowest index.
func cheapestOverall(inst *Instance) int {
	var (
		best  = -1
		bestV = math.Inf(1)
		v     float64
		i, j  int
	)
	for j = 0; j < inst.p; j++ {
		v = inst.f[j]
		for i = 0; i < inst.n; i++ {
			v += inst.c[i*inst.p+j]
		}
		if best < 0 || v < bestV {
			best, bestV = j, v
		}
	}

	return best
}
