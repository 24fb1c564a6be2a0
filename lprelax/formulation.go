// SPDX-License-Identifier: MIT

package lprelax

import (
	"math"

	"github.com/katalvlaran/facloc/uflp"
	"gonum.org/v1/gonum/mat"
)

// pair is a finite (client, facility) connection.
type pair struct{ i, j int }

// layout indexes the finite pairs and reachable facilities of an instance.
type layout struct {
	n, p   int
	pairs  []pair
	cost   []float64 // cost[e] = C[pairs[e]]
	facs   []int     // reachable facilities, ascending
	facIdx []int     // facIdx[j] = position in facs, or -1
	first  []int     // first[i] = cheapest finite pair index of client i (C+f, lowest j)
}

func newLayout(inst *uflp.Instance) *layout {
	var (
		n = inst.Clients()
		p = inst.Facilities()
		l = &layout{n: n, p: p, facIdx: make([]int, p), first: make([]int, n)}
		c float64
	)
	for j := range l.facIdx {
		l.facIdx[j] = -1
	}
	reach := make([]bool, p)
	for i := 0; i < n; i++ {
		l.first[i] = -1
		best := math.Inf(1)
		for j := 0; j < p; j++ {
			if c = inst.ConnectionCost(i, j); math.IsInf(c, 1) {
				continue
			}
			if v := c + inst.OpeningCost(j); l.first[i] < 0 || v < best {
				l.first[i], best = len(l.pairs), v
			}
			l.pairs = append(l.pairs, pair{i, j})
			l.cost = append(l.cost, c)
			reach[j] = true
		}
	}
	for j := 0; j < p; j++ {
		if reach[j] {
			l.facIdx[j] = len(l.facs)
			l.facs = append(l.facs, j)
		}
	}

	return l
}

// primal builds the primal program and a feasible starting basis.
//
// Columns: x[e] at e, y[k] at E+k, s[e] at E+F+e.
// Rows:    demand i at i, linking e at n+e.
//
// Basis: each client's cheapest pair x (=1), y for every facility used by
// some client (=1, pinned by the row of its first such client), and every
// remaining slack (=0 or 1).
func (l *layout) primal(inst *uflp.Instance) (c []float64, a *mat.Dense, b []float64, basis []int) {
	var (
		ne   = len(l.pairs)
		nf   = len(l.facs)
		rows = l.n + ne
		cols = 2*ne + nf
	)
	c = make([]float64, cols)
	b = make([]float64, rows)
	a = mat.NewDense(rows, cols, nil)
	for e, pr := range l.pairs {
		c[e] = l.cost[e]
		a.Set(pr.i, e, 1)
		a.Set(l.n+e, e, 1)
		a.Set(l.n+e, ne+l.facIdx[pr.j], -1)
		a.Set(l.n+e, ne+nf+e, 1)
	}
	for k, j := range l.facs {
		c[ne+k] = inst.OpeningCost(j)
	}
	for i := 0; i < l.n; i++ {
		b[i] = 1
	}

	pinned := make([]bool, nf) // facility already has its y in the basis
	skip := make([]bool, ne)   // linking row whose slack leaves the basis
	basis = make([]int, 0, rows)
	for i := 0; i < l.n; i++ {
		e := l.first[i]
		basis = append(basis, e)
		if k := l.facIdx[l.pairs[e].j]; !pinned[k] {
			pinned[k] = true
			skip[e] = true
			basis = append(basis, ne+k)
		}
	}
	for e := 0; e < ne; e++ {
		if !skip[e] {
			basis = append(basis, ne+nf+e)
		}
	}

	return c, a, b, basis
}

// dual builds the dual program (as a minimisation of −Σv) and its slack basis.
//
// Columns: v[i] at i, w[e] at n+e, a[e] at n+E+e, b[k] at n+2E+k.
// Rows:    pair e at e, facility k at E+k.
func (l *layout) dual(inst *uflp.Instance) (c []float64, a *mat.Dense, b []float64, basis []int) {
	var (
		ne   = len(l.pairs)
		nf   = len(l.facs)
		rows = ne + nf
		cols = l.n + 2*ne + nf
	)
	c = make([]float64, cols)
	b = make([]float64, rows)
	a = mat.NewDense(rows, cols, nil)
	for i := 0; i < l.n; i++ {
		c[i] = -1
	}
	for e, pr := range l.pairs {
		a.Set(e, pr.i, 1)
		a.Set(e, l.n+e, -1)
		a.Set(e, l.n+ne+e, 1)
		a.Set(ne+l.facIdx[pr.j], l.n+e, 1)
		b[e] = l.cost[e]
	}
	for k, j := range l.facs {
		a.Set(ne+k, l.n+2*ne+k, 1)
		b[ne+k] = inst.OpeningCost(j)
	}
	basis = make([]int, rows)
	for r := range basis {
		basis[r] = l.n + ne + r
	}

	return c, a, b, basis
}
