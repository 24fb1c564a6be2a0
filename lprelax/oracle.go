// SPDX-License-Identifier: MIT

package lprelax

import (
	"errors"
	"math"

	"github.com/katalvlaran/facloc/uflp"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

const (
	// DefaultTol is the simplex reduced-cost tolerance used when Oracle.Tol is 0.
	DefaultTol = 1e-10

	// gapTol bounds |primal − dual| relative to 1+|primal|.
	gapTol = 1e-6
)

// Oracle implements uflp.LPOracle with gonum's simplex.
// The zero value is ready to use.
type Oracle struct {
	// Tol is passed to lp.Simplex (0 ⇒ DefaultTol).
	Tol float64
}

var _ uflp.LPOracle = Oracle{}

// SolveRelaxation solves the primal and dual programs of inst.
//
// Solver failures are reported through the status, never as errors:
// lp.ErrInfeasible yields StatusInfeasible, any other failure or a duality
// gap above tolerance yields StatusOther. The only error is the validation
// error for a nil or zero-value instance.
//
// X and Y are clamped to [0,1] and V to [0,∞); pairs at +Inf get x = 0.
func (o Oracle) SolveRelaxation(inst *uflp.Instance) (uflp.LPRelaxation, error) {
	if err := uflp.Validate(inst); err != nil {
		return uflp.LPRelaxation{}, err
	}
	tol := o.Tol
	if tol <= 0 {
		tol = DefaultTol
	}

	l := newLayout(inst)

	c, a, b, basis := l.primal(inst)
	zp, x, err := lp.Simplex(c, a, b, tol, basis)
	if err != nil {
		return uflp.LPRelaxation{Status: statusOf(err)}, nil
	}

	c, a, b, basis = l.dual(inst)
	zd, w, err := lp.Simplex(c, a, b, tol, basis)
	if err != nil {
		return uflp.LPRelaxation{Status: statusOf(err)}, nil
	}
	if math.Abs(zp+zd) > gapTol*(1+math.Abs(zp)) {
		return uflp.LPRelaxation{Status: uflp.StatusOther, Objective: zp}, nil
	}

	relax := uflp.LPRelaxation{
		Status:    uflp.StatusOptimal,
		X:         make([][]float64, l.n),
		Y:         make([]float64, l.p),
		V:         make([]float64, l.n),
		Objective: zp,
	}
	for i := range relax.X {
		relax.X[i] = make([]float64, l.p)
		relax.V[i] = math.Max(0, w[i])
	}
	for e, pr := range l.pairs {
		relax.X[pr.i][pr.j] = clamp01(x[e])
	}
	for k, j := range l.facs {
		relax.Y[j] = clamp01(x[len(l.pairs)+k])
	}

	return relax, nil
}

// DualObjective returns Σ V, the dual bound of a relaxation.
func DualObjective(relax uflp.LPRelaxation) float64 {
	return floats.Sum(relax.V)
}

func statusOf(err error) uflp.Status {
	if errors.Is(err, lp.ErrInfeasible) {
		return uflp.StatusInfeasible
	}

	return uflp.StatusOther
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
