// SPDX-License-Identifier: MIT

package uflp_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/facloc/uflp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// skewedOracle returns the known optimal relaxation of twoByTwoSkewed.
var skewedOracle = uflp.LPOracleFunc(func(*uflp.Instance) (uflp.LPRelaxation, error) {
	return uflp.LPRelaxation{
		Status:    uflp.StatusOptimal,
		X:         [][]float64{{1, 0}, {1, 0}},
		Y:         []float64{1, 0},
		V:         []float64{1, 100},
		Objective: 101,
	}, nil
})

func TestSolve_Dispatch(t *testing.T) {
	inst := twoByTwoSkewed(t)

	cases := []struct {
		algo  uflp.Algorithm
		lower float64
	}{
		{uflp.PrimalDual, 101},
		{uflp.ClusterRounding, 101},
		{uflp.ExactEnumeration, 101},
	}
	for _, tc := range cases {
		t.Run(tc.algo.String(), func(t *testing.T) {
			opts := uflp.DefaultOptions()
			opts.Algo = tc.algo
			opts.Oracle = skewedOracle

			res, err := uflp.Solve(inst, opts)
			require.NoError(t, err)
			assert.Equal(t, tc.algo, res.Algorithm)
			assert.Equal(t, []int{0}, res.Open)
			assert.Equal(t, 101.0, res.Cost)
			assert.Equal(t, tc.lower, res.LowerBound)
		})
	}
}

func TestSolve_Errors(t *testing.T) {
	inst := twoByTwoSkewed(t)

	opts := uflp.DefaultOptions()
	opts.Algo = uflp.Algorithm(99)
	_, err := uflp.Solve(inst, opts)
	require.ErrorIs(t, err, uflp.ErrUnsupportedAlgorithm)

	opts = uflp.DefaultOptions()
	opts.Algo = uflp.ClusterRounding
	_, err = uflp.Solve(inst, opts)
	require.ErrorIs(t, err, uflp.ErrNoOracle)

	boom := errors.New("solver crashed")
	opts.Oracle = uflp.LPOracleFunc(func(*uflp.Instance) (uflp.LPRelaxation, error) {
		return uflp.LPRelaxation{}, boom
	})
	_, err = uflp.Solve(inst, opts)
	require.ErrorIs(t, err, uflp.ErrOracle)
	require.ErrorIs(t, err, boom)

	opts.Oracle = uflp.LPOracleFunc(func(*uflp.Instance) (uflp.LPRelaxation, error) {
		return uflp.LPRelaxation{Status: uflp.StatusInfeasible}, nil
	})
	_, err = uflp.Solve(inst, opts)
	require.ErrorIs(t, err, uflp.ErrOracle)

	opts = uflp.DefaultOptions()
	opts.Algo = uflp.ExactEnumeration
	opts.MaxExactFacilities = 1
	_, err = uflp.Solve(inst, opts)
	require.ErrorIs(t, err, uflp.ErrTooLarge)

	opts.MaxExactFacilities = 0
	_, err = uflp.Solve(inst, opts)
	require.ErrorIs(t, err, uflp.ErrBadOptions)

	_, err = uflp.Solve(nil, uflp.DefaultOptions())
	require.ErrorIs(t, err, uflp.ErrNilInstance)
}

// TestSolve_ZeroOptionsRejected: the zero Options value has MaxExactFacilities=0.
func TestSolve_ZeroOptionsRejected(t *testing.T) {
	_, err := uflp.Solve(twoByTwoSymmetric(t), uflp.Options{})
	require.ErrorIs(t, err, uflp.ErrBadOptions)
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "primal-dual", uflp.PrimalDual.String())
	assert.Equal(t, "cluster-rounding", uflp.ClusterRounding.String())
	assert.Equal(t, "exact", uflp.ExactEnumeration.String())
	assert.Equal(t, "Algorithm(7)", uflp.Algorithm(7).String())
	assert.Equal(t, "optimal", uflp.StatusOptimal.String())
	assert.Equal(t, "infeasible", uflp.StatusInfeasible.String())
	assert.Equal(t, "other", uflp.StatusOther.String())
	assert.Equal(t, "readmit", uflp.FallbackReadmit.String())
	assert.Equal(t, "forced-connect", uflp.FallbackForcedConnect.String())
}
