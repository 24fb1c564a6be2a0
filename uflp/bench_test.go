// SPDX-License-Identifier: MIT

package uflp_test

import (
	"testing"

	"github.com/katalvlaran/facloc/uflp"
)

// BenchmarkSolvePrimalDual_n60p30 measures event simulation plus pruning.
func BenchmarkSolvePrimalDual_n60p30(b *testing.B) {
	inst := randomMetric(b, 1, 60, 30)
	opts := uflp.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := uflp.SolvePrimalDual(inst, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolveRounding_n60p30 measures clustering on a fixed relaxation.
func BenchmarkSolveRounding_n60p30(b *testing.B) {
	inst := randomMetric(b, 2, 60, 30)
	opts := uflp.DefaultOptions()
	pd, err := uflp.SolvePrimalDual(inst, opts)
	if err != nil {
		b.Fatal(err)
	}
	relax := integralRelaxation(inst, pd.Solution)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = uflp.SolveRounding(inst, relax, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEnumerator_n20p12 measures exhaustive search over 4095 subsets.
func BenchmarkEnumerator_n20p12(b *testing.B) {
	inst := randomMetric(b, 3, 20, 12)
	en := uflp.Enumerator{}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := en.SolveExact(inst); err != nil {
			b.Fatal(err)
		}
	}
}
