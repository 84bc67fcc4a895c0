package tabulation_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/knapsack/tabulation"
)

// benchmarkSolve runs Solve on a fixed random instance of n items.
func benchmarkSolve(b *testing.B, n int, capacity int64, opts ...tabulation.Option) {
	rng := rand.New(rand.NewSource(1))
	inst := randomInstance(rng, n)
	inst.Capacity = capacity

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tabulation.Solve(inst, opts...); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_n100_C1000 builds a 101x1001 table.
func BenchmarkSolve_n100_C1000(b *testing.B) { benchmarkSolve(b, 100, 1000) }

// BenchmarkBenefit_TwoRows_n100_C1000 measures the rolling mode.
func BenchmarkBenefit_TwoRows_n100_C1000(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	inst := randomInstance(rng, 100)
	inst.Capacity = 1000

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tabulation.Benefit(inst, tabulation.WithMemoryMode(tabulation.TwoRows)); err != nil {
			b.Fatalf("Benefit failed: %v", err)
		}
	}
}
