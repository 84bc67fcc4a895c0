package exhaustive_test

import (
	"testing"

	"github.com/katalvlaran/knapsack/exhaustive"
	"github.com/katalvlaran/knapsack/model"
)

// benchmarkSolve enumerates an n-item instance with deterministic weights.
func benchmarkSolve(b *testing.B, n int) {
	raw := make([][2]int64, n)
	for i := range raw {
		raw[i] = [2]int64{int64(i%7 + 1), int64(i*3%11 + 1)} // predictable spread
	}
	inst := model.MustInstance(int64(2*n), raw)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := exhaustive.Solve(inst); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_n12 enumerates 4096 combinations.
func BenchmarkSolve_n12(b *testing.B) { benchmarkSolve(b, 12) }

// BenchmarkSolve_n18 enumerates 262144 combinations.
func BenchmarkSolve_n18(b *testing.B) { benchmarkSolve(b, 18) }
