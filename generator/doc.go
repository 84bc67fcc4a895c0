// Package generator produces random knapsack instances for benchmarks and
// property tests.
//
// Goals:
//   - Determinism: the same seed yields the same items on every platform.
//   - Encapsulation: one RNG factory; no time-based sources hidden anywhere.
//   - Independence: Batch derives a separate stream per instance, so instance
//     k does not change when the batch size changes.
//
// Concurrency: a *rand.Rand is not goroutine-safe; every call here creates
// its own.
package generator
