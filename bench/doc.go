// Package bench times the knapsack algorithms over repeated iterations.
//
// Run solves one instance N times with one algorithm and reports the average
// wall-clock time together with the solution. Every iteration result is
// cross-validated (model.Check) and must match the first iteration exactly;
// a mismatch is returned as ErrVerification and never averaged away.
//
// Compare runs Run for every algorithm and additionally requires that all of
// them report the same optimal benefit.
//
// Iterations run sequentially by default. WithParallelism(p) spreads them over
// p goroutines (golang.org/x/sync/errgroup); each iteration still allocates its
// own table or cache, so no iteration observes another one's state.
//
// Observability:
//   - Logging via log/slog (WithLogger); silent by default.
//   - Metrics via the Collector interface; NewPrometheusCollector registers
//     client_golang histograms and counters.
package bench
