package bench

import (
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/knapsack/model"
	"github.com/katalvlaran/knapsack/solver"
)

// Sentinel errors returned by the benchmark runner.
var (
	// ErrBadIterations indicates Iterations < 1.
	ErrBadIterations = errors.New("bench: iterations must be positive")

	// ErrBadParallelism indicates Parallelism < 1.
	ErrBadParallelism = errors.New("bench: parallelism must be positive")

	// ErrVerification indicates a solution that failed cross-validation or
	// differs between iterations of the same deterministic algorithm.
	ErrVerification = errors.New("bench: solution failed verification")
)

// Result is the outcome of Run.
//
//   - Total   — summed solve time over all iterations.
//   - Average — Total / Iterations.
type Result struct {
	Algorithm  solver.Algorithm
	Iterations int
	Total      time.Duration
	Average    time.Duration
	Solution   model.Solution
}

// Options configures Run and Compare.
//
//   - Iterations  — number of solves per algorithm (default 1).
//   - Parallelism — concurrent iterations (default 1, sequential).
//   - Logger      — structured logger; nil means silent.
//   - Collector   — metrics sink; nil means NoopCollector.
//   - Solver      — options forwarded to solver.Solve (the algorithm is set by Run).
type Options struct {
	Iterations  int
	Parallelism int
	Logger      *slog.Logger
	Collector   Collector
	Solver      []solver.Option
}

// Option represents a functional option for configuring the runner.
type Option func(*Options)

// WithIterations sets the number of solves per algorithm.
func WithIterations(n int) Option {
	return func(o *Options) {
		o.Iterations = n
	}
}

// WithParallelism runs up to p iterations concurrently.
func WithParallelism(p int) Option {
	return func(o *Options) {
		o.Parallelism = p
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithCollector sets the metrics sink.
func WithCollector(c Collector) Option {
	return func(o *Options) {
		o.Collector = c
	}
}

// WithSolverOptions appends options for solver.Solve.
func WithSolverOptions(opts ...solver.Option) Option {
	return func(o *Options) {
		o.Solver = append(o.Solver, opts...)
	}
}

// DefaultOptions returns one sequential, silent iteration.
func DefaultOptions() Options {
	return Options{
		Iterations:  1,
		Parallelism: 1,
		Logger:      NoopLogger(),
		Collector:   NoopCollector{},
	}
}

func resolve(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Iterations < 1 {
		return Options{}, ErrBadIterations
	}
	if cfg.Parallelism < 1 {
		return Options{}, ErrBadParallelism
	}
	if cfg.Logger == nil {
		cfg.Logger = NoopLogger()
	}
	if cfg.Collector == nil {
		cfg.Collector = NoopCollector{}
	}

	return cfg, nil
}
