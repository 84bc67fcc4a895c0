package bench

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/katalvlaran/knapsack/model"
	"github.com/katalvlaran/knapsack/solver"
	"golang.org/x/sync/errgroup"
)

// Run solves inst Iterations times with algo and returns the average time.
//
// Every iteration is checked with model.Check and compared with the first
// iteration; a failure is counted on the Collector and returned wrapping
// ErrVerification. Solver errors (invalid instance, resource guards) abort
// the run. ctx is checked between iterations.
func Run(ctx context.Context, inst model.Instance, algo solver.Algorithm, opts ...Option) (Result, error) {
	cfg, err := resolve(opts)
	if err != nil {
		return Result{}, err
	}
	if err = inst.Validate(); err != nil {
		return Result{}, err
	}

	log := cfg.Logger.With("algorithm", algo.String())
	log.Debug("benchmark started",
		"items", inst.Len(),
		"capacity", inst.Capacity,
		"iterations", cfg.Iterations,
		"parallelism", cfg.Parallelism,
	)

	sopts := append([]solver.Option{solver.WithAlgorithm(algo)}, cfg.Solver...)
	durations := make([]time.Duration, cfg.Iterations)
	solutions := make([]model.Solution, cfg.Iterations)
	once := func(ctx context.Context, i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := time.Now()
		sol, err := solver.Solve(inst, sopts...)
		durations[i] = time.Since(start)
		cfg.Collector.RecordSolve(algo, durations[i], err)
		if err != nil {
			return err
		}
		if err = model.Check(inst, sol); err != nil {
			cfg.Collector.RecordMismatch(algo)
			return fmt.Errorf("%w: iteration %d: %w", ErrVerification, i, err)
		}
		solutions[i] = sol

		return nil
	}

	if cfg.Parallelism == 1 {
		for i := 0; i < cfg.Iterations; i++ {
			if err = once(ctx, i); err != nil {
				break
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.Parallelism)
		for i := 0; i < cfg.Iterations; i++ {
			i := i
			g.Go(func() error { return once(gctx, i) })
		}
		err = g.Wait()
	}
	if err != nil {
		log.Error("benchmark failed", "error", err)
		return Result{}, err
	}

	for i := 1; i < cfg.Iterations; i++ {
		if !reflect.DeepEqual(solutions[i], solutions[0]) {
			cfg.Collector.RecordMismatch(algo)
			err = fmt.Errorf("%w: iteration %d differs from iteration 0", ErrVerification, i)
			log.Error("benchmark failed", "error", err)
			return Result{}, err
		}
	}

	var total time.Duration
	for _, d := range durations {
		total += d
	}
	res := Result{
		Algorithm:  algo,
		Iterations: cfg.Iterations,
		Total:      total,
		Average:    total / time.Duration(cfg.Iterations),
		Solution:   solutions[0],
	}
	log.Info("benchmark finished",
		"iterations", res.Iterations,
		"avg", res.Average,
		"benefit", res.Solution.Benefit,
		"weight", res.Solution.Weight,
		"selected", len(res.Solution.Items),
	)

	return res, nil
}

// Compare runs every algorithm in solver.Algorithms and returns one Result per
// algorithm in that order. All algorithms must report the same optimal
// benefit, otherwise the error wraps solver.ErrDisagreement.
func Compare(ctx context.Context, inst model.Instance, opts ...Option) ([]Result, error) {
	return CompareAlgorithms(ctx, inst, solver.Algorithms, opts...)
}

// CompareAlgorithms is Compare restricted to algos.
func CompareAlgorithms(ctx context.Context, inst model.Instance, algos []solver.Algorithm, opts ...Option) ([]Result, error) {
	out := make([]Result, 0, len(algos))
	for _, algo := range algos {
		res, err := Run(ctx, inst, algo, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", algo, err)
		}
		if len(out) > 0 && res.Solution.Benefit != out[0].Solution.Benefit {
			return nil, fmt.Errorf("%w: %s=%d, %s=%d", solver.ErrDisagreement,
				out[0].Algorithm, out[0].Solution.Benefit, algo, res.Solution.Benefit)
		}
		out = append(out, res)
	}

	return out, nil
}
