package solver

import (
	"fmt"

	"github.com/katalvlaran/knapsack/exhaustive"
	"github.com/katalvlaran/knapsack/memo"
	"github.com/katalvlaran/knapsack/model"
	"github.com/katalvlaran/knapsack/tabulation"
)

// Solve validates inst and routes it to the configured algorithm.
//
// Errors: model validation sentinels, ErrUnsupportedAlgorithm, and the
// resource guards of the selected algorithm (exhaustive.ErrTooManyItems,
// tabulation.ErrTableTooLarge).
func Solve(inst model.Instance, opts ...Option) (model.Solution, error) {
	return solveWith(inst, NewOptions(opts...))
}

func solveWith(inst model.Instance, cfg Options) (model.Solution, error) {
	if err := inst.Validate(); err != nil {
		return model.Solution{}, err
	}

	switch cfg.Algo {
	case Exhaustive:
		return exhaustive.Solve(inst, exhaustive.WithMaxItems(cfg.ExhaustiveMaxItems))
	case Tabulation:
		return tabulation.Solve(inst, cfg.Tabulation...)
	case Recursive:
		return memo.Solve(inst, cfg.Memo...)
	default:
		return model.Solution{}, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, cfg.Algo)
	}
}

// Agreement is the outcome of CrossCheck.
//
//   - Benefit   — the optimal benefit every algorithm agreed on.
//   - Solutions — each algorithm's own solution; selected sets may differ
//     because of the tie-break rules.
//   - Skipped   — algorithms not run (Exhaustive above its item guard).
type Agreement struct {
	Benefit   int64
	Solutions map[Algorithm]model.Solution
	Skipped   []Algorithm
}

// CrossCheck runs every applicable algorithm on inst, checks each Solution
// with model.Check and requires identical optimal benefits.
//
// Exhaustive is skipped (listed in Skipped) when inst has more items than
// ExhaustiveMaxItems. Any invariant violation is returned wrapping
// model.ErrInconsistent; any benefit mismatch wraps ErrDisagreement.
func CrossCheck(inst model.Instance, opts ...Option) (Agreement, error) {
	cfg := NewOptions(opts...)
	if err := inst.Validate(); err != nil {
		return Agreement{}, err
	}

	ag := Agreement{Solutions: make(map[Algorithm]model.Solution, len(Algorithms))}
	var first Algorithm
	for _, algo := range Algorithms {
		if algo == Exhaustive && inst.Len() > min(cfg.ExhaustiveMaxItems, exhaustive.HardMaxItems) {
			ag.Skipped = append(ag.Skipped, algo)
			continue
		}
		run := cfg
		run.Algo = algo
		sol, err := solveWith(inst, run)
		if err != nil {
			return Agreement{}, fmt.Errorf("%s: %w", algo, err)
		}
		if err = model.Check(inst, sol); err != nil {
			return Agreement{}, fmt.Errorf("%s: %w", algo, err)
		}
		if first == 0 {
			first, ag.Benefit = algo, sol.Benefit
		} else if sol.Benefit != ag.Benefit {
			return Agreement{}, fmt.Errorf("%w: %s=%d, %s=%d",
				ErrDisagreement, first, ag.Benefit, algo, sol.Benefit)
		}
		ag.Solutions[algo] = sol
	}

	return ag, nil
}
