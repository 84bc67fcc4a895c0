package tabulation

import (
	"github.com/katalvlaran/knapsack/model"
)

// Solve builds the full table and backtracks through it.
//
// The result always satisfies model.Check for inst. Capacity 0 yields an
// all-zero table and an empty selection; items heavier than the capacity
// never change a row and are never selected.
//
// Errors: inst.Validate errors, ErrBacktrackNeedsTable (TwoRows requested),
// ErrBadMaxCells, ErrTableTooLarge.
func Solve(inst model.Instance, opts ...Option) (model.Solution, error) {
	cfg := resolve(opts)
	if cfg.MemoryMode != FullTable {
		return model.Solution{}, ErrBacktrackNeedsTable
	}
	t, err := Build(inst, opts...)
	if err != nil {
		return model.Solution{}, err
	}
	picked, _, err := Backtrack(t, inst.Items)
	if err != nil {
		return model.Solution{}, err
	}

	return model.NewSolution(t.Benefit(), picked), nil
}

// Benefit returns only the optimal benefit. In TwoRows mode it keeps two rows
// of capacity+1 cells instead of the whole table.
//
// Errors: inst.Validate errors, ErrBadMaxCells, ErrTableTooLarge.
func Benefit(inst model.Instance, opts ...Option) (int64, error) {
	cfg := resolve(opts)
	if cfg.MemoryMode == FullTable {
		t, err := Build(inst, opts...)
		if err != nil {
			return 0, err
		}

		return t.Benefit(), nil
	}

	if err := inst.Validate(); err != nil {
		return 0, err
	}
	_, cols, err := shape(inst, cfg.MaxCells, 2)
	if err != nil {
		return 0, err
	}
	prev := make([]int64, cols)
	cur := make([]int64, cols)
	for _, it := range inst.Items {
		fillRow(prev, cur, it)
		prev, cur = cur, prev
	}

	return prev[cols-1], nil
}
