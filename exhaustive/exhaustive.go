package exhaustive

import (
	"fmt"

	"github.com/katalvlaran/knapsack/model"
)

// Solve returns an optimal Solution by checking all 2ⁿ combinations.
//
// Algorithm:
//  1. For mask = 0 … 2ⁿ−1, item k (0-based) is included iff bit n−1−k is set.
//  2. Sum weight and benefit of the included items.
//  3. If weight ≤ capacity and benefit > best, remember (benefit, mask, weight).
//
// The empty combination (mask 0) is always feasible, so an instance with no
// items or no fitting item yields benefit 0, no items and weight 0.
//
// Errors: whatever inst.Validate reports, and ErrTooManyItems.
func Solve(inst model.Instance, opts ...Option) (model.Solution, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := inst.Validate(); err != nil {
		return model.Solution{}, err
	}
	n := inst.Len()
	if n > cfg.MaxItems || n > HardMaxItems {
		return model.Solution{}, fmt.Errorf("%w: %d items, limit %d", ErrTooManyItems, n, min(cfg.MaxItems, HardMaxItems))
	}

	var (
		items    = inst.Items
		total    = uint64(1) << uint(n)
		bestMask uint64
		bestB    int64
		mask     uint64
		k        int
	)
	for mask = 0; mask < total; mask++ {
		var w, b int64
		for k = 0; k < n; k++ {
			if mask&(1<<uint(n-1-k)) == 0 {
				continue
			}
			w += items[k].Weight
			b += items[k].Benefit
		}
		if w <= inst.Capacity && b > bestB {
			bestB, bestMask = b, mask
		}
	}

	var chosen []model.Item
	for k = 0; k < n; k++ {
		if bestMask&(1<<uint(n-1-k)) != 0 {
			chosen = append(chosen, items[k])
		}
	}

	return model.NewSolution(bestB, chosen), nil
}
