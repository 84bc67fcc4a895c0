package model

import (
	"fmt"
	"math"
)

// NewInstance builds an Instance from (weight, benefit) pairs given in input
// order, assigning 1-based indices, and validates it.
func NewInstance(capacity int64, pairs [][2]int64) (Instance, error) {
	items := make([]Item, len(pairs))
	for k, p := range pairs {
		items[k] = Item{Index: k + 1, Weight: p[0], Benefit: p[1]}
	}
	inst := Instance{Capacity: capacity, Items: items}
	if err := inst.Validate(); err != nil {
		return Instance{}, err
	}

	return inst, nil
}

// MustInstance is like NewInstance but panics on error.
// Intended for tests and examples with literal data.
func MustInstance(capacity int64, pairs [][2]int64) Instance {
	inst, err := NewInstance(capacity, pairs)
	if err != nil {
		panic(err)
	}

	return inst
}

// Len returns the number of items.
func (in Instance) Len() int { return len(in.Items) }

// Validate enforces the preconditions shared by all solvers:
//   - Capacity ≥ 0, every Weight ≥ 0 and Benefit ≥ 0.
//   - No zero-weight item carries a positive benefit (ErrZeroWeight). This
//     goes beyond rejecting negative values: every solver treats a subproblem
//     with no capacity left as worth 0, which holds only when each item with
//     positive benefit also has positive weight.
//   - Items[k].Index == k+1.
//   - Σ Weight and Σ Benefit fit in int64, so no solver can overflow.
//
// Complexity: O(n).
func (in Instance) Validate() error {
	if in.Capacity < 0 {
		return ErrNegativeCapacity
	}

	var totalW, totalB int64
	for k, it := range in.Items {
		if it.Index != k+1 {
			return fmt.Errorf("%w: position %d has index %d", ErrIndexMismatch, k, it.Index)
		}
		if it.Weight < 0 {
			return fmt.Errorf("%w: item %d", ErrNegativeWeight, it.Index)
		}
		if it.Benefit < 0 {
			return fmt.Errorf("%w: item %d", ErrNegativeBenefit, it.Index)
		}
		if it.Weight == 0 && it.Benefit > 0 {
			return fmt.Errorf("%w: item %d", ErrZeroWeight, it.Index)
		}
		if totalW > math.MaxInt64-it.Weight || totalB > math.MaxInt64-it.Benefit {
			return fmt.Errorf("%w: totals at item %d", ErrOverflow, it.Index)
		}
		totalW += it.Weight
		totalB += it.Benefit
	}

	return nil
}

// Item returns the item with the given 1-based index.
func (in Instance) Item(index int) (Item, bool) {
	if index < 1 || index > len(in.Items) {
		return Item{}, false
	}

	return in.Items[index-1], true
}
