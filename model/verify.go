package model

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// VerifyBenefit reports whether the benefits of items sum exactly to claimed.
// It is the cross-validator used by benchmarks and tests; it is not part of
// any solving path.
//
// Complexity: O(len(items)).
func VerifyBenefit(items []Item, claimed int64) bool {
	var sum int64
	for _, it := range items {
		sum += it.Benefit
	}

	return sum == claimed
}

// Check verifies every Solution invariant against the instance it solves:
//   - each selected index lies in 1..n, appears once, and ascends;
//   - each selected item equals inst.Items[index-1];
//   - Weight == Σ weights and Weight ≤ Capacity;
//   - Benefit == Σ benefits (VerifyBenefit).
//
// Any violation is returned wrapped in ErrInconsistent.
//
// Complexity: O(k) for k selected items.
func Check(inst Instance, sol Solution) error {
	var (
		n    = inst.Len()
		seen = roaring.New()
		last = 0
		w    int64
	)
	for _, it := range sol.Items {
		if it.Index < 1 || it.Index > n {
			return fmt.Errorf("%w: index %d outside 1..%d", ErrInconsistent, it.Index, n)
		}
		if !seen.CheckedAdd(uint32(it.Index)) {
			return fmt.Errorf("%w: index %d selected twice", ErrInconsistent, it.Index)
		}
		if it.Index < last {
			return fmt.Errorf("%w: index %d after %d", ErrInconsistent, it.Index, last)
		}
		last = it.Index
		if it != inst.Items[it.Index-1] {
			return fmt.Errorf("%w: item %d differs from instance", ErrInconsistent, it.Index)
		}
		w += it.Weight
	}
	if w != sol.Weight {
		return fmt.Errorf("%w: weight %d, items sum to %d", ErrInconsistent, sol.Weight, w)
	}
	if sol.Weight > inst.Capacity {
		return fmt.Errorf("%w: weight %d exceeds capacity %d", ErrInconsistent, sol.Weight, inst.Capacity)
	}
	if !VerifyBenefit(sol.Items, sol.Benefit) {
		return fmt.Errorf("%w: benefit %d does not match selected items", ErrInconsistent, sol.Benefit)
	}

	return nil
}
