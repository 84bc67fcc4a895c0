package tabulation

import (
	"fmt"

	"github.com/katalvlaran/knapsack/model"
)

// Backtrack recovers the selected items from a full table built over items.
//
// Walk:
//  1. Start at i = n, w = capacity.
//  2. If table[i-1][w] != table[i][w], item i was taken: record it, w -= weight(i).
//  3. i--; stop when i == 0 or w == 0.
//  4. Reverse the recorded items into ascending index order.
//
// Equal neighbouring cells always mean "excluded", which makes the selection
// deterministic but not necessarily the only optimal one. The table is only
// read, never modified.
//
// Returns the items in ascending index order and their total weight.
//
// Errors: ErrShapeMismatch when t has not len(items)+1 rows.
//
// Complexity: O(n) time, O(k) memory for k selected items.
func Backtrack(t *Table, items []model.Item) ([]model.Item, int64, error) {
	if t == nil || t.rows != len(items)+1 {
		return nil, 0, ErrShapeMismatch
	}

	var (
		picked []model.Item
		weight int64
		i      = t.rows - 1
		w      = t.cols - 1
	)
	for i > 0 && w > 0 {
		if t.At(i-1, w) != t.At(i, w) {
			it := items[i-1]
			if it.Weight > int64(w) {
				return nil, 0, fmt.Errorf("%w: item %d heavier than column %d", ErrShapeMismatch, it.Index, w)
			}
			picked = append(picked, it)
			weight += it.Weight
			w -= int(it.Weight)
		}
		i--
	}

	// reverse in place
	for l, r := 0, len(picked)-1; l < r; l, r = l+1, r-1 {
		picked[l], picked[r] = picked[r], picked[l]
	}

	return picked, weight, nil
}
