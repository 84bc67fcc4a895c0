package model

import "github.com/RoaringBitmap/roaring/v2"

// NewSolution assembles a Solution from selected items, summing their weight.
// The benefit is taken as reported by the solver so that Check can compare it
// against the recomputed sum.
func NewSolution(benefit int64, items []Item) Solution {
	var w int64
	for _, it := range items {
		w += it.Weight
	}
	if items == nil {
		items = []Item{}
	}

	return Solution{Benefit: benefit, Items: items, Weight: w}
}

// Empty reports whether nothing was selected.
func (s Solution) Empty() bool { return len(s.Items) == 0 }

// Indices returns the 1-based indices of the selected items in ascending order.
func (s Solution) Indices() []int {
	out := make([]int, len(s.Items))
	for k, it := range s.Items {
		out[k] = it.Index
	}

	return out
}

// Bitmap returns the selected indices as a compressed bitmap.
// Useful for set comparisons between solvers (And, Xor, Equals).
func (s Solution) Bitmap() *roaring.Bitmap {
	bm := roaring.New()
	for _, it := range s.Items {
		bm.Add(uint32(it.Index))
	}

	return bm
}
