package model

// Item is a single candidate for the knapsack.
//
// Index is 1-based and stable: it is assigned once by NewInstance in input
// order and identifies the item in every solver's output.
type Item struct {
	Index   int
	Weight  int64
	Benefit int64
}

// Instance is one static knapsack problem.
//
// Items order defines both the Index of each item and the row order of the
// tabulation table. The optimal benefit does not depend on that order, the
// concrete selected set may (ties resolve differently).
type Instance struct {
	Capacity int64
	Items    []Item
}

// Solution is the outcome of any solver.
//
// Invariants (see Check):
//   - Weight ≤ capacity and Weight == Σ Items[k].Weight.
//   - Benefit == Σ Items[k].Benefit.
//   - Items are sorted by ascending Index, indices unique and within 1..n.
type Solution struct {
	Benefit int64
	Items   []Item
	Weight  int64
}
