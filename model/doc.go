// Package model defines the shared vocabulary of the knapsack solvers:
// items, instances, solutions and the checks that tie them together.
//
// 🚀 What lives here?
//
//   - Item      — an immutable (weight, benefit) pair with a stable 1-based Index.
//   - Instance  — a capacity plus an ordered list of items.
//   - Solution  — optimal benefit, the selected items (ascending Index) and their weight.
//   - RatInstance / Scale — exact-rational input and its integer normalization.
//
// ✨ Checks:
//
//   - Instance.Validate — rejects negative capacity, weights or benefits and any
//     instance whose totals cannot be represented in int64.
//   - VerifyBenefit     — the cross-validator: Σ selected benefits == claimed benefit.
//   - Check             — every Solution invariant at once (feasible, sums, indices).
//
// Every solver package (exhaustive, tabulation, memo) consumes an Instance and
// returns a Solution, so results from different algorithms can be compared directly.
//
// Example:
//
//	inst, err := model.NewInstance(50, [][2]int64{{10, 60}, {20, 100}, {30, 120}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(inst.Items[1]) // {Index:2 Weight:20 Benefit:100}
package model
