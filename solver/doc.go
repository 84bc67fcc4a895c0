// Package solver is the single entry point to the knapsack algorithms.
//
// It validates an instance once, routes it to the selected algorithm
// (Exhaustive, Tabulation or Recursive) and, through CrossCheck, runs every
// applicable algorithm on the same instance and insists that they agree.
//
// Design principles:
//   - Deterministic: every algorithm is a pure function of its input.
//   - Strict sentinels: disagreement is ErrDisagreement, never a silent pick.
//   - Per-call state: tables and caches are never shared between calls, so
//     Solve and CrossCheck are safe for concurrent use.
//
// Example:
//
//	inst := model.MustInstance(50, [][2]int64{{10, 60}, {20, 100}, {30, 120}})
//	sol, err := solver.Solve(inst, solver.WithAlgorithm(solver.Tabulation))
//	// sol.Benefit == 220, sol.Indices() == [2 3], sol.Weight == 50
package solver
