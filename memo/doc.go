// Package memo solves the 0/1 knapsack problem top-down: a depth-first search
// over (index, remaining capacity) states with a per-call memoization cache.
//
// State (ind, cap) decides item ind+1 (1-based) with cap capacity left:
//
//	ind ≥ n or cap ≤ 0        → (0, {})
//	exclude                   → best(ind+1, cap)
//	include (weight ≤ cap)    → benefit + best(ind+1, cap−weight), plus {ind}
//	include wins when its benefit is ≥ the exclude benefit
//
// Ties favour inclusion, the opposite of tabulation.Backtrack. Both rules are
// deterministic; they can select different, equally good item sets.
//
// The solver returns the selected items directly, without a separate
// reconstruction pass: every cached state stores its selection as an immutable
// linked list whose tail is shared with the state it extends.
//
// Strategies:
//
//   - Recursive — plain recursion; depth ≤ n.
//   - Stack     — explicit work stack; no depth limit.
//   - Auto      — Recursive up to RecursionLimit items, Stack beyond.
//
// Performance:
//
//   - Time:   O(n·C) states at most, usually far fewer (only reachable states).
//   - Memory: O(number of visited states).
package memo
