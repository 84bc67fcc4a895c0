// Package exhaustive solves the 0/1 knapsack problem by enumerating every
// inclusion/exclusion combination of the items.
//
// The combinations are visited as a binary counter running from 0 to 2ⁿ−1,
// with the last item in the least significant bit. A combination replaces the
// current best only if it is feasible and strictly better, so among equally
// good selections the first one in counter order wins.
//
// Performance:
//
//   - Time:   O(n·2ⁿ)
//   - Memory: O(n)
//
// The solver exists as a ground-truth oracle for the dynamic-programming
// solvers; keep n small (the default guard is 30 items).
package exhaustive
