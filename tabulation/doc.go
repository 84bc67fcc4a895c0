// Package tabulation solves the 0/1 knapsack problem bottom-up and recovers
// the chosen items from the finished table.
//
// 🚀 How it works
//
//	table[i][w] is the best benefit reachable with items 1..i under capacity w.
//	Row 0 and column 0 are zero; every other cell is
//
//	  table[i-1][w]                                        if weight(i) > w
//	  max(table[i-1][w], benefit(i) + table[i-1][w-weight(i)])  otherwise
//
//	The optimum is table[n][capacity]. Backtrack then walks from (n, capacity)
//	towards row 0: whenever table[i-1][w] differs from table[i][w], item i was
//	taken and w shrinks by its weight. Equal cells mean item i is left out, so
//	ties always resolve towards exclusion.
//
// ✨ Key features:
//   - FullTable mode: O(n·C) memory, supports Backtrack and Solve.
//   - TwoRows mode:   O(C) memory, benefit only (see Benefit).
//   - MaxCells guard against accidental multi-gigabyte tables.
//   - The table is read-only once built; Backtrack never mutates it.
//
// Performance:
//
//   - Time:   O(n·C) where C = capacity+1
//   - Memory: O(n·C) (FullTable) or O(C) (TwoRows)
package tabulation
