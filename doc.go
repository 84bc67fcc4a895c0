// Package knapsack solves the 0/1 knapsack problem three ways and checks
// that they agree.
//
// Given a capacity and a list of items, each with a weight and a benefit,
// pick a subset whose total weight fits and whose total benefit is maximal.
// Every item is taken whole or not at all.
//
// The solvers live in subpackages:
//
//	exhaustive/ — enumerates every subset (small inputs only, guarded)
//	tabulation/ — bottom-up (n+1)×(W+1) table plus a read-only backtracker
//	memo/       — top-down recursion with a per-call memo cache
//	solver/     — algorithm selection and cross-validation of all three
//
// Around them:
//
//	model/      — Item, Instance, Solution, validation, exact rationals
//	loader/     — text format parser; local files or s3:// (zstd/lz4)
//	generator/  — seeded random instances
//	bench/      — timed repeated runs, slog logging, Prometheus metrics
//	report/     — item tables, results and a text bar chart
//	cmd/knapsack — the command-line driver
//
// Quick example:
//
//	capacity 50, items (w,b): (10,60) (20,100) (30,120)
//	optimum: items 2 and 3, benefit 220, weight 50
//
//	go install github.com/katalvlaran/knapsack/cmd/knapsack@latest
package knapsack
