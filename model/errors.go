package model

import "errors"

// Sentinel errors returned by instance validation and solution checks.
var (
	// ErrNegativeCapacity indicates that the knapsack capacity is below zero.
	ErrNegativeCapacity = errors.New("model: capacity must be non-negative")

	// ErrNegativeWeight indicates that an item has a negative weight.
	ErrNegativeWeight = errors.New("model: item weight must be non-negative")

	// ErrNegativeBenefit indicates that an item has a negative benefit.
	ErrNegativeBenefit = errors.New("model: item benefit must be non-negative")

	// ErrZeroWeight indicates an item with zero weight and positive benefit.
	// Such an item belongs to every optimal selection, and the table solvers
	// treat capacity 0 as an empty knapsack, so it is rejected up front.
	ErrZeroWeight = errors.New("model: zero-weight item with positive benefit")

	// ErrOverflow indicates that total weight or total benefit does not fit in int64,
	// or that rational normalization produced a value outside int64.
	ErrOverflow = errors.New("model: value overflows int64")

	// ErrIndexMismatch indicates that Items[k].Index != k+1.
	ErrIndexMismatch = errors.New("model: item index out of sequence")

	// ErrInconsistent indicates that a Solution breaks one of its invariants.
	// It always signals a solver defect and must be surfaced to the caller.
	ErrInconsistent = errors.New("model: inconsistent solution")

	// ErrBadRational indicates a nil or otherwise unusable rational value.
	ErrBadRational = errors.New("model: invalid rational value")
)
