package tabulation

import "errors"

// MemoryMode controls how much of the DP table is kept.
//
//   - FullTable — keep all (n+1)×(capacity+1) cells; required for Backtrack.
//   - TwoRows   — keep only the previous and current rows; benefit only.
type MemoryMode int

const (
	// FullTable stores every row and supports item recovery.
	FullTable MemoryMode = iota

	// TwoRows stores two rows, O(capacity) memory, no item recovery.
	TwoRows
)

// DefaultMaxCells bounds the full table at 64 Mi cells (512 MiB of int64).
const DefaultMaxCells = 1 << 26

// Sentinel errors returned by the tabulation solver.
var (
	// ErrTableTooLarge indicates that (n+1)·(capacity+1) exceeds Options.MaxCells.
	ErrTableTooLarge = errors.New("tabulation: table exceeds MaxCells")

	// ErrBacktrackNeedsTable indicates item recovery was requested in TwoRows mode.
	ErrBacktrackNeedsTable = errors.New("tabulation: item recovery requires MemoryMode=FullTable")

	// ErrShapeMismatch indicates a table and an item list that do not belong together.
	ErrShapeMismatch = errors.New("tabulation: table shape does not match items")

	// ErrNotMonotone indicates a table cell smaller than its upper or left neighbour.
	ErrNotMonotone = errors.New("tabulation: table is not monotone")

	// ErrBadMaxCells indicates a non-positive MaxCells.
	ErrBadMaxCells = errors.New("tabulation: MaxCells must be positive")
)

// Options configures tabulation.
//
//   - MemoryMode — FullTable (default) or TwoRows.
//   - MaxCells   — upper bound on allocated cells; rows·cols for FullTable,
//     2·cols for TwoRows.
type Options struct {
	MemoryMode MemoryMode
	MaxCells   int
}

// Option represents a functional option for configuring the solver.
type Option func(*Options)

// WithMemoryMode selects FullTable or TwoRows storage.
func WithMemoryMode(m MemoryMode) Option {
	return func(o *Options) {
		o.MemoryMode = m
	}
}

// WithMaxCells sets the allocation guard.
// Non-positive values make every call fail with ErrBadMaxCells.
func WithMaxCells(n int) Option {
	return func(o *Options) {
		o.MaxCells = n
	}
}

// DefaultOptions returns FullTable storage with DefaultMaxCells.
func DefaultOptions() Options {
	return Options{
		MemoryMode: FullTable,
		MaxCells:   DefaultMaxCells,
	}
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
