package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/knapsack/exhaustive"
	"github.com/katalvlaran/knapsack/memo"
	"github.com/katalvlaran/knapsack/tabulation"
)

// Algorithm selects a solving strategy.
type Algorithm int

const (
	// Exhaustive enumerates all 2ⁿ combinations (ground truth, small n only).
	Exhaustive Algorithm = iota + 1

	// Tabulation fills the bottom-up table and backtracks (ties exclude).
	Tabulation

	// Recursive runs the memoized top-down search (ties include).
	Recursive
)

// Algorithms lists every algorithm in canonical order.
var Algorithms = []Algorithm{Exhaustive, Tabulation, Recursive}

// Sentinel errors returned by the dispatcher.
var (
	// ErrUnsupportedAlgorithm indicates an Algorithm value outside the constants.
	ErrUnsupportedAlgorithm = errors.New("solver: unsupported algorithm")

	// ErrDisagreement indicates that two algorithms reported different optimal
	// benefits for the same instance. It always means a solver defect.
	ErrDisagreement = errors.New("solver: algorithms disagree")
)

// String returns the lower-case algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Exhaustive:
		return "exhaustive"
	case Tabulation:
		return "tabulation"
	case Recursive:
		return "recursive"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a name (or its 1-based number, as the original CLI
// accepted) to an Algorithm. Aliases: brute-force, bottom-up, top-down, memo.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exhaustive", "brute-force", "bruteforce", "1":
		return Exhaustive, nil
	case "tabulation", "bottom-up", "bottomup", "2":
		return Tabulation, nil
	case "recursive", "top-down", "topdown", "memo", "3":
		return Recursive, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
}

// Options configures the dispatcher and the algorithms behind it.
//
//   - Algo              — algorithm used by Solve (default Tabulation).
//   - ExhaustiveMaxItems — item guard for enumeration; CrossCheck skips
//     Exhaustive above it instead of failing.
//   - Tabulation        — options forwarded to the tabulation solver.
//   - Memo              — options forwarded to the memoized solver.
type Options struct {
	Algo               Algorithm
	ExhaustiveMaxItems int
	Tabulation         []tabulation.Option
	Memo               []memo.Option
}

// Option represents a functional option for configuring the dispatcher.
type Option func(*Options)

// WithAlgorithm selects the algorithm used by Solve.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algo = a
	}
}

// WithExhaustiveMaxItems sets the enumeration guard.
func WithExhaustiveMaxItems(n int) Option {
	return func(o *Options) {
		o.ExhaustiveMaxItems = n
	}
}

// WithTabulationOptions appends options for the tabulation solver.
func WithTabulationOptions(opts ...tabulation.Option) Option {
	return func(o *Options) {
		o.Tabulation = append(o.Tabulation, opts...)
	}
}

// WithMemoOptions appends options for the memoized solver.
func WithMemoOptions(opts ...memo.Option) Option {
	return func(o *Options) {
		o.Memo = append(o.Memo, opts...)
	}
}

// DefaultOptions returns Tabulation with the default enumeration guard.
func DefaultOptions() Options {
	return Options{
		Algo:               Tabulation,
		ExhaustiveMaxItems: exhaustive.DefaultMaxItems,
	}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
