package memo

import "errors"

// Strategy selects how the state space is traversed.
type Strategy int

const (
	// Auto picks Recursive for small instances and Stack above RecursionLimit items.
	Auto Strategy = iota

	// Recursive uses the Go call stack.
	Recursive

	// Stack uses an explicit slice-backed work stack.
	Stack
)

// DefaultRecursionLimit is the item count above which Auto switches to Stack.
const DefaultRecursionLimit = 4096

// ErrUnknownStrategy indicates a Strategy value outside the declared constants.
var ErrUnknownStrategy = errors.New("memo: unknown strategy")

// Options configures the memoized solver.
//
//   - Strategy       — Auto (default), Recursive or Stack.
//   - RecursionLimit — item count above which Auto uses Stack.
type Options struct {
	Strategy       Strategy
	RecursionLimit int
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithStrategy forces a traversal strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithRecursionLimit changes the Auto switch-over point.
func WithRecursionLimit(n int) Option {
	return func(o *Options) {
		o.RecursionLimit = n
	}
}

// DefaultOptions returns Auto with DefaultRecursionLimit.
func DefaultOptions() Options {
	return Options{
		Strategy:       Auto,
		RecursionLimit: DefaultRecursionLimit,
	}
}
