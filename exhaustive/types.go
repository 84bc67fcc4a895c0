package exhaustive

import "errors"

// HardMaxItems is the largest item count the 64-bit counter can enumerate.
const HardMaxItems = 62

// DefaultMaxItems is the default guard on item count.
const DefaultMaxItems = 30

// ErrTooManyItems indicates that the instance exceeds the configured item guard.
var ErrTooManyItems = errors.New("exhaustive: too many items for enumeration")

// Options configures the exhaustive solver.
//
//   - MaxItems — refuse instances with more items (capped at HardMaxItems).
type Options struct {
	MaxItems int
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithMaxItems sets the item-count guard. Values above HardMaxItems are clamped.
func WithMaxItems(n int) Option {
	return func(o *Options) {
		if n > HardMaxItems {
			n = HardMaxItems
		}
		o.MaxItems = n
	}
}

// DefaultOptions returns the default configuration (MaxItems = DefaultMaxItems).
func DefaultOptions() Options {
	return Options{MaxItems: DefaultMaxItems}
}
