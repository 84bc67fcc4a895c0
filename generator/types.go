package generator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sentinel errors returned by the generator.
var (
	// ErrBadCount indicates a negative item or instance count.
	ErrBadCount = errors.New("generator: count must be non-negative")

	// ErrBadRange indicates Min > Max, a negative bound, a span of more than
	// MaxInt64 values, or a weight range that allows zero-weight items.
	ErrBadRange = errors.New("generator: invalid range")
)

// Range is an inclusive integer interval [Min, Max].
type Range struct {
	Min int64
	Max int64
}

// String renders the range in the "min-max" form ParseRange accepts.
func (r Range) String() string { return fmt.Sprintf("%d-%d", r.Min, r.Max) }

// ParseRange parses "min-max" (or a single "v" meaning [v, v]).
func ParseRange(s string) (Range, error) {
	lo, hi, found := strings.Cut(strings.TrimSpace(s), "-")
	if !found {
		hi = lo
	}
	a, err := strconv.ParseInt(strings.TrimSpace(lo), 10, 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrBadRange, s)
	}
	b, err := strconv.ParseInt(strings.TrimSpace(hi), 10, 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrBadRange, s)
	}
	r := Range{Min: a, Max: b}
	if err = r.validate(0); err != nil {
		return Range{}, err
	}

	return r, nil
}

// validate checks floor ≤ Min ≤ Max and that the range holds at most
// MaxInt64 values, the widest span draw can sample. floor is never negative,
// so Max-Min cannot overflow.
func (r Range) validate(floor int64) error {
	if r.Min < floor || r.Min > r.Max {
		return fmt.Errorf("%w: %s (minimum %d)", ErrBadRange, r, floor)
	}
	if r.Max-r.Min == math.MaxInt64 {
		return fmt.Errorf("%w: %s holds more than %d values", ErrBadRange, r, int64(math.MaxInt64))
	}

	return nil
}
