package generator

import (
	"github.com/katalvlaran/knapsack/model"
)

// Items returns n (weight, benefit) pairs drawn uniformly from the ranges.
//
// Contracts:
//   - n ≥ 0 (ErrBadCount).
//   - weights.Min ≥ 1 and benefits.Min ≥ 0, Min ≤ Max (ErrBadRange).
//   - seed==0 selects a fixed default stream.
//
// Complexity: O(n).
func Items(n int, weights, benefits Range, seed int64) ([][2]int64, error) {
	if n < 0 {
		return nil, ErrBadCount
	}
	if err := weights.validate(1); err != nil {
		return nil, err
	}
	if err := benefits.validate(0); err != nil {
		return nil, err
	}

	rng := newRand(seed)
	out := make([][2]int64, n)
	for i := range out {
		out[i] = [2]int64{draw(rng, weights), draw(rng, benefits)}
	}

	return out, nil
}

// Instance generates n items and wraps them with capacity into a validated
// model.Instance.
func Instance(capacity int64, n int, weights, benefits Range, seed int64) (model.Instance, error) {
	raw, err := Items(n, weights, benefits, seed)
	if err != nil {
		return model.Instance{}, err
	}

	return model.NewInstance(capacity, raw)
}

// Spec describes a family of random instances for Batch.
//
//   - Capacity — knapsack capacity range.
//   - Count    — item count range.
//   - Weights  — item weight range (Min ≥ 1).
//   - Benefits — item benefit range.
type Spec struct {
	Capacity Range
	Count    Range
	Weights  Range
	Benefits Range
}

// Batch generates k instances from spec. Instance j uses its own stream
// derived from (seed, j), so the first instances of a larger batch are the
// same as those of a smaller one.
//
// Complexity: O(k·maxCount).
func Batch(k int, spec Spec, seed int64) ([]model.Instance, error) {
	if k < 0 {
		return nil, ErrBadCount
	}
	if err := spec.Capacity.validate(0); err != nil {
		return nil, err
	}
	if err := spec.Count.validate(0); err != nil {
		return nil, err
	}

	if seed == 0 {
		seed = fallbackSeed
	}
	out := make([]model.Instance, k)
	for j := range out {
		rng := newRand(streamSeed(seed, uint64(j)))
		capacity := draw(rng, spec.Capacity)
		n := int(draw(rng, spec.Count))

		inst, err := Instance(capacity, n, spec.Weights, spec.Benefits, rng.Int63())
		if err != nil {
			return nil, err
		}
		out[j] = inst
	}

	return out, nil
}
