package model

import (
	"fmt"
	"math/big"
)

// RatItem is an item with exact rational weight and benefit, as read from input.
type RatItem struct {
	Weight  *big.Rat
	Benefit *big.Rat
}

// RatInstance is a knapsack instance expressed in exact rationals.
//
// Solvers work on int64 quantities; Normalize converts a RatInstance into an
// equivalent Instance without any loss of precision.
type RatInstance struct {
	Capacity *big.Rat
	Items    []RatItem
}

// Scale records the factors applied by Normalize.
//
//   - WeightFactor  — LCM of the denominators of capacity and all weights.
//   - BenefitFactor — LCM of the denominators of all benefits.
//
// For integer input both factors are 1.
type Scale struct {
	WeightFactor  *big.Int
	BenefitFactor *big.Int
}

// UnitScale returns the identity scale.
func UnitScale() Scale {
	return Scale{WeightFactor: big.NewInt(1), BenefitFactor: big.NewInt(1)}
}

// Normalize multiplies capacity and weights by one common factor and benefits
// by another so that every value becomes an integer. Selections are unaffected:
// a subset is feasible (optimal) in the scaled instance iff it is in the
// original one.
//
// Errors: ErrBadRational (nil value), ErrNegativeCapacity, ErrNegativeWeight,
// ErrNegativeBenefit, ErrOverflow (scaled value outside int64), and anything
// Instance.Validate reports for the result.
//
// Complexity: O(n) big-integer operations.
func (ri RatInstance) Normalize() (Instance, Scale, error) {
	if ri.Capacity == nil {
		return Instance{}, Scale{}, fmt.Errorf("%w: capacity", ErrBadRational)
	}
	if ri.Capacity.Sign() < 0 {
		return Instance{}, Scale{}, ErrNegativeCapacity
	}

	wl := new(big.Int).Set(ri.Capacity.Denom())
	bl := big.NewInt(1)
	for k, it := range ri.Items {
		if it.Weight == nil || it.Benefit == nil {
			return Instance{}, Scale{}, fmt.Errorf("%w: item %d", ErrBadRational, k+1)
		}
		if it.Weight.Sign() < 0 {
			return Instance{}, Scale{}, fmt.Errorf("%w: item %d", ErrNegativeWeight, k+1)
		}
		if it.Benefit.Sign() < 0 {
			return Instance{}, Scale{}, fmt.Errorf("%w: item %d", ErrNegativeBenefit, k+1)
		}
		lcm(wl, it.Weight.Denom())
		lcm(bl, it.Benefit.Denom())
	}

	capacity, err := scaleToInt64(ri.Capacity, wl)
	if err != nil {
		return Instance{}, Scale{}, fmt.Errorf("%w: capacity", err)
	}
	items := make([]Item, len(ri.Items))
	for k, it := range ri.Items {
		w, err := scaleToInt64(it.Weight, wl)
		if err != nil {
			return Instance{}, Scale{}, fmt.Errorf("%w: weight of item %d", err, k+1)
		}
		b, err := scaleToInt64(it.Benefit, bl)
		if err != nil {
			return Instance{}, Scale{}, fmt.Errorf("%w: benefit of item %d", err, k+1)
		}
		items[k] = Item{Index: k + 1, Weight: w, Benefit: b}
	}

	inst := Instance{Capacity: capacity, Items: items}
	if err = inst.Validate(); err != nil {
		return Instance{}, Scale{}, err
	}

	return inst, Scale{WeightFactor: wl, BenefitFactor: bl}, nil
}

// Weight maps a scaled integer weight back to its exact rational value.
func (s Scale) Weight(v int64) *big.Rat {
	return new(big.Rat).SetFrac(big.NewInt(v), factor(s.WeightFactor))
}

// Benefit maps a scaled integer benefit back to its exact rational value.
func (s Scale) Benefit(v int64) *big.Rat {
	return new(big.Rat).SetFrac(big.NewInt(v), factor(s.BenefitFactor))
}

// Item maps a scaled item back to rationals.
func (s Scale) Item(it Item) RatItem {
	return RatItem{Weight: s.Weight(it.Weight), Benefit: s.Benefit(it.Benefit)}
}

// factor treats a nil factor as 1 so a zero Scale behaves like UnitScale.
func factor(f *big.Int) *big.Int {
	if f == nil {
		return big.NewInt(1)
	}

	return f
}

// lcm sets acc = lcm(acc, d) in place.
func lcm(acc, d *big.Int) {
	if d.Cmp(acc) == 0 || d.IsInt64() && d.Int64() == 1 {
		return
	}
	g := new(big.Int).GCD(nil, nil, acc, d)
	acc.Mul(acc, new(big.Int).Quo(d, g))
}

// scaleToInt64 returns r·f, which must be an integer that fits in int64.
func scaleToInt64(r *big.Rat, f *big.Int) (int64, error) {
	num := new(big.Int).Mul(r.Num(), new(big.Int).Quo(f, r.Denom()))
	if !num.IsInt64() {
		return 0, ErrOverflow
	}

	return num.Int64(), nil
}
