package generator

import "math/rand"

// fallbackSeed stands in for seed 0, which always means "the fixed stream".
const fallbackSeed int64 = 1

// newRand returns a generator whose sequence depends only on seed.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = fallbackSeed
	}

	return rand.New(rand.NewSource(seed))
}

// streamSeed gives instance j of a batch its own seed. The SplitMix64
// finalizer scatters consecutive j values across the whole int64 range.
func streamSeed(batch int64, j uint64) int64 {
	z := uint64(batch) + (j+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return int64(z ^ (z >> 31))
}

// draw returns a uniform value in [r.Min, r.Max]; r must have passed validate.
func draw(rng *rand.Rand, r Range) int64 {
	return r.Min + rng.Int63n(r.Max-r.Min+1)
}
