package jitter

import "math"

// LCG constants. Changing any of them changes every layout.
const (
	Multiplier uint64 = 1103515245
	Increment  uint64 = 12345
	Modulus    uint64 = 1 << 31
)

// State returns the raw generator state for (index, seed), in [0, Modulus).
// Arithmetic wraps in uint64; since Modulus divides 2^64 the wrap never
// changes the result, so negative inputs are deterministic as well.
func State(index, seed int) uint32 {
	x := uint64(int64(index) + int64(seed))
	return uint32((x*Multiplier + Increment) % Modulus)
}

// Value returns a stable pseudo-random value in [0, 1) for (index, seed).
func Value(index, seed int) float64 {
	return float64(State(index, seed)) / float64(Modulus)
}

// SeedFrom derives a seed from footprint dimensions as floor(width + height).
// Non-finite and negative dimensions count as 0.
func SeedFrom(width, height float64) int {
	return int(math.Floor(clamp(width) + clamp(height)))
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
