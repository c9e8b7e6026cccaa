// Package jitter provides the deterministic pseudo-random source used to
// perturb marker placement.
//
// # Overview
//
// [Value] maps a marker index and a seed to a stable value in [0, 1). It is a
// pure function: the same inputs always yield the same output, there is no
// hidden state and no external entropy. The star-field layout calls it once per
// marker, so a given footprint always produces the same "organic" arrangement.
//
// # Algorithm
//
// A single linear-congruential step is applied to index+seed:
//
//	state = ((index + seed) * 1103515245 + 12345) mod 2^31
//	value = state / 2^31
//
// The multiplier is a little over half the modulus, so consecutive indices land
// on opposite halves of the range instead of clustering.
//
// # Seeding
//
// [SeedFrom] derives the seed from the footprint as floor(width + height). The
// arrangement is therefore stable for a given size and shifts slightly when the
// control is resized. This keeps the seed free of any per-instance state.
package jitter
