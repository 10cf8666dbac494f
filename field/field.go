// Package field assigns deterministic per-cell brightness values.
//
// Cells are keyed by (row, world column) so a given physical pattern
// position keeps its brightness no matter how many times the grid has
// been rebuilt or how far it has scrolled.
package field

// Variant channels drawn per cell. Each channel is an independent
// sample stream over the same (row, col) key.
const (
	VariantTier   = 0 // Tier selection (highlight / accent / dim)
	VariantFall   = 1 // Falloff magnitude within the dim tier
	VariantJitter = 2 // Brightness jitter within the dim tier
)

// Large odd multipliers for coordinate mixing. Chosen so adjacent
// rows, columns and variant channels land far apart in hash space.
const (
	rowMult     = 0x8da6b343
	colMult     = 0xd8163841
	variantMult = 0xcb1ab31f
)

// Sample returns a reproducible pseudo-random value in [0, 1) for the
// given cell coordinate, variant channel and session seed. It is a
// pure function: identical inputs always return the identical value.
func Sample(row, col, variant int, seed uint32) float64 {
	h := uint32(int32(row))*rowMult ^ uint32(int32(col))*colMult ^ uint32(int32(variant))*variantMult ^ seed

	// Murmur-style avalanche so neighbouring cells decorrelate.
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16

	return float64(h) / 4294967296.0
}
