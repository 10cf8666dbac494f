package field

import "math"

// Tier thresholds on the tier-selection sample. Roughly 1.5% of cells
// render at full brightness and another 4% at half.
const (
	highlightThreshold = 0.015
	accentThreshold    = 0.055

	accentOpacity = 0.5
	dimCeiling    = 0.45

	jitterBase  = 0.82
	jitterRange = 0.35
)

// Policy converts field samples into base opacities.
type Policy struct {
	// Min is the dimmest allowed base opacity.
	Min float64
	// FalloffPower shapes the dim-tier distribution; values above 1
	// push most cells toward the dim end.
	FalloffPower float64
	// Seed is the session seed fed to the sampler.
	Seed uint32
}

// NewPolicy creates an opacity policy.
func NewPolicy(min, falloffPower float64, seed uint32) Policy {
	if min < 0 {
		min = 0
	}
	if falloffPower <= 0 {
		falloffPower = 1
	}
	return Policy{Min: min, FalloffPower: falloffPower, Seed: seed}
}

// BaseOpacity maps the three per-cell samples onto a base opacity in
// [Min, 1]. Tier structure: rare full highlight, rare half accent, and
// a common falloff-distributed dim band with multiplicative jitter.
func (p Policy) BaseOpacity(tier, fall, jitter float64) float64 {
	if tier < highlightThreshold {
		return 1.0
	}
	if tier < accentThreshold {
		return accentOpacity
	}

	o := p.Min + (accentOpacity-p.Min)*math.Pow(fall, p.FalloffPower)*(jitterBase+jitter*jitterRange)
	if o < p.Min {
		o = p.Min
	}
	if o > dimCeiling {
		o = dimCeiling
	}
	return o
}

// CellOpacity samples the three variant channels for a cell and
// applies the policy. col is the world column, not the viewport-local
// column, so the result is stable under scrolling.
func (p Policy) CellOpacity(row, col int) float64 {
	return p.BaseOpacity(
		Sample(row, col, VariantTier, p.Seed),
		Sample(row, col, VariantFall, p.Seed),
		Sample(row, col, VariantJitter, p.Seed),
	)
}
