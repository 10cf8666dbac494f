package engine

// Guard floors for values used as divisors.
const (
	minSpacing    = 1e-3
	minWaveLength = 1e-3
	minDepth      = 1e-3
)

// rowShift returns the half-unit horizontal offset for packed rows.
// Odd rows sit half a column to the right of even rows.
func rowShift(row int) float64 {
	if row&1 != 0 {
		return 0.5
	}
	return 0
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

// lerp interpolates linearly between a and b.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
