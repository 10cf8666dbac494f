package field

import "testing"

func TestBaseOpacityTiers(t *testing.T) {
	p := NewPolicy(0.04, 2.6, 0)

	testCases := []struct {
		name string
		tier float64
		want float64
	}{
		{"highlight", 0.0, 1.0},
		{"highlight edge", 0.0149, 1.0},
		{"accent low", 0.015, 0.5},
		{"accent high", 0.0549, 0.5},
	}

	for _, tc := range testCases {
		got := p.BaseOpacity(tc.tier, 0.5, 0.5)
		if got != tc.want {
			t.Errorf("%s: BaseOpacity(tier=%f) = %f, want %f", tc.name, tc.tier, got, tc.want)
		}
	}
}

func TestBaseOpacityDimBand(t *testing.T) {
	p := NewPolicy(0.04, 2.6, 0)

	// Dim tier output stays inside [Min, 0.45]
	for fall := 0.0; fall <= 1.0; fall += 0.05 {
		for jitter := 0.0; jitter <= 1.0; jitter += 0.1 {
			o := p.BaseOpacity(0.5, fall, jitter)
			if o < p.Min || o > 0.45 {
				t.Fatalf("BaseOpacity(0.5, %f, %f) = %f, outside [%f, 0.45]", fall, jitter, o, p.Min)
			}
		}
	}

	// fall=0 collapses to the floor; fall=1 should land near the top
	if o := p.BaseOpacity(0.5, 0, 0.5); o != p.Min {
		t.Errorf("zero falloff sample should yield Min, got %f", o)
	}
	if o := p.BaseOpacity(0.5, 1, 1); o <= 0.4 {
		t.Errorf("max falloff sample should land near the ceiling, got %f", o)
	}
}

func TestBaseOpacityFalloffBias(t *testing.T) {
	// With power > 1, the median cell must sit in the dim half of the band
	p := NewPolicy(0.04, 2.6, 0)
	mid := p.BaseOpacity(0.5, 0.5, 0.5)
	linear := p.Min + (0.5-p.Min)*0.5
	if mid >= linear {
		t.Errorf("falloff power not biasing dim: mid=%f >= linear=%f", mid, linear)
	}
}

func TestCellOpacityStableUnderRebuilds(t *testing.T) {
	// A (row, worldColumn) pair must map to the same base opacity every
	// time it is asked for, regardless of how often the grid rebuilds.
	p := NewPolicy(0.04, 2.6, 424242)
	type key struct{ row, col int }
	first := make(map[key]float64)

	for pass := 0; pass < 3; pass++ {
		for row := -10; row <= 10; row++ {
			for col := -200; col <= 200; col += 17 {
				o := p.CellOpacity(row, col)
				k := key{row, col}
				if prev, ok := first[k]; ok && prev != o {
					t.Fatalf("cell (%d,%d) changed opacity across passes: %f -> %f", row, col, prev, o)
				}
				first[k] = o
				if o < p.Min || o > 1 {
					t.Fatalf("cell (%d,%d) opacity %f outside [%f, 1]", row, col, o, p.Min)
				}
			}
		}
	}
}

func TestCellOpacityTierFrequencies(t *testing.T) {
	// Over a large population, highlights should be rare and dim cells
	// dominant, matching the tier thresholds.
	p := NewPolicy(0.04, 2.6, 7)
	var full, half, dim int
	for row := 0; row < 100; row++ {
		for col := 0; col < 100; col++ {
			switch o := p.CellOpacity(row, col); {
			case o == 1.0:
				full++
			case o == 0.5:
				half++
			default:
				dim++
			}
		}
	}
	total := full + half + dim
	if full < total/200 || full > total/25 {
		t.Errorf("full highlights %d/%d, expected around 1.5%%", full, total)
	}
	if half < total/100 || half > total/10 {
		t.Errorf("half accents %d/%d, expected around 4%%", half, total)
	}
	if dim < total*8/10 {
		t.Errorf("dim cells %d/%d, expected the large majority", dim, total)
	}
}
