package field

import "testing"

func TestSampleRange(t *testing.T) {
	for row := -50; row <= 50; row += 7 {
		for col := -50; col <= 50; col += 5 {
			for variant := 0; variant < 3; variant++ {
				v := Sample(row, col, variant, 12345)
				if v < 0 || v >= 1 {
					t.Fatalf("Sample(%d,%d,%d) = %f, outside [0,1)", row, col, variant, v)
				}
			}
		}
	}
}

func TestSamplePure(t *testing.T) {
	// Identical inputs must always return the identical value
	for i := 0; i < 10; i++ {
		a := Sample(17, -342, VariantTier, 99)
		b := Sample(17, -342, VariantTier, 99)
		if a != b {
			t.Fatalf("Sample not pure: %f != %f", a, b)
		}
	}
}

func TestSampleSeedChangesValues(t *testing.T) {
	same := 0
	total := 0
	for row := 0; row < 20; row++ {
		for col := 0; col < 20; col++ {
			total++
			if Sample(row, col, 0, 1) == Sample(row, col, 0, 2) {
				same++
			}
		}
	}
	if same > total/20 {
		t.Errorf("seeds 1 and 2 agree on %d/%d cells, expected near zero", same, total)
	}
}

func TestSampleVariantChannelsIndependent(t *testing.T) {
	// The three channels drawn per cell must not be mirrors of each
	// other; identical streams would correlate tier and falloff.
	identical := 0
	total := 0
	for row := -30; row < 30; row++ {
		for col := -30; col < 30; col += 3 {
			total++
			t0 := Sample(row, col, VariantTier, 7)
			t1 := Sample(row, col, VariantFall, 7)
			t2 := Sample(row, col, VariantJitter, 7)
			if t0 == t1 || t1 == t2 || t0 == t2 {
				identical++
			}
		}
	}
	if identical > 0 {
		t.Errorf("%d/%d cells had colliding variant channels", identical, total)
	}
}

func TestSampleNeighbourDecorrelation(t *testing.T) {
	// Crude avalanche check: adjacent cells should not produce nearly
	// identical values. Count pairs closer than 1e-4.
	near := 0
	total := 0
	for row := 0; row < 50; row++ {
		for col := 0; col < 50; col++ {
			total++
			a := Sample(row, col, 0, 31337)
			b := Sample(row, col+1, 0, 31337)
			d := a - b
			if d < 0 {
				d = -d
			}
			if d < 1e-4 {
				near++
			}
		}
	}
	// Uniform random pairs land this close ~0.02% of the time
	if near > total/100 {
		t.Errorf("%d/%d adjacent pairs nearly identical, hash correlates neighbours", near, total)
	}
}

func TestSampleDistribution(t *testing.T) {
	// Mean of a uniform [0,1) stream should sit near 0.5
	var sum float64
	n := 0
	for row := -40; row < 40; row++ {
		for col := -40; col < 40; col++ {
			sum += Sample(row, col, 1, 555)
			n++
		}
	}
	mean := sum / float64(n)
	if mean < 0.47 || mean > 0.53 {
		t.Errorf("sample mean %f, expected near 0.5", mean)
	}
}
