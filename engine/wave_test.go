package engine

import (
	"math"
	"testing"
)

func TestZeroAmplitudesDegenerateToBaseline(t *testing.T) {
	p := testParams()
	p.Wave.Amplitude = 0
	p.Wave.SecondaryAmplitude = 0
	p.Wave.RippleAmplitude = 0
	e := New(p, testPolicy(1234), 800, 600)

	e.Step(0.5)
	e.Step(0.016)

	for i, inst := range e.Instances() {
		if inst.Opacity != inst.BaseOpacity {
			t.Fatalf("instance %d: opacity %f != base %f with zero amplitudes", i, inst.Opacity, inst.BaseOpacity)
		}
		if inst.Height != 0 {
			t.Fatalf("instance %d: height %f with zero amplitudes", i, inst.Height)
		}
		if inst.Scale != 1 {
			t.Fatalf("instance %d: scale %f, want 1", i, inst.Scale)
		}
	}
}

func TestPrimaryWavePeriodicity(t *testing.T) {
	p := testParams()
	p.Wave.SecondaryAmplitude = 0
	p.Wave.RippleAmplitude = 0
	e := New(p, testPolicy(1234), 800, 600)

	t0 := 1.37
	e.Animate(t0)
	heights := make([]float64, len(e.Instances()))
	for i, inst := range e.Instances() {
		heights[i] = inst.Height
	}

	// One full primary period with zero scroll must reproduce every
	// depth to within floating-point tolerance
	period := 2 * math.Pi / p.Wave.Speed
	e.Animate(t0 + period)

	for i, inst := range e.Instances() {
		if math.Abs(inst.Height-heights[i]) > 1e-9 {
			t.Fatalf("instance %d: height %f != %f after one period", i, inst.Height, heights[i])
		}
	}
}

func TestOpacityModulationBounds(t *testing.T) {
	e := newTestEngine(800, 600)

	for _, tm := range []float64{0, 0.37, 1.9, 42.5} {
		e.Animate(tm)
		for i, inst := range e.Instances() {
			if inst.Opacity < 0 || inst.Opacity > 1 {
				t.Fatalf("t=%f instance %d: opacity %f outside [0,1]", tm, i, inst.Opacity)
			}
			// Wave band dims at most to 0.9x, pulse only brightens
			if inst.Opacity < inst.BaseOpacity*waveDimFloor-1e-9 {
				t.Fatalf("t=%f instance %d: opacity %f below dim floor of base %f", tm, i, inst.Opacity, inst.BaseOpacity)
			}
			ceil := inst.BaseOpacity * waveBrightCeil * pulseBrightCeil
			if ceil > 1 {
				ceil = 1
			}
			if inst.Opacity > ceil+1e-9 {
				t.Fatalf("t=%f instance %d: opacity %f above ceiling %f", tm, i, inst.Opacity, ceil)
			}
		}
	}
}

func TestHeightWithinAmplitudeSum(t *testing.T) {
	e := newTestEngine(800, 600)
	ls := e.Layout()
	maxHeight := ls.Amplitude + ls.SecondaryAmplitude + ls.RippleAmplitude

	for _, tm := range []float64{0, 0.61, 3.3, 17.0} {
		e.Animate(tm)
		for i, inst := range e.Instances() {
			if math.Abs(inst.Height) > maxHeight+1e-9 {
				t.Fatalf("t=%f instance %d: height %f exceeds amplitude sum %f", tm, i, inst.Height, maxHeight)
			}
		}
	}
}

func TestDepthScaleTracksHeight(t *testing.T) {
	e := newTestEngine(800, 600)
	e.Animate(0.9)

	ls := e.Layout()
	for i, inst := range e.Instances() {
		want := (ls.BaseDepth + inst.Height) / ls.BaseDepth
		if math.Abs(inst.Scale-want) > 1e-12 {
			t.Fatalf("instance %d: scale %f, want %f", i, inst.Scale, want)
		}
	}
}

func TestAnimateNoOpWithoutLayout(t *testing.T) {
	e := newTestEngine(0, 0)
	// Must not panic and must leave the empty table empty
	e.Animate(1.0)
	if n := len(e.Instances()); n != 0 {
		t.Errorf("expected 0 instances, got %d", n)
	}
}

func TestWaveVariesAcrossField(t *testing.T) {
	e := newTestEngine(1000, 1000)
	e.Animate(0.5)

	insts := e.Instances()
	first := insts[0].Height
	varies := false
	for i := range insts {
		if math.Abs(insts[i].Height-first) > 1e-6 {
			varies = true
			break
		}
	}
	if !varies {
		t.Error("wave field is flat across all instances")
	}
}
