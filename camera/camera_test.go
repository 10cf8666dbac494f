package camera

import (
	"math"
	"testing"
)

func TestApplyCentersOrigin(t *testing.T) {
	v := New(20*math.Pi/180, 0, 0, 1280, 720)

	// The recentered field origin must land at the screen center
	sx, sy := v.Apply(0, 0, 0, 0)
	if sx != 640 || sy != 360 {
		t.Errorf("expected screen center (640, 360), got (%f, %f)", sx, sy)
	}
}

func TestApplyRotates(t *testing.T) {
	v := New(math.Pi/2, 0, 0, 1000, 1000)

	// A point on the local +x axis rotates onto the screen +y axis
	sx, sy := v.Apply(100, 0, 0, 0)
	if math.Abs(float64(sx-500)) > 0.01 || math.Abs(float64(sy-600)) > 0.01 {
		t.Errorf("expected (500, 600), got (%f, %f)", sx, sy)
	}
}

func TestApplyZeroRotationIdentity(t *testing.T) {
	v := New(0, 0, 0, 800, 600)

	testCases := []struct{ lx, ly, wantX, wantY float32 }{
		{0, 0, 400, 300},
		{10, -20, 410, 280},
		{-400, 300, 0, 600},
	}
	for _, tc := range testCases {
		sx, sy := v.Apply(tc.lx, tc.ly, 0, 0)
		if sx != tc.wantX || sy != tc.wantY {
			t.Errorf("Apply(%f,%f) = (%f,%f), want (%f,%f)", tc.lx, tc.ly, sx, sy, tc.wantX, tc.wantY)
		}
	}
}

func TestApplyWorldTranslation(t *testing.T) {
	v := New(math.Pi/4, 0, 0, 800, 600)

	// World-frame deltas bypass the rotation entirely
	ax, ay := v.Apply(0, 0, -13, 7)
	bx, by := v.Apply(0, 0, 0, 0)
	if ax-bx != -13 || ay-by != 7 {
		t.Errorf("world delta moved screen point by (%f,%f), want (-13,7)", ax-bx, ay-by)
	}
}

func TestConfiguredTranslation(t *testing.T) {
	v := New(0, 25, -10, 800, 600)
	sx, sy := v.Apply(0, 0, 0, 0)
	if sx != 425 || sy != 290 {
		t.Errorf("expected (425, 290), got (%f, %f)", sx, sy)
	}
}

func TestRotationPreservesDistance(t *testing.T) {
	v := New(20*math.Pi/180, 0, 0, 0, 0)

	// Zero-sized viewport leaves the raw transform visible
	for _, pt := range [][2]float32{{100, 0}, {0, 100}, {70, -30}} {
		sx, sy := v.Apply(pt[0], pt[1], 0, 0)
		din := math.Hypot(float64(pt[0]), float64(pt[1]))
		dout := math.Hypot(float64(sx), float64(sy))
		if math.Abs(din-dout) > 0.01 {
			t.Errorf("rotation changed length of (%f,%f): %f -> %f", pt[0], pt[1], din, dout)
		}
	}
}

func TestResize(t *testing.T) {
	v := New(0, 0, 0, 800, 600)
	v.Resize(1280, 720)
	sx, sy := v.Apply(0, 0, 0, 0)
	if sx != 640 || sy != 360 {
		t.Errorf("after resize expected (640, 360), got (%f, %f)", sx, sy)
	}
}

func TestVisible(t *testing.T) {
	v := New(0, 0, 0, 800, 600)

	if !v.Visible(400, 300, 10) {
		t.Error("center point should be visible")
	}
	if !v.Visible(-5, 300, 10) {
		t.Error("point just off the left edge should pass with its radius")
	}
	if v.Visible(-50, 300, 10) {
		t.Error("point far off the left edge should be culled")
	}
}
