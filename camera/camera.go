// Package camera provides the fixed view transform for the dot field.
package camera

import "math"

// View maps field-local coordinates to screen coordinates. The field
// angle is applied once to the whole group, never per cell; per-dot
// depth arrives pre-projected as an instance scale.
type View struct {
	// Rotation is the fixed field angle in radians
	Rotation float32
	cosR     float32
	sinR     float32

	// Configured world-frame offsets
	TranslationX float32
	TranslationY float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32
}

// New creates a view for the given viewport.
func New(rotation, translationX, translationY float64, viewportW, viewportH float32) *View {
	return &View{
		Rotation:     float32(rotation),
		cosR:         float32(math.Cos(rotation)),
		sinR:         float32(math.Sin(rotation)),
		TranslationX: float32(translationX),
		TranslationY: float32(translationY),
		ViewportW:    viewportW,
		ViewportH:    viewportH,
	}
}

// Apply maps a field-local point (after group recentering) plus a
// world-frame translation to screen coordinates. The local frame is
// rotated by the field angle and centered on the viewport.
func (v *View) Apply(localX, localY, worldDX, worldDY float32) (sx, sy float32) {
	wx := localX*v.cosR - localY*v.sinR + worldDX + v.TranslationX
	wy := localX*v.sinR + localY*v.cosR + worldDY + v.TranslationY
	sx = v.ViewportW/2 + wx
	sy = v.ViewportH/2 + wy
	return sx, sy
}

// Resize updates the viewport dimensions.
func (v *View) Resize(viewportW, viewportH float32) {
	if viewportW == v.ViewportW && viewportH == v.ViewportH {
		return
	}
	v.ViewportW = viewportW
	v.ViewportH = viewportH
}

// Visible reports whether a dot at the given screen position with the
// given radius could appear on screen (conservative cull check).
func (v *View) Visible(sx, sy, radius float32) bool {
	return sx >= -radius && sx <= v.ViewportW+radius &&
		sy >= -radius && sy <= v.ViewportH+radius
}
