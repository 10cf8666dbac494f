package renderer

import rl "github.com/gen2brain/raylib-go/raylib"

// BackgroundRenderer fills the frame with a soft vertical gradient so
// the dot field reads as a backdrop rather than floating on black.
type BackgroundRenderer struct {
	top    rl.Color
	bottom rl.Color
}

// NewBackgroundRenderer creates a background renderer with the given
// gradient endpoints.
func NewBackgroundRenderer(top, bottom rl.Color) *BackgroundRenderer {
	return &BackgroundRenderer{top: top, bottom: bottom}
}

// Draw fills the current viewport.
func (b *BackgroundRenderer) Draw(screenW, screenH int32) {
	rl.DrawRectangleGradientV(0, 0, screenW, screenH, b.top, b.bottom)
}
