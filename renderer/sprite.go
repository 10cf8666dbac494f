package renderer

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/driftfield/camera"
	"github.com/pthm-cable/driftfield/engine"
)

// SpriteRenderer draws the instance table as circle sprites. It is the
// presentation sink for the animation engine: the engine hands it a
// read-only frame, it submits draw calls and owns the GPU texture.
type SpriteRenderer struct {
	view *camera.View
	path string

	texture     rl.Texture2D
	textured    bool
	initialized bool
}

// NewSpriteRenderer creates a sprite renderer for the given view.
// path is the circle sprite asset; empty means untextured.
func NewSpriteRenderer(view *camera.View, path string) *SpriteRenderer {
	return &SpriteRenderer{view: view, path: path}
}

// SetView swaps the camera view, keeping the loaded texture. Used by
// tooling that recreates the view when the field rotation changes.
func (r *SpriteRenderer) SetView(view *camera.View) {
	r.view = view
}

// Init loads the sprite texture (must be called after the raylib
// window is created). Load failure is non-fatal: the renderer logs a
// warning and falls back to flat circles.
func (r *SpriteRenderer) Init() {
	if r.initialized {
		return
	}
	if r.path != "" {
		tex := rl.LoadTexture(r.path)
		if tex.ID == 0 {
			slog.Warn("sprite texture failed to load, drawing flat circles", "path", r.path)
		} else {
			rl.SetTextureFilter(tex, rl.FilterBilinear)
			r.texture = tex
			r.textured = true
		}
	}
	r.initialized = true
}

// Submit draws one frame of the instance table.
func (r *SpriteRenderer) Submit(frame engine.Frame) {
	if !r.initialized {
		r.Init()
	}

	tx := float32(frame.TranslateX)
	ty := float32(frame.TranslateY)
	diameter := float32(frame.Diameter)

	for i := range frame.Instances {
		inst := &frame.Instances[i]

		lx := float32(inst.BaseX + frame.GroupOffsetX)
		ly := float32(inst.BaseY + frame.GroupOffsetY)
		sx, sy := r.view.Apply(lx, ly, tx, ty)

		size := diameter * float32(inst.Scale)
		if size < 0.5 {
			size = 0.5
		}
		if !r.view.Visible(sx, sy, size) {
			continue
		}

		tint := rl.Color{R: 255, G: 255, B: 255, A: uint8(inst.Opacity * 255)}
		if r.textured {
			src := rl.NewRectangle(0, 0, float32(r.texture.Width), float32(r.texture.Height))
			dst := rl.NewRectangle(sx-size/2, sy-size/2, size, size)
			rl.DrawTexturePro(r.texture, src, dst, rl.NewVector2(0, 0), 0, tint)
		} else {
			rl.DrawCircleV(rl.NewVector2(sx, sy), size/2, tint)
		}
	}
}

// Unload frees the sprite texture. Safe to call more than once and
// mid-animation.
func (r *SpriteRenderer) Unload() {
	if r.textured {
		rl.UnloadTexture(r.texture)
		r.textured = false
	}
	r.initialized = false
}
