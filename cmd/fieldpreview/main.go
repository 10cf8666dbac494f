// Field preview tool - interactive tuning with sliders.
//
// Renders the live dot field alongside a control panel for the wave,
// scroll and rotation parameters. Changing a value rebuilds the engine
// in place so the effect is visible immediately.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/driftfield/camera"
	"github.com/pthm-cable/driftfield/config"
	"github.com/pthm-cable/driftfield/engine"
	"github.com/pthm-cable/driftfield/renderer"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	panelWidth   = 300
	previewWidth = windowWidth - panelWidth
)

// tuning is the slider-exposed subset of the engine parameters.
type tuning struct {
	Amplitude   float32
	WaveLength  float32
	WaveSpeed   float32
	ScrollSpeed float32
	RotationDeg float32
	Seed        uint32
}

func main() {
	if err := config.Init(""); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rl.InitWindow(windowWidth, windowHeight, "Drift Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	tune := tuning{
		Amplitude:   float32(cfg.Wave.Amplitude),
		WaveLength:  float32(cfg.Wave.Length),
		WaveSpeed:   float32(cfg.Wave.Speed),
		ScrollSpeed: float32(cfg.Scroll.Speed),
		RotationDeg: float32(cfg.Camera.RotationZ),
		Seed:        1234,
	}

	eng := buildEngine(cfg, tune)
	view := camera.New(
		float64(tune.RotationDeg)*math.Pi/180,
		cfg.Camera.TranslationX, cfg.Camera.TranslationY,
		previewWidth, windowHeight,
	)

	sprites := renderer.NewSpriteRenderer(view, cfg.Sprite.Path)
	sprites.Init()
	defer sprites.Unload()

	background := renderer.NewBackgroundRenderer(
		rl.Color{R: 12, G: 14, B: 24, A: 255},
		rl.Color{R: 4, G: 5, B: 10, A: 255},
	)

	needsRebuild := false

	for !rl.WindowShouldClose() {
		if needsRebuild {
			eng = buildEngine(cfg, tune)
			view = camera.New(
				float64(tune.RotationDeg)*math.Pi/180,
				cfg.Camera.TranslationX, cfg.Camera.TranslationY,
				previewWidth, windowHeight,
			)
			sprites.SetView(view)
			needsRebuild = false
		}

		eng.Step(float64(rl.GetFrameTime()))

		rl.BeginDrawing()
		background.Draw(previewWidth, windowHeight)
		rl.BeginScissorMode(0, 0, previewWidth, windowHeight)
		eng.Render(sprites)
		rl.EndScissorMode()

		// Control panel
		rl.DrawRectangle(previewWidth, 0, panelWidth, windowHeight, rl.Color{R: 28, G: 30, B: 38, A: 255})
		panelX := float32(previewWidth + 15)
		panelY := float32(15)

		rl.DrawText("Field Parameters", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 40

		changed := false
		changed = slider(&panelX, &panelY, "Wave amplitude (diameters)", "%.2f", &tune.Amplitude, 0, 2) || changed
		changed = slider(&panelX, &panelY, "Wave length (columns)", "%.1f", &tune.WaveLength, 1, 12) || changed
		changed = slider(&panelX, &panelY, "Wave speed (rad/s)", "%.2f", &tune.WaveSpeed, 0, 3) || changed
		changed = slider(&panelX, &panelY, "Scroll speed (px/s)", "%.0f", &tune.ScrollSpeed, 0, 120) || changed
		changed = slider(&panelX, &panelY, "Rotation (deg)", "%.1f", &tune.RotationDeg, 0, 45) || changed
		if changed {
			needsRebuild = true
		}

		panelY += 10
		rl.DrawLine(int32(panelX), int32(panelY), int32(panelX)+panelWidth-30, int32(panelY), rl.Gray)
		panelY += 15

		rl.DrawText(
			fmt.Sprintf("Instances: %d", len(eng.Instances())),
			int32(panelX), int32(panelY), 16, rl.LightGray,
		)
		panelY += 22
		rl.DrawText(
			fmt.Sprintf("Rebuilds: %d  Origin: %d", eng.Rebuilds(), eng.Scroll().ColumnOrigin),
			int32(panelX), int32(panelY), 16, rl.LightGray,
		)
		panelY += 22
		rl.DrawText(
			fmt.Sprintf("FPS: %d", rl.GetFPS()),
			int32(panelX), int32(panelY), 16, rl.LightGray,
		)

		rl.EndDrawing()
	}
}

// slider draws one labeled slider row and reports whether the value moved.
func slider(panelX, panelY *float32, label, format string, value *float32, min, max float32) bool {
	rl.DrawText(label, int32(*panelX), int32(*panelY), 14, rl.Gray)
	*panelY += 18
	next := gui.SliderBar(
		rl.Rectangle{X: *panelX, Y: *panelY, Width: panelWidth - 90, Height: 20},
		"", "",
		*value, min, max,
	)
	rl.DrawText(fmt.Sprintf(format, *value), int32(*panelX+panelWidth-80), int32(*panelY+2), 16, rl.RayWhite)
	*panelY += 35
	if next != *value {
		*value = next
		return true
	}
	return false
}

// buildEngine constructs a fresh engine from the config plus the
// current slider values.
func buildEngine(cfg *config.Config, tune tuning) *engine.Engine {
	params := engine.ParamsFromConfig(cfg)
	params.Wave.Amplitude = float64(tune.Amplitude)
	params.Wave.Length = float64(tune.WaveLength)
	params.Wave.Speed = float64(tune.WaveSpeed)
	params.ScrollSpeed = float64(tune.ScrollSpeed)

	rad := float64(tune.RotationDeg) * math.Pi / 180
	params.Rotation = rad
	params.CosR = math.Cos(rad)
	params.SinR = math.Sin(rad)

	return engine.New(
		params,
		engine.PolicyFromConfig(cfg, tune.Seed),
		previewWidth, windowHeight,
	)
}
