// Package ui renders the debug overlay for the demo application.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the overlay.
type HUDData struct {
	Title         string
	InstanceCount int
	Rebuilds      int
	ColumnOrigin  int
	ScrollOffset  float64
	FrameMsAvg    float64
	FPS           int32
	Paused        bool
	ScreenWidth   int32
	ScreenHeight  int32
}

// HUD renders the debug heads-up display.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Instances: %d | Rebuilds: %d | Origin: %d", data.InstanceCount, data.Rebuilds, data.ColumnOrigin),
		10, 35, 16, rl.LightGray,
	)

	rl.DrawText(
		fmt.Sprintf("Scroll: %.1f px | FPS: %d | Frame: %.2f ms", data.ScrollOffset, data.FPS, data.FrameMsAvg),
		10, 55, 16, rl.LightGray,
	)

	statusText := "Running"
	if data.Paused {
		statusText = "PAUSED"
	}
	rl.DrawText(statusText, 10, 75, 16, rl.Yellow)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
