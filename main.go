package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/driftfield/camera"
	"github.com/pthm-cable/driftfield/config"
	"github.com/pthm-cable/driftfield/engine"
	"github.com/pthm-cable/driftfield/renderer"
	"github.com/pthm-cable/driftfield/telemetry"
	"github.com/pthm-cable/driftfield/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Uint("seed", 0, "Brightness seed (0 = config value, then time-based)")
	maxFrames := flag.Int("max-frames", 0, "Stop after N frames (0 = unlimited)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Session seed: flag beats config; zero falls back to the clock
	sessionSeed := uint32(*seed)
	if sessionSeed == 0 {
		sessionSeed = cfg.Opacity.Seed
	}
	if sessionSeed == 0 {
		sessionSeed = uint32(time.Now().UnixNano())
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to initialize output directory", "error", err)
		os.Exit(1)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Warn("failed to snapshot config", "error", err)
	}

	slog.Info("starting drift field",
		"seed", sessionSeed,
		"headless", *headless,
		"max_frames", *maxFrames,
	)

	if *headless {
		runHeadless(cfg, sessionSeed, *maxFrames, *logStats, output)
		return
	}
	runWindowed(cfg, sessionSeed, *maxFrames, *logStats, output)
}

// runHeadless drives the engine at a fixed timestep without graphics.
func runHeadless(cfg *config.Config, seed uint32, maxFrames int, logStats bool, output *telemetry.OutputManager) {
	eng := engine.New(
		engine.ParamsFromConfig(cfg),
		engine.PolicyFromConfig(cfg, seed),
		float64(cfg.Screen.Width), float64(cfg.Screen.Height),
	)

	stats := telemetry.NewCollector(cfg.Telemetry.StatsWindow)
	const dt = 1.0 / 60.0

	for frame := 0; maxFrames == 0 || frame < maxFrames; frame++ {
		start := time.Now()
		eng.Step(dt)
		frameMs := float64(time.Since(start)) / float64(time.Millisecond)

		if stats.RecordFrame(dt, frameMs) {
			flushStats(stats, eng, logStats, output)
		}
	}
}

// runWindowed runs the interactive raylib loop.
func runWindowed(cfg *config.Config, seed uint32, maxFrames int, logStats bool, output *telemetry.OutputManager) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Drift Field")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	w := float64(rl.GetScreenWidth())
	h := float64(rl.GetScreenHeight())

	eng := engine.New(
		engine.ParamsFromConfig(cfg),
		engine.PolicyFromConfig(cfg, seed),
		w, h,
	)

	view := camera.New(
		cfg.Derived.RotationRad,
		cfg.Camera.TranslationX, cfg.Camera.TranslationY,
		float32(w), float32(h),
	)

	sprites := renderer.NewSpriteRenderer(view, cfg.Sprite.Path)
	sprites.Init()
	defer sprites.Unload()

	background := renderer.NewBackgroundRenderer(
		rl.Color{R: 12, G: 14, B: 24, A: 255},
		rl.Color{R: 4, G: 5, B: 10, A: 255},
	)

	hud := ui.NewHUD()
	perf := telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)
	stats := telemetry.NewCollector(cfg.Telemetry.StatsWindow)

	paused := false
	showHUD := true
	frame := 0

	for !rl.WindowShouldClose() {
		// Requery the real size on resize; never trust a cached value
		if rl.IsWindowResized() {
			w = float64(rl.GetScreenWidth())
			h = float64(rl.GetScreenHeight())
			eng.Resize(w, h)
			view.Resize(float32(w), float32(h))
		}

		if rl.IsKeyPressed(rl.KeySpace) {
			paused = !paused
		}
		if rl.IsKeyPressed(rl.KeyH) {
			showHUD = !showHUD
		}

		dt := float64(rl.GetFrameTime())

		perf.StartFrame()
		if !paused {
			perf.StartPhase(telemetry.PhaseLayout)
			eng.BeginFrame()
			perf.StartPhase(telemetry.PhaseScroll)
			eng.AdvanceScroll(dt)
			perf.StartPhase(telemetry.PhaseWave)
			eng.Animate(eng.Time() + dt)
		}

		rl.BeginDrawing()
		background.Draw(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))

		perf.StartPhase(telemetry.PhaseDraw)
		eng.Render(sprites)

		if showHUD {
			hud.Draw(ui.HUDData{
				Title:         "Drift Field",
				InstanceCount: len(eng.Instances()),
				Rebuilds:      eng.Rebuilds(),
				ColumnOrigin:  eng.Scroll().ColumnOrigin,
				ScrollOffset:  eng.Scroll().Offset,
				FrameMsAvg:    float64(perf.Stats().AvgFrameDuration) / float64(time.Millisecond),
				FPS:           rl.GetFPS(),
				Paused:        paused,
				ScreenWidth:   int32(rl.GetScreenWidth()),
				ScreenHeight:  int32(rl.GetScreenHeight()),
			})
			hud.DrawControls(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()),
				"SPACE pause | H toggle HUD | ESC quit")
		}
		rl.EndDrawing()
		perf.EndFrame()

		if !paused {
			if stats.RecordFrame(dt, dt*1000) {
				flushStats(stats, eng, logStats, output)
			}
		}

		frame++
		if maxFrames > 0 && frame >= maxFrames {
			break
		}
	}
}

// flushStats closes the current stats window and forwards it to the
// configured outputs.
func flushStats(stats *telemetry.Collector, eng *engine.Engine, logStats bool, output *telemetry.OutputManager) {
	insts := eng.Instances()
	opacities := make([]float64, len(insts))
	for i := range insts {
		opacities[i] = insts[i].Opacity
	}

	ws := stats.Flush(eng.Time(), opacities, eng.Rebuilds())
	if logStats {
		slog.Info("stats window",
			"sim_time", ws.SimTimeSec,
			"instances", ws.InstanceCount,
			"rebuilds", ws.Rebuilds,
			"frame_ms_mean", ws.FrameMsMean,
			"frame_ms_p95", ws.FrameMsP95,
			"opacity_mean", ws.OpacityMean,
		)
	}
	if err := output.WriteWindow(ws); err != nil {
		slog.Warn("failed to write stats window", "error", err)
	}
}
