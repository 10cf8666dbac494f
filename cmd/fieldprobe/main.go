// Field probe - deterministic engine snapshot tool.
//
// Runs one layout rebuild and wave pass for a fixed viewport, seed and
// time, then prints the summary and optionally dumps the full instance
// table as CSV. Regression baselines in the engine tests were captured
// with this tool.
//
// Usage: go run ./cmd/fieldprobe -width 1000 -height 1000 -seed 1234 -out instances.csv
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/driftfield/config"
	"github.com/pthm-cable/driftfield/engine"
)

// instanceRecord is the CSV row for one instance.
type instanceRecord struct {
	Index       int     `csv:"index"`
	Row         int     `csv:"row"`
	Col         int     `csv:"col"`
	WorldColumn int     `csv:"world_col"`
	BaseX       float64 `csv:"base_x"`
	BaseY       float64 `csv:"base_y"`
	BaseOpacity float64 `csv:"base_opacity"`
	Height      float64 `csv:"height"`
	Scale       float64 `csv:"scale"`
	Opacity     float64 `csv:"opacity"`
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	width := flag.Float64("width", 1000, "Viewport width")
	height := flag.Float64("height", 1000, "Viewport height")
	seed := flag.Uint("seed", 1234, "Brightness seed")
	timeSec := flag.Float64("t", 0, "Animation time in seconds")
	scrollSec := flag.Float64("scroll", 0, "Seconds of scrolling to apply before sampling")
	out := flag.String("out", "", "CSV output path (empty = summary only)")

	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	eng := engine.New(
		engine.ParamsFromConfig(cfg),
		engine.PolicyFromConfig(cfg, uint32(*seed)),
		*width, *height,
	)
	if *scrollSec > 0 {
		eng.AdvanceScroll(*scrollSec)
	}
	eng.Animate(*timeSec)

	insts := eng.Instances()
	if len(insts) == 0 {
		slog.Info("degenerate viewport, no instances", "width", *width, "height", *height)
		return
	}

	minOp, maxOp := insts[0].BaseOpacity, insts[0].BaseOpacity
	for _, inst := range insts {
		if inst.BaseOpacity < minOp {
			minOp = inst.BaseOpacity
		}
		if inst.BaseOpacity > maxOp {
			maxOp = inst.BaseOpacity
		}
	}

	ls := eng.Layout()
	slog.Info("probe",
		"instances", len(insts),
		"diameter", ls.Diameter,
		"x_spacing", ls.XSpacing,
		"y_spacing", ls.YSpacing,
		"min_base_opacity", minOp,
		"max_base_opacity", maxOp,
		"instance0_x", insts[0].BaseX,
		"instance0_y", insts[0].BaseY,
		"instance0_row", insts[0].Row,
		"instance0_col", insts[0].Col,
		"column_origin", eng.Scroll().ColumnOrigin,
	)

	if *out == "" {
		return
	}

	records := make([]instanceRecord, len(insts))
	for i, inst := range insts {
		records[i] = instanceRecord{
			Index:       i,
			Row:         inst.Row,
			Col:         inst.Col,
			WorldColumn: inst.WorldColumn,
			BaseX:       inst.BaseX,
			BaseY:       inst.BaseY,
			BaseOpacity: inst.BaseOpacity,
			Height:      inst.Height,
			Scale:       inst.Scale,
			Opacity:     inst.Opacity,
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		slog.Error("failed to create output file", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := gocsv.Marshal(records, f); err != nil {
		slog.Error("failed to write CSV", "error", err)
		os.Exit(1)
	}
	slog.Info("wrote instance table", "path", *out, "rows", len(records))
}
