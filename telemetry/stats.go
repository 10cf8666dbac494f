package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated frame statistics for a time window.
type WindowStats struct {
	WindowEndFrame int     `csv:"window_end"`
	SimTimeSec     float64 `csv:"sim_time"`

	// Instance table at window end
	InstanceCount int `csv:"instances"`
	Rebuilds      int `csv:"rebuilds"`

	// Frame time distribution over the window, milliseconds
	FrameMsMean float64 `csv:"frame_ms_mean"`
	FrameMsStd  float64 `csv:"frame_ms_std"`
	FrameMsP50  float64 `csv:"frame_ms_p50"`
	FrameMsP95  float64 `csv:"frame_ms_p95"`

	// Live opacity distribution at window end
	OpacityMean float64 `csv:"opacity_mean"`
	OpacityMin  float64 `csv:"opacity_min"`
	OpacityMax  float64 `csv:"opacity_max"`
}

// Collector accumulates frame times within the current stats window.
type Collector struct {
	windowSec float64
	frameMs   []float64
	elapsed   float64
	frame     int
}

// NewCollector creates a stats collector with the given window length
// in seconds.
func NewCollector(windowSec float64) *Collector {
	if windowSec <= 0 {
		windowSec = 5
	}
	return &Collector{windowSec: windowSec}
}

// RecordFrame adds one frame to the current window. Returns true when
// the window just closed and Flush should be called.
func (c *Collector) RecordFrame(dtSec, frameMs float64) bool {
	c.frame++
	c.elapsed += dtSec
	c.frameMs = append(c.frameMs, frameMs)
	return c.elapsed >= c.windowSec
}

// Flush aggregates and resets the current window. instanceOpacities
// and the counters describe the engine state at window end.
func (c *Collector) Flush(simTime float64, instanceOpacities []float64, rebuilds int) WindowStats {
	ws := WindowStats{
		WindowEndFrame: c.frame,
		SimTimeSec:     simTime,
		InstanceCount:  len(instanceOpacities),
		Rebuilds:       rebuilds,
	}

	if len(c.frameMs) > 0 {
		sorted := make([]float64, len(c.frameMs))
		copy(sorted, c.frameMs)
		sort.Float64s(sorted)

		ws.FrameMsMean = stat.Mean(sorted, nil)
		ws.FrameMsStd = stat.StdDev(sorted, nil)
		ws.FrameMsP50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
		ws.FrameMsP95 = stat.Quantile(0.95, stat.Empirical, sorted, nil)
	}

	if len(instanceOpacities) > 0 {
		sorted := make([]float64, len(instanceOpacities))
		copy(sorted, instanceOpacities)
		sort.Float64s(sorted)

		ws.OpacityMean = stat.Mean(sorted, nil)
		ws.OpacityMin = sorted[0]
		ws.OpacityMax = sorted[len(sorted)-1]
	}

	c.frameMs = c.frameMs[:0]
	c.elapsed = 0
	return ws
}
