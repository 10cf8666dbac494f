package engine

import "math"

// Opacity modulation bands. The wave band breathes around the
// baseline, the pulse band only ever brightens.
const (
	waveDimFloor    = 0.9
	waveBrightCeil  = 1.1
	pulseBrightCeil = 1.2
)

// Animate recomputes every instance's displacement, depth scale and
// live opacity for the given time. No-op when the layout is empty.
//
// Three superposed waves plus an independent pulse; their distinct
// spatial and temporal frequencies produce the rolling ripple, so the
// terms must stay separate.
func (e *Engine) Animate(t float64) {
	e.timeSec = t
	ls := &e.layout
	if !ls.HasData || e.store.active == 0 {
		return
	}

	w := &e.params.Wave
	xs := ls.XSpacing
	if xs < minSpacing {
		xs = minSpacing
	}
	wl := ls.WaveLength
	if wl < minWaveLength {
		wl = minWaveLength
	}

	// Wave coordinates are in cell columns so the pattern scale tracks
	// the grid rather than the screen resolution.
	scrollCols := e.scroll.Offset / xs
	zScale := ls.YSpacing / xs

	amp := ls.Amplitude
	secAmp := ls.SecondaryAmplitude
	ripAmp := ls.RippleAmplitude

	for i := range e.store.view() {
		inst := &e.store.instances[i]

		wx := float64(inst.WorldColumn) + rowShift(inst.Row) - scrollCols
		wz := float64(inst.Row) * zScale

		primary := math.Sin(wx/wl+t*w.Speed) * amp
		secondary := math.Sin(wz/(wl*0.7)+wx/(wl*1.3)+t*w.Speed*w.SecondaryFrequency) * secAmp
		ripple := math.Sin(wx*w.RippleFreqX+wz*w.RippleFreqZ+t*w.RippleSpeed) * ripAmp

		total := primary + secondary + ripple
		inst.Height = total
		inst.Scale = (ls.BaseDepth + total) / ls.BaseDepth

		if amp <= 0 {
			// Degenerate amplitude: no modulation band to normalize
			// against, so brightness falls back to the baseline.
			inst.Opacity = inst.BaseOpacity
			continue
		}

		waveIntensity := clamp((total+amp)/(2*amp), 0, 1)

		pulsePhase := math.Mod(t*w.PulseSpeed+wx*w.PulseSpatialX+wz*w.PulseSpatialZ, 2*math.Pi)
		pulseIntensity := (math.Sin(pulsePhase) + 1) / 2
		sharpPulse := math.Pow(pulseIntensity, w.PulseSharpen)

		mult := lerp(waveDimFloor, waveBrightCeil, waveIntensity) * lerp(1.0, pulseBrightCeil, sharpPulse)
		o := inst.BaseOpacity * mult
		if o > 1 {
			o = 1
		}
		inst.Opacity = o
	}
}
