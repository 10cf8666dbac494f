package engine

import "math"

// LayoutState is the snapshot of layout-dependent constants consumed
// by the wave animator and the presentation sink. Recomputed only on
// rebuild, never per frame.
type LayoutState struct {
	HasData  bool
	Diameter float64
	XSpacing float64
	YSpacing float64

	// Depth projection baseline
	BaseDepth float64

	// Wave constants converted to pixels for this spacing
	Amplitude          float64
	SecondaryAmplitude float64
	RippleAmplitude    float64
	WaveLength         float64 // cell columns, floored against zero

	// Recenter offset keeping the bounding-box center at the origin
	GroupOffsetX float64
	GroupOffsetY float64
}

// spacing derives the dot diameter and grid spacings from the
// viewport. Pure function of the viewport size and fixed multipliers.
func (p *Params) spacing(viewportW, viewportH float64) (diameter, xs, ys float64) {
	minDim := viewportW
	if viewportH < minDim {
		minDim = viewportH
	}
	diameter = clamp(minDim*p.DiameterFraction, p.MinDiameter, p.MaxDiameter)
	xs = diameter * p.XSpacingRatio
	ys = diameter * p.YSpacingRatio
	if xs < minSpacing {
		xs = minSpacing
	}
	if ys < minSpacing {
		ys = minSpacing
	}
	return diameter, xs, ys
}

// rebuild replaces the entire instance table for the given viewport
// and column origin. Idempotent: calling it twice with the same inputs
// produces the same table.
func (e *Engine) rebuild(viewportW, viewportH float64, columnOrigin int) {
	if viewportW <= 0 || viewportH <= 0 {
		e.layout = LayoutState{}
		e.store.release()
		return
	}

	p := &e.params
	diameter, xs, ys := p.spacing(viewportW, viewportH)
	margin := diameter/2 + p.SafetyPadding

	// Viewport corners, centered at the origin, rotated by the inverse
	// field angle into the grid's local frame.
	halfW, halfH := viewportW/2, viewportH/2
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range [4][2]float64{
		{-halfW, -halfH}, {halfW, -halfH}, {-halfW, halfH}, {halfW, halfH},
	} {
		lx := c[0]*p.CosR + c[1]*p.SinR
		ly := -c[0]*p.SinR + c[1]*p.CosR
		minX = math.Min(minX, lx)
		maxX = math.Max(maxX, lx)
		minY = math.Min(minY, ly)
		maxY = math.Max(maxY, ly)
	}
	minX -= margin
	maxX += margin
	minY -= margin
	maxY += margin

	rowMin := int(math.Floor(minY/ys)) - 1
	rowMax := int(math.Ceil(maxY/ys)) + 1

	// First pass: sum row widths to size the table.
	count := 0
	for row := rowMin; row <= rowMax; row++ {
		cMin, cMax := p.columnRange(row, minX, maxX, xs)
		count += cMax - cMin + 1
	}
	if count <= 0 {
		e.layout = LayoutState{}
		e.store.release()
		return
	}

	e.store.grow(count)

	// Second pass: populate static fields and accumulate the bounding
	// box of placed cells.
	bbMinX, bbMinY := math.Inf(1), math.Inf(1)
	bbMaxX, bbMaxY := math.Inf(-1), math.Inf(-1)
	idx := 0
	for row := rowMin; row <= rowMax; row++ {
		shift := rowShift(row)
		cMin, cMax := p.columnRange(row, minX, maxX, xs)
		for col := cMin; col <= cMax; col++ {
			inst := &e.store.instances[idx]
			inst.BaseX = (float64(col) + shift) * xs
			inst.BaseY = float64(row) * ys
			inst.Row = row
			inst.Col = col
			inst.WorldColumn = col + columnOrigin
			inst.BaseOpacity = e.policy.CellOpacity(row, inst.WorldColumn)
			inst.Height = 0
			inst.Scale = 1
			inst.Opacity = inst.BaseOpacity

			bbMinX = math.Min(bbMinX, inst.BaseX)
			bbMaxX = math.Max(bbMaxX, inst.BaseX)
			bbMinY = math.Min(bbMinY, inst.BaseY)
			bbMaxY = math.Max(bbMaxY, inst.BaseY)
			idx++
		}
	}
	e.store.active = count

	baseDepth := p.CameraDistance
	if baseDepth < minDepth {
		baseDepth = minDepth
	}
	waveLength := p.Wave.Length
	if waveLength < minWaveLength {
		waveLength = minWaveLength
	}

	e.layout = LayoutState{
		HasData:            true,
		Diameter:           diameter,
		XSpacing:           xs,
		YSpacing:           ys,
		BaseDepth:          baseDepth,
		Amplitude:          p.Wave.Amplitude * diameter,
		SecondaryAmplitude: p.Wave.SecondaryAmplitude * diameter,
		RippleAmplitude:    p.Wave.RippleAmplitude * diameter,
		WaveLength:         waveLength,
		// Keep the visible pattern centered as spacing changes
		GroupOffsetX: -(bbMinX + bbMaxX) / 2,
		GroupOffsetY: -(bbMinY + bbMaxY) / 2,
	}
	e.scroll.Spacing = xs
	e.rebuilds++
}

// columnRange returns the inclusive column range covering the local X
// extent for one row, adjusted for the packed-row half shift.
func (p *Params) columnRange(row int, minX, maxX, xs float64) (cMin, cMax int) {
	shift := rowShift(row)
	cMin = int(math.Floor(minX/xs-shift)) - 1
	cMax = int(math.Ceil(maxX/xs-shift)) + 1
	return cMin, cMax
}
