package engine

import "math"

// ScrollState integrates the constant horizontal velocity and tracks
// the integer column-origin shift that keeps instance coordinates
// bounded. The continuous offset and the discrete origin satisfy
// |Offset - ColumnOrigin*Spacing| < Spacing outside of AdvanceScroll.
type ScrollState struct {
	Offset       float64 // continuous scroll offset, pixels
	ColumnOrigin int     // accumulated whole-spacing shifts
	Spacing      float64 // xSpacing at last rebuild
	Residual     float64 // sub-spacing remainder driving the smooth translation
}

// AdvanceScroll integrates dt seconds of scrolling. Whenever the
// offset has drifted a full spacing unit past the current origin, the
// origin shifts by the whole number of crossed units and the layout is
// rebuilt so the same world columns keep their brightness.
func (e *Engine) AdvanceScroll(dt float64) {
	e.scroll.Offset += dt * e.params.ScrollSpeed

	// Without a layout there is no spacing to cross; the offset keeps
	// accumulating and the first valid rebuild resynchronizes.
	if !e.layout.HasData {
		e.scroll.Residual = 0
		return
	}

	spacing := e.scroll.Spacing
	if spacing < minSpacing {
		spacing = minSpacing
	}

	delta := e.scroll.Offset - float64(e.scroll.ColumnOrigin)*spacing
	if math.Abs(delta) >= spacing {
		steps := int(delta / spacing) // truncates toward zero
		if steps != 0 {
			e.scroll.ColumnOrigin += steps
			e.rebuild(e.viewportW, e.viewportH, e.scroll.ColumnOrigin)
			// Rebuild may change the spacing (it tracks the viewport),
			// so recompute the remainder against the fresh value.
			spacing = e.scroll.Spacing
			if spacing < minSpacing {
				spacing = minSpacing
			}
			delta = e.scroll.Offset - float64(e.scroll.ColumnOrigin)*spacing
		}
	}
	e.scroll.Residual = delta
}

// translation returns the world-frame offset applied to the whole
// field between discrete rebuilds. The field slides opposite to the
// rotated scroll axis.
func (s *ScrollState) translation(cosR, sinR float64) (x, y float64) {
	return -s.Residual * cosR, -s.Residual * sinR
}
