// Package engine implements the procedural dot-field animation core:
// visible-grid layout for an arbitrary viewport, deterministic
// per-cell brightness, bounded continuous scrolling and the per-frame
// wave/pulse field applied to every visible cell.
package engine

import "github.com/pthm-cable/driftfield/field"

// Frame is the read-only per-frame hand-off to the presentation sink.
// Instances aliases the engine's table and is only valid until the
// next Step.
type Frame struct {
	Instances []Instance
	Diameter  float64

	// Recenter offset in the local grid frame
	GroupOffsetX float64
	GroupOffsetY float64

	// Smooth sub-spacing translation in the world frame
	TranslateX float64
	TranslateY float64

	Rotation float64 // radians, fixed field angle
}

// Sink consumes the instance table each frame to draw it. Injected so
// the layout and animation logic never touch a real drawing surface.
type Sink interface {
	Submit(frame Frame)
}

// Engine owns all mutable field state. Single-threaded: every method
// must be called from the host's frame callback.
type Engine struct {
	params Params
	policy field.Policy

	store  store
	layout LayoutState
	scroll ScrollState

	viewportW float64
	viewportH float64

	// Resize notifications are deferred to the next Step so no rebuild
	// runs concurrently with a draw.
	pendingW    float64
	pendingH    float64
	havePending bool

	timeSec  float64
	rebuilds int
}

// New creates an engine and performs the initial mount rebuild for
// the given viewport. A zero-area viewport is tolerated; the engine
// idles until a valid resize arrives.
func New(params Params, policy field.Policy, viewportW, viewportH float64) *Engine {
	e := &Engine{
		params:    params,
		policy:    policy,
		viewportW: viewportW,
		viewportH: viewportH,
	}
	e.rebuild(viewportW, viewportH, 0)
	return e
}

// Resize records a container size change. The rebuild happens at the
// start of the next Step, never concurrently with a draw.
func (e *Engine) Resize(viewportW, viewportH float64) {
	e.pendingW = viewportW
	e.pendingH = viewportH
	e.havePending = true
}

// Step runs one frame pass: apply any pending resize, advance the
// scroll (which may trigger an origin-shift rebuild), then animate the
// wave field at the accumulated time. Callers that want per-phase
// timing invoke the three phases directly instead.
func (e *Engine) Step(dt float64) {
	e.BeginFrame()
	e.AdvanceScroll(dt)
	e.Animate(e.timeSec + dt)
}

// BeginFrame applies any pending resize before the frame's first
// mutation, so a rebuild never runs concurrently with a draw.
func (e *Engine) BeginFrame() {
	if !e.havePending {
		return
	}
	e.havePending = false
	if e.pendingW != e.viewportW || e.pendingH != e.viewportH || !e.layout.HasData {
		e.viewportW = e.pendingW
		e.viewportH = e.pendingH
		e.rebuild(e.viewportW, e.viewportH, e.scroll.ColumnOrigin)
	}
}

// Render submits the current frame to the sink. Nothing is submitted
// while the layout is empty, so a degenerate viewport draws nothing.
func (e *Engine) Render(sink Sink) {
	if !e.layout.HasData || e.store.active == 0 {
		return
	}
	tx, ty := e.scroll.translation(e.params.CosR, e.params.SinR)
	sink.Submit(Frame{
		Instances:    e.store.view(),
		Diameter:     e.layout.Diameter,
		GroupOffsetX: e.layout.GroupOffsetX,
		GroupOffsetY: e.layout.GroupOffsetY,
		TranslateX:   tx,
		TranslateY:   ty,
		Rotation:     e.params.Rotation,
	})
}

// Instances returns the active instance table. Read-only hand-off;
// valid until the next Step.
func (e *Engine) Instances() []Instance {
	return e.store.view()
}

// Layout returns a copy of the current layout snapshot.
func (e *Engine) Layout() LayoutState {
	return e.layout
}

// Scroll returns a copy of the current scroll state.
func (e *Engine) Scroll() ScrollState {
	return e.scroll
}

// Rebuilds reports how many non-degenerate rebuilds have run.
func (e *Engine) Rebuilds() int {
	return e.rebuilds
}

// Time returns the accumulated animation time in seconds.
func (e *Engine) Time() float64 {
	return e.timeSec
}
