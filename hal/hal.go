// Package hal is the only contact point between the animation core and the
// host windowing runtime. It publishes the drawing surface handed to paint
// callbacks, the repaint-request handle, and two interchangeable hosts: a
// desktop window (ebiten) and a headless software runner.
package hal

// Origin identifies where a drawing surface places its (0,0) pixel.
type Origin uint8

const (
	OriginTopLeft Origin = iota
	OriginBottomLeft
)

// DrawContext is the drawing surface a host hands to a paint callback. It is
// only valid for the duration of that callback.
//
// Translate and Scale prepend to the current transform, so the most recently
// issued operation applies first to drawn geometry. Save/Restore manage a
// stack of transforms.
type DrawContext interface {
	// Size returns the destination bounds in pixels.
	Size() (width, height int)
	// Origin reports the surface's coordinate origin. Callers drawing
	// top-row-first pixel data into a bottom-left-origin surface must flip
	// the vertical axis themselves.
	Origin() Origin
	Save()
	Restore()
	Translate(dx, dy float64)
	Scale(sx, sy float64)
	// DrawARGB draws a width x height block of packed 32-bit color samples
	// (byte order A,R,G,B, stride bytes per row) scaled into the rectangle
	// (0,0,destWidth,destHeight) under the current transform. The host
	// primitive performs the scaling. pix must stay valid and unmutated
	// until DrawARGB returns.
	DrawARGB(pix []byte, width, height, stride, destWidth, destHeight int) error
}

// Repainter schedules a window redraw on the host's own paint cycle. Safe to
// call from any goroutine; requests with no intervening paint coalesce.
type Repainter interface {
	RequestRepaint()
}

// App is what a host runs. Tick may be invoked off the host's UI goroutine;
// Paint and CloseRequested are invoked on it.
type App interface {
	// Tick advances the animation one step.
	Tick()
	// Paint redraws the window content into ctx.
	Paint(ctx DrawContext)
	// CloseRequested handles the user closing the window; returning true
	// lets the host terminate its event loop.
	CloseRequested() bool
}

// BaseTypes returns the object type names the host publishes for extension
// through the callback bridge.
func BaseTypes() []string {
	return []string{"object", "view", "windowDelegate"}
}
