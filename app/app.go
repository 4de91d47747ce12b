// Package app wires the animation pipeline together: it registers the
// window delegate and drawable view types through the callback bridge and
// hands the resulting app to a host runner.
package app

import (
	"fmt"
	"time"

	"plasma/bridge"
	"plasma/frame"
	"plasma/hal"
)

// Type and selector names registered with the callback bridge.
const (
	delegateTypeName = "plasmaWindowDelegate"
	viewTypeName     = "plasmaView"
	selPaint         = "paint"
	selClose         = "closeRequested"
)

// Config fixes the animation parameters.
type Config struct {
	Width    int
	Height   int
	Interval time.Duration // time per animation step
	HUD      bool          // stamp the frame index onto each frame
}

// App owns the animation: a frame producer driven by host ticks and a paint
// path driven by host repaints, meeting at one lock-guarded frame slot.
type App struct {
	producer *frame.Producer
	shared   *frame.Shared
	repaint  hal.Repainter

	index uint64 // owned by the tick goroutine

	paint bridge.PaintFunc
	close bridge.CloseFunc
}

// New builds the app. Any bridge failure is a fatal setup error and is
// returned to the caller; there is nothing to retry.
func New(rp hal.Repainter, cfg Config) (*App, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("app: invalid frame size %dx%d", cfg.Width, cfg.Height)
	}

	a := &App{
		producer: frame.NewProducer(cfg.Width, cfg.Height, cfg.Interval, cfg.HUD),
		shared:   &frame.Shared{},
		repaint:  rp,
	}

	reg := bridge.NewRegistry(hal.BaseTypes()...)

	delegate, err := reg.DefineType("windowDelegate", delegateTypeName)
	if err != nil {
		return nil, err
	}
	if err := delegate.Bind(selClose, bridge.CloseFunc(func() bool { return true })); err != nil {
		return nil, err
	}
	if err := delegate.Finalize(); err != nil {
		return nil, err
	}

	view, err := reg.DefineType("view", viewTypeName)
	if err != nil {
		return nil, err
	}
	p := &painter{shared: a.shared}
	if err := view.Bind(selPaint, bridge.PaintFunc(p.paint)); err != nil {
		return nil, err
	}
	if err := view.Finalize(); err != nil {
		return nil, err
	}

	delegateObj, err := reg.New(delegateTypeName)
	if err != nil {
		return nil, err
	}
	viewObj, err := reg.New(viewTypeName)
	if err != nil {
		return nil, err
	}

	closeFn, ok := delegateObj.CloseFunc(selClose)
	if !ok {
		return nil, fmt.Errorf("app: %s has no %q handler", delegateTypeName, selClose)
	}
	paintFn, ok := viewObj.PaintFunc(selPaint)
	if !ok {
		return nil, fmt.Errorf("app: %s has no %q handler", viewTypeName, selPaint)
	}
	a.close = closeFn
	a.paint = paintFn
	return a, nil
}

// Tick advances the animation one step: render the next frame outside the
// lock, publish it, then request a repaint with the lock already released
// so the paint path is never blocked behind a host call.
func (a *App) Tick() {
	i := a.index
	a.index++
	buf := a.producer.Frame(i)
	a.shared.Publish(buf)
	if a.repaint != nil {
		a.repaint.RequestRepaint()
	}
}

// Paint dispatches a host repaint to the view's bound paint selector.
func (a *App) Paint(ctx hal.DrawContext) { a.paint(ctx) }

// CloseRequested dispatches to the delegate's bound close selector.
func (a *App) CloseRequested() bool { return a.close() }
