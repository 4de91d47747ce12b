package hal

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Width  int
	Height int
	Hz     int
	Ticks  uint64 // stop after N ticks; 0 runs until ctx is done
	Log    Logger
}

// Headless is the windowless host's repaint handle.
type Headless struct {
	dirty atomic.Bool
}

// RequestRepaint marks the surface dirty; see Window.RequestRepaint.
func (h *Headless) RequestRepaint() { h.dirty.Store(true) }

func (h *Headless) consumeRepaint() bool { return h.dirty.Swap(false) }

// RunHeadless drives the app without opening a window: the same tick/paint
// cycle as the window host, painting into a software surface. Useful for
// soak runs and environments with no display.
func RunHeadless(ctx context.Context, newApp func(Repainter) (App, error), cfg HeadlessConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("hal: invalid surface size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	interval := time.Second / time.Duration(cfg.Hz)
	if interval <= 0 {
		return fmt.Errorf("hal: invalid tick rate: %d", cfg.Hz)
	}
	if cfg.Log == nil {
		cfg.Log = NewLogger(io.Discard)
	}

	h := &Headless{}
	a, err := newApp(h)
	if err != nil {
		return err
	}

	surface := NewSoftwareSurface(cfg.Width, cfg.Height, OriginBottomLeft)
	t := time.NewTicker(interval)
	defer t.Stop()

	var ticks, paints uint64
	for {
		select {
		case <-ctx.Done():
			cfg.Log.WriteLineString(fmt.Sprintf("headless: stopped after %d ticks, %d paints", ticks, paints))
			return ctx.Err()
		case <-t.C:
			a.Tick()
			if h.consumeRepaint() {
				a.Paint(surface)
				paints++
			}
			ticks++
			if cfg.Ticks > 0 && ticks >= cfg.Ticks {
				cfg.Log.WriteLineString(fmt.Sprintf("headless: done after %d ticks, %d paints", ticks, paints))
				return nil
			}
		}
	}
}
