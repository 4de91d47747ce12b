package hal

import (
	"errors"
	"fmt"
	"image"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"plasma/internal/buildinfo"
)

// WindowConfig describes the desktop window host.
type WindowConfig struct {
	Title          string
	Width          int // content size in pixels; the window opens at this size
	Height         int
	StepsPerSecond int // animation tick rate (default 60)
	Log            Logger
}

// Window is the window host's repaint handle. It is handed to the app once
// during setup and is read-only from the app's side afterwards.
type Window struct {
	dirty atomic.Bool
}

// RequestRepaint marks the window content dirty. Fire-and-forget: the actual
// redraw happens on the host's paint cycle, and multiple requests with no
// intervening paint coalesce into one.
func (w *Window) RequestRepaint() { w.dirty.Store(true) }

// consumeRepaint reports whether a repaint was requested since the last call.
func (w *Window) consumeRepaint() bool { return w.dirty.Swap(false) }

// RunWindow opens a window centered on the primary screen, starts the
// periodic animation tick, and blocks in the host event loop until the
// window closes. Setup failures (bad size, no usable screen, newApp error)
// are returned before the loop starts and are not retryable.
func RunWindow(newApp func(Repainter) (App, error), cfg WindowConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("hal: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.StepsPerSecond <= 0 {
		cfg.StepsPerSecond = 60
	}
	interval := time.Second / time.Duration(cfg.StepsPerSecond)
	if interval <= 0 {
		return fmt.Errorf("hal: invalid step rate: %d", cfg.StepsPerSecond)
	}
	if cfg.Log == nil {
		cfg.Log = NewLogger(io.Discard)
	}

	w := &Window{}
	a, err := newApp(w)
	if err != nil {
		return err
	}

	screenW, screenH := ebiten.ScreenSizeInFullscreen()
	if screenW <= 0 || screenH <= 0 {
		return errors.New("hal: no usable screen")
	}

	title := cfg.Title
	if title == "" {
		title = "Plasma"
	}
	ebiten.SetWindowTitle(title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowPosition((screenW-cfg.Width)/2, (screenH-cfg.Height)/2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	// Skipped paints must leave the previous frame on screen.
	ebiten.SetScreenClearedEveryFrame(false)
	ebiten.SetTPS(60)

	g := &windowGame{w: w, app: a}
	g.stop = startTicker(a, interval)
	defer g.stop()

	cfg.Log.WriteLineString(fmt.Sprintf("window: %dx%d at %d steps/s", cfg.Width, cfg.Height, cfg.StepsPerSecond))
	return ebiten.RunGame(g)
}

// startTicker drives app ticks on their own goroutine, which is not the host
// UI goroutine. The returned stop function tears the ticker down and waits
// for an in-flight tick to finish; it is safe to call more than once.
func startTicker(a App, interval time.Duration) (stop func()) {
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				a.Tick()
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			<-finished
		})
	}
}

type windowGame struct {
	w       *Window
	app     App
	stop    func()
	surface *windowSurface
	lastW   int
	lastH   int
	painted bool
}

func (g *windowGame) Update() error {
	if ebiten.IsWindowBeingClosed() {
		if g.app.CloseRequested() {
			g.stop()
			return ebiten.Termination
		}
	}
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	resized := b.Dx() != g.lastW || b.Dy() != g.lastH
	if !g.w.consumeRepaint() && g.painted && !resized {
		// Nothing new and the previous contents are retained.
		return
	}
	g.lastW, g.lastH = b.Dx(), b.Dy()
	if g.surface == nil {
		g.surface = &windowSurface{ctmStack: newCTMStack()}
	}
	g.surface.begin(screen)
	g.app.Paint(g.surface)
	g.surface.end()
	g.painted = true
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Track the window size so resizes reach the paint path as real
	// destination bounds; the scaled blit does the rest.
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return 1, 1
	}
	return outsideWidth, outsideHeight
}

// windowSurface adapts an ebiten frame to DrawContext. The screen handle is
// only valid between begin and end, i.e. inside one Draw call.
type windowSurface struct {
	ctmStack
	screen  *ebiten.Image
	img     *ebiten.Image
	scratch []byte
}

func (s *windowSurface) begin(screen *ebiten.Image) {
	s.screen = screen
	s.reset()
}

func (s *windowSurface) end() { s.screen = nil }

func (s *windowSurface) Size() (int, int) {
	b := s.screen.Bounds()
	return b.Dx(), b.Dy()
}

func (s *windowSurface) Origin() Origin { return OriginTopLeft }

func (s *windowSurface) DrawARGB(pix []byte, width, height, stride, destWidth, destHeight int) error {
	if s.screen == nil {
		return errors.New("hal: draw outside a paint callback")
	}
	if width <= 0 || height <= 0 || stride < width*4 || len(pix) < stride*height {
		return fmt.Errorf("hal: bad pixel data: %d bytes for %dx%d stride %d", len(pix), width, height, stride)
	}
	if s.img == nil || !s.img.Bounds().Eq(image.Rect(0, 0, width, height)) {
		if s.img != nil {
			s.img.Deallocate()
		}
		s.img = ebiten.NewImage(width, height)
		s.scratch = make([]byte, width*height*4)
	}
	argbToRGBA(s.scratch, pix, width, height, stride)
	s.img.WritePixels(s.scratch)

	m := affMul(s.cur, affScale(float64(destWidth)/float64(width), float64(destHeight)/float64(height)))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.SetElement(0, 0, m[0])
	op.GeoM.SetElement(0, 1, m[1])
	op.GeoM.SetElement(0, 2, m[2])
	op.GeoM.SetElement(1, 0, m[3])
	op.GeoM.SetElement(1, 1, m[4])
	op.GeoM.SetElement(1, 2, m[5])
	s.screen.DrawImage(s.img, op)
	return nil
}
