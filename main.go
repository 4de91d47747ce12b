package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"plasma/app"
	"plasma/hal"
)

func main() {
	var (
		headless = flag.Bool("headless", false, "Run without a window.")
		hz       = flag.Int("hz", 60, "Animation steps per second.")
		ticks    = flag.Uint64("ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
		width    = flag.Int("width", 800, "Frame width in pixels.")
		height   = flag.Int("height", 600, "Frame height in pixels.")
		hud      = flag.Bool("hud", false, "Overlay the frame index on the image.")
	)
	flag.Parse()

	if *hz <= 0 {
		*hz = 60
	}

	log := hal.NewLogger(os.Stdout)
	cfg := app.Config{
		Width:    *width,
		Height:   *height,
		Interval: time.Second / time.Duration(*hz),
		HUD:      *hud,
	}
	newApp := func(rp hal.Repainter) (hal.App, error) {
		return app.New(rp, cfg)
	}

	if *headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{
			Width:  *width,
			Height: *height,
			Hz:     *hz,
			Ticks:  *ticks,
			Log:    log,
		})
		if err != nil && err != context.Canceled {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, hal.WindowConfig{
		Title:          "Plasma",
		Width:          *width,
		Height:         *height,
		StepsPerSecond: *hz,
		Log:            log,
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
