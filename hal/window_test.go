package hal

import "testing"

// Config validation happens before the window host touches the display, so
// these paths are testable without one.
func TestRunWindowRejectsBadConfig(t *testing.T) {
	newApp := func(rp Repainter) (App, error) {
		return &countingApp{rp: rp}, nil
	}

	if err := RunWindow(newApp, WindowConfig{Width: 0, Height: 600}); err == nil {
		t.Fatal("invalid window size accepted")
	}
	if err := RunWindow(newApp, WindowConfig{Width: 800, Height: -1}); err == nil {
		t.Fatal("negative window size accepted")
	}
	// A step rate above 1e9 truncates to a zero ticker interval; it must
	// come back as a setup error, not reach time.NewTicker.
	if err := RunWindow(newApp, WindowConfig{Width: 8, Height: 8, StepsPerSecond: 2_000_000_000}); err == nil {
		t.Fatal("extreme step rate accepted")
	}
}
