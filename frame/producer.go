package frame

import (
	"math"
	"time"
)

// Channel drift speeds in radians per second.
const (
	redSpeed   = 1.0
	greenSpeed = 1.3
	blueSpeed  = 0.7
)

// Producer computes full animation frames analytically from a frame index.
// A frame never depends on the previous one, so a dropped or delayed tick
// skips one step of the animation instead of corrupting it.
type Producer struct {
	width    int
	height   int
	interval time.Duration
	hud      bool
}

// NewProducer returns a producer for frames of fixed dimensions. interval is
// the nominal time between ticks and scales the frame index into elapsed
// seconds; non-positive intervals default to 1/60s. With hud set, the frame
// index is stamped into the top-left corner of every frame.
func NewProducer(width, height int, interval time.Duration, hud bool) *Producer {
	if width <= 0 || height <= 0 {
		panic("frame: non-positive producer dimensions")
	}
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &Producer{width: width, height: height, interval: interval, hud: hud}
}

// wave maps a phase to an 8-bit channel value.
func wave(phase float64) uint8 {
	return uint8(255 * (0.5 + 0.5*math.Sin(phase)))
}

// Frame renders the frame for one index: each channel is a periodic function
// of x, y and elapsed time, always fully opaque. Pure: equal indices yield
// byte-identical buffers. Index wraparound only jumps the animation phase.
func (p *Producer) Frame(index uint64) *Buffer {
	b := NewBuffer(p.width, p.height)
	t := float64(index) * p.interval.Seconds()
	w := float64(p.width)
	h := float64(p.height)
	for y := 0; y < p.height; y++ {
		fy := float64(y)
		for x := 0; x < p.width; x++ {
			fx := float64(x)
			r := wave(2*math.Pi*fx/w + t*redSpeed)
			g := wave(2*math.Pi*fy/h + t*greenSpeed)
			bl := wave(2*math.Pi*(fx+fy)/(w+h) + t*blueSpeed)
			b.SetPacked(x, y, Pack(0xff, r, g, bl))
		}
	}
	if p.hud {
		drawHUD(b, index)
	}
	return b
}
