package frame

import (
	"bytes"
	"testing"
	"time"
)

func testProducer() *Producer {
	return NewProducer(64, 48, time.Second/60, false)
}

func TestFrameSizeAndAlpha(t *testing.T) {
	p := testProducer()
	for _, index := range []uint64{0, 1, 7, 1000, ^uint64(0)} {
		b := p.Frame(index)
		pix := b.Pix()
		if len(pix) != 64*48*4 {
			t.Fatalf("index %d: backing store length = %d, want %d", index, len(pix), 64*48*4)
		}
		for i := 0; i < len(pix); i += 4 {
			if pix[i] != 0xff {
				t.Fatalf("index %d: pixel %d alpha = %#02x, want 0xff", index, i/4, pix[i])
			}
		}
	}
}

func TestFrameAdvances(t *testing.T) {
	p := testProducer()
	a := p.Frame(1)
	b := p.Frame(2)
	if bytes.Equal(a.Pix(), b.Pix()) {
		t.Fatal("consecutive indices produced identical frames")
	}
}

func TestFrameIdempotent(t *testing.T) {
	p := testProducer()
	a := p.Frame(3)
	b := p.Frame(3)
	if !bytes.Equal(a.Pix(), b.Pix()) {
		t.Fatal("equal indices produced different frames")
	}
}

// Fixes the channel functions at index 0 for the default 800x600 frame. At
// the origin every phase is zero, so each channel sits at mid-scale
// (255*0.5 truncated to 127). At the far corner each phase is a fraction of
// a step short of a full period, so each channel lands just below mid-scale
// (126): r = 255*(0.5-0.5*sin(2pi/800)), g likewise with 2pi/600 and
// b with 2pi/700.
func TestFramePackedCorners(t *testing.T) {
	p := NewProducer(800, 600, time.Second/60, false)
	b := p.Frame(0)

	if got := b.PackedAt(0, 0); got != 0xFF7F7F7F {
		t.Fatalf("packed (0,0) = %#08x, want 0xFF7F7F7F", got)
	}
	if got := b.PackedAt(799, 599); got != 0xFF7E7E7E {
		t.Fatalf("packed (799,599) = %#08x, want 0xFF7E7E7E", got)
	}
}

func TestFrameHUDDeterministic(t *testing.T) {
	p := NewProducer(64, 48, time.Second/60, true)
	a := p.Frame(42)
	b := p.Frame(42)
	if !bytes.Equal(a.Pix(), b.Pix()) {
		t.Fatal("HUD frames for equal indices differ")
	}
	plain := testProducer().Frame(42)
	if bytes.Equal(a.Pix(), plain.Pix()) {
		t.Fatal("HUD overlay left the frame untouched")
	}
}

func TestFrameHUDStaysOpaque(t *testing.T) {
	p := NewProducer(64, 48, time.Second/60, true)
	pix := p.Frame(7).Pix()
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != 0xff {
			t.Fatalf("pixel %d alpha = %#02x, want 0xff", i/4, pix[i])
		}
	}
}

func TestNewProducerDefaultsInterval(t *testing.T) {
	p := NewProducer(8, 8, 0, false)
	a := p.Frame(0)
	b := p.Frame(30)
	if bytes.Equal(a.Pix(), b.Pix()) {
		t.Fatal("defaulted interval froze the animation")
	}
}
