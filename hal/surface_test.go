package hal

import (
	"image/color"
	"testing"
)

// 2x2 test frame in packed A,R,G,B bytes: red, green / blue, white.
func testPix() []byte {
	return []byte{
		0xff, 0xff, 0x00, 0x00, 0xff, 0x00, 0xff, 0x00,
		0xff, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff, 0xff,
	}
}

var (
	red   = color.RGBA{R: 0xff, A: 0xff}
	green = color.RGBA{G: 0xff, A: 0xff}
	blue  = color.RGBA{B: 0xff, A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func TestArgbToRGBA(t *testing.T) {
	dst := make([]byte, 16)
	argbToRGBA(dst, testPix(), 2, 2, 8)
	want := []byte{
		0xff, 0x00, 0x00, 0xff, 0x00, 0xff, 0x00, 0xff,
		0x00, 0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("byte %d = %#02x, want %#02x", i, dst[i], want[i])
		}
	}
}

func TestSoftwareSurfaceScaledBlit(t *testing.T) {
	s := NewSoftwareSurface(4, 4, OriginTopLeft)
	if err := s.DrawARGB(testPix(), 2, 2, 8, 4, 4); err != nil {
		t.Fatalf("DrawARGB: %v", err)
	}
	img := s.RGBA()
	checks := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, red}, {1, 1, red},
		{3, 0, green},
		{0, 3, blue},
		{3, 3, white},
	}
	for _, c := range checks {
		if got := img.RGBAAt(c.x, c.y); got != c.want {
			t.Fatalf("pixel (%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

// A bottom-left-origin surface with no caller-side flip must land the top
// source row at the bottom of the backing image.
func TestSoftwareSurfaceBottomLeftOrigin(t *testing.T) {
	s := NewSoftwareSurface(4, 4, OriginBottomLeft)
	if err := s.DrawARGB(testPix(), 2, 2, 8, 4, 4); err != nil {
		t.Fatalf("DrawARGB: %v", err)
	}
	img := s.RGBA()
	if got := img.RGBAAt(0, 3); got != red {
		t.Fatalf("pixel (0,3) = %v, want %v (top source row at image bottom)", got, red)
	}
	if got := img.RGBAAt(0, 0); got != blue {
		t.Fatalf("pixel (0,0) = %v, want %v", got, blue)
	}
}

// The consumer-style flip (translate by height, negate y) on a bottom-left
// surface cancels the origin difference, presenting the frame upright.
func TestSoftwareSurfaceFlipCancelsOrigin(t *testing.T) {
	s := NewSoftwareSurface(4, 4, OriginBottomLeft)
	s.Save()
	s.Translate(0, 4)
	s.Scale(1, -1)
	if err := s.DrawARGB(testPix(), 2, 2, 8, 4, 4); err != nil {
		t.Fatalf("DrawARGB: %v", err)
	}
	s.Restore()

	img := s.RGBA()
	if got := img.RGBAAt(0, 0); got != red {
		t.Fatalf("pixel (0,0) = %v, want %v (frame upright)", got, red)
	}
	if got := img.RGBAAt(3, 3); got != white {
		t.Fatalf("pixel (3,3) = %v, want %v", got, white)
	}
}

func TestSoftwareSurfaceRejectsShortPixels(t *testing.T) {
	s := NewSoftwareSurface(4, 4, OriginTopLeft)
	if err := s.DrawARGB(testPix()[:8], 2, 2, 8, 4, 4); err == nil {
		t.Fatal("short pixel data accepted")
	}
	if err := s.DrawARGB(testPix(), 0, 2, 8, 4, 4); err == nil {
		t.Fatal("zero-width image accepted")
	}
}

func TestCTMSaveRestore(t *testing.T) {
	st := newCTMStack()
	st.Save()
	st.Translate(3, 5)
	st.Scale(2, 2)
	if st.cur == affIdentity() {
		t.Fatal("transform ops left the CTM unchanged")
	}
	st.Restore()
	if st.cur != affIdentity() {
		t.Fatalf("CTM after restore = %v, want identity", st.cur)
	}
	// Restore on an empty stack is a no-op.
	st.Restore()
	if st.cur != affIdentity() {
		t.Fatal("restore on empty stack changed the CTM")
	}
}

func TestAffMulOrder(t *testing.T) {
	// Translate-then-scale composed CG-style: the later op applies first.
	st := newCTMStack()
	st.Translate(0, 10)
	st.Scale(1, -1)
	m := st.cur
	// (0,2) -> scale -> (0,-2) -> translate -> (0,8)
	x := m[0]*0 + m[1]*2 + m[2]
	y := m[3]*0 + m[4]*2 + m[5]
	if x != 0 || y != 8 {
		t.Fatalf("mapped point = (%v,%v), want (0,8)", x, y)
	}
}
