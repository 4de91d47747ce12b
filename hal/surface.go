package hal

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// SoftwareSurface is a CPU drawing surface over an image.RGBA. The headless
// host paints into one; tests use it to observe exactly what a paint call
// produced. The declared origin is honored the way a real windowing surface
// would honor it: with a bottom-left origin, y grows upward in draw
// coordinates while the backing image stays top-row-first.
type SoftwareSurface struct {
	ctmStack
	dst     *image.RGBA
	origin  Origin
	scratch *image.RGBA
}

// NewSoftwareSurface returns a surface of fixed pixel bounds.
func NewSoftwareSurface(width, height int, origin Origin) *SoftwareSurface {
	return &SoftwareSurface{
		ctmStack: newCTMStack(),
		dst:      image.NewRGBA(image.Rect(0, 0, width, height)),
		origin:   origin,
	}
}

func (s *SoftwareSurface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *SoftwareSurface) Origin() Origin { return s.origin }

// RGBA exposes the painted result, top row first.
func (s *SoftwareSurface) RGBA() *image.RGBA { return s.dst }

func (s *SoftwareSurface) DrawARGB(pix []byte, width, height, stride, destWidth, destHeight int) error {
	if width <= 0 || height <= 0 || stride < width*4 || len(pix) < stride*height {
		return fmt.Errorf("hal: bad pixel data: %d bytes for %dx%d stride %d", len(pix), width, height, stride)
	}
	if s.scratch == nil || !s.scratch.Bounds().Eq(image.Rect(0, 0, width, height)) {
		s.scratch = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	argbToRGBA(s.scratch.Pix, pix, width, height, stride)

	m := affMul(s.cur, affScale(float64(destWidth)/float64(width), float64(destHeight)/float64(height)))
	if s.origin == OriginBottomLeft {
		// Map draw coordinates to the top-row-first backing image.
		_, h := s.Size()
		m = affMul(affMul(affTranslate(0, float64(h)), affScale(1, -1)), m)
	}
	xdraw.NearestNeighbor.Transform(
		s.dst,
		f64.Aff3{m[0], m[1], m[2], m[3], m[4], m[5]},
		s.scratch,
		s.scratch.Bounds(),
		xdraw.Src,
		nil,
	)
	return nil
}
