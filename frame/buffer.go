// Package frame holds the animation's pixel data: the fixed-size frame
// buffer, the lock-guarded shared slot the producer and the paint path meet
// at, and the analytic frame producer itself.
package frame

import "encoding/binary"

const bytesPerPixel = 4

// Buffer is one full animation frame: width*height packed 32-bit color
// samples, row-major, top row first. Sample byte order is A,R,G,B, so a
// packed big-endian sample reads 0xAARRGGBB with alpha most significant.
// Samples are not premultiplied; the producer only ever writes alpha 255.
//
// A Buffer is written once by its producer and must not be mutated after it
// has been published.
type Buffer struct {
	width  int
	height int
	pix    []byte
}

// NewBuffer allocates a zeroed frame with fixed dimensions.
func NewBuffer(width, height int) *Buffer {
	if width <= 0 || height <= 0 {
		panic("frame: non-positive buffer dimensions")
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*bytesPerPixel),
	}
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Stride returns the number of bytes per pixel row.
func (b *Buffer) Stride() int { return b.width * bytesPerPixel }

// Pix exposes the backing store for zero-copy image descriptors. Callers
// must keep holding whatever lock guards the buffer for as long as they
// read the returned slice.
func (b *Buffer) Pix() []byte { return b.pix }

// SetPacked writes one packed 0xAARRGGBB sample. Out-of-range coordinates
// are ignored.
func (b *Buffer) SetPacked(x, y int, sample uint32) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	binary.BigEndian.PutUint32(b.pix[(y*b.width+x)*bytesPerPixel:], sample)
}

// PackedAt reads the packed 0xAARRGGBB sample at (x, y), which must be in
// range.
func (b *Buffer) PackedAt(x, y int) uint32 {
	return binary.BigEndian.Uint32(b.pix[(y*b.width+x)*bytesPerPixel:])
}

// Pack assembles a packed sample from its channels.
func Pack(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}
