package frame

import (
	"image/color"
	"strconv"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// display adapts a Buffer to the pixel-display interface the font renderer
// draws on.
type display struct {
	b *Buffer
}

func (d display) Size() (x, y int16) {
	return int16(d.b.width), int16(d.b.height)
}

func (d display) SetPixel(x, y int16, c color.RGBA) {
	d.b.SetPacked(int(x), int(y), Pack(0xff, c.R, c.G, c.B))
}

func (d display) Display() error { return nil }

func (d display) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

var hudColor = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}

// drawHUD stamps the frame index into the top-left corner. It depends only
// on the index, so frames remain a pure function of it.
func drawHUD(b *Buffer, index uint64) {
	tinyfont.WriteLine(display{b: b}, &tinyfont.TomThumb, 4, 10, strconv.FormatUint(index, 10), hudColor)
}
