package app

import (
	"plasma/frame"
	"plasma/hal"
)

// painter realizes the current shared frame inside a host drawing surface.
type painter struct {
	shared *frame.Shared
}

// paint draws the latest published frame scaled to the full destination
// bounds. A missing context or an unpublished frame skips the paint
// silently; the window keeps whatever it last showed. The shared lock is
// held from descriptor access through the blit issue, so the backing store
// cannot be swapped out from under the host primitive.
func (p *painter) paint(ctx hal.DrawContext) {
	if ctx == nil {
		return
	}
	destW, destH := ctx.Size()
	if destW <= 0 || destH <= 0 {
		return
	}
	p.shared.View(func(b *frame.Buffer) {
		ctx.Save()
		defer ctx.Restore()
		if ctx.Origin() == hal.OriginBottomLeft {
			// Frames are stored top row first; flip the vertical axis so
			// the image is not presented upside down.
			ctx.Translate(0, float64(destH))
			ctx.Scale(1, -1)
		}
		_ = ctx.DrawARGB(b.Pix(), b.Width(), b.Height(), b.Stride(), destW, destH)
	})
}
