package canvas

// DrawCanvas returns a copy of the destination canvas with src painted over
// it using source-over alpha compositing, with src's top-left corner placed
// at (offsetX, offsetY).
//
// Source pixels whose destination coordinates fall outside the canvas are
// clipped silently; the blit may extend past any edge and the offsets may be
// negative. A canvas without an alpha channel is treated as fully opaque on
// its side of the blend. The destination's alpha channel, when present,
// receives the composite alpha; without one there is nothing to write.
func (c *Canvas) DrawCanvas(src *Canvas, offsetX, offsetY int) *Canvas {
	out := c.Clone()
	src.EachPixel(func(x, y, srcOffset int) {
		destX, destY := x+offsetX, y+offsetY
		if !out.inBounds(destX, destY) {
			return
		}

		srcColor := make(Color, 4)
		copy(srcColor, src.data[srcOffset:srcOffset+src.channels()])
		srcColor[Alpha] = alphaAt(src, srcOffset)

		o := out.offset(destX, destY)
		dstColor := make(Color, 4)
		copy(dstColor, out.data[o:o+out.channels()])
		dstColor[Alpha] = alphaAt(out, o)

		blended := BlendColor(dstColor, srcColor)
		out.data[o+Red] = blended[Red]
		out.data[o+Green] = blended[Green]
		out.data[o+Blue] = blended[Blue]
		if out.hasAlpha {
			out.data[o+Alpha] = blended[Alpha]
		}
	})
	return out
}

// alphaAt reads the alpha byte of the pixel at offset o, treating a
// canvas without an alpha channel as fully opaque.
func alphaAt(c *Canvas, o int) uint8 {
	if c.hasAlpha {
		return c.data[o+Alpha]
	}
	return 255
}
