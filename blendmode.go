package canvas

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blend"
)

// BlendMode selects the compositing rule used by DrawCanvasBlend.
type BlendMode int

const (
	// BlendNormal is standard source-over compositing, identical to
	// DrawCanvas.
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendAdd
)

// String returns the lowercase name of the blend mode.
func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "normal"
	case BlendMultiply:
		return "multiply"
	case BlendScreen:
		return "screen"
	case BlendOverlay:
		return "overlay"
	case BlendDarken:
		return "darken"
	case BlendLighten:
		return "lighten"
	case BlendAdd:
		return "add"
	}
	return "unknown"
}

// blendFunc returns the bild implementation of the mode, or nil for
// BlendNormal and unknown modes.
func (m BlendMode) blendFunc() func(bg, fg image.Image) *image.RGBA {
	switch m {
	case BlendMultiply:
		return blend.Multiply
	case BlendScreen:
		return blend.Screen
	case BlendOverlay:
		return blend.Overlay
	case BlendDarken:
		return blend.Darken
	case BlendLighten:
		return blend.Lighten
	case BlendAdd:
		return blend.Add
	}
	return nil
}

// DrawCanvasBlend composites src over the canvas like DrawCanvas, but using
// the given blend mode for the overlapping region. BlendNormal (and any
// unknown mode) delegates to DrawCanvas; the clipping contract is the same:
// source pixels landing outside the destination are skipped silently.
//
// The destination's alpha channel, when present, receives the mode's
// composite alpha; without one it is untouched.
func (c *Canvas) DrawCanvasBlend(src *Canvas, offsetX, offsetY int, mode BlendMode) *Canvas {
	fn := mode.blendFunc()
	if fn == nil {
		return c.DrawCanvas(src, offsetX, offsetY)
	}

	out := c.Clone()

	// Overlap of the placed source with the destination, in destination
	// coordinates.
	x0, y0 := max(0, offsetX), max(0, offsetY)
	x1, y1 := min(c.width, offsetX+src.width), min(c.height, offsetY+src.height)
	if x0 >= x1 || y0 >= y1 {
		return out
	}

	w, h := x1-x0, y1-y0
	bg := image.NewNRGBA(image.Rect(0, 0, w, h))
	fg := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := bg.PixOffset(x, y)
			do := out.offset(x0+x, y0+y)
			bg.Pix[i] = out.data[do+Red]
			bg.Pix[i+1] = out.data[do+Green]
			bg.Pix[i+2] = out.data[do+Blue]
			bg.Pix[i+3] = alphaAt(out, do)

			so := src.offset(x0+x-offsetX, y0+y-offsetY)
			fg.Pix[i] = src.data[so+Red]
			fg.Pix[i+1] = src.data[so+Green]
			fg.Pix[i+2] = src.data[so+Blue]
			fg.Pix[i+3] = alphaAt(src, so)
		}
	}

	blended := fn(bg, fg)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := color.NRGBAModel.Convert(blended.RGBAAt(x, y)).(color.NRGBA)
			do := out.offset(x0+x, y0+y)
			out.data[do+Red] = px.R
			out.data[do+Green] = px.G
			out.data[do+Blue] = px.B
			if out.hasAlpha {
				out.data[do+Alpha] = px.A
			}
		}
	}
	return out
}
