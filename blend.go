package canvas

import "math"

// BlendAlpha computes the alpha of a source-over composite: the opacity that
// results from painting a source with alpha src over a destination with
// alpha dst.
//
// The result is src + dst*(255-src)/255, rounded to the nearest integer.
// It saturates at 255 whenever either operand is fully opaque, and
// BlendAlpha(0, 0) is 0.
func BlendAlpha(dst, src uint8) uint8 {
	a := float64(src) + float64(dst)*(255-float64(src))/255
	return clampByte(math.Round(a))
}

// BlendChannel computes one color channel of a source-over composite.
//
// Both colors are un-premultiplied: the source channel is weighted by the
// source alpha, the destination channel by the destination alpha attenuated
// through the source, and the sum is normalized by the composite alpha
// (BlendAlpha of the two). When the composite alpha is 0 the channel value
// is defined as 0.
//
// A fully opaque source (srcA=255) yields srcC regardless of the
// destination; a fully transparent source (srcA=0) yields dstC.
func BlendChannel(dstC, srcC, dstA, srcA uint8) uint8 {
	outA := float64(srcA) + float64(dstA)*(255-float64(srcA))/255
	if outA == 0 {
		return 0
	}
	c := (float64(srcC)*float64(srcA) + float64(dstC)*float64(dstA)*(255-float64(srcA))/255) / outA
	return clampByte(math.Round(c))
}

// BlendColor composites a source color over a destination color using the
// source-over rule: BlendChannel on Red, Green, and Blue, BlendAlpha on
// Alpha. A missing alpha component on either input defaults to 255 (fully
// opaque). The result always has 4 components.
func BlendColor(dst, src Color) Color {
	dstA, srcA := dst.alphaOrOpaque(), src.alphaOrOpaque()
	return Color{
		BlendChannel(dst[Red], src[Red], dstA, srcA),
		BlendChannel(dst[Green], src[Green], dstA, srcA),
		BlendChannel(dst[Blue], src[Blue], dstA, srcA),
		BlendAlpha(dstA, srcA),
	}
}

// clampByte constrains a value to the range [0, 255].
func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
