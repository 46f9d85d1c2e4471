package canvas

import (
	"image"
	"image/color"
)

// ToNRGBA converts the canvas to a standard *image.NRGBA for consumption by
// external encoders, resamplers, or rendering surfaces. A canvas without an
// alpha channel produces fully opaque pixels. The returned image owns its
// own pixel storage.
func (c *Canvas) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	c.EachPixel(func(x, y, o int) {
		i := img.PixOffset(x, y)
		img.Pix[i] = c.data[o+Red]
		img.Pix[i+1] = c.data[o+Green]
		img.Pix[i+2] = c.data[o+Blue]
		img.Pix[i+3] = alphaAt(c, o)
	})
	return img
}

// NewFromImage creates a canvas from a standard image, with channel mode
// chosen by hasAlpha. Colors are converted to un-premultiplied 8-bit
// components; when hasAlpha is false the image's alpha is discarded.
//
// The image's bounds may have a non-zero origin; the canvas always indexes
// from (0, 0).
func NewFromImage(img image.Image, hasAlpha bool) (*Canvas, error) {
	bounds := img.Bounds()
	c, err := New(bounds.Dx(), bounds.Dy(), hasAlpha)
	if err != nil {
		return nil, err
	}
	c.EachPixel(func(x, y, o int) {
		px := color.NRGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
		c.data[o+Red] = px.R
		c.data[o+Green] = px.G
		c.data[o+Blue] = px.B
		if hasAlpha {
			c.data[o+Alpha] = px.A
		}
	})
	return c, nil
}
