package canvas

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Resize returns a new canvas scaled to the given dimensions using Lanczos
// resampling. The channel mode is preserved.
//
// Non-positive dimensions return an error wrapping ErrInvalidBufferSize.
func (c *Canvas) Resize(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrInvalidBufferSize, width, height)
	}
	resized := imaging.Resize(c.ToNRGBA(), width, height, imaging.Lanczos)
	return NewFromImage(resized, c.hasAlpha)
}

// Crop extracts the rectangular region with top-left corner (x1, y1)
// inclusive and bottom-right corner (x2, y2) exclusive as a new canvas. The
// channel mode is preserved.
//
// A region reaching outside the canvas returns an error wrapping
// ErrOutOfBounds; a degenerate region (x1 >= x2 or y1 >= y2) is also an
// error. Unlike the drawing operations, Crop does not clip: a cropped
// canvas always has exactly the requested dimensions.
func (c *Canvas) Crop(x1, y1, x2, y2 int) (*Canvas, error) {
	if x1 < 0 || y1 < 0 || x2 > c.width || y2 > c.height {
		return nil, fmt.Errorf("%w: crop region (%d,%d)-(%d,%d) on %dx%d canvas",
			ErrOutOfBounds, x1, y1, x2, y2, c.width, c.height)
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}
	cropped := imaging.Crop(c.ToNRGBA(), image.Rect(x1, y1, x2, y2))
	return NewFromImage(cropped, c.hasAlpha)
}
