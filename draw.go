package canvas

import "fmt"

// DrawPixel returns a copy of the canvas with the pixel at (x, y) set to
// col. Red, Green, and Blue are always written; Alpha is written only when
// the canvas carries an alpha channel and col supplies an alpha component,
// otherwise the existing alpha is left unchanged.
//
// Coordinates outside the canvas return an error wrapping ErrOutOfBounds.
func (c *Canvas) DrawPixel(x, y int, col Color) (*Canvas, error) {
	if !c.inBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d) on %dx%d canvas", ErrOutOfBounds, x, y, c.width, c.height)
	}
	out := c.Clone()
	o := out.offset(x, y)
	out.data[o+Red] = col[Red]
	out.data[o+Green] = col[Green]
	out.data[o+Blue] = col[Blue]
	if out.hasAlpha && col.HasAlpha() {
		out.data[o+Alpha] = col[Alpha]
	}
	return out, nil
}

// ColorAt reads back the color of the pixel at (x, y). The result has 4
// components when the canvas carries an alpha channel, 3 otherwise.
//
// Coordinates outside the canvas return an error wrapping ErrOutOfBounds.
func (c *Canvas) ColorAt(x, y int) (Color, error) {
	if !c.inBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d) on %dx%d canvas", ErrOutOfBounds, x, y, c.width, c.height)
	}
	o := c.offset(x, y)
	col := make(Color, c.channels())
	copy(col, c.data[o:o+c.channels()])
	return col, nil
}

// DrawRect returns a copy of the canvas with the rectangle
// [x, x+width) x [y, y+height) filled with col. When the canvas carries an
// alpha channel, Alpha is set to col's alpha component, or 255 when col has
// none.
//
// Rectangle pixels outside the canvas are clipped silently, so the
// rectangle may extend past any edge.
func (c *Canvas) DrawRect(x, y, width, height int, col Color) *Canvas {
	out := c.Clone()
	for py := y; py < y+height; py++ {
		for px := x; px < x+width; px++ {
			if !out.inBounds(px, py) {
				continue
			}
			out.putColor(out.offset(px, py), col)
		}
	}
	return out
}

// DrawGrid returns a copy of the canvas with grid lines of color col drawn
// every spacing pixels, starting at column and row spacing (the canvas
// edges carry no line). Alpha follows the DrawRect rule. A spacing smaller
// than 1 returns an unmodified copy.
func (c *Canvas) DrawGrid(spacing int, col Color) *Canvas {
	out := c.Clone()
	if spacing < 1 {
		return out
	}

	// Vertical lines
	for x := spacing; x < out.width; x += spacing {
		for y := 0; y < out.height; y++ {
			out.putColor(out.offset(x, y), col)
		}
	}

	// Horizontal lines
	for y := spacing; y < out.height; y += spacing {
		for x := 0; x < out.width; x++ {
			out.putColor(out.offset(x, y), col)
		}
	}
	return out
}

// putColor writes col's channels at byte offset o, defaulting alpha to
// opaque when the canvas has an alpha channel but col supplies none.
func (c *Canvas) putColor(o int, col Color) {
	c.data[o+Red] = col[Red]
	c.data[o+Green] = col[Green]
	c.data[o+Blue] = col[Blue]
	if c.hasAlpha {
		c.data[o+Alpha] = col.alphaOrOpaque()
	}
}
