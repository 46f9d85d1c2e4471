package canvas

import "fmt"

// Canvas is a rectangular pixel grid backed by a packed byte buffer.
//
// Pixels are stored row-major with channels interleaved per pixel in the
// order Red, Green, Blue and, when the canvas carries an alpha channel,
// Alpha. The buffer length is always exactly width*height*channels and is
// never resized after construction.
//
// A Canvas is immutable by convention: every drawing operation clones the
// canvas and returns the clone, leaving the receiver untouched.
type Canvas struct {
	width    int
	height   int
	hasAlpha bool
	data     []byte
}

// New creates a canvas of the given dimensions with a zero-filled buffer.
// With an alpha channel every pixel starts fully transparent black; without
// one, black.
//
// Non-positive dimensions return an error wrapping ErrInvalidBufferSize.
func New(width, height int, hasAlpha bool) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrInvalidBufferSize, width, height)
	}
	return &Canvas{
		width:    width,
		height:   height,
		hasAlpha: hasAlpha,
		data:     make([]byte, width*height*ChannelCount(hasAlpha)),
	}, nil
}

// NewFromBuffer creates a canvas from an externally supplied packed pixel
// buffer. The buffer contents are copied, so the canvas never aliases caller
// memory.
//
// The buffer length must equal width*height*ChannelCount(hasAlpha); any
// mismatch, or non-positive dimensions, returns an error wrapping
// ErrInvalidBufferSize.
func NewFromBuffer(buf []byte, width, height int, hasAlpha bool) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrInvalidBufferSize, width, height)
	}
	want := width * height * ChannelCount(hasAlpha)
	if len(buf) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d (%dx%d, %d channels)",
			ErrInvalidBufferSize, len(buf), want, width, height, ChannelCount(hasAlpha))
	}
	data := make([]byte, want)
	copy(data, buf)
	return &Canvas{width: width, height: height, hasAlpha: hasAlpha, data: data}, nil
}

// Clone returns a deep copy of the canvas. The copy shares no storage with
// the original: mutating one buffer never affects the other.
func (c *Canvas) Clone() *Canvas {
	data := make([]byte, len(c.data))
	copy(data, c.data)
	return &Canvas{width: c.width, height: c.height, hasAlpha: c.hasAlpha, data: data}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// HasAlpha reports whether the canvas carries an alpha channel.
func (c *Canvas) HasAlpha() bool {
	return c.hasAlpha
}

// Bytes returns the canvas's backing buffer for consumption by external
// encoders or rendering surfaces. The slice is the live buffer, not a copy;
// callers must treat it as read-only.
func (c *Canvas) Bytes() []byte {
	return c.data
}

// channels returns the number of bytes per pixel.
func (c *Canvas) channels() int {
	return ChannelCount(c.hasAlpha)
}

// inBounds reports whether (x, y) addresses a pixel of the canvas.
func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// offset returns the byte offset of pixel (x, y). Callers must ensure the
// coordinates are in bounds.
func (c *Canvas) offset(x, y int) int {
	return PixelOffset(c.width, c.hasAlpha, x, y)
}

// EachPixel calls fn once for every pixel of the canvas in row-major order
// (y outer, x inner), passing the pixel coordinates and the byte offset of
// its channel group.
func (c *Canvas) EachPixel(fn func(x, y, offset int)) {
	ch := c.channels()
	offset := 0
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			fn(x, y, offset)
			offset += ch
		}
	}
}
