package canvas

// Channel indices within a pixel's byte group.
//
// A pixel occupies 3 or 4 consecutive bytes depending on whether the canvas
// carries an alpha channel; these constants index into that group.
const (
	Red   = 0
	Green = 1
	Blue  = 2
	Alpha = 3
)

// ChannelCount returns the number of bytes per pixel: 4 when the canvas
// carries an alpha channel, 3 otherwise.
func ChannelCount(hasAlpha bool) int {
	if hasAlpha {
		return 4
	}
	return 3
}

// PixelOffset converts a pixel coordinate to its byte offset within a packed
// row-major buffer of the given width and channel mode.
//
// The result is only meaningful for x in [0, width) and y in [0, height);
// callers must bounds-check coordinates before indexing a buffer with the
// returned offset.
func PixelOffset(width int, hasAlpha bool, x, y int) int {
	return (y*width + x) * ChannelCount(hasAlpha)
}

// OffsetCoordinates converts a byte offset within a packed row-major buffer
// back to the pixel coordinate it addresses. It is the inverse of
// PixelOffset: for any valid (x, y),
//
//	OffsetCoordinates(w, a, PixelOffset(w, a, x, y)) == (x, y)
//
// Offsets pointing into the middle of a pixel's byte group resolve to that
// pixel.
func OffsetCoordinates(width int, hasAlpha bool, offset int) (x, y int) {
	pixel := offset / ChannelCount(hasAlpha)
	return pixel % width, pixel / width
}
