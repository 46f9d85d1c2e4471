package canvas

import "errors"

// Sentinel errors returned (wrapped) by canvas operations. Use errors.Is to
// test for them; the wrapping error carries the offending values.
var (
	// ErrInvalidBufferSize indicates a byte buffer whose length does not
	// match the declared width, height, and channel count.
	ErrInvalidBufferSize = errors.New("buffer size does not match canvas dimensions")

	// ErrMalformedHexColor indicates a hex color string that is not a
	// 7-character "#RRGGBB" value.
	ErrMalformedHexColor = errors.New("malformed hex color")

	// ErrOutOfBounds indicates a coordinate or region outside the canvas.
	ErrOutOfBounds = errors.New("coordinates outside canvas bounds")
)
