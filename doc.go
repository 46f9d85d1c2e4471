// Package canvas implements an in-memory raster image buffer with pure,
// copy-on-write drawing and compositing operations.
//
// A Canvas is a rectangular pixel grid stored as a packed byte buffer in
// row-major order, with channels interleaved per pixel as Red, Green, Blue
// and optionally Alpha. Every drawing operation clones the canvas and
// returns the modified clone; the input canvas is never mutated. This makes
// canvases safe to share freely between callers and trivially safe for
// concurrent use across independent operations.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner:
//   - X: horizontal position (0 = leftmost pixel), valid range [0, Width)
//   - Y: vertical position (0 = topmost pixel), valid range [0, Height)
//
// # Bounds Policy
//
// Single-pixel accessors (DrawPixel, ColorAt) check their coordinates and
// return an error wrapping ErrOutOfBounds when they fall outside the canvas.
// Area operations (DrawRect, DrawGrid, DrawCanvas, DrawCanvasBlend) clip
// silently: pixels that would land outside the canvas are skipped, so a blit
// may safely extend past any edge.
//
// # Compositing
//
// DrawCanvas paints one canvas over another using standard source-over alpha
// compositing (see BlendColor). DrawCanvasBlend offers additional blend modes
// (multiply, screen, overlay, ...) for the overlapping region.
//
// # Error Handling
//
// Errors fall into three classes, each identifiable with errors.Is:
//   - ErrInvalidBufferSize: a buffer does not match the declared dimensions
//   - ErrMalformedHexColor: a hex color string cannot be parsed
//   - ErrOutOfBounds: a coordinate or region lies outside the canvas
//
// # Out of Scope
//
// The package performs no file I/O and no image format encoding or decoding.
// ToNRGBA and NewFromImage bridge to the standard image types so external
// loaders, encoders, and rendering surfaces can consume or supply pixel data.
package canvas
