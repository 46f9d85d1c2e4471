package canvas

import (
	"fmt"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an ordered sequence of 8-bit channel values, indexed by the
// channel constants Red, Green, Blue, and Alpha.
//
// A Color has either 3 elements (no alpha) or 4 (with alpha). Operations
// that require an alpha value treat a 3-element color as fully opaque
// (alpha 255).
type Color []uint8

// HasAlpha reports whether the color carries an explicit alpha component.
func (c Color) HasAlpha() bool {
	return len(c) >= 4
}

// alphaOrOpaque returns the color's alpha, defaulting to 255 when absent.
func (c Color) alphaOrOpaque() uint8 {
	if c.HasAlpha() {
		return c[Alpha]
	}
	return 255
}

// Hex formats the color as "#RRGGBB" with uppercase digits. Alpha is not
// included.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c[Red], c[Green], c[Blue])
}

// HSL returns the color in HSL space: hue in degrees [0, 360), saturation
// and lightness in [0, 1]. Alpha is ignored.
func (c Color) HSL() (h, s, l float64) {
	return c.colorful().Hsl()
}

// DistanceLab returns the perceptual distance between two colors in CIE-Lab
// space. 0 means identical; distances below roughly 0.1 are barely
// distinguishable to the eye. Alpha is ignored.
func (c Color) DistanceLab(other Color) float64 {
	return c.colorful().DistanceLab(other.colorful())
}

// colorful converts the RGB components to a go-colorful color on [0, 1].
func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c[Red]) / 255,
		G: float64(c[Green]) / 255,
		B: float64(c[Blue]) / 255,
	}
}

// EqualColor reports whether two colors have identical Red, Green, and Blue
// components. Alpha is ignored, so a 3-element and a 4-element color can
// compare equal.
func EqualColor(a, b Color) bool {
	return a[Red] == b[Red] && a[Green] == b[Green] && a[Blue] == b[Blue]
}

// ParseHexColor parses a 7-character "#RRGGBB" hex string into a 4-element
// color with alpha fixed at 255. Both uppercase and lowercase hex digits are
// accepted.
//
// Malformed input (wrong length, missing '#', non-hex digits) returns an
// error wrapping ErrMalformedHexColor; shorthand forms like "#fff" are
// rejected.
func ParseHexColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return nil, fmt.Errorf("%w: %q (want \"#RRGGBB\")", ErrMalformedHexColor, s)
	}
	c := Color{0, 0, 0, 255}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: %q (want \"#RRGGBB\")", ErrMalformedHexColor, s)
		}
		c[i] = uint8(v)
	}
	return c, nil
}
