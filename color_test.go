package canvas

import (
	"errors"
	"math"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"#ffffff", Color{255, 255, 255, 255}},
		{"#000000", Color{0, 0, 0, 255}},
		{"#FF8040", Color{255, 128, 64, 255}},
		{"#ff8040", Color{255, 128, 64, 255}},
		{"#0a0B0c", Color{10, 11, 12, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if err != nil {
				t.Fatalf("ParseHexColor(%q) failed: %v", tt.input, err)
			}
			if len(got) != 4 {
				t.Fatalf("got %d components, want 4", len(got))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("ParseHexColor(%q): got %v, want %v", tt.input, got, tt.want)
				}
			}
		})
	}
}

func TestParseHexColor_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"#fff",
		"ffffff",
		"#fffffff",
		"#gg0000",
		"#12345",
		"#ff ff0",
		"#-12345",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseHexColor(input); !errors.Is(err, ErrMalformedHexColor) {
				t.Errorf("ParseHexColor(%q): got %v, want ErrMalformedHexColor", input, err)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		col  Color
		want string
	}{
		{Color{255, 255, 255, 255}, "#FFFFFF"},
		{Color{0, 0, 0}, "#000000"},
		{Color{255, 128, 64, 10}, "#FF8040"},
	}

	for _, tt := range tests {
		if got := tt.col.Hex(); got != tt.want {
			t.Errorf("%v.Hex(): got %s, want %s", tt.col, got, tt.want)
		}
	}
}

func TestEqualColor(t *testing.T) {
	tests := []struct {
		name string
		a, b Color
		want bool
	}{
		{"identical", Color{1, 2, 3, 4}, Color{1, 2, 3, 4}, true},
		{"alpha ignored", Color{1, 2, 3, 0}, Color{1, 2, 3, 255}, true},
		{"three vs four components", Color{1, 2, 3}, Color{1, 2, 3, 128}, true},
		{"red differs", Color{9, 2, 3}, Color{1, 2, 3}, false},
		{"blue differs", Color{1, 2, 9, 255}, Color{1, 2, 3, 255}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EqualColor(tt.a, tt.b); got != tt.want {
				t.Errorf("EqualColor(%v, %v): got %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestColorHSL(t *testing.T) {
	tests := []struct {
		name    string
		col     Color
		h, s, l float64
	}{
		{"pure red", Color{255, 0, 0}, 0, 1, 0.5},
		{"pure green", Color{0, 255, 0}, 120, 1, 0.5},
		{"pure blue", Color{0, 0, 255}, 240, 1, 0.5},
		{"white", Color{255, 255, 255}, 0, 0, 1},
		{"black", Color{0, 0, 0}, 0, 0, 0},
	}

	const eps = 0.01
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := tt.col.HSL()
			if math.Abs(h-tt.h) > eps || math.Abs(s-tt.s) > eps || math.Abs(l-tt.l) > eps {
				t.Errorf("%v.HSL(): got (%.2f, %.2f, %.2f), want (%.2f, %.2f, %.2f)",
					tt.col, h, s, l, tt.h, tt.s, tt.l)
			}
		})
	}
}

func TestColorDistanceLab(t *testing.T) {
	red := Color{255, 0, 0}
	if d := red.DistanceLab(Color{255, 0, 0, 128}); d != 0 {
		t.Errorf("distance to same RGB: got %f, want 0", d)
	}
	if d := red.DistanceLab(Color{0, 0, 255}); d < 0.5 {
		t.Errorf("distance red to blue: got %f, want a large value", d)
	}
	nearRed := Color{250, 2, 2}
	if d := red.DistanceLab(nearRed); d <= 0 || d > 0.1 {
		t.Errorf("distance red to near-red: got %f, want small positive", d)
	}
}
