package canvas

import "testing"

func TestBlendAlpha(t *testing.T) {
	if got := BlendAlpha(0, 0); got != 0 {
		t.Errorf("BlendAlpha(0,0): got %d, want 0", got)
	}

	// Either operand fully opaque saturates the result.
	for a := 0; a <= 255; a++ {
		if got := BlendAlpha(255, uint8(a)); got != 255 {
			t.Fatalf("BlendAlpha(255,%d): got %d, want 255", a, got)
		}
		if got := BlendAlpha(uint8(a), 255); got != 255 {
			t.Fatalf("BlendAlpha(%d,255): got %d, want 255", a, got)
		}
	}
}

func TestBlendAlpha_Values(t *testing.T) {
	tests := []struct {
		name     string
		dst, src uint8
		want     uint8
	}{
		{"half over half", 128, 128, 192},
		{"half over transparent", 128, 0, 128},
		{"transparent over half", 0, 128, 128},
		{"quarter over quarter", 64, 64, 112},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BlendAlpha(tt.dst, tt.src); got != tt.want {
				t.Errorf("BlendAlpha(%d,%d): got %d, want %d", tt.dst, tt.src, got, tt.want)
			}
		})
	}
}

func TestBlendChannel_OpaqueSourceDominates(t *testing.T) {
	channels := []uint8{0, 1, 64, 128, 200, 255}
	alphas := []uint8{0, 17, 128, 255}

	for _, c := range channels {
		for _, dstA := range alphas {
			if got := BlendChannel(c, c, dstA, 255); got != c {
				t.Fatalf("BlendChannel(%d,%d,%d,255): got %d, want %d", c, c, dstA, got, c)
			}
			// Opaque source wins regardless of the destination channel.
			if got := BlendChannel(255-c, c, dstA, 255); got != c {
				t.Fatalf("BlendChannel(%d,%d,%d,255): got %d, want %d", 255-c, c, dstA, got, c)
			}
		}
	}
}

func TestBlendChannel_TransparentSourceKeepsDest(t *testing.T) {
	channels := []uint8{0, 64, 128, 255}
	for _, c := range channels {
		for _, dstA := range []uint8{1, 100, 255} {
			if got := BlendChannel(c, 255-c, dstA, 0); got != c {
				t.Fatalf("BlendChannel(%d,%d,%d,0): got %d, want %d", c, 255-c, dstA, got, c)
			}
		}
	}
}

func TestBlendChannel_ZeroCompositeAlpha(t *testing.T) {
	if got := BlendChannel(200, 100, 0, 0); got != 0 {
		t.Errorf("BlendChannel with zero composite alpha: got %d, want 0", got)
	}
}

func TestBlendColor(t *testing.T) {
	tests := []struct {
		name     string
		dst, src Color
		want     Color
	}{
		{
			"opaque black under transparent white",
			Color{0, 0, 0, 255},
			Color{255, 255, 255, 0},
			Color{0, 0, 0, 255},
		},
		{
			"opaque source replaces",
			Color{10, 20, 30, 255},
			Color{200, 150, 100, 255},
			Color{200, 150, 100, 255},
		},
		{
			"transparent over transparent",
			Color{10, 20, 30, 0},
			Color{200, 150, 100, 0},
			Color{0, 0, 0, 0},
		},
		{
			"missing alpha defaults to opaque",
			Color{10, 20, 30},
			Color{200, 150, 100},
			Color{200, 150, 100, 255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BlendColor(tt.dst, tt.src)
			if len(got) != 4 {
				t.Fatalf("BlendColor result has %d components, want 4", len(got))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("BlendColor(%v,%v): got %v, want %v", tt.dst, tt.src, got, tt.want)
					break
				}
			}
		})
	}
}

func TestBlendColor_HalfOpaqueWhiteOverBlack(t *testing.T) {
	got := BlendColor(Color{0, 0, 0, 255}, Color{255, 255, 255, 128})
	// Composite alpha stays 255; channels are 255*128/255 = 128.
	want := Color{128, 128, 128, 255}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
