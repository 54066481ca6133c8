package field

import "testing"

func defaultPolicy() CountPolicy {
	return DefaultParams().Policy
}

func TestCountPolicy(t *testing.T) {
	policy := defaultPolicy()

	tests := []struct {
		name string
		vp   Viewport
		want int
	}{
		{"desktop 800x600", Viewport{Width: 800, Height: 600}, 40},
		{"mobile 400x300", Viewport{Width: 400, Height: 300}, 10},
		{"full hd capped", Viewport{Width: 1920, Height: 1080}, 80},
		{"phone portrait", Viewport{Width: 375, Height: 667}, 20},
		{"tall phone capped lower", Viewport{Width: 767, Height: 2000}, 30},
		{"tiny floored", Viewport{Width: 300, Height: 200}, 10},
		{"zero width", Viewport{Width: 0, Height: 600}, 0},
		{"negative height", Viewport{Width: 800, Height: -1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.Count(tt.vp); got != tt.want {
				t.Errorf("Count(%dx%d) = %d, want %d", tt.vp.Width, tt.vp.Height, got, tt.want)
			}
		})
	}
}

func TestCountPolicyPure(t *testing.T) {
	policy := defaultPolicy()
	vp := Viewport{Width: 1234, Height: 567}

	first := policy.Count(vp)
	for i := 0; i < 100; i++ {
		if got := policy.Count(vp); got != first {
			t.Fatalf("Count not deterministic: %d then %d", first, got)
		}
	}

	// Same area and class, different shape
	if got := policy.Count(Viewport{Width: 1134, Height: 617}); got != policy.Count(Viewport{Width: 1134, Height: 617}) {
		t.Error("Count differs across identical calls")
	}
}

func TestCountPolicyZeroDensity(t *testing.T) {
	policy := defaultPolicy()
	policy.Density = 0
	if got := policy.Count(Viewport{Width: 800, Height: 600}); got != 0 {
		t.Errorf("zero density Count = %d, want 0", got)
	}
}

func TestRasterSize(t *testing.T) {
	tests := []struct {
		vp   Viewport
		w, h int
	}{
		{Viewport{Width: 800, Height: 600}, 800, 600},
		{Viewport{Width: 800, Height: 600, PixelRatio: 2}, 1600, 1200},
		{Viewport{Width: 640, Height: 400, PixelRatio: 0.125}, 80, 50},
		{Viewport{Width: 3, Height: 3, PixelRatio: 0.1}, 1, 1},
		{Viewport{Width: 0, Height: 3}, 0, 0},
	}

	for _, tt := range tests {
		w, h := tt.vp.RasterSize()
		if w != tt.w || h != tt.h {
			t.Errorf("RasterSize(%+v) = %dx%d, want %dx%d", tt.vp, w, h, tt.w, tt.h)
		}
	}
}
