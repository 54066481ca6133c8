package field

import "math"

// Viewport is the logical drawing area plus the raster pixels per logical pixel
type Viewport struct {
	Width      int
	Height     int
	PixelRatio float64
}

// Area returns the logical area in square pixels, zero for degenerate viewports
func (v Viewport) Area() int {
	if v.Width <= 0 || v.Height <= 0 {
		return 0
	}
	return v.Width * v.Height
}

// Mobile reports whether the viewport is narrower than the breakpoint
func (v Viewport) Mobile(breakpoint int) bool {
	return v.Width < breakpoint
}

// Ratio returns the pixel ratio, defaulting to 1
func (v Viewport) Ratio() float64 {
	if v.PixelRatio <= 0 {
		return 1
	}
	return v.PixelRatio
}

// RasterSize returns the drawing surface dimensions in raster pixels, at least 1x1 for non-empty viewports
func (v Viewport) RasterSize() (int, int) {
	if v.Area() == 0 {
		return 0, 0
	}
	r := v.Ratio()
	w := int(math.Round(float64(v.Width) * r))
	h := int(math.Round(float64(v.Height) * r))
	return max(w, 1), max(h, 1)
}

// CountPolicy maps viewport area to population size
type CountPolicy struct {
	Density          int // logical square pixels per particle
	WideCap          int
	MobileCap        int
	MinCount         int
	MobileBreakpoint int
}

// Cap returns the upper bound for the viewport's class
func (p CountPolicy) Cap(v Viewport) int {
	if v.Mobile(p.MobileBreakpoint) {
		return p.MobileCap
	}
	return p.WideCap
}

// Count returns min(cap, max(MinCount, floor(area/density))), zero for empty viewports
// Pure: the same viewport always yields the same count
func (p CountPolicy) Count(v Viewport) int {
	area := v.Area()
	if area == 0 || p.Density <= 0 {
		return 0
	}

	n := area / p.Density
	if n < p.MinCount {
		n = p.MinCount
	}
	if c := p.Cap(v); n > c {
		n = c
	}
	return n
}
