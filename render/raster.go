package render

import (
	"image"
	"image/color"
	"math"
)

// Raster is a row-major RGB pixel surface, the drawing target of the field renderer
// Pixel (x, y) covers [x, x+1) x [y, y+1), centers sit at half coordinates
type Raster struct {
	pix    []RGB
	width  int
	height int
}

// NewRaster creates a raster with the specified dimensions, cleared to black
func NewRaster(width, height int) *Raster {
	r := &Raster{}
	r.Resize(width, height)
	return r
}

// Resize adjusts dimensions, reallocates only if capacity insufficient
// Content is discarded
func (r *Raster) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(r.pix) < size {
		r.pix = make([]RGB, size)
	} else {
		r.pix = r.pix[:size]
	}
	r.width = width
	r.height = height
	r.Clear(RGBBlack)
}

func (r *Raster) Width() int  { return r.width }
func (r *Raster) Height() int { return r.height }

// Pixels exposes the backing slice, row-major: pix[y*width + x]
func (r *Raster) Pixels() []RGB { return r.pix }

// Clear fills all pixels using exponential copy
func (r *Raster) Clear(bg RGB) {
	if len(r.pix) == 0 {
		return
	}
	r.pix[0] = bg
	for filled := 1; filled < len(r.pix); filled *= 2 {
		copy(r.pix[filled:], r.pix[:filled])
	}
}

// inBounds returns true if inside the surface
func (r *Raster) inBounds(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}

// At returns the pixel color, black outside bounds
func (r *Raster) At(x, y int) RGB {
	if !r.inBounds(x, y) {
		return RGBBlack
	}
	return r.pix[y*r.width+x]
}

// Set composites a single pixel with specified blend mode
func (r *Raster) Set(x, y int, c RGB, mode BlendMode, alpha float64) {
	if !r.inBounds(x, y) {
		return
	}
	idx := y*r.width + x
	r.pix[idx] = mode.Apply(r.pix[idx], c, alpha)
}

// subPixel widens radii below half a pixel and returns the alpha factor that keeps
// the drawn energy proportional to the true disc area
func subPixel(radius, alpha float64) (float64, float64) {
	if radius >= 0.5 {
		return radius, alpha
	}
	ratio := radius / 0.5
	return 0.5, alpha * ratio * ratio
}

// span returns the clipped integer pixel range touched by [c-extent, c+extent]
func span(c, extent float64, limit int) (int, int) {
	lo := int(math.Floor(c - extent))
	hi := int(math.Ceil(c + extent))
	if lo < 0 {
		lo = 0
	}
	if hi > limit-1 {
		hi = limit - 1
	}
	return lo, hi
}

// FillCircle draws an antialiased disc centered at (cx, cy)
func (r *Raster) FillCircle(cx, cy, radius float64, c RGB, mode BlendMode, alpha float64) {
	if radius <= 0 || alpha <= 0 {
		return
	}
	radius, alpha = subPixel(radius, alpha)

	minX, maxX := span(cx, radius+1, r.width)
	minY, maxY := span(cy, radius+1, r.height)

	for y := minY; y <= maxY; y++ {
		dy := float64(y) + 0.5 - cy
		rowOff := y * r.width
		for x := minX; x <= maxX; x++ {
			dx := float64(x) + 0.5 - cx
			d := math.Sqrt(dx*dx + dy*dy)

			// Coverage ramps over one pixel across the edge
			coverage := radius + 0.5 - d
			if coverage <= 0 {
				continue
			}
			if coverage > 1 {
				coverage = 1
			}

			idx := rowOff + x
			r.pix[idx] = mode.Apply(r.pix[idx], c, alpha*coverage)
		}
	}
}

// Glow adds a soft falloff of color c around (cx, cy), reaching zero at radius+blur
// Quadratic falloff approximates a gaussian shadow blur without a convolution pass
func (r *Raster) Glow(cx, cy, radius, blur float64, c RGB, alpha float64) {
	outer := radius + blur
	if outer <= 0 || alpha <= 0 {
		return
	}
	outer, alpha = subPixel(outer, alpha)

	minX, maxX := span(cx, outer, r.width)
	minY, maxY := span(cy, outer, r.height)
	invOuter := 1.0 / outer

	for y := minY; y <= maxY; y++ {
		dy := float64(y) + 0.5 - cy
		rowOff := y * r.width
		for x := minX; x <= maxX; x++ {
			dx := float64(x) + 0.5 - cx
			d := math.Sqrt(dx*dx + dy*dy)
			if d >= outer {
				continue
			}
			f := 1.0 - d*invOuter
			idx := rowOff + x
			r.pix[idx] = Add(r.pix[idx], c, alpha*f*f)
		}
	}
}

// Line draws an antialiased one-pixel line (Wu style coverage split on the minor axis)
func (r *Raster) Line(x0, y0, x1, y1 float64, c RGB, mode BlendMode, alpha float64) {
	if alpha <= 0 {
		return
	}

	steep := math.Abs(y1-y0) > math.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	gradient := 0.0
	if dx > 0 {
		gradient = (y1 - y0) / dx
	}

	plot := func(major, minor int, a float64) {
		if a <= 0 {
			return
		}
		if steep {
			r.Set(minor, major, c, mode, a)
		} else {
			r.Set(major, minor, c, mode, a)
		}
	}

	xs := int(math.Floor(x0))
	xe := int(math.Floor(x1))
	for x := xs; x <= xe; x++ {
		// Sample at the pixel center, clamped to the segment so endpoints don't extrapolate
		t := math.Min(math.Max(float64(x)+0.5, x0), x1)
		fy := y0 + gradient*(t-x0) - 0.5
		iy := math.Floor(fy)
		frac := fy - iy
		plot(x, int(iy), alpha*(1-frac))
		plot(x, int(iy)+1, alpha*frac)
	}
}

// Image copies the raster into an *image.RGBA for encoders
func (r *Raster) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	for y := 0; y < r.height; y++ {
		rowOff := y * r.width
		for x := 0; x < r.width; x++ {
			p := r.pix[rowOff+x]
			img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img
}
