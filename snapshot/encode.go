package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"time"

	"github.com/lixenwraith/glowfield/render"
)

// ErrNoFrames is returned when encoding a recording with nothing captured
var ErrNoFrames = errors.New("no frames captured")

// WritePNG encodes the raster as an opaque PNG
func WritePNG(w io.Writer, r *render.Raster) error {
	if r.Width() == 0 || r.Height() == 0 {
		return fmt.Errorf("write png: empty raster %dx%d", r.Width(), r.Height())
	}
	if err := png.Encode(w, r.Image()); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// gifRamp is the number of shades between background and each palette color
const gifRamp = 48

// Palette builds a GIF palette of at most 256 entries for a field: a ramp from the background
// to every palette color, the pairwise midpoints ramped the same way, and a gray ramp
// for additive overlaps that saturate toward white
func Palette(bg render.RGB, colors []render.RGB) color.Palette {
	pal := make(color.Palette, 0, 256)
	add := func(c render.RGB) {
		if len(pal) < 256 {
			pal = append(pal, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}

	add(bg)
	for _, c := range colors {
		for i := 1; i <= gifRamp; i++ {
			add(render.Lerp(bg, c, float64(i)/gifRamp))
		}
	}
	for i := 0; i < len(colors); i++ {
		for j := i + 1; j < len(colors); j++ {
			mid := render.Lerp(colors[i], colors[j], 0.5)
			for k := 1; k <= 4; k++ {
				add(render.Lerp(bg, mid, float64(k)/4))
			}
		}
	}
	for i := 1; len(pal) < 256; i++ {
		v := uint8(min(255, 128+i*8))
		add(render.RGB{R: v, G: v, B: v})
		if v == 255 {
			break
		}
	}
	return pal
}

// GIFRecorder accumulates dithered frames for an animated GIF
type GIFRecorder struct {
	palette color.Palette
	delay   int // hundredths of a second
	every   int
	seen    int
	anim    gif.GIF
}

// NewGIFRecorder keeps one of every `every` frames, shown for delay each
func NewGIFRecorder(pal color.Palette, delay time.Duration, every int) *GIFRecorder {
	if every < 1 {
		every = 1
	}
	cs := int(delay / (10 * time.Millisecond))
	if cs < 2 {
		// Most viewers clamp lower delays to 10
		cs = 2
	}
	return &GIFRecorder{
		palette: pal,
		delay:   cs,
		every:   every,
	}
}

// Add quantizes the raster and appends it, subject to the sampling interval
func (g *GIFRecorder) Add(r *render.Raster) {
	g.seen++
	if (g.seen-1)%g.every != 0 {
		return
	}
	src := r.Image()
	dst := image.NewPaletted(src.Bounds(), g.palette)
	draw.FloydSteinberg.Draw(dst, src.Bounds(), src, image.Point{})

	g.anim.Image = append(g.anim.Image, dst)
	g.anim.Delay = append(g.anim.Delay, g.delay)
}

// Len returns the number of captured frames
func (g *GIFRecorder) Len() int { return len(g.anim.Image) }

// Encode writes the looping animation
func (g *GIFRecorder) Encode(w io.Writer) error {
	if len(g.anim.Image) == 0 {
		return ErrNoFrames
	}
	g.anim.LoopCount = 0
	if err := gif.EncodeAll(w, &g.anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}
