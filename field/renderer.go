package field

import (
	"time"

	"github.com/lixenwraith/glowfield/render"
)

// FrameStats summarizes one rendered frame
type FrameStats struct {
	At         time.Time
	Frame      uint64
	Generation uint64
	Particles  int
	Links      int
	Respawns   int

	// Energy is the mean link alpha per particle normalized by the max link alpha, in [0, 1]
	Energy float64
}

// Renderer composites a field onto a raster
type Renderer struct {
	params *Params
}

// NewRenderer creates a renderer using the field's tuning
func NewRenderer(params *Params) *Renderer {
	return &Renderer{params: params}
}

// Render clears dst and draws particles then links, returns stats with the per-frame counters left zero
func (r *Renderer) Render(f *Field, links []Link, dst *render.Raster) FrameStats {
	p := r.params
	dst.Clear(p.Background)

	scale := f.Viewport().Ratio()
	particles := f.Particles()

	for i := range particles {
		r.drawParticle(dst, &particles[i], scale)
	}

	energy := 0.0
	for _, l := range links {
		a := &particles[l.A]
		b := &particles[l.B]
		c := render.Lerp(a.Color, b.Color, 0.5)
		dst.Line(a.Pos.X*scale, a.Pos.Y*scale, b.Pos.X*scale, b.Pos.Y*scale, c, p.Blend, l.Alpha)
		energy += l.Alpha
	}

	stats := FrameStats{
		Generation: f.Generation(),
		Particles:  len(particles),
		Links:      len(links),
	}
	if len(particles) > 0 && p.LinkOpacity > 0 {
		stats.Energy = min(energy/(float64(len(particles))*p.LinkOpacity), 1)
	}
	return stats
}

// drawParticle composites glow, core disc and halo for one particle
func (r *Renderer) drawParticle(dst *render.Raster, pt *Particle, scale float64) {
	p := r.params
	x := pt.Pos.X * scale
	y := pt.Pos.Y * scale
	size := pt.Size * scale
	opacity := pt.Opacity()

	// Shadow blur keyed to the particle's own color
	dst.Glow(x, y, size, p.GlowBlur*scale, pt.Color, opacity*p.GlowStrength)

	dst.FillCircle(x, y, size, pt.Color, p.Blend, opacity)

	if p.HaloScale > 0 && p.HaloOpacity > 0 {
		dst.FillCircle(x, y, size*p.HaloScale, pt.Color, p.Blend, opacity*p.HaloOpacity)
	}
}
