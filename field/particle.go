package field

import (
	"github.com/lixenwraith/glowfield/constant"
	"github.com/lixenwraith/glowfield/render"
	"github.com/lixenwraith/glowfield/vmath"
)

// minOpacity keeps sampled particles visible when the configured range reaches 0
const minOpacity = 0.01

// Particle is a single drifting point with a finite lifespan
type Particle struct {
	Pos         vmath.Vec2
	Vel         vmath.Vec2
	Size        float64
	BaseOpacity float64
	Color       render.RGB
	Age         int
	Lifespan    int
}

// LifeRatio returns age/lifespan in [0, 1]
func (p *Particle) LifeRatio() float64 {
	if p.Lifespan <= 0 {
		return 1
	}
	r := float64(p.Age) / float64(p.Lifespan)
	if r > 1 {
		return 1
	}
	return r
}

// Opacity returns the rendered opacity, dimming toward half of base as the particle ages
func (p *Particle) Opacity() float64 {
	return p.BaseOpacity * (1 - constant.ParticleFadeDepth*p.LifeRatio())
}

// advance integrates one frame inside a w x h viewport, returns true once the lifespan is reached
// Walls flip the velocity component without clamping, so a particle may overshoot by one frame of travel
func (p *Particle) advance(w, h float64) bool {
	p.Pos = p.Pos.Add(p.Vel)
	p.Age++

	if p.Pos.X < 0 || p.Pos.X > w {
		p.Vel = p.Vel.ReflectX()
	}
	if p.Pos.Y < 0 || p.Pos.Y > h {
		p.Vel = p.Vel.ReflectY()
	}

	return p.Age >= p.Lifespan
}

// Spawn samples a fresh particle anywhere inside the viewport
// Deterministic for a given rng state, palette must be non-empty
func Spawn(rng *vmath.FastRand, vp Viewport, palette []render.RGB, params *Params) Particle {
	w := float64(max(vp.Width, 0))
	h := float64(max(vp.Height, 0))

	opacity := vmath.Clamp(rng.Range(params.MinOpacity, params.MaxOpacity), minOpacity, 1)

	lifespan := rng.IntRange(params.MinLifespan, params.MaxLifespan)
	if lifespan < 1 {
		lifespan = 1
	}

	var color render.RGB
	if len(palette) > 0 {
		color = palette[rng.Intn(len(palette))]
	}

	return Particle{
		Pos: vmath.Vec2{
			X: rng.Float64() * w,
			Y: rng.Float64() * h,
		},
		Vel: vmath.Vec2{
			X: rng.Range(-params.MaxSpeed, params.MaxSpeed),
			Y: rng.Range(-params.MaxSpeed, params.MaxSpeed),
		},
		Size:        rng.Range(params.MinSize, params.MaxSize),
		BaseOpacity: opacity,
		Color:       color,
		Age:         0,
		Lifespan:    lifespan,
	}
}
