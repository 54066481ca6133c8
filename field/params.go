package field

import (
	"github.com/lixenwraith/glowfield/constant"
	"github.com/lixenwraith/glowfield/render"
)

// Params configures sampling, linking and composition
type Params struct {
	Policy CountPolicy

	MaxSpeed    float64 // per-axis velocity bound, logical px per frame
	MinSize     float64
	MaxSize     float64
	MinOpacity  float64
	MaxOpacity  float64
	MinLifespan int // frames
	MaxLifespan int

	LinkDistance float64
	LinkOpacity  float64

	Palette    []render.RGB
	Background render.RGB
	Blend      render.BlendMode

	GlowBlur     float64
	GlowStrength float64
	HaloScale    float64
	HaloOpacity  float64
}

// DefaultParams returns the stock field tuning
func DefaultParams() Params {
	palette := make([]render.RGB, 0, len(constant.DefaultPalette))
	for _, hex := range constant.DefaultPalette {
		c, err := render.ParseHex(hex)
		if err != nil {
			panic(err)
		}
		palette = append(palette, c)
	}
	bg, err := render.ParseHex(constant.BackgroundColor)
	if err != nil {
		panic(err)
	}
	blend, _ := render.ParseBlendMode(constant.BlendModeName)

	return Params{
		Policy: CountPolicy{
			Density:          constant.DensityPixels,
			WideCap:          constant.WideParticleCap,
			MobileCap:        constant.MobileParticleCap,
			MinCount:         constant.MinParticles,
			MobileBreakpoint: constant.MobileBreakpoint,
		},
		MaxSpeed:     constant.ParticleMaxSpeed,
		MinSize:      constant.ParticleMinSize,
		MaxSize:      constant.ParticleMaxSize,
		MinOpacity:   constant.ParticleMinOpacity,
		MaxOpacity:   constant.ParticleMaxOpacity,
		MinLifespan:  constant.ParticleMinLifespan,
		MaxLifespan:  constant.ParticleMaxLifespan,
		LinkDistance: constant.LinkDistance,
		LinkOpacity:  constant.LinkOpacity,
		Palette:      palette,
		Background:   bg,
		Blend:        blend,
		GlowBlur:     constant.GlowBlur,
		GlowStrength: constant.GlowStrength,
		HaloScale:    constant.HaloScale,
		HaloOpacity:  constant.HaloOpacity,
	}
}
