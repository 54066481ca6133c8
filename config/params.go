package config

import (
	"fmt"
	"time"

	"github.com/lixenwraith/glowfield/field"
	"github.com/lixenwraith/glowfield/render"
)

// FieldParams converts the field and render sections, call after Validate
func (c *Config) FieldParams() (field.Params, error) {
	palette := make([]render.RGB, 0, len(c.Render.Palette))
	for _, hex := range c.Render.Palette {
		col, err := render.ParseHex(hex)
		if err != nil {
			return field.Params{}, fmt.Errorf("%w: %v", ErrInvalidColor, err)
		}
		palette = append(palette, col)
	}
	bg, err := render.ParseHex(c.Render.Background)
	if err != nil {
		return field.Params{}, fmt.Errorf("%w: %v", ErrInvalidColor, err)
	}
	blend, ok := render.ParseBlendMode(c.Render.Blend)
	if !ok {
		return field.Params{}, fmt.Errorf("%w: blend %q", ErrInvalidOption, c.Render.Blend)
	}

	f := c.Field
	return field.Params{
		Policy: field.CountPolicy{
			Density:          f.Density,
			WideCap:          f.WideCap,
			MobileCap:        f.MobileCap,
			MinCount:         f.MinCount,
			MobileBreakpoint: f.MobileBreakpoint,
		},
		MaxSpeed:     f.MaxSpeed,
		MinSize:      f.MinSize,
		MaxSize:      f.MaxSize,
		MinOpacity:   f.MinOpacity,
		MaxOpacity:   f.MaxOpacity,
		MinLifespan:  f.MinLifespan,
		MaxLifespan:  f.MaxLifespan,
		LinkDistance: f.LinkDistance,
		LinkOpacity:  f.LinkOpacity,
		Palette:      palette,
		Background:   bg,
		Blend:        blend,
		GlowBlur:     c.Render.GlowBlur,
		GlowStrength: c.Render.GlowStrength,
		HaloScale:    c.Render.HaloScale,
		HaloOpacity:  c.Render.HaloOpacity,
	}, nil
}

// ResolveSeed returns the configured seed, or one derived from now when unset
func (c *Config) ResolveSeed(now time.Time) uint64 {
	if c.Field.Seed != 0 {
		return c.Field.Seed
	}
	return uint64(now.UnixNano())
}
