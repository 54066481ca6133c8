package config

import (
	"log/slog"

	"github.com/lixenwraith/glowfield/render"
	"github.com/lixenwraith/glowfield/terminal"
)

// PaletteSize is the fixed number of particle colors
const PaletteSize = 4

// Validate checks every section and returns *ValidationErrors on failure
func (c *Config) Validate() error {
	ve := &ValidationErrors{}

	f := c.Field
	if f.Density <= 0 {
		ve.add("field.density", "must be positive", f.Density, ErrInvalidRange)
	}
	if f.MinCount < 0 {
		ve.add("field.min_count", "must not be negative", f.MinCount, ErrInvalidRange)
	}
	if f.WideCap < f.MinCount {
		ve.add("field.wide_cap", "must be at least min_count", f.WideCap, ErrInvalidRange)
	}
	if f.MobileCap < f.MinCount {
		ve.add("field.mobile_cap", "must be at least min_count", f.MobileCap, ErrInvalidRange)
	}
	if f.MobileBreakpoint < 0 {
		ve.add("field.mobile_breakpoint", "must not be negative", f.MobileBreakpoint, ErrInvalidRange)
	}
	if f.MaxSpeed < 0 {
		ve.add("field.max_speed", "must not be negative", f.MaxSpeed, ErrInvalidRange)
	}
	if f.MinSize <= 0 || f.MaxSize < f.MinSize {
		ve.add("field.min_size", "require 0 < min_size <= max_size", f.MinSize, ErrInvalidRange)
	}
	if f.MinOpacity <= 0 || f.MaxOpacity < f.MinOpacity || f.MaxOpacity > 1 {
		ve.add("field.min_opacity", "require 0 < min_opacity <= max_opacity <= 1", f.MinOpacity, ErrInvalidRange)
	}
	if f.MinLifespan < 1 || f.MaxLifespan < f.MinLifespan {
		ve.add("field.min_lifespan", "require 1 <= min_lifespan <= max_lifespan", f.MinLifespan, ErrInvalidRange)
	}
	if f.LinkDistance < 0 {
		ve.add("field.link_distance", "must not be negative", f.LinkDistance, ErrInvalidRange)
	}
	if f.LinkOpacity < 0 || f.LinkOpacity > 1 {
		ve.add("field.link_opacity", "must be within [0, 1]", f.LinkOpacity, ErrInvalidRange)
	}

	r := c.Render
	if len(r.Palette) != PaletteSize {
		ve.add("render.palette", "must hold exactly 4 colors", len(r.Palette), ErrInvalidPalette)
	}
	for _, hex := range r.Palette {
		if _, err := render.ParseHex(hex); err != nil {
			ve.add("render.palette", "invalid color", hex, ErrInvalidColor)
		}
	}
	if _, err := render.ParseHex(r.Background); err != nil {
		ve.add("render.background", "invalid color", r.Background, ErrInvalidColor)
	}
	if _, ok := render.ParseBlendMode(r.Blend); !ok {
		ve.add("render.blend", "unknown blend mode", r.Blend, ErrInvalidOption)
	}
	if r.GlowBlur < 0 || r.GlowStrength < 0 || r.HaloScale < 0 || r.HaloOpacity < 0 {
		ve.add("render.glow", "glow and halo settings must not be negative", nil, ErrInvalidRange)
	}
	if r.FPS < 1 || r.FPS > 240 {
		ve.add("render.fps", "must be within [1, 240]", r.FPS, ErrInvalidRange)
	}

	t := c.Terminal
	if _, err := terminal.ParseColorMode(t.ColorMode); err != nil {
		ve.add("terminal.color_mode", "must be auto, 256 or truecolor", t.ColorMode, ErrInvalidOption)
	}
	if _, err := render.ParseHex(t.HUDForeground); err != nil {
		ve.add("terminal.hud_foreground", "invalid color", t.HUDForeground, ErrInvalidColor)
	}
	if _, err := render.ParseHex(t.HUDBackground); err != nil {
		ve.add("terminal.hud_background", "invalid color", t.HUDBackground, ErrInvalidColor)
	}

	a := c.Audio
	if a.Volume < 0 || a.Volume > 1 {
		ve.add("audio.volume", "must be within [0, 1]", a.Volume, ErrInvalidRange)
	}
	if a.BaseFreq <= 0 {
		ve.add("audio.base_freq", "must be positive", a.BaseFreq, ErrInvalidRange)
	}
	if a.MaxGain < 0 || a.MaxGain > 1 {
		ve.add("audio.max_gain", "must be within [0, 1]", a.MaxGain, ErrInvalidRange)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		ve.add("log.level", "must be debug, info, warn or error", c.Log.Level, ErrInvalidOption)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}
