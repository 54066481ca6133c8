package config

import (
	"time"

	"github.com/lixenwraith/glowfield/constant"
)

// Config is the complete application configuration
type Config struct {
	Field    FieldConfig    `yaml:"field"`
	Render   RenderConfig   `yaml:"render"`
	Terminal TerminalConfig `yaml:"terminal"`
	Audio    AudioConfig    `yaml:"audio"`
	Log      LogConfig      `yaml:"log"`
}

// FieldConfig controls population sizing and particle sampling
type FieldConfig struct {
	Density          int     `yaml:"density"`
	WideCap          int     `yaml:"wide_cap"`
	MobileCap        int     `yaml:"mobile_cap"`
	MinCount         int     `yaml:"min_count"`
	MobileBreakpoint int     `yaml:"mobile_breakpoint"`
	MaxSpeed         float64 `yaml:"max_speed"`
	MinSize          float64 `yaml:"min_size"`
	MaxSize          float64 `yaml:"max_size"`
	MinOpacity       float64 `yaml:"min_opacity"`
	MaxOpacity       float64 `yaml:"max_opacity"`
	MinLifespan      int     `yaml:"min_lifespan"`
	MaxLifespan      int     `yaml:"max_lifespan"`
	LinkDistance     float64 `yaml:"link_distance"`
	LinkOpacity      float64 `yaml:"link_opacity"`

	// Seed for the particle sampler, 0 picks one from the clock
	Seed uint64 `yaml:"seed"`
}

// RenderConfig controls composition
type RenderConfig struct {
	Palette      []string `yaml:"palette"`
	Background   string   `yaml:"background"`
	Blend        string   `yaml:"blend"`
	GlowBlur     float64  `yaml:"glow_blur"`
	GlowStrength float64  `yaml:"glow_strength"`
	HaloScale    float64  `yaml:"halo_scale"`
	HaloOpacity  float64  `yaml:"halo_opacity"`
	FPS          int      `yaml:"fps"`
}

// TerminalConfig controls the tcell host
type TerminalConfig struct {
	ColorMode     string `yaml:"color_mode"`
	Stats         bool   `yaml:"stats"`
	HUDForeground string `yaml:"hud_foreground"`
	HUDBackground string `yaml:"hud_background"`
}

// AudioConfig controls the ambient pad
type AudioConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Volume   float64 `yaml:"volume"`
	BaseFreq float64 `yaml:"base_freq"`
	MaxGain  float64 `yaml:"max_gain"`
}

// LogConfig controls the debug log file
type LogConfig struct {
	Debug bool   `yaml:"debug"`
	Dir   string `yaml:"dir"`
	Level string `yaml:"level"`
}

// Default returns the built-in configuration
func Default() *Config {
	palette := make([]string, len(constant.DefaultPalette))
	copy(palette, constant.DefaultPalette[:])

	return &Config{
		Field: FieldConfig{
			Density:          constant.DensityPixels,
			WideCap:          constant.WideParticleCap,
			MobileCap:        constant.MobileParticleCap,
			MinCount:         constant.MinParticles,
			MobileBreakpoint: constant.MobileBreakpoint,
			MaxSpeed:         constant.ParticleMaxSpeed,
			MinSize:          constant.ParticleMinSize,
			MaxSize:          constant.ParticleMaxSize,
			MinOpacity:       constant.ParticleMinOpacity,
			MaxOpacity:       constant.ParticleMaxOpacity,
			MinLifespan:      constant.ParticleMinLifespan,
			MaxLifespan:      constant.ParticleMaxLifespan,
			LinkDistance:     constant.LinkDistance,
			LinkOpacity:      constant.LinkOpacity,
		},
		Render: RenderConfig{
			Palette:      palette,
			Background:   constant.BackgroundColor,
			Blend:        constant.BlendModeName,
			GlowBlur:     constant.GlowBlur,
			GlowStrength: constant.GlowStrength,
			HaloScale:    constant.HaloScale,
			HaloOpacity:  constant.HaloOpacity,
			FPS:          constant.DefaultFPS,
		},
		Terminal: TerminalConfig{
			ColorMode:     "auto",
			HUDForeground: constant.HUDForeground,
			HUDBackground: constant.HUDBackground,
		},
		Audio: AudioConfig{
			Volume:   constant.AmbientVolume,
			BaseFreq: constant.AmbientBaseFreq,
			MaxGain:  constant.AmbientMaxGain,
		},
		Log: LogConfig{
			Dir:   constant.LogDir,
			Level: "debug",
		},
	}
}

// FrameInterval converts FPS to the loop tick, clamped to the supported range
func (c *Config) FrameInterval() time.Duration {
	if c.Render.FPS <= 0 {
		return constant.FrameUpdateInterval
	}
	d := time.Second / time.Duration(c.Render.FPS)
	return min(max(d, constant.MinFrameInterval), constant.MaxFrameInterval)
}
