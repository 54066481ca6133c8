package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lixenwraith/glowfield/constant"
)

// ApplyEnv overrides fields from GLOWFIELD_* environment variables
// Unset or empty variables are ignored; unparsable ones are reported together
func (c *Config) ApplyEnv() error {
	var errs []string
	bad := func(key, val string) {
		errs = append(errs, fmt.Sprintf("%s%s=%q", constant.EnvPrefix, key, val))
	}

	if v, ok := lookupEnv("SEED"); ok {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Field.Seed = n
		} else {
			bad("SEED", v)
		}
	}
	if v, ok := lookupEnv("FPS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Render.FPS = n
		} else {
			bad("FPS", v)
		}
	}
	if v, ok := lookupEnv("PALETTE"); ok {
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		c.Render.Palette = parts
	}
	if v, ok := lookupEnv("BACKGROUND"); ok {
		c.Render.Background = v
	}
	if v, ok := lookupEnv("COLOR"); ok {
		c.Terminal.ColorMode = v
	}
	if v, ok := lookupEnv("STATS"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Terminal.Stats = b
		} else {
			bad("STATS", v)
		}
	}
	if v, ok := lookupEnv("AUDIO"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		} else {
			bad("AUDIO", v)
		}
	}
	if v, ok := lookupEnv("DEBUG"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Log.Debug = b
		} else {
			bad("DEBUG", v)
		}
	}
	if v, ok := lookupEnv("LOG_DIR"); ok {
		c.Log.Dir = v
	}
	if v, ok := lookupEnv("LOG_LEVEL"); ok {
		c.Log.Level = v
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidEnv, strings.Join(errs, ", "))
	}
	return nil
}

// lookupEnv reads a prefixed variable, empty counts as unset
func lookupEnv(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(constant.EnvPrefix + key))
	return v, v != ""
}
