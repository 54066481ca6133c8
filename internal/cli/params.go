package cli

import (
	"fmt"

	"github.com/lixenwraith/glowfield/audio"
	"github.com/lixenwraith/glowfield/config"
	"github.com/lixenwraith/glowfield/render"
	"github.com/lixenwraith/glowfield/terminal"
)

// audioConfig converts the audio section over the pad defaults
func audioConfig(cfg *config.Config) audio.Config {
	ac := audio.DefaultConfig()
	ac.Volume = cfg.Audio.Volume
	ac.BaseFreq = cfg.Audio.BaseFreq
	ac.MaxGain = cfg.Audio.MaxGain
	return ac
}

// terminalOptions converts the terminal section to host options
func terminalOptions(cfg *config.Config) ([]terminal.Option, error) {
	mode, err := terminal.ParseColorMode(cfg.Terminal.ColorMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidOption, err)
	}
	opts := []terminal.Option{terminal.WithColorMode(mode)}

	if cfg.Terminal.Stats {
		fg, err := render.ParseHex(cfg.Terminal.HUDForeground)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", config.ErrInvalidColor, err)
		}
		bg, err := render.ParseHex(cfg.Terminal.HUDBackground)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", config.ErrInvalidColor, err)
		}
		opts = append(opts, terminal.WithHUD(fg, bg))
	}
	return opts, nil
}
