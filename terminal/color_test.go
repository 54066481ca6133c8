package terminal

import (
	"testing"

	"github.com/lixenwraith/glowfield/render"
)

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		c    render.RGB
		want uint8
	}{
		{"black", render.RGB{}, 16},
		{"white", render.RGB{R: 255, G: 255, B: 255}, 231},
		{"pure red", render.RGB{R: 255}, 196},
		{"pure green", render.RGB{G: 255}, 46},
		{"pure blue", render.RGB{B: 255}, 21},
		{"mid gray", render.RGB{R: 128, G: 128, B: 128}, 244},
		{"cube exact", render.RGB{R: 95, G: 135, B: 175}, 16 + 36*1 + 6*2 + 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBTo256(tt.c); got != tt.want {
				t.Errorf("RGBTo256(%v) = %d, want %d", tt.c, got, tt.want)
			}
		})
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"", ColorModeAuto, false},
		{"auto", ColorModeAuto, false},
		{"256", ColorMode256, false},
		{"TrueColor", ColorModeTrueColor, false},
		{"24bit", ColorModeTrueColor, false},
		{"16", ColorModeAuto, true},
	}

	for _, tt := range tests {
		got, err := ParseColorMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColorMode(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColorMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDetectColorMode(t *testing.T) {
	for _, k := range []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE"} {
		t.Setenv(k, "")
	}

	t.Setenv("COLORTERM", "truecolor")
	t.Setenv("TERM", "xterm")
	if got := DetectColorMode(); got != ColorModeTrueColor {
		t.Errorf("COLORTERM=truecolor detected %v", got)
	}

	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "xterm-256color")
	if got := DetectColorMode(); got != ColorMode256 {
		t.Errorf("TERM=xterm-256color detected %v", got)
	}

	t.Setenv("TERM", "xterm-direct")
	if got := DetectColorMode(); got != ColorModeTrueColor {
		t.Errorf("TERM=xterm-direct detected %v", got)
	}
}
