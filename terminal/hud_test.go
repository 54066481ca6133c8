package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glowfield/field"
	"github.com/lixenwraith/glowfield/render"
)

func TestReadableOn(t *testing.T) {
	navy := render.RGB{R: 0x1a, G: 0x1b, B: 0x26}
	paper := render.RGB{R: 0xf0, G: 0xf0, B: 0xe8}
	silver := render.RGB{R: 0xc0, G: 0xc0, B: 0xd0}

	tests := []struct {
		name   string
		fg, bg render.RGB
		want   render.RGB
	}{
		{"legible kept", silver, navy, silver},
		{"same as dark bg", navy, navy, render.RGBWhite},
		{"same as light bg", paper, paper, render.RGBBlack},
		{"gray on gray", render.RGB{R: 90, G: 90, B: 90}, render.RGB{R: 70, G: 70, B: 70}, render.RGBWhite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readableOn(tt.fg, tt.bg); got != tt.want {
				t.Errorf("readableOn(%v, %v) = %v, want %v", tt.fg, tt.bg, got, tt.want)
			}
		})
	}
}

func TestContrastBounds(t *testing.T) {
	if c := contrast(render.RGBWhite, render.RGBBlack); c < 20.9 || c > 21.01 {
		t.Errorf("white/black contrast = %f, want 21", c)
	}
	if c := contrast(render.RGBBlack, render.RGBWhite); c < 20.9 {
		t.Errorf("contrast must be symmetric, got %f", c)
	}
	if c := contrast(render.RGBBlack, render.RGBBlack); c != 1 {
		t.Errorf("self contrast = %f, want 1", c)
	}
}

func TestHUDReplacesIllegibleForeground(t *testing.T) {
	screen := newSimScreen(t, 40, 2)
	bg := render.RGB{R: 0x10, G: 0x10, B: 0x18}
	h := NewHost(screen, nil,
		WithColorMode(ColorModeTrueColor),
		WithHUD(bg, bg),
	)

	h.Present(render.NewRaster(40, 4), field.FrameStats{Frame: 1})

	_, _, style, _ := screen.GetContent(1, 0)
	fg, _, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("HUD foreground = %v, want white", fg)
	}
}
