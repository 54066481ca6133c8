package snapshot

import (
	"bytes"
	"errors"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/lixenwraith/glowfield/field"
	"github.com/lixenwraith/glowfield/render"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestHostContextAndResize(t *testing.T) {
	h := NewHost(field.Viewport{Width: 0, Height: 100}, nil)
	if _, ok := h.Context(); ok {
		t.Error("context available for empty viewport")
	}

	h = NewHost(field.Viewport{Width: 320, Height: 200}, nil)
	if _, ok := h.Context(); !ok {
		t.Fatal("context unavailable for valid viewport")
	}

	var got field.Viewport
	detach := h.OnResize(func(vp field.Viewport) { got = vp })
	h.Resize(field.Viewport{Width: 160, Height: 100})
	if got.Width != 160 || got.Height != 100 {
		t.Errorf("listener got %+v", got)
	}

	detach()
	if h.Listeners() != 0 {
		t.Errorf("listeners after detach = %d", h.Listeners())
	}

	h.Close()
	if _, ok := h.Context(); ok {
		t.Error("context available after Close")
	}
}

func lastFrame(t *testing.T, seed uint64) ([]render.RGB, Summary) {
	t.Helper()
	var pix []render.RGB
	sink := func(frame *render.Raster, _ field.FrameStats) {
		pix = append(pix[:0], frame.Pixels()...)
	}
	sum, err := Record(field.DefaultParams(), Options{
		Viewport: field.Viewport{Width: 200, Height: 120},
		Frames:   30,
		Seed:     seed,
		Logger:   quietLogger,
	}, sink)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	return pix, sum
}

func TestRecordDeterministic(t *testing.T) {
	a, sumA := lastFrame(t, 7)
	b, sumB := lastFrame(t, 7)

	if sumA != sumB {
		t.Errorf("summaries differ: %+v vs %+v", sumA, sumB)
	}
	if len(a) != 200*120 || len(a) != len(b) {
		t.Fatalf("frame sizes %d, %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("pixel %d differs between runs with the same seed", i)
		}
	}

	c, _ := lastFrame(t, 8)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical frames")
	}
}

func TestRecordSummary(t *testing.T) {
	_, sum := lastFrame(t, 3)
	if sum.Frames != 30 {
		t.Errorf("frames = %d, want 30", sum.Frames)
	}
	// 200x120 is below the density threshold, the minimum count applies
	if sum.Particles != field.DefaultParams().Policy.MinCount {
		t.Errorf("particles = %d, want %d", sum.Particles, field.DefaultParams().Policy.MinCount)
	}
	if sum.Simulated != 30*16*time.Millisecond {
		t.Errorf("simulated = %v, want %v", sum.Simulated, 30*16*time.Millisecond)
	}
	if sum.MeanEnergy < 0 || sum.MeanEnergy > 1 {
		t.Errorf("mean energy %f outside [0,1]", sum.MeanEnergy)
	}
}

func TestRecordCountsRespawns(t *testing.T) {
	params := field.DefaultParams()
	params.MinLifespan = 5
	params.MaxLifespan = 5

	sum, err := Record(params, Options{
		Viewport: field.Viewport{Width: 200, Height: 120},
		Frames:   25,
		Seed:     9,
		Logger:   quietLogger,
	}, nil)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	// every particle respawns once per 5 frames
	if want := sum.Particles * 5; sum.Respawns != want {
		t.Errorf("respawns = %d, want %d", sum.Respawns, want)
	}
}

func TestRecordErrors(t *testing.T) {
	_, err := Record(field.DefaultParams(), Options{Viewport: field.Viewport{Width: 10, Height: 10}}, nil)
	if !errors.Is(err, ErrInvalidFrames) {
		t.Errorf("zero frames err = %v, want ErrInvalidFrames", err)
	}

	_, err = Record(field.DefaultParams(), Options{Frames: 5, Logger: quietLogger}, nil)
	if !errors.Is(err, ErrEmptyViewport) {
		t.Errorf("empty viewport err = %v, want ErrEmptyViewport", err)
	}
}

func TestWritePNG(t *testing.T) {
	r := render.NewRaster(6, 4)
	r.Clear(render.RGB{R: 11, G: 11, B: 20})
	r.Set(2, 1, render.RGB{R: 139, G: 92, B: 246}, render.BlendReplace, 1)

	var buf bytes.Buffer
	if err := WritePNG(&buf, r); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 4 {
		t.Fatalf("bounds = %v", b)
	}
	got := color.RGBAModel.Convert(img.At(2, 1)).(color.RGBA)
	if got != (color.RGBA{R: 139, G: 92, B: 246, A: 255}) {
		t.Errorf("pixel = %v", got)
	}

	if err := WritePNG(&buf, render.NewRaster(0, 0)); err == nil {
		t.Error("empty raster encoded without error")
	}
}

func TestPalette(t *testing.T) {
	params := field.DefaultParams()
	pal := Palette(params.Background, params.Palette)

	if len(pal) == 0 || len(pal) > 256 {
		t.Fatalf("palette size %d", len(pal))
	}
	bg := color.RGBA{R: params.Background.R, G: params.Background.G, B: params.Background.B, A: 255}
	if pal[0] != bg {
		t.Errorf("first entry %v, want background %v", pal[0], bg)
	}
	for _, c := range params.Palette {
		want := color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
		if pal[pal.Index(want)] != want {
			t.Errorf("palette color %v not represented exactly", c)
		}
	}
}

func TestGIFRecorder(t *testing.T) {
	params := field.DefaultParams()
	rec := NewGIFRecorder(Palette(params.Background, params.Palette), 40*time.Millisecond, 2)

	var empty bytes.Buffer
	if err := rec.Encode(&empty); !errors.Is(err, ErrNoFrames) {
		t.Errorf("empty Encode err = %v, want ErrNoFrames", err)
	}

	sink := func(frame *render.Raster, _ field.FrameStats) { rec.Add(frame) }
	if _, err := Record(params, Options{
		Viewport: field.Viewport{Width: 64, Height: 48},
		Frames:   10,
		Seed:     1,
		Logger:   quietLogger,
	}, sink); err != nil {
		t.Fatalf("Record: %v", err)
	}

	if rec.Len() != 5 {
		t.Fatalf("captured %d frames, want 5 (every 2nd of 10)", rec.Len())
	}

	var buf bytes.Buffer
	if err := rec.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(anim.Image) != 5 {
		t.Errorf("decoded %d frames, want 5", len(anim.Image))
	}
	for i, d := range anim.Delay {
		if d != 4 {
			t.Errorf("frame %d delay = %d, want 4", i, d)
		}
	}
	if b := anim.Image[0].Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("frame bounds = %v", b)
	}
}
