package arc

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGradient_Boundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		p    float64
		want color.NRGBA
	}{
		{name: "start is red", p: 0, want: color.NRGBA{R: 255, G: 60, B: 60, A: 255}},
		{name: "quarter", p: 0.25, want: color.NRGBA{R: 255, G: 86, B: 126, A: 255}},
		{name: "midpoint is pink", p: 0.5, want: color.NRGBA{R: 255, G: 112, B: 192, A: 255}},
		{name: "last segment", p: 199.0 / 200, want: color.NRGBA{R: 255, G: 216, B: 61, A: 255}},
		{name: "end is yellow", p: 1, want: color.NRGBA{R: 255, G: 217, B: 60, A: 255}},
		{name: "below range clamps", p: -3, want: color.NRGBA{R: 255, G: 60, B: 60, A: 255}},
		{name: "NaN clamps", p: math.NaN(), want: color.NRGBA{R: 255, G: 60, B: 60, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, Gradient(tt.p)); diff != "" {
				t.Errorf("Gradient(%v) mismatch (-want +got):\n%s", tt.p, diff)
			}
		})
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []Option
		wantErr bool
	}{
		{name: "defaults", opts: nil},
		{name: "small canvas", opts: []Option{WithSize(40), WithStroke(4), WithMargin(2)}},
		{name: "zero size", opts: []Option{WithSize(0)}, wantErr: true},
		{name: "zero segments", opts: []Option{WithSegments(0)}, wantErr: true},
		{name: "negative margin", opts: []Option{WithMargin(-1)}, wantErr: true},
		{name: "stroke too wide", opts: []Option{WithSize(40), WithStroke(20)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.opts...)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func mustRenderer(t *testing.T, opts ...Option) Renderer {
	t.Helper()
	r, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func TestRender_Pixels(t *testing.T) {
	t.Parallel()

	r := mustRenderer(t)

	var (
		transparent = color.NRGBA{}
		red         = Gradient(0)
	)

	tests := []struct {
		name     string
		fraction float64
		x, y     int
		want     color.NRGBA
	}{
		{name: "corner outside ring", fraction: 0.5, x: 0, y: 0, want: transparent},
		{name: "center inside ring", fraction: 1, x: 100, y: 100, want: transparent},
		{name: "top of ring at zero", fraction: 0, x: 100, y: 15, want: RingColor},
		{name: "top of ring at half", fraction: 0.5, x: 100, y: 15, want: red},
		{name: "top of ring at one percent", fraction: 0.01, x: 100, y: 15, want: Gradient(18.0 / 200)},
		{name: "3 o'clock at half", fraction: 0.5, x: 185, y: 100, want: Gradient(100.0 / 200)},
		{name: "9 o'clock at half", fraction: 0.5, x: 15, y: 100, want: RingColor},
		{name: "just before 12 o'clock at full", fraction: 1, x: 99, y: 15, want: Gradient(199.0 / 200)},
		{name: "above range clamps to full", fraction: 2, x: 15, y: 100, want: Gradient(149.0 / 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			img := r.Render(tt.fraction)
			if diff := cmp.Diff(tt.want, img.NRGBAAt(tt.x, tt.y)); diff != "" {
				t.Errorf("pixel (%d,%d) at %v mismatch (-want +got):\n%s", tt.x, tt.y, tt.fraction, diff)
			}
		})
	}
}

func TestRender_FullFractionCoversRing(t *testing.T) {
	t.Parallel()

	r := mustRenderer(t)
	img := r.Render(1)

	if got := img.Bounds().Dx(); got != DefaultSize {
		t.Fatalf("width = %d, want %d", got, DefaultSize)
	}

	var painted int
	for y := range DefaultSize {
		for x := range DefaultSize {
			a := img.NRGBAAt(x, y).A
			if a == 0 {
				continue
			}
			painted++
			if a != 255 {
				t.Fatalf("pixel (%d,%d) alpha = %d, want 255 for a full arc", x, y, a)
			}
		}
	}
	if painted == 0 {
		t.Fatal("nothing painted")
	}
}

func TestRender_ZeroFractionOnlyRing(t *testing.T) {
	t.Parallel()

	img := mustRenderer(t).Render(0)
	for i := 3; i < len(img.Pix); i += 4 {
		if a := img.Pix[i]; a != 0 && a != RingColor.A {
			t.Fatalf("pixel %d alpha = %d, want 0 or %d", i/4, a, RingColor.A)
		}
	}
}

func TestRender_IsPure(t *testing.T) {
	t.Parallel()

	r := mustRenderer(t, WithSize(64), WithStroke(6), WithMargin(4), WithSegments(32))
	a := r.Render(0.37)
	b := r.Render(0.37)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("Render is not deterministic")
	}
}

func TestEncodePNG(t *testing.T) {
	t.Parallel()

	r := mustRenderer(t, WithSize(32), WithStroke(4), WithMargin(2))
	var buf bytes.Buffer
	if err := EncodePNG(&buf, r.Render(0.5)); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Errorf("decoded bounds = %v", b)
	}
}
