// Package arc renders the countdown progress ring as an image.
package arc

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
)

const (
	DefaultSize     = 200
	DefaultStroke   = 14
	DefaultMargin   = 10
	DefaultSegments = 200

	// angles in screen coordinates: 0° is 3 o'clock and angles grow clockwise.
	startAngle = -90.0
	fullSweep  = 360.0
)

var RingColor = color.NRGBA{R: 80, G: 80, B: 80, A: 80}

// Renderer draws a background ring and a gradient arc proportional to a
// completion fraction. The zero value is not usable; use New.
type Renderer struct {
	size     int
	stroke   int
	margin   int
	segments int
}

type Option func(*Renderer)

func WithSize(px int) Option {
	return func(r *Renderer) {
		r.size = px
	}
}

func WithStroke(px int) Option {
	return func(r *Renderer) {
		r.stroke = px
	}
}

func WithMargin(px int) Option {
	return func(r *Renderer) {
		r.margin = px
	}
}

func WithSegments(n int) Option {
	return func(r *Renderer) {
		r.segments = n
	}
}

func New(opts ...Option) (Renderer, error) {
	r := Renderer{
		size:     DefaultSize,
		stroke:   DefaultStroke,
		margin:   DefaultMargin,
		segments: DefaultSegments,
	}
	for _, opt := range opts {
		opt(&r)
	}
	if err := r.validate(); err != nil {
		return Renderer{}, err
	}
	return r, nil
}

func (r Renderer) validate() error {
	switch {
	case r.size <= 0:
		return fmt.Errorf("arc: size must be positive, got %d", r.size)
	case r.segments <= 0:
		return fmt.Errorf("arc: segments must be positive, got %d", r.segments)
	case r.margin < 0:
		return fmt.Errorf("arc: margin must not be negative, got %d", r.margin)
	case r.stroke <= 0 || 2*(r.margin+r.stroke) > r.size:
		return fmt.Errorf("arc: stroke %d does not fit a %dpx canvas with margin %d", r.stroke, r.size, r.margin)
	}
	return nil
}

// Render returns a new size×size image for fraction, clamped to [0,1].
func (r Renderer) Render(fraction float64) *image.NRGBA {
	fraction = clamp(fraction)

	var (
		img    = image.NewNRGBA(image.Rect(0, 0, r.size, r.size))
		center = float64(r.size) / 2
		outer  = float64(r.size-2*r.margin) / 2
		inner  = outer - float64(r.stroke)
		sweep  = fraction * fullSweep
		segDeg = sweep / float64(r.segments)
	)

	for y := range r.size {
		for x := range r.size {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			dist := math.Hypot(dx, dy)
			if dist > outer || dist < inner {
				continue
			}

			img.SetNRGBA(x, y, RingColor)

			if sweep <= 0 {
				continue
			}
			offset := angleFromStart(dx, dy)
			if offset >= sweep {
				continue
			}
			seg := min(int(offset/segDeg), r.segments-1)
			img.SetNRGBA(x, y, Gradient(float64(seg)/float64(r.segments)))
		}
	}

	return img
}

// angleFromStart returns the clockwise angle in [0,360) from 12 o'clock to
// the point (dx, dy) relative to the center, with y growing downward.
func angleFromStart(dx, dy float64) float64 {
	deg := math.Atan2(dy, dx)*180/math.Pi - startAngle
	deg = math.Mod(deg, fullSweep)
	if deg < 0 {
		deg += fullSweep
	}
	return deg
}

// Gradient maps a normalized segment position to its color: red to pink over
// the first half, pink to yellow over the second.
func Gradient(p float64) color.NRGBA {
	p = clamp(p)

	if p < 0.5 {
		t := p / 0.5
		return color.NRGBA{
			R: 255,
			G: channel(60 + 52*t),
			B: channel(60 + 132*t),
			A: 255,
		}
	}

	t := (p - 0.5) / 0.5
	return color.NRGBA{
		R: 255,
		G: channel(112 + 105*t),
		B: channel(192 - 132*t),
		A: 255,
	}
}

func channel(v float64) uint8 {
	return uint8(math.Round(min(max(v, 0), 255)))
}

func clamp(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
