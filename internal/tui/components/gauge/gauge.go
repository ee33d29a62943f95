package gauge

import (
	"image"
	"image/color"
	"strings"

	drawille "github.com/exrook/drawille-go"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/arctimer/internal/tui/theme"
)

const (
	// gauge dimensions in braille dots (2 dots per char width, 4 dots per char height)
	// large enough to have hollow center for the readout
	dotsWidth  = 52 // 26 chars wide
	dotsHeight = 52 // 13 chars tall

	charWidth  = dotsWidth / 2
	charHeight = dotsHeight / 4

	emptyBraille rune = '\u2800'
)

// Gauge shows a rendered arc image as colored braille with a centered readout.
type Gauge struct {
	Frame     image.Image // nil draws an empty gauge
	Text      string
	Label     string
	RingColor color.Color // cells covered only by the background ring
	TextColor color.Color
}

type Option func(*Gauge)

func WithTextColor(c color.Color) Option {
	return func(g *Gauge) {
		g.TextColor = c
	}
}

func New(frame image.Image, text, label string, opts ...Option) Gauge {
	g := Gauge{
		Frame:     frame,
		Text:      text,
		Label:     label,
		RingColor: theme.ColorRing,
		TextColor: theme.ColorWhite,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

type cell struct {
	glyph rune
	color color.Color
}

func (g Gauge) Render() string {
	grid := g.sample()
	g.placeText(grid)

	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = renderRow(row, g.textStyle(), g.TextColor)
	}

	labelStyle := lipgloss.NewStyle().
		Foreground(g.TextColor).
		Bold(true).
		Width(charWidth).
		Align(lipgloss.Center)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		strings.Join(lines, "\n"),
		labelStyle.Render(g.Label),
	)
}

func (g Gauge) textStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(g.TextColor).Bold(true)
}

// sample maps the frame onto the braille dot grid. A dot is set wherever the
// frame is not transparent; each character cell takes the mean color of its
// opaque samples, or the ring color when it only covers translucent ones.
func (g Gauge) sample() [][]cell {
	type acc struct {
		r, g, b, n uint32
		ring      bool
	}

	var (
		canvas = drawille.NewCanvas()
		accs   [charHeight][charWidth]acc
	)

	if g.Frame != nil {
		bounds := g.Frame.Bounds()
		for dy := range dotsHeight {
			py := bounds.Min.Y + (2*dy+1)*bounds.Dy()/(2*dotsHeight)
			for dx := range dotsWidth {
				px := bounds.Min.X + (2*dx+1)*bounds.Dx()/(2*dotsWidth)
				c := color.NRGBAModel.Convert(g.Frame.At(px, py)).(color.NRGBA)
				if c.A == 0 {
					continue
				}
				canvas.Set(dx, dy)

				a := &accs[dy/4][dx/2]
				if c.A < 255 {
					a.ring = true
					continue
				}
				a.r += uint32(c.R)
				a.g += uint32(c.G)
				a.b += uint32(c.B)
				a.n++
			}
		}
	}

	rows := canvas.Rows(0, 0, dotsWidth, dotsHeight)
	grid := make([][]cell, charHeight)
	for y := range charHeight {
		grid[y] = make([]cell, charWidth)
		var runes []rune
		if y < len(rows) {
			runes = []rune(rows[y])
		}
		for x := range charWidth {
			c := cell{glyph: ' '}
			if x < len(runes) && runes[x] != emptyBraille && runes[x] != ' ' {
				c.glyph = runes[x]
			}
			switch a := accs[y][x]; {
			case a.n > 0:
				c.color = color.NRGBA{R: uint8(a.r / a.n), G: uint8(a.g / a.n), B: uint8(a.b / a.n), A: 255}
			case a.ring:
				c.color = g.RingColor
			}
			grid[y][x] = c
		}
	}
	return grid
}

// placeText writes the readout into the middle row, centered.
func (g Gauge) placeText(grid [][]cell) {
	text := []rune(g.Text)
	if len(text) == 0 {
		return
	}
	if len(text) > charWidth {
		text = text[:charWidth]
	}
	var (
		row   = grid[charHeight/2]
		start = (charWidth - len(text)) / 2
	)
	for i, r := range text {
		row[start+i] = cell{glyph: r, color: g.TextColor}
	}
}

// renderRow styles runs of equally colored cells together.
func renderRow(row []cell, textStyle lipgloss.Style, textColor color.Color) string {
	var (
		b     strings.Builder
		run   strings.Builder
		runFg color.Color
	)

	flush := func() {
		if run.Len() == 0 {
			return
		}
		switch {
		case runFg == nil:
			b.WriteString(run.String())
		case sameColor(runFg, textColor):
			b.WriteString(textStyle.Render(run.String()))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(runFg).Render(run.String()))
		}
		run.Reset()
	}

	for _, c := range row {
		fg := c.color
		if c.glyph == ' ' {
			fg = nil
		}
		if !sameColor(fg, runFg) {
			flush()
			runFg = fg
		}
		run.WriteRune(c.glyph)
	}
	flush()

	return b.String()
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}
