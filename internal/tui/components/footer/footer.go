package footer

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/arctimer/internal/tui/theme"
	"github.com/garrettladley/arctimer/internal/version"
)

var (
	hintStyle       = lipgloss.NewStyle().Foreground(theme.ColorDim)
	versionStyle    = lipgloss.NewStyle().Foreground(theme.ColorBgLight)
	devVersionStyle = lipgloss.NewStyle().Foreground(theme.ColorYellow)
)

type Footer struct {
	hints   []string
	width   int
	padding int
}

func New(width int, hints ...string) Footer {
	return Footer{
		hints:   hints,
		width:   width,
		padding: 2,
	}
}

func (f Footer) Render() string {
	var (
		left        = hintStyle.Render(strings.Join(f.hints, " • "))
		right       = versionView(version.Get())
		leftWidth   = lipgloss.Width(left)
		rightWidth  = lipgloss.Width(right)
		spacerWidth = max(f.width-leftWidth-rightWidth-(f.padding*2), 1)
	)

	return lipgloss.NewStyle().
		PaddingLeft(f.padding).
		PaddingRight(f.padding).
		PaddingBottom(1).
		Render(left + strings.Repeat(" ", spacerWidth) + right)
}

// versionView highlights local and pseudo-version builds.
func versionView(v string) string {
	if version.IsDevelopment(v) {
		return devVersionStyle.Render(v)
	}
	return versionStyle.Render(v)
}
