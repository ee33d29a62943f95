package status

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/arctimer/internal/countdown"
	"github.com/garrettladley/arctimer/internal/tui/theme"
)

const statusDot = "●"

type Indicator struct {
	Phase countdown.Phase
}

func (i Indicator) Render() string {
	return lipgloss.NewStyle().
		Foreground(i.color()).
		Render(statusDot + " " + i.Phase.String())
}

// Label is the upper-case phase name shown under the gauge.
func (i Indicator) Label() string {
	return strings.ToUpper(i.Phase.String())
}

func (i Indicator) color() color.Color {
	switch i.Phase {
	case countdown.PhaseRunning:
		return theme.ColorPink
	case countdown.PhasePaused:
		return theme.ColorYellow
	case countdown.PhaseExpired:
		return theme.ColorRed
	default:
		return theme.ColorDim
	}
}
