package timer

import (
	"image"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/arctimer/internal/countdown"
	"github.com/garrettladley/arctimer/internal/tui/components/gauge"
	"github.com/garrettladley/arctimer/internal/tui/components/status"
	"github.com/garrettladley/arctimer/internal/tui/theme"
)

type Control int

const (
	ControlHours Control = iota
	ControlMinutes
	ControlSeconds
	ControlStart
	ControlPause
	ControlResume
	ControlReset

	controlCount
)

const (
	fieldCount    = 3
	FieldMaxRunes = 4
	DefaultField  = "00"
	InvalidText   = "invalid input"
)

// Next cycles focus forward, wrapping around.
func (c Control) Next() Control { return (c + 1) % controlCount }

// Prev cycles focus backward, wrapping around.
func (c Control) Prev() Control { return (c + controlCount - 1) % controlCount }

func (c Control) IsField() bool { return c < fieldCount }

func (c Control) String() string {
	switch c {
	case ControlHours:
		return "hours"
	case ControlMinutes:
		return "minutes"
	case ControlSeconds:
		return "seconds"
	case ControlStart:
		return "Start"
	case ControlPause:
		return "Pause"
	case ControlResume:
		return "Resume"
	case ControlReset:
		return "Reset"
	default:
		return ""
	}
}

type State struct {
	Fields  [fieldCount]string
	Focus   Control
	Phase   countdown.Phase
	Readout string
	Invalid bool        // Readout holds an input error
	Frame   image.Image // latest rendered arc
}

func NewState() State {
	return State{
		Fields:  [fieldCount]string{DefaultField, DefaultField, DefaultField},
		Focus:   ControlStart,
		Readout: countdown.IdleDisplay,
	}
}

func View(t theme.Theme, state State, width, height int) string {
	var (
		indicator = status.Indicator{Phase: state.Phase}
		textColor = t.Foreground()
	)
	if state.Invalid {
		textColor = t.Error().GetForeground()
	}

	g := gauge.New(
		state.Frame,
		state.Readout,
		indicator.Label(),
		gauge.WithTextColor(textColor),
	)

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		indicator.Render(),
		"",
		g.Render(),
		"",
		fieldsView(t, state),
		"",
		buttonsView(t, state),
	)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

func fieldsView(t theme.Theme, state State) string {
	var (
		units = [fieldCount]string{"h", "m", "s"}
		parts = make([]string, 0, 2*fieldCount)
	)

	for i := range fieldCount {
		style := lipgloss.NewStyle().
			Foreground(t.Foreground()).
			Background(theme.ColorBgLight).
			Width(FieldMaxRunes + 2).
			Align(lipgloss.Center)
		if Control(i) == state.Focus {
			style = style.Foreground(theme.ColorBgDark).Background(theme.ColorPink).Bold(true)
		}
		parts = append(parts,
			style.Render(state.Fields[i]),
			t.Hint().PaddingLeft(1).PaddingRight(2).Render(units[i]),
		)
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func buttonsView(t theme.Theme, state State) string {
	parts := make([]string, 0, controlCount-fieldCount)
	for c := ControlStart; c < controlCount; c++ {
		style := lipgloss.NewStyle().
			Foreground(t.Foreground()).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.ColorDim).
			Padding(0, 1).
			MarginRight(1)
		if c == ControlReset {
			style = style.BorderForeground(theme.ColorYellow)
		}
		if c == state.Focus {
			style = style.BorderForeground(theme.ColorPink).Foreground(theme.ColorPink).Bold(true)
		}
		parts = append(parts, style.Render(c.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
