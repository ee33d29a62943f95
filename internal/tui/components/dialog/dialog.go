package dialog

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/arctimer/internal/tui/theme"
)

// Dialog is a modal message box. Callers decide when it is visible and
// place it over the rest of the view.
type Dialog struct {
	Title   string
	Message string
	Hint    string
}

func New(title, message, hint string) Dialog {
	return Dialog{Title: title, Message: message, Hint: hint}
}

func (d Dialog) Render() string {
	var (
		titleStyle = lipgloss.NewStyle().
				Foreground(theme.ColorYellow).
				Bold(true)

		messageStyle = lipgloss.NewStyle().
				Foreground(theme.ColorWhite)

		hintStyle = lipgloss.NewStyle().
				Foreground(theme.ColorDim)

		boxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(theme.ColorPink).
				Padding(1, 4).
				Align(lipgloss.Center)
	)

	return boxStyle.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		titleStyle.Render(d.Title),
		"",
		messageStyle.Render(d.Message),
		"",
		hintStyle.Render(d.Hint),
	))
}
