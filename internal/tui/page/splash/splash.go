package splash

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/arctimer/internal/tui/theme"
)

const Duration = 1200 * time.Millisecond

var Logo = strings.Join([]string{
	"                  _   _                     ",
	"  __ _ _ __ ___  | |_(_)_ __ ___   ___ _ __ ",
	" / _` | '__/ __| | __| | '_ ` _ \\ / _ \\ '__|",
	"| (_| | | | (__  | |_| | | | | | |  __/ |   ",
	" \\__,_|_|  \\___|  \\__|_|_| |_| |_|\\___|_|   ",
}, "\n")

type TickMsg struct{}

func LogoView(t theme.Theme) string {
	return t.Base().Foreground(theme.ColorPink).Render(Logo)
}

func View(t theme.Theme, width, height int) string {
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		LogoView(t),
	)
}
