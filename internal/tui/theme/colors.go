package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorRed    = lipgloss.Color("#FF3C3C") // gradient start, errors
	ColorPink   = lipgloss.Color("#FF70C0") // gradient midpoint, focus
	ColorYellow = lipgloss.Color("#FFD93C") // gradient end, warnings
	ColorRing   = lipgloss.Color("#505050") // unfilled ring
)

var (
	ColorBgDark  = lipgloss.Color("#222222") // window background
	ColorBgLight = lipgloss.Color("#333333") // dialog and input background
)
