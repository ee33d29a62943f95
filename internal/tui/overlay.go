package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayCenter draws fg over the middle of bg. Both may carry ANSI styles;
// cells of bg outside fg keep their styling.
func overlayCenter(bg, fg string, width, height int) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")

	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	fgWidth := 0
	for _, line := range fgLines {
		fgWidth = max(fgWidth, ansi.StringWidth(line))
	}

	var (
		top  = max((len(bgLines)-len(fgLines))/2, 0)
		left = max((width-fgWidth)/2, 0)
	)

	for i, line := range fgLines {
		row := top + i
		if row >= len(bgLines) {
			break
		}
		bgLines[row] = spliceLine(bgLines[row], line, left, fgWidth)
	}

	return strings.Join(bgLines, "\n")
}

// spliceLine replaces the cells [left, left+width) of base with fg.
func spliceLine(base, fg string, left, width int) string {
	baseWidth := ansi.StringWidth(base)
	if baseWidth < left {
		base += strings.Repeat(" ", left-baseWidth)
		baseWidth = left
	}

	if pad := width - ansi.StringWidth(fg); pad > 0 {
		fg += strings.Repeat(" ", pad)
	}

	var b strings.Builder
	b.WriteString(ansi.Truncate(base, left, ""))
	b.WriteString(ansi.ResetStyle)
	b.WriteString(fg)
	b.WriteString(ansi.ResetStyle)
	if right := left + width; right < baseWidth {
		b.WriteString(ansi.Cut(base, right, baseWidth))
	}
	return b.String()
}
