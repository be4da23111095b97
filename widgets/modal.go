package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Overlay draws popup centred over base. Cells under the popup are
// replaced; the rest of base shows through. The result has the size of
// base.
func Overlay(base, popup string) string {
	baseLines := strings.Split(base, "\n")
	width := lipgloss.Width(base)
	height := len(baseLines)
	popLines := strings.Split(popup, "\n")
	pw := lipgloss.Width(popup)
	if width <= 0 || pw <= 0 {
		return base
	}
	left := max(0, (width-pw)/2)
	top := max(0, (height-len(popLines))/2)

	out := make([]string, height)
	for i := range baseLines {
		line := padRight(baseLines[i], width)
		row := i - top
		if row < 0 || row >= len(popLines) {
			out[i] = line
			continue
		}
		head := ansi.Truncate(line, left, "")
		seg := padRight(popLines[row], min(pw, width-left))
		tail := dropColumns(line, left+pw)
		out[i] = head + seg + tail
	}
	return strings.Join(out, "\n")
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	if cols >= ansi.StringWidth(s) {
		return ""
	}
	return ansi.TruncateLeft(s, cols, "")
}
