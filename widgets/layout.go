package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SideBySide joins rendered blocks left to right with gap columns between
// them, padding shorter blocks so rows line up.
func SideBySide(gap int, blocks ...string) string {
	if len(blocks) == 0 {
		return ""
	}
	split := make([][]string, len(blocks))
	widths := make([]int, len(blocks))
	rows := 0
	for i, b := range blocks {
		split[i] = strings.Split(b, "\n")
		for _, line := range split[i] {
			widths[i] = max(widths[i], ansi.StringWidth(line))
		}
		rows = max(rows, len(split[i]))
	}
	sep := strings.Repeat(" ", max(0, gap))
	out := make([]string, 0, rows)
	for r := 0; r < rows; r++ {
		cols := make([]string, len(split))
		for i := range split {
			line := ""
			if r < len(split[i]) {
				line = split[i][r]
			}
			cols[i] = padRight(line, widths[i])
		}
		out = append(out, strings.TrimRight(strings.Join(cols, sep), " "))
	}
	return strings.Join(out, "\n")
}

// Center pads s on both sides to width columns.
func Center(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
