package widgets

import (
	"strings"

	"github.com/jask/slidecal/selection"
)

// DayCell is one day of a month grid.
type DayCell struct {
	Label    string
	Role     selection.Role
	Today    bool
	Disabled bool
	Cursor   bool
	Weekend  bool
}

// DayGrid is a month laid out in week rows. Offset is the number of blank
// cells before the first day.
type DayGrid struct {
	Weekdays [7]string
	Offset   int
	Cells    []DayCell
	RTL      bool
}

const cellWidth = 3

// Width is the rendered width in columns.
func (g DayGrid) Width() int { return 7 * cellWidth }

func (g DayGrid) Render(st Styles) string {
	rows := make([]string, 0, 7)
	head := make([]string, 7)
	for i, w := range g.Weekdays {
		head[i] = st.Weekday.Render(padLeft(w, cellWidth-1)) + " "
	}
	rows = append(rows, joinRow(head, g.RTL))

	week := make([]string, 0, 7)
	for i := 0; i < g.Offset%7; i++ {
		week = append(week, strings.Repeat(" ", cellWidth))
	}
	for _, c := range g.Cells {
		week = append(week, renderCell(c, st))
		if len(week) == 7 {
			rows = append(rows, joinRow(week, g.RTL))
			week = week[:0:0]
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, strings.Repeat(" ", cellWidth))
		}
		rows = append(rows, joinRow(week, g.RTL))
	}
	return strings.Join(rows, "\n")
}

func renderCell(c DayCell, st Styles) string {
	style := st.Day
	switch {
	case c.Disabled:
		style = st.Disabled
	case c.Role == selection.RoleSelected:
		style = st.Selected
	case c.Role == selection.RoleRangeStart || c.Role == selection.RoleRangeEnd:
		style = st.RangeEdge
	case c.Role == selection.RoleRangeBetween:
		style = st.RangeBetween
	case c.Today:
		style = st.Today
	case c.Weekend:
		style = st.Weekend
	}
	if c.Cursor {
		style = style.Inherit(st.Cursor)
	}
	return style.Render(padLeft(c.Label, cellWidth-1)) + " "
}

func joinRow(cells []string, rtl bool) string {
	if rtl {
		rev := make([]string, len(cells))
		for i, c := range cells {
			rev[len(cells)-1-i] = c
		}
		cells = rev
	}
	return strings.TrimRight(strings.Join(cells, ""), " ")
}

func padLeft(s string, width int) string {
	w := len([]rune(s))
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}
