package widgets

import (
	"strings"

	"github.com/jask/slidecal/calendar"
	"github.com/jask/slidecal/navigation"
	"github.com/jask/slidecal/slide"
)

// Header is the month/year bar with the previous and next arrows.
type Header struct {
	Frames    [2]slide.Frame
	Direction calendar.Direction
	Prev      navigation.Button
	Next      navigation.Button
	MonthOpen bool
	YearOpen  bool
	RTL       bool
}

// Render draws the header width columns wide. While a slide is running
// the incoming month is shown beside the current one.
func (h Header) Render(width int, st Styles) string {
	prevGlyph, nextGlyph := "‹", "›"
	if h.RTL {
		prevGlyph, nextGlyph = nextGlyph, prevGlyph
	}
	prev := arrow(prevGlyph, h.Prev, st)
	next := arrow(nextGlyph, h.Next, st)
	if h.MonthOpen || h.YearOpen {
		// arrows hide while a quick selector is open
		prev, next = " ", " "
	}

	label := h.label(h.Frames[0], st)
	if h.Direction.Step() != 0 {
		sep := " → "
		if h.Direction == calendar.Previous {
			sep = " ← "
		}
		label = label + st.Incoming.Render(sep+h.Frames[1].Month+" "+h.Frames[1].Year)
	}

	left, right := prev, next
	if h.RTL {
		left, right = next, prev
	}
	inner := max(0, width-2)
	return left + Center(label, inner) + right
}

func (h Header) label(f slide.Frame, st Styles) string {
	switch {
	case h.MonthOpen:
		return st.SelectorActive.Render(f.Month)
	case h.YearOpen:
		return st.SelectorActive.Render(f.Year)
	}
	return st.Header.Render(strings.TrimSpace(f.Month + " " + f.Year))
}

func arrow(glyph string, b navigation.Button, st Styles) string {
	switch {
	case !b.Visible:
		return " "
	case b.Disabled:
		return st.ArrowDisabled.Render(glyph)
	}
	return st.Arrow.Render(glyph)
}
