package widgets

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles every primitive draws with. Build them
// from a theme rather than by hand.
type Styles struct {
	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style

	Header        lipgloss.Style
	Incoming      lipgloss.Style
	Arrow         lipgloss.Style
	ArrowDisabled lipgloss.Style

	Weekday      lipgloss.Style
	Day          lipgloss.Style
	Today        lipgloss.Style
	Weekend      lipgloss.Style
	Cursor       lipgloss.Style
	Selected     lipgloss.Style
	RangeEdge    lipgloss.Style
	RangeBetween lipgloss.Style
	Disabled     lipgloss.Style

	SelectorItem     lipgloss.Style
	SelectorActive   lipgloss.Style
	SelectorDisabled lipgloss.Style

	Footer    lipgloss.Style
	Key       lipgloss.Style
	HelpDesc  lipgloss.Style
	Status    lipgloss.Style
	StatusErr lipgloss.Style
}
