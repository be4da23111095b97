package core

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/slidecal/widgets"
)

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBorder   lipgloss.Color = "#585b70"
	colorMantle   lipgloss.Color = "#181825"
	colorSurface0 lipgloss.Color = "#313244"
	colorError    lipgloss.Color = "#f38ba8"
	colorSuccess  lipgloss.Color = "#a6e3a1"
)

const (
	DefaultPrimary      = "#0eca2d"
	DefaultPrimaryLight = "#cff4d5"
)

// Theme is the pair of calendar colours a host may override.
type Theme struct {
	Primary      string
	PrimaryLight string
}

func DefaultTheme() Theme {
	return Theme{Primary: DefaultPrimary, PrimaryLight: DefaultPrimaryLight}
}

// Styles builds the widget styles for t. Empty colours fall back to the
// defaults.
func (t Theme) Styles() widgets.Styles {
	primary, light := t.Primary, t.PrimaryLight
	if primary == "" {
		primary = DefaultPrimary
	}
	if light == "" {
		light = DefaultPrimaryLight
	}
	p, pl := lipgloss.Color(primary), lipgloss.Color(light)
	return widgets.Styles{
		Frame:            lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1),
		FocusedFrame:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1),
		Header:           lipgloss.NewStyle().Foreground(colorText).Bold(true),
		Incoming:         lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
		Arrow:            lipgloss.NewStyle().Foreground(p).Bold(true),
		ArrowDisabled:    lipgloss.NewStyle().Foreground(colorBorder),
		Weekday:          lipgloss.NewStyle().Foreground(colorMuted),
		Day:              lipgloss.NewStyle().Foreground(colorText),
		Today:            lipgloss.NewStyle().Foreground(p).Underline(true),
		Weekend:          lipgloss.NewStyle().Foreground(colorMuted),
		Cursor:           lipgloss.NewStyle().Reverse(true),
		Selected:         lipgloss.NewStyle().Background(p).Foreground(colorMantle).Bold(true),
		RangeEdge:        lipgloss.NewStyle().Background(p).Foreground(colorMantle),
		RangeBetween:     lipgloss.NewStyle().Background(pl).Foreground(colorMantle),
		Disabled:         lipgloss.NewStyle().Foreground(colorBorder).Strikethrough(true),
		SelectorItem:     lipgloss.NewStyle().Foreground(colorText),
		SelectorActive:   lipgloss.NewStyle().Foreground(p).Bold(true),
		SelectorDisabled: lipgloss.NewStyle().Foreground(colorBorder),
		Footer:           lipgloss.NewStyle().Background(colorMantle),
		Key:              lipgloss.NewStyle().Foreground(p).Bold(true).Background(colorMantle),
		HelpDesc:         lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle),
		Status:           lipgloss.NewStyle().Foreground(colorSuccess).Background(colorSurface0),
		StatusErr:        lipgloss.NewStyle().Foreground(colorError).Background(colorSurface0),
	}
}
