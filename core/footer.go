package core

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/slidecal/widgets"
)

// RenderFooter draws the shortcuts of bindings on one line.
func RenderFooter(bindings []KeyBinding, styles widgets.Styles, width int) string {
	space := styles.Footer.Render(" ")
	sep := styles.Footer.Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description))
		h := kb.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, styles.Key.Render(h.Key)+space+styles.HelpDesc.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = styles.HelpDesc.Render("No shortcuts")
	}
	return renderBar(styles.Footer, max(1, width), line)
}

func RenderStatusBar(text string, isErr bool, styles widgets.Styles, width int) string {
	msg := strings.TrimSpace(text)
	if msg == "" {
		msg = "Ready"
	}
	if isErr {
		return renderBar(styles.StatusErr, max(1, width), msg)
	}
	return renderBar(styles.Status, max(1, width), msg)
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
