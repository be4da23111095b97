package app

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/slidecal/calendar"
	"github.com/jask/slidecal/core"
	"github.com/jask/slidecal/screens"
	"github.com/jask/slidecal/widgets"
)

// Model is the playground: calendars side by side plus an outer pair of
// controls that steps all of them through their handles.
type Model struct {
	calendars []*screens.Calendar
	focus     int
	keys      *core.KeyRegistry
	styles    widgets.Styles
	logger    *slog.Logger

	status    string
	statusErr bool
	width     int
	height    int
}

func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	keys := opts.Keys
	if keys == nil {
		keys = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	m := Model{
		keys:   keys,
		styles: opts.Theme.Styles(),
		logger: logger,
	}
	for _, cfg := range opts.Calendars {
		if cfg.Keys == nil {
			cfg.Keys = keys
		}
		m.calendars = append(m.calendars, screens.NewCalendar(cfg))
	}
	if len(m.calendars) > 0 {
		m.calendars[0].Focus()
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Calendars returns the hosted calendars in display order.
func (m Model) Calendars() []*screens.Calendar { return m.calendars }

func (m Model) Focused() int { return m.focus }

func (m Model) Status() (string, bool) { return m.status, m.statusErr }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case core.NavigateMsg:
		return m, m.broadcast(msg)
	case core.SlideDoneMsg:
		return m, m.broadcast(msg)
	case core.SelectionChangedMsg:
		m.setStatus(fmt.Sprintf("%s selected %s", m.label(msg.ID), describe(msg.Value.Dates())), false)
		return m, nil
	case core.DisabledDayMsg:
		m.setStatus(fmt.Sprintf("%s: %s is not available", m.label(msg.ID), msg.Day), true)
		return m, nil
	case core.ActiveDateChangedMsg:
		m.logger.Debug("active date changed", "calendar", m.label(msg.ID), "date", msg.Date.String())
		return m, nil
	case core.StatusMsg:
		m.setStatus(msg.Text, msg.IsErr)
		return m, nil
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cal := m.focused()
	// typed letters belong to the month search while it is open
	if cal != nil && cal.Scope() == core.ScopeMonthSelector && msg.Type == tea.KeyRunes {
		_, cmd := cal.Update(msg)
		return m, cmd
	}
	if action, ok := m.keys.Action(msg, core.ScopeApp); ok {
		switch action {
		case core.ActionQuit:
			return m, tea.Quit
		case core.ActionFocusNext:
			m.cycleFocus()
			return m, nil
		case core.ActionOuterPrev:
			return m, core.NavigateCmd(calendar.Previous)
		case core.ActionOuterNext:
			return m, core.NavigateCmd(calendar.Next)
		}
	}
	if cal == nil {
		return m, nil
	}
	_, cmd := cal.Update(msg)
	return m, cmd
}

func (m Model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.calendars))
	for _, c := range m.calendars {
		_, cmd := c.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *Model) cycleFocus() {
	if len(m.calendars) == 0 {
		return
	}
	m.calendars[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.calendars)
	m.calendars[m.focus].Focus()
}

func (m Model) focused() *screens.Calendar {
	if m.focus < 0 || m.focus >= len(m.calendars) {
		return nil
	}
	return m.calendars[m.focus]
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m Model) label(id uuid.UUID) string {
	for i, c := range m.calendars {
		if c.ID() == id {
			return fmt.Sprintf("calendar %d", i+1)
		}
	}
	return "calendar ?"
}

func describe(dates []calendar.CalendarDate) string {
	if len(dates) == 0 {
		return "nothing"
	}
	parts := make([]string, 0, len(dates))
	for _, d := range dates {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, ", ")
}

func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	boxes := make([]string, 0, len(m.calendars))
	for _, c := range m.calendars {
		boxes = append(boxes, c.View())
	}
	outer := m.styles.Arrow.Render("[") + m.styles.HelpDesc.Render(" all calendars ") + m.styles.Arrow.Render("]")

	scope := core.ScopeCalendar
	if c := m.focused(); c != nil {
		scope = c.Scope()
	}
	bindings := append(m.keys.BindingsForScope(core.ScopeApp), m.keys.BindingsForScope(scope)...)

	return strings.Join([]string{
		outer,
		widgets.SideBySide(2, boxes...),
		core.RenderStatusBar(m.status, m.statusErr, m.styles, width),
		core.RenderFooter(bindings, m.styles, width),
	}, "\n")
}
