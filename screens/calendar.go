package screens

import (
	"log/slog"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/slidecal/calendar"
	"github.com/jask/slidecal/core"
	"github.com/jask/slidecal/navigation"
	"github.com/jask/slidecal/selection"
	"github.com/jask/slidecal/widgets"
)

const selectorHeight = 4

// CalendarConfig configures one calendar component.
type CalendarConfig struct {
	Locale               calendar.Locale
	Value                any
	Kind                 selection.Kind
	Bounds               calendar.Bounds
	ActiveDate           *calendar.CalendarDate
	SelectorStartingYear int
	SelectorEndingYear   int
	Navigation           navigation.NavigationConfig
	DisabledDays         []calendar.CalendarDate
	// SlideDuration is how long a month change waits before it commits.
	SlideDuration time.Duration
	Keys          *core.KeyRegistry
	Styles        widgets.Styles
	Logger        *slog.Logger
	// HighlightWeekends draws Saturday and Sunday in the weekend style.
	HighlightWeekends bool
	// Footer, when set, renders a host line under the day grid.
	Footer func(navigation.State) string
}

// Calendar is one interactive calendar. Navigation lives in its
// controller; the component owns the day cursor and the selection picks.
type Calendar struct {
	id       uuid.UUID
	ctrl     *navigation.Controller
	handle   navigation.Handle
	locale   calendar.Locale
	keys     *core.KeyRegistry
	styles   widgets.Styles
	duration time.Duration
	kind     selection.Kind
	disabled map[calendar.CalendarDate]struct{}
	weekends bool
	footer   func(navigation.State) string
	logger   *slog.Logger

	cursor     calendar.CalendarDate
	months     Picker
	years      Picker
	landDay    int
	committing bool
	query      textinput.Model
	focused    bool

	// messages raised by controller callbacks during the current Update
	pending []tea.Msg
}

func NewCalendar(cfg CalendarConfig) *Calendar {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	keys := cfg.Keys
	if keys == nil {
		keys = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	c := &Calendar{
		id:       uuid.New(),
		keys:     keys,
		styles:   cfg.Styles,
		duration: cfg.SlideDuration,
		kind:     cfg.Kind,
		disabled: make(map[calendar.CalendarDate]struct{}, len(cfg.DisabledDays)),
		weekends: cfg.HighlightWeekends,
		footer:   cfg.Footer,
		logger:   logger,
		months:   NewPicker(cfg.Styles, selectorHeight-1),
		years:    NewPicker(cfg.Styles, selectorHeight),
	}
	c.logger = logger.With("calendar", c.id.String())
	for _, d := range cfg.DisabledDays {
		c.disabled[d] = struct{}{}
	}

	in := textinput.New()
	in.Prompt = "/ "
	in.Placeholder = "type a month"
	in.CharLimit = 16
	c.query = in

	c.ctrl, c.handle = navigation.New(navigation.Config{
		Locale:               cfg.Locale,
		Value:                cfg.Value,
		Bounds:               cfg.Bounds,
		ActiveDate:           cfg.ActiveDate,
		SelectorStartingYear: cfg.SelectorStartingYear,
		SelectorEndingYear:   cfg.SelectorEndingYear,
		Navigation:           cfg.Navigation,
		Logger:               c.logger,
		Callbacks: navigation.Callbacks{
			OnActiveDateChange: c.activeDateChanged,
			OnDisabledDayError: func(d calendar.CalendarDate) {
				c.pending = append(c.pending, core.DisabledDayMsg{ID: c.id, Day: d})
			},
		},
	})
	c.locale = c.ctrl.Locale()
	c.cursor = c.ctrl.State().ActiveDate
	c.refreshPickers()
	return c
}

func (c *Calendar) ID() uuid.UUID { return c.id }

// Handle lets a host step this calendar as if its own arrows were used.
func (c *Calendar) Handle() navigation.Handle { return c.handle }

func (c *Calendar) Controller() *navigation.Controller { return c.ctrl }

func (c *Calendar) Cursor() calendar.CalendarDate { return c.cursor }

func (c *Calendar) Focus() { c.focused = true }

func (c *Calendar) Blur() {
	c.focused = false
	c.query.Blur()
}

func (c *Calendar) Focused() bool { return c.focused }

// Scope names the key scope for the calendar's current mode. The month
// list takes the keys when both selectors are open.
func (c *Calendar) Scope() string {
	st := c.ctrl.State()
	switch {
	case st.IsMonthSelectorOpen:
		return core.ScopeMonthSelector
	case st.IsYearSelectorOpen:
		return core.ScopeYearSelector
	}
	return core.ScopeCalendar
}

func (c *Calendar) Update(msg tea.Msg) (*Calendar, tea.Cmd) {
	c.pending = c.pending[:0]
	wasSliding := c.ctrl.Sliding()

	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case core.SlideDoneMsg:
		if msg.ID != c.id {
			return c, nil
		}
		// only a committed slide places the cursor on its landing day
		c.committing = true
		if !c.ctrl.CompleteTransition() {
			c.logger.Debug("stale slide completion")
		}
		c.committing, c.landDay = false, 0
	case core.NavigateMsg:
		switch msg.Direction {
		case calendar.Previous:
			c.handle.TriggerPrevious()
		case calendar.Next:
			c.handle.TriggerNext()
		}
	case tea.KeyMsg:
		cmds = append(cmds, c.handleKey(msg))
	}

	if !wasSliding && c.ctrl.Sliding() {
		cmds = append(cmds, core.SlideTickCmd(c.id, c.duration))
	}
	for _, m := range c.pending {
		cmds = append(cmds, func() tea.Msg { return m })
	}
	return c, tea.Batch(cmds...)
}

func (c *Calendar) handleKey(msg tea.KeyMsg) tea.Cmd {
	scope := c.Scope()
	if scope == core.ScopeMonthSelector && (msg.Type == tea.KeyRunes || msg.Type == tea.KeyBackspace) {
		return c.typeMonth(msg)
	}
	action, ok := c.keys.Action(msg, scope)
	if !ok {
		return nil
	}
	switch scope {
	case core.ScopeMonthSelector:
		c.monthKey(action)
	case core.ScopeYearSelector:
		c.yearKey(action)
	default:
		c.calendarKey(action)
	}
	return nil
}

func (c *Calendar) calendarKey(action string) {
	switch action {
	case core.ActionPrevMonth:
		c.ctrl.ClickPrevious()
	case core.ActionNextMonth:
		c.ctrl.ClickNext()
	case core.ActionMonthSelector:
		c.openMonths()
	case core.ActionYearSelector:
		c.openYears()
	case core.ActionCursorLeft:
		c.moveCursor(-1)
	case core.ActionCursorRight:
		c.moveCursor(1)
	case core.ActionCursorUp:
		c.moveCursor(-7)
	case core.ActionCursorDown:
		c.moveCursor(7)
	case core.ActionSelect:
		c.pick(c.cursor)
	}
}

func (c *Calendar) monthKey(action string) {
	switch action {
	case core.ActionCursorUp:
		c.months.Up()
	case core.ActionCursorDown:
		c.months.Down()
	case core.ActionSelect:
		if it, ok := c.months.Selected(); ok {
			c.ctrl.SelectMonth(it.Value)
			c.query.Blur()
		}
	case core.ActionClose:
		c.ctrl.ToggleMonthSelector()
		c.query.Blur()
	}
}

func (c *Calendar) yearKey(action string) {
	switch action {
	case core.ActionCursorUp:
		c.years.Up()
	case core.ActionCursorDown:
		c.years.Down()
	case core.ActionMonthSelector:
		c.openMonths()
	case core.ActionYearSelector, core.ActionClose:
		c.ctrl.ToggleYearSelector()
	case core.ActionSelect:
		if it, ok := c.years.Selected(); ok {
			c.ctrl.SelectYear(it.Value)
		}
	}
}

// typeMonth feeds the query field and jumps the month list to the best
// match.
func (c *Calendar) typeMonth(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	c.query, cmd = c.query.Update(msg)
	if m, ok := core.MatchMonth(c.locale, c.query.Value()); ok {
		c.months.SelectValue(m)
	}
	return cmd
}

func (c *Calendar) openMonths() {
	if !c.ctrl.State().IsMonthSelectorOpen {
		c.ctrl.ToggleMonthSelector()
	}
	c.months.SetItems(monthItems(c.ctrl.MonthOptions()))
	c.months.SelectActive()
	c.query.Reset()
	c.query.Focus()
}

func (c *Calendar) openYears() {
	if !c.ctrl.State().IsYearSelectorOpen {
		c.ctrl.ToggleYearSelector()
	}
	c.years.SetItems(yearItems(c.ctrl.YearOptions()))
	c.years.SelectActive()
}

// refreshPickers rebuilds the option rows, whose flags follow the active
// date.
func (c *Calendar) refreshPickers() {
	c.months.SetItems(monthItems(c.ctrl.MonthOptions()))
	c.years.SetItems(yearItems(c.ctrl.YearOptions()))
}

// moveCursor walks the day cursor. Leaving the shown month asks for a
// month change; the cursor lands in the new month once it commits.
func (c *Calendar) moveCursor(delta int) {
	days := c.locale.DaysInMonth(c.cursor.Year, c.cursor.Month)
	day := c.cursor.Day + delta
	switch {
	case day < 1:
		prev := c.locale.AddMonths(c.cursor.FirstOfMonth(), calendar.Previous)
		if c.ctrl.ClickPrevious() {
			c.landDay = c.locale.DaysInMonth(prev.Year, prev.Month) + day
		}
	case day > days:
		if c.ctrl.ClickNext() {
			c.landDay = day - days
		}
	default:
		c.cursor.Day = day
	}
}

// activeDateChanged keeps the cursor inside the month being shown.
func (c *Calendar) activeDateChanged(d calendar.CalendarDate) {
	c.pending = append(c.pending, core.ActiveDateChangedMsg{ID: c.id, Date: d})
	c.syncCursor()
	c.refreshPickers()
}

func (c *Calendar) syncCursor() {
	active := c.ctrl.State().ActiveDate
	day := c.cursor.Day
	if c.committing && c.landDay > 0 {
		day = c.landDay
	}
	day = min(max(day, 1), c.locale.DaysInMonth(active.Year, active.Month))
	c.cursor = calendar.Date(active.Year, active.Month, day)
}

// Disabled reports whether d can not be picked.
func (c *Calendar) Disabled(d calendar.CalendarDate) bool {
	if _, ok := c.disabled[d]; ok {
		return true
	}
	return !c.ctrl.Bounds().Contains(d)
}

func (c *Calendar) pick(d calendar.CalendarDate) {
	if c.Disabled(d) {
		c.ctrl.ReportDisabledDay(d)
		return
	}
	next := nextSelection(c.kind, c.ctrl.Value(), d)
	c.ctrl.SetValue(next)
	c.logger.Debug("selection changed", "kind", c.kind.String(), "day", d.String())
	c.pending = append(c.pending, core.SelectionChangedMsg{ID: c.id, Value: next})
}

// nextSelection applies a pick on d to v.
func nextSelection(kind selection.Kind, v selection.Value, d calendar.CalendarDate) selection.Value {
	switch kind {
	case selection.KindMulti:
		dates := v.Dates()
		if i := slices.Index(dates, d); i >= 0 {
			return selection.Multi(slices.Delete(dates, i, i+1)...)
		}
		return selection.Multi(append(dates, d)...)
	case selection.KindRange:
		from := v.Range.From
		if v.Kind != selection.KindRange || from == nil || v.Range.To != nil || calendar.IsBeforeDate(d, *from) {
			return selection.NewRange(&d, nil)
		}
		return selection.NewRange(from, &d)
	}
	return selection.Single(d)
}

// View renders the calendar framed in its box.
func (c *Calendar) View() string {
	st := c.ctrl.State()
	prev, next := c.ctrl.Buttons()
	grid := c.grid(st.ActiveDate)
	header := widgets.Header{
		Frames:    c.ctrl.Frames(),
		Direction: st.MonthChangeDirection,
		Prev:      prev,
		Next:      next,
		MonthOpen: st.IsMonthSelectorOpen,
		YearOpen:  st.IsYearSelectorOpen,
		RTL:       c.locale.IsRtl(),
	}.Render(grid.Width(), c.styles)

	body := header + "\n" + grid.Render(c.styles)
	if c.footer != nil {
		if line := c.footer(st); line != "" {
			body += "\n" + c.styles.Footer.Render(line)
		}
	}
	if popup := c.selectorView(); popup != "" {
		body = widgets.Overlay(body, popup)
	}
	return widgets.Box{Content: body, Focused: c.focused}.Render(c.styles)
}

func (c *Calendar) grid(active calendar.CalendarDate) widgets.DayGrid {
	value := c.ctrl.Value()
	today := c.locale.Today()
	first := active.FirstOfMonth()

	var g widgets.DayGrid
	for i := range g.Weekdays {
		g.Weekdays[i] = c.locale.WeekdayName(time.Weekday(i))
	}
	g.Offset = int(c.locale.Weekday(first))
	g.RTL = c.locale.IsRtl()

	days := c.locale.DaysInMonth(active.Year, active.Month)
	g.Cells = make([]widgets.DayCell, 0, days)
	for day := 1; day <= days; day++ {
		d := calendar.Date(active.Year, active.Month, day)
		wd := c.locale.Weekday(d)
		g.Cells = append(g.Cells, widgets.DayCell{
			Label:    c.locale.LanguageDigits(day),
			Role:     value.Role(d),
			Today:    calendar.IsSameDay(d, today),
			Disabled: c.Disabled(d),
			Cursor:   c.focused && calendar.IsSameDay(d, c.cursor),
			Weekend:  c.weekends && (wd == time.Saturday || wd == time.Sunday),
		})
	}
	return g
}

func (c *Calendar) selectorView() string {
	st := c.ctrl.State()
	switch {
	case st.IsMonthSelectorOpen:
		return c.styles.Frame.Render(c.query.View() + "\n" + c.months.View())
	case st.IsYearSelectorOpen:
		return c.styles.Frame.Render(c.years.View())
	}
	return ""
}
