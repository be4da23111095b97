package screens

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/slidecal/calendar"
	"github.com/jask/slidecal/core"
	"github.com/jask/slidecal/navigation"
	"github.com/jask/slidecal/selection"
)

func testLocale() calendar.Locale {
	fixed := time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)
	return calendar.English(calendar.WithClock(func() time.Time { return fixed }), calendar.WithLocation(time.UTC))
}

func newTestCalendar(t *testing.T, cfg CalendarConfig) *Calendar {
	t.Helper()
	if cfg.Locale == nil {
		cfg.Locale = testLocale()
	}
	cfg.Styles = core.DefaultTheme().Styles()
	c := NewCalendar(cfg)
	c.Focus()
	return c
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func press(c *Calendar, msg tea.KeyMsg) []tea.Msg {
	_, cmd := c.Update(msg)
	return drain(cmd)
}

// drain runs cmd and every command batched inside it.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func find[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func TestNextKeySlidesThenCommits(t *testing.T) {
	c := newTestCalendar(t, CalendarConfig{ActiveDate: calendar.Date(2023, 1, 1).Ptr()})

	msgs := press(c, runes("."))
	done, ok := find[core.SlideDoneMsg](msgs)
	require.True(t, ok, "a slide should schedule its completion")
	require.Equal(t, c.ID(), done.ID)
	require.Equal(t, calendar.Next, c.Controller().State().MonthChangeDirection)
	require.Equal(t, calendar.Date(2023, 1, 1), c.Controller().State().ActiveDate)

	// a second press while sliding schedules nothing
	require.Empty(t, press(c, runes(".")))

	msgs = drain(func() tea.Cmd { _, cmd := c.Update(done); return cmd }())
	require.Equal(t, calendar.Date(2023, 2, 1), c.Controller().State().ActiveDate)
	require.Equal(t, calendar.None, c.Controller().State().MonthChangeDirection)
	changed, ok := find[core.ActiveDateChangedMsg](msgs)
	require.True(t, ok)
	require.Equal(t, calendar.Date(2023, 2, 1), changed.Date)

	// the same signal again is stale
	_, cmd := c.Update(done)
	require.Nil(t, cmd)
	require.Equal(t, calendar.Date(2023, 2, 1), c.Controller().State().ActiveDate)
}

func TestSlideDoneForOtherCalendarIgnored(t *testing.T) {
	a := newTestCalendar(t, CalendarConfig{ActiveDate: calendar.Date(2023, 1, 1).Ptr()})
	b := newTestCalendar(t, CalendarConfig{ActiveDate: calendar.Date(2023, 1, 1).Ptr()})
	press(a, runes("."))
	press(b, runes("."))

	a.Update(core.SlideDoneMsg{ID: b.ID()})
	require.True(t, a.Controller().Sliding())
	require.True(t, b.Controller().Sliding())

	a.Update(core.SlideDoneMsg{ID: a.ID()})
	require.False(t, a.Controller().Sliding())
	require.Equal(t, calendar.Date(2023, 2, 1), a.Controller().State().ActiveDate)
	require.Equal(t, calendar.Date(2023, 1, 1), b.Controller().State().ActiveDate)
}

func TestNavigateMsgUsesHandle(t *testing.T) {
	c := newTestCalendar(t, CalendarConfig{
		ActiveDate: calendar.Date(2023, 6, 1).Ptr(),
		Bounds:     calendar.Bounds{Maximum: calendar.Date(2023, 6, 30).Ptr()},
	})
	_, cmd := c.Update(core.NavigateMsg{Direction: calendar.Next})
	require.Nil(t, cmd, "refused at the maximum")
	require.False(t, c.Controller().Sliding())

	msgs := drain(func() tea.Cmd { _, cmd := c.Update(core.NavigateMsg{Direction: calendar.Previous}); return cmd }())
	done, ok := find[core.SlideDoneMsg](msgs)
	require.True(t, ok)
	c.Update(done)
	require.Equal(t, calendar.Date(2023, 5, 1), c.Handle().ActiveDate())
}

func TestCursorLeavingMonthNavigates(t *testing.T) {
	c := newTestCalendar(t, CalendarConfig{ActiveDate: calendar.Date(2023, 3, 1).Ptr()})
	require.Equal(t, calendar.Date(2023, 3, 1), c.Cursor())

	msgs := press(c, tea.KeyMsg{Type: tea.KeyLeft})
	done, ok := find[core.SlideDoneMsg](msgs)
	require.True(t, ok)
	require.Equal(t, calendar.Date(2023, 3, 1), c.Cursor(), "cursor waits for the commit")

	c.Update(done)
	require.Equal(t, calendar.Date(2023, 2, 28), c.Cursor())

	press(c, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, calendar.Date(2023, 2, 21), c.Cursor())

	msgs = press(c, tea.KeyMsg{Type: tea.KeyDown})
	msgs = append(msgs, press(c, tea.KeyMsg{Type: tea.KeyDown})...)
	done, ok = find[core.SlideDoneMsg](msgs)
	require.True(t, ok)
	c.Update(done)
	require.Equal(t, calendar.Date(2023, 3, 7), c.Cursor())
}

func TestPickSingle(t *testing.T) {
	c := newTestCalendar(t, CalendarConfig{Value: calendar.Date(2023, 1, 10)})
	press(c, runes("l"))
	msgs := press(c, tea.KeyMsg{Type: tea.KeyEnter})
	changed, ok := find[core.SelectionChangedMsg](msgs)
	require.True(t, ok)
	require.Equal(t, c.ID(), changed.ID)
	require.Equal(t, selection.Single(calendar.Date(2023, 1, 11)), changed.Value)
	require.Equal(t, selection.RoleSelected, c.Controller().Value().Role(calendar.Date(2023, 1, 11)))
}

func TestPickDisabledDayReports(t *testing.T) {
	c := newTestCalendar(t, CalendarConfig{
		Value:        calendar.Date(2023, 1, 10),
		DisabledDays: []calendar.CalendarDate{calendar.Date(2023, 1, 10)},
	})
	msgs := press(c, tea.KeyMsg{Type: tea.KeyEnter})
	bad, ok := find[core.DisabledDayMsg](msgs)
	require.True(t, ok)
	require.Equal(t, calendar.Date(2023, 1, 10), bad.Day)
	_, changed := find[core.SelectionChangedMsg](msgs)
	require.False(t, changed)

	// days outside the bounds are disabled too
	c = newTestCalendar(t, CalendarConfig{
		ActiveDate: calendar.Date(2023, 1, 1).Ptr(),
		Bounds:     calendar.Bounds{Minimum: calendar.Date(2023, 1, 5).Ptr()},
	})
	require.True(t, c.Disabled(calendar.Date(2023, 1, 4)))
	require.False(t, c.Disabled(calendar.Date(2023, 1, 5)))
}

func TestPickRangeAndMulti(t *testing.T) {
	c := newTestCalendar(t, CalendarConfig{Kind: selection.KindRange, ActiveDate: calendar.Date(2023, 1, 10).Ptr()})
	press(c, tea.KeyMsg{Type: tea.KeyEnter})
	press(c, tea.KeyMsg{Type: tea.KeyDown})
	press(c, tea.KeyMsg{Type: tea.KeyEnter})
	v := c.Controller().Value()
	require.Equal(t, selection.KindRange, v.Kind)
	require.Equal(t, calendar.Date(2023, 1, 10), *v.Range.From)
	require.Equal(t, calendar.Date(2023, 1, 17), *v.Range.To)
	require.Equal(t, selection.RoleRangeBetween, v.Role(calendar.Date(2023, 1, 12)))

	// a full range starts over
	press(c, tea.KeyMsg{Type: tea.KeyEnter})
	v = c.Controller().Value()
	require.Nil(t, v.Range.To)

	m := newTestCalendar(t, CalendarConfig{Kind: selection.KindMulti, ActiveDate: calendar.Date(2023, 1, 10).Ptr()})
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	press(m, runes("l"))
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, []calendar.CalendarDate{calendar.Date(2023, 1, 10), calendar.Date(2023, 1, 11)}, m.Controller().Value().Dates())
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, []calendar.CalendarDate{calendar.Date(2023, 1, 10)}, m.Controller().Value().Dates())
}

func TestMonthSelectorTypeAhead(t *testing.T) {
	c := newTestCalendar(t, CalendarConfig{ActiveDate: calendar.Date(2023, 1, 31).Ptr()})
	press(c, runes("m"))
	require.Equal(t, core.ScopeMonthSelector, c.Scope())
	require.Equal(t, 0, c.months.Index())

	c.Update(runes("f"))
	c.Update(runes("e"))
	require.Equal(t, 1, c.months.Index())
	require.Contains(t, ansi.Strip(c.View()), "February")

	msgs := press(c, tea.KeyMsg{Type: tea.KeyEnter})
	_, ok := find[core.ActiveDateChangedMsg](msgs)
	require.True(t, ok)
	st := c.Controller().State()
	require.False(t, st.IsMonthSelectorOpen)
	require.Equal(t, calendar.Date(2023, 2, 28), st.ActiveDate)
	require.Equal(t, calendar.Date(2023, 2, 28), c.Cursor())
	require.Equal(t, core.ScopeCalendar, c.Scope())
}

func TestMonthSelectorSkipsDisabledMonths(t *testing.T) {
	c := newTestCalendar(t, CalendarConfig{
		ActiveDate: calendar.Date(2023, 3, 1).Ptr(),
		Bounds:     calendar.Bounds{Minimum: calendar.Date(2023, 3, 1).Ptr()},
	})
	press(c, runes("m"))
	require.Equal(t, 2, c.months.Index())
	press(c, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 1, c.months.Index())
	press(c, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, c.Controller().State().IsMonthSelectorOpen, "february is out of bounds")

	press(c, tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, c.Controller().State().IsMonthSelectorOpen)
}

func TestYearSelector(t *testing.T) {
	c := newTestCalendar(t, CalendarConfig{
		ActiveDate:           calendar.Date(2024, 2, 29).Ptr(),
		SelectorStartingYear: 2020,
		SelectorEndingYear:   2030,
	})
	press(c, runes("y"))
	require.Equal(t, core.ScopeYearSelector, c.Scope())
	require.Equal(t, 4, c.years.Index())
	require.Contains(t, ansi.Strip(c.View()), "2024")

	// both selectors open: the month list takes the keys
	press(c, runes("m"))
	require.Equal(t, core.ScopeMonthSelector, c.Scope())
	press(c, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, core.ScopeYearSelector, c.Scope())

	press(c, tea.KeyMsg{Type: tea.KeyDown})
	press(c, tea.KeyMsg{Type: tea.KeyEnter})
	st := c.Controller().State()
	require.False(t, st.IsYearSelectorOpen)
	require.Equal(t, calendar.Date(2025, 2, 28), st.ActiveDate)
}

func TestViewShowsHeaderAndGrid(t *testing.T) {
	c := newTestCalendar(t, CalendarConfig{ActiveDate: calendar.Date(2023, 1, 1).Ptr()})
	out := ansi.Strip(c.View())
	require.Contains(t, out, "January 2023")
	require.Contains(t, out, "Su Mo Tu We Th Fr Sa")
	require.Contains(t, out, "31")

	press(c, runes("."))
	out = ansi.Strip(c.View())
	require.Contains(t, out, "February 2023")
}

func TestSelectorPickMidSlideKeepsCursorDay(t *testing.T) {
	c := newTestCalendar(t, CalendarConfig{ActiveDate: calendar.Date(2023, 3, 1).Ptr()})
	msgs := press(c, tea.KeyMsg{Type: tea.KeyLeft})
	done, ok := find[core.SlideDoneMsg](msgs)
	require.True(t, ok)

	// pick April while the slide to February is still running
	press(c, runes("m"))
	press(c, tea.KeyMsg{Type: tea.KeyDown})
	press(c, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, calendar.Date(2023, 4, 1), c.Controller().State().ActiveDate)
	require.Equal(t, calendar.Date(2023, 4, 1), c.Cursor(), "the landing day waits for the commit")

	c.Update(done)
	require.Equal(t, calendar.Date(2023, 3, 28), c.Cursor())
	require.Zero(t, c.landDay)
}

func TestWeekendsAndHostFooter(t *testing.T) {
	c := newTestCalendar(t, CalendarConfig{
		ActiveDate:        calendar.Date(2023, 1, 1).Ptr(),
		HighlightWeekends: true,
		Footer: func(st navigation.State) string {
			return "showing " + st.ActiveDate.String()
		},
	})
	g := c.grid(calendar.Date(2023, 1, 1))
	require.True(t, g.Cells[0].Weekend, "Jan 1 2023 is a Sunday")
	require.False(t, g.Cells[1].Weekend)
	require.True(t, g.Cells[6].Weekend, "Jan 7 2023 is a Saturday")
	require.Contains(t, ansi.Strip(c.View()), "showing 2023-01-01")

	plainCal := newTestCalendar(t, CalendarConfig{ActiveDate: calendar.Date(2023, 1, 1).Ptr()})
	require.False(t, plainCal.grid(calendar.Date(2023, 1, 1)).Cells[0].Weekend)
}

func TestPickerRefusesDisabledRows(t *testing.T) {
	p := NewPicker(core.DefaultTheme().Styles(), 3)
	p.SetItems([]OptionItem{
		{Label: "2022", Value: 2022, Disabled: true},
		{Label: "2023", Value: 2023, Active: true},
		{Label: "2024", Value: 2024},
	})
	p.SelectActive()
	require.Equal(t, 1, p.Index())
	it, ok := p.Selected()
	require.True(t, ok)
	require.Equal(t, 2023, it.Value)

	p.Up()
	_, ok = p.Selected()
	require.False(t, ok, "2022 is disabled")
	p.Up()
	require.Equal(t, 0, p.Index(), "the list does not wrap")

	require.True(t, p.SelectValue(2024))
	require.False(t, p.SelectValue(1999))
	lines := strings.Split(ansi.Strip(p.View()), "\n")
	require.Equal(t, "> 2024", strings.TrimRight(lines[2], " "))
	require.Equal(t, "  2022", strings.TrimRight(lines[0], " "))
}
