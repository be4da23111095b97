package navigation

import (
	"errors"
	"log/slog"

	"github.com/jask/slidecal/calendar"
	"github.com/jask/slidecal/selection"
	"github.com/jask/slidecal/slide"
)

// Controller drives one calendar instance. It is not safe for concurrent
// use; every call is expected on the presentation's event loop.
type Controller struct {
	locale    calendar.Locale
	value     selection.Value
	bounds    calendar.Bounds
	nav       NavigationConfig
	cb        Callbacks
	startYear int
	endYear   int
	state     State
	slide     *slide.Coordinator
	logger    *slog.Logger
}

// New builds a Controller and the Handle a host uses to drive it
// programmatically. The active date comes from cfg.ActiveDate when set,
// otherwise from the selection value, otherwise today.
func New(cfg Config) (*Controller, Handle) {
	loc := cfg.Locale
	if loc == nil {
		loc = calendar.English()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Controller{
		locale: loc,
		value:  selection.Classify(cfg.Value),
		bounds: cfg.Bounds,
		nav:    cfg.Navigation,
		cb:     cfg.Callbacks,
		slide:  slide.NewCoordinator(logger),
		logger: logger,
	}

	today := loc.Today()
	c.startYear = cfg.SelectorStartingYear
	if c.startYear == 0 {
		c.startYear = today.Year - defaultYearsBack
	}
	c.endYear = cfg.SelectorEndingYear
	if c.endYear == 0 {
		c.endYear = today.Year + defaultYearsForward
	}

	active := selection.ComputeActiveDate(c.value, today)
	if d := cfg.ActiveDate; d != nil {
		if c.realDay(*d) {
			active = *d
		} else {
			c.logger.Debug("active date override ignored", "date", d.String())
		}
	}
	c.state = State{ActiveDate: active}
	return c, Handle{c: c}
}

func (c *Controller) State() State { return c.state }

func (c *Controller) Locale() calendar.Locale { return c.locale }

func (c *Controller) Bounds() calendar.Bounds { return c.bounds }

// Value is the classified host selection.
func (c *Controller) Value() selection.Value { return c.value.Clone() }

// Sliding reports whether a month transition is waiting for its
// completion signal.
func (c *Controller) Sliding() bool { return c.slide.Phase() == slide.Sliding }

// SetValue reclassifies a new host selection. Navigation is left where it
// is.
func (c *Controller) SetValue(v any) {
	c.value = selection.Classify(v)
	c.notify()
}

func (c *Controller) ToggleMonthSelector() {
	s := c.state
	s.IsMonthSelectorOpen = !s.IsMonthSelectorOpen
	c.replace(s)
}

func (c *Controller) ToggleYearSelector() {
	s := c.state
	s.IsYearSelectorOpen = !s.IsYearSelectorOpen
	c.replace(s)
}

// SelectMonth shows month of the active year and closes the month selector.
// Months outside 1-12 are ignored.
func (c *Controller) SelectMonth(month int) {
	if month < 1 || month > 12 {
		c.logger.Debug("month selection ignored", "month", month)
		return
	}
	next := c.fitDay(c.state.ActiveDate.WithMonth(month))
	if c.cb.OnMonthSelect != nil {
		c.cb.OnMonthSelect(next)
	}
	s := c.state
	s.ActiveDate = next
	s.IsMonthSelectorOpen = false
	c.replace(s)
	c.activeChanged()
}

// SelectYear shows year and closes the year selector.
func (c *Controller) SelectYear(year int) {
	next := c.fitDay(c.state.ActiveDate.WithYear(year))
	if c.cb.OnYearSelect != nil {
		c.cb.OnYearSelect(next)
	}
	s := c.state
	s.ActiveDate = next
	s.IsYearSelectorOpen = false
	c.replace(s)
	c.activeChanged()
}

// CanNavigate reports whether a request in dir would pass the bounds check.
func (c *Controller) CanNavigate(dir calendar.Direction) bool {
	return calendar.NavigationAllowedIn(c.locale, dir, c.state.ActiveDate, c.bounds)
}

// Navigate starts a month change in dir. The active date does not move
// until CompleteTransition. Refusals leave the state untouched and are
// reported as ErrNoDirection, ErrOutOfBounds or ErrTransitionInFlight.
func (c *Controller) Navigate(dir calendar.Direction) error {
	if dir.Step() == 0 {
		return ErrNoDirection
	}
	if !c.CanNavigate(dir) {
		c.logger.Debug("navigation refused", "direction", string(dir),
			"active", c.state.ActiveDate.String(), "bounds", c.bounds.String())
		return ErrOutOfBounds
	}
	if !c.slide.Request(dir) {
		return ErrTransitionInFlight
	}
	s := c.state
	s.MonthChangeDirection = dir
	c.replace(s)
	return nil
}

// RequestChange is Navigate with refusals swallowed. It reports whether a
// slide started.
func (c *Controller) RequestChange(dir calendar.Direction) bool {
	return c.Navigate(dir) == nil
}

// CompleteTransition is the completion signal from the presentation. It
// commits the pending month change once; later signals for the same slide
// return false.
func (c *Controller) CompleteTransition() bool {
	dir, ok := c.slide.Complete()
	if !ok {
		return false
	}
	s := c.state
	s.ActiveDate = c.fitDay(c.locale.AddMonths(s.ActiveDate, dir))
	s.MonthChangeDirection = calendar.None
	c.replace(s)
	c.activeChanged()
	return true
}

// UpdateActiveDate replaces the active date out of band. Selector flags
// and any pending direction are kept. A date that does not exist is
// ignored.
func (c *Controller) UpdateActiveDate(d calendar.CalendarDate) {
	if !c.realDay(d) {
		c.logger.Debug("active date update ignored", "date", d.String())
		return
	}
	s := c.state
	s.ActiveDate = d
	c.replace(s)
	c.activeChanged()
}

// ClickPrevious is the interactive previous control.
func (c *Controller) ClickPrevious() bool {
	return c.click(calendar.Previous, c.nav.HidePrevButton, c.nav.OnPrevClick)
}

// ClickNext is the interactive next control.
func (c *Controller) ClickNext() bool {
	return c.click(calendar.Next, c.nav.HideNextButton, c.nav.OnNextClick)
}

func (c *Controller) click(dir calendar.Direction, hidden bool, observer func()) bool {
	if hidden {
		return false
	}
	err := c.Navigate(dir)
	if errors.Is(err, ErrOutOfBounds) {
		// A disabled button cannot be clicked.
		return false
	}
	if observer != nil {
		observer()
	}
	return err == nil
}

// ReportDisabledDay forwards a pick of a host-disallowed day. Nothing in
// the navigation state changes.
func (c *Controller) ReportDisabledDay(d calendar.CalendarDate) {
	c.logger.Debug("disabled day selected", "day", d.String())
	if c.cb.OnDisabledDayError != nil {
		c.cb.OnDisabledDayError(d)
	}
}

// Frames are the header labels for the current state.
func (c *Controller) Frames() [2]slide.Frame {
	return slide.Frames(c.locale, c.state.ActiveDate, c.state.MonthChangeDirection)
}

func (c *Controller) replace(s State) {
	c.state = s
	c.notify()
}

func (c *Controller) notify() {
	if c.cb.OnStateChange != nil {
		c.cb.OnStateChange(c.state)
	}
}

func (c *Controller) activeChanged() {
	if c.cb.OnActiveDateChange != nil {
		c.cb.OnActiveDateChange(c.state.ActiveDate)
	}
}

func (c *Controller) realDay(d calendar.CalendarDate) bool {
	return d.Month >= 1 && d.Month <= 12 && d.Day >= 1 && d.Day <= c.locale.DaysInMonth(d.Year, d.Month)
}

// fitDay pulls d.Day back to the last day of its month so the active date
// stays a real day.
func (c *Controller) fitDay(d calendar.CalendarDate) calendar.CalendarDate {
	if n := c.locale.DaysInMonth(d.Year, d.Month); n > 0 && d.Day > n {
		d.Day = n
	}
	return d
}
