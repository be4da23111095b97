// Package navigation owns which month a calendar shows and which quick
// selectors are open. Every operation replaces the State wholesale and
// notifies the presentation explicitly.
package navigation

import (
	"errors"
	"log/slog"

	"github.com/jask/slidecal/calendar"
)

// State is the navigation snapshot. It is returned by value and never
// shared.
type State struct {
	ActiveDate           calendar.CalendarDate
	MonthChangeDirection calendar.Direction
	IsMonthSelectorOpen  bool
	IsYearSelectorOpen   bool
}

// IsSelectorOpen reports whether either quick selector is showing.
func (s State) IsSelectorOpen() bool {
	return s.IsMonthSelectorOpen || s.IsYearSelectorOpen
}

var (
	// ErrOutOfBounds is a navigation request past the minimum or maximum
	// date.
	ErrOutOfBounds = errors.New("navigation out of bounds")
	// ErrTransitionInFlight is a request made while a slide is running.
	ErrTransitionInFlight = errors.New("month transition in flight")
	ErrNoDirection        = errors.New("no navigation direction")
)

// Callbacks are the host and presentation observers. All are optional.
type Callbacks struct {
	// OnMonthSelect sees the would-be active date before a month pick is
	// applied. It cannot veto the change.
	OnMonthSelect func(calendar.CalendarDate)
	// OnYearSelect is the year counterpart of OnMonthSelect.
	OnYearSelect       func(calendar.CalendarDate)
	OnActiveDateChange func(calendar.CalendarDate)
	// OnDisabledDayError receives days the host disallowed but the user
	// tried to pick.
	OnDisabledDayError func(calendar.CalendarDate)
	// OnStateChange tells the presentation to redraw from the snapshot.
	OnStateChange func(State)
}

// NavigationConfig customises the previous/next controls.
type NavigationConfig struct {
	HidePrevButton bool
	HideNextButton bool
	// OnPrevClick and OnNextClick fire for interactive clicks only, not
	// for Handle triggers.
	OnPrevClick func()
	OnNextClick func()
}

// Config assembles a Controller.
type Config struct {
	Locale calendar.Locale
	// Value is the host selection in any shape selection.Classify accepts.
	Value  any
	Bounds calendar.Bounds
	// ActiveDate, when set, overrides the date derived from Value.
	ActiveDate *calendar.CalendarDate
	// SelectorStartingYear and SelectorEndingYear bound the year list.
	// Zero means today minus 100 and today plus 50.
	SelectorStartingYear int
	SelectorEndingYear   int
	Navigation           NavigationConfig
	Callbacks            Callbacks
	Logger               *slog.Logger
}

const (
	defaultYearsBack    = 100
	defaultYearsForward = 50
)
