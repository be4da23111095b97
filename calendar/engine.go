package calendar

import "cloudeng.io/datetime"

// Arithmetic is the part of a calendar system that navigation depends on.
// Locales with a non-Gregorian calendar supply their own.
type Arithmetic interface {
	IsBeforeDate(a, b CalendarDate) bool
	AddMonths(d CalendarDate, dir Direction) CalendarDate
}

// Standard is the twelve month arithmetic shared by the Gregorian calendar
// and any calendar that numbers months 1-12.
var Standard Arithmetic = standard{}

type standard struct{}

func (standard) IsBeforeDate(a, b CalendarDate) bool                 { return IsBeforeDate(a, b) }
func (standard) AddMonths(d CalendarDate, dir Direction) CalendarDate { return AddMonths(d, dir) }

// AddMonths moves d one month in dir, rolling the year over at the ends.
// The day is kept as given.
func AddMonths(d CalendarDate, dir Direction) CalendarDate {
	switch dir.Step() {
	case 1:
		if d.Month >= 12 {
			return CalendarDate{Year: d.Year + 1, Month: 1, Day: d.Day}
		}
		return CalendarDate{Year: d.Year, Month: d.Month + 1, Day: d.Day}
	case -1:
		if d.Month <= 1 {
			return CalendarDate{Year: d.Year - 1, Month: 12, Day: d.Day}
		}
		return CalendarDate{Year: d.Year, Month: d.Month - 1, Day: d.Day}
	}
	return d
}

// IsBeforeDate orders dates by year, then month, then day.
func IsBeforeDate(a, b CalendarDate) bool {
	if a.Year != b.Year {
		return a.Year < b.Year
	}
	if a.Month != b.Month {
		return a.Month < b.Month
	}
	return a.Day < b.Day
}

func IsSameDay(a, b CalendarDate) bool {
	return a.Year == b.Year && a.Month == b.Month && a.Day == b.Day
}

// NavigationAllowed reports whether active may move one month in dir
// without leaving bounds.
func NavigationAllowed(dir Direction, active CalendarDate, bounds Bounds) bool {
	return NavigationAllowedIn(Standard, dir, active, bounds)
}

// NavigationAllowedIn is NavigationAllowed over a specific calendar system.
//
// Next is refused once the maximum falls before the first day of the
// following month. Previous is refused once the first day of the active
// month is on or before the minimum.
func NavigationAllowedIn(arith Arithmetic, dir Direction, active CalendarDate, bounds Bounds) bool {
	first := active.FirstOfMonth()
	switch dir {
	case Next:
		if bounds.Maximum == nil {
			return true
		}
		return !arith.IsBeforeDate(*bounds.Maximum, arith.AddMonths(first, Next))
	case Previous:
		if bounds.Minimum == nil {
			return true
		}
		return !(arith.IsBeforeDate(first, *bounds.Minimum) || IsSameDay(first, *bounds.Minimum))
	}
	return false
}

// Clamp forces d into bounds.
func Clamp(d CalendarDate, bounds Bounds) CalendarDate {
	if bounds.Minimum != nil && IsBeforeDate(d, *bounds.Minimum) {
		return *bounds.Minimum
	}
	if bounds.Maximum != nil && IsBeforeDate(*bounds.Maximum, d) {
		return *bounds.Maximum
	}
	return d
}

// Contains reports whether d lies within bounds, inclusive.
func (b Bounds) Contains(d CalendarDate) bool {
	return Clamp(d, b) == d
}

// DaysInMonth returns the Gregorian length of month in year. Months outside
// 1-12 return 0.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// Valid reports whether d names a real Gregorian day.
func (d CalendarDate) Valid() bool {
	return d.Day >= 1 && d.Day <= DaysInMonth(d.Year, d.Month)
}
