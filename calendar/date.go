// Package calendar holds the date arithmetic the navigation engine runs on:
// a plain CalendarDate value, month stepping with year rollover, ordering,
// and bounds checks used to enable or refuse month navigation.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// CalendarDate is a day in a calendar system. It is a plain value; every
// change produces a new date.
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

// Date is shorthand for building a CalendarDate.
func Date(year, month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// FirstOfMonth returns d with Day set to 1.
func (d CalendarDate) FirstOfMonth() CalendarDate {
	d.Day = 1
	return d
}

// WithMonth returns d moved to month m of the same year.
func (d CalendarDate) WithMonth(m int) CalendarDate {
	d.Month = m
	return d
}

// WithYear returns d moved to year y.
func (d CalendarDate) WithYear(y int) CalendarDate {
	d.Year = y
	return d
}

// Ptr returns a pointer to a copy of d.
func (d CalendarDate) Ptr() *CalendarDate {
	return &d
}

// ParseDate parses a YYYY-MM-DD date and validates the day against the
// Gregorian month length.
func ParseDate(s string) (CalendarDate, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return CalendarDate{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return CalendarDate{}, fmt.Errorf("invalid date %q: %w", s, err)
		}
		nums[i] = n
	}
	d := CalendarDate{Year: nums[0], Month: nums[1], Day: nums[2]}
	if d.Month < 1 || d.Month > 12 {
		return CalendarDate{}, fmt.Errorf("invalid month in %q: %d", s, d.Month)
	}
	if d.Day < 1 || d.Day > DaysInMonth(d.Year, d.Month) {
		return CalendarDate{}, fmt.Errorf("invalid day in %q: %d", s, d.Day)
	}
	return d, nil
}

// Direction is the sense of a month change request.
type Direction string

const (
	None     Direction = ""
	Next     Direction = "NEXT"
	Previous Direction = "PREVIOUS"
)

// Step returns +1 for Next, -1 for Previous and 0 otherwise.
func (dir Direction) Step() int {
	switch dir {
	case Next:
		return 1
	case Previous:
		return -1
	}
	return 0
}

func (dir Direction) Opposite() Direction {
	switch dir {
	case Next:
		return Previous
	case Previous:
		return Next
	}
	return None
}

// Bounds limits navigation. Either side may be nil.
type Bounds struct {
	Minimum *CalendarDate
	Maximum *CalendarDate
}

func (b Bounds) String() string {
	lo, hi := "-", "-"
	if b.Minimum != nil {
		lo = b.Minimum.String()
	}
	if b.Maximum != nil {
		hi = b.Maximum.String()
	}
	return "[" + lo + ", " + hi + "]"
}
