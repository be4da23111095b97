package slide

import "github.com/jask/slidecal/calendar"

// Frame is one of the two month/year labels a header slides between.
type Frame struct {
	Date   calendar.CalendarDate
	Month  string
	Year   string
	Active bool
}

// Frames returns the shown label followed by the incoming one. While idle
// both carry the active month; during a slide the second carries the month
// being moved to.
func Frames(loc calendar.Locale, active calendar.CalendarDate, dir calendar.Direction) [2]Frame {
	incoming := active
	if dir.Step() != 0 {
		incoming = loc.AddMonths(active, dir)
	}
	return [2]Frame{
		frameFor(loc, active, true),
		frameFor(loc, incoming, dir.Step() == 0),
	}
}

func frameFor(loc calendar.Locale, d calendar.CalendarDate, active bool) Frame {
	return Frame{
		Date:   d,
		Month:  loc.MonthName(d.Month),
		Year:   loc.LanguageDigits(d.Year),
		Active: active,
	}
}
