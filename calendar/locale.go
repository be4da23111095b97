package calendar

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale is the calendar system and language capability the engine
// consumes. The engine never assumes a particular calendar beyond what a
// Locale reports.
type Locale interface {
	Arithmetic
	Tag() language.Tag
	Today() CalendarDate
	MonthName(month int) string
	WeekdayName(day time.Weekday) string
	// Weekday of the given date, used to offset the first row of a grid.
	Weekday(d CalendarDate) time.Weekday
	LanguageDigits(n int) string
	IsRtl() bool
	DaysInMonth(year, month int) int
}

// Gregorian is the default Locale: Gregorian arithmetic with month names and
// digits resolved for a language tag.
type Gregorian struct {
	tag      language.Tag
	names    [12]string
	weekdays [7]string
	rtl      bool
	now      func() time.Time
	loc      *time.Location
	digits   *message.Printer
}

// Option configures a Gregorian locale.
type Option func(*Gregorian)

// WithClock sets the function used to read the current time.
func WithClock(now func() time.Time) Option {
	return func(g *Gregorian) {
		if now != nil {
			g.now = now
		}
	}
}

// WithLocation sets the time zone "today" is computed in.
func WithLocation(loc *time.Location) Option {
	return func(g *Gregorian) {
		if loc != nil {
			g.loc = loc
		}
	}
}

// WithMonthNames overrides the catalog month names. Exactly 12 names are
// required; other lengths are ignored.
func WithMonthNames(names []string) Option {
	return func(g *Gregorian) {
		if len(names) != 12 {
			return
		}
		copy(g.names[:], names)
	}
}

// WithRTL forces the reading direction.
func WithRTL(rtl bool) Option {
	return func(g *Gregorian) {
		g.rtl = rtl
	}
}

// NewGregorian builds a Gregorian locale for a BCP 47 language tag such as
// "en" or "de-AT".
func NewGregorian(lang string, opts ...Option) (*Gregorian, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", lang, err)
	}
	g := &Gregorian{
		tag:    tag,
		rtl:    isRtlScript(tag),
		now:    time.Now,
		loc:    time.Local,
		digits: message.NewPrinter(tag),
	}
	names := message.NewPrinter(catalogTag(tag))
	for i := range g.names {
		g.names[i] = names.Sprintf(monthKey(i + 1))
	}
	for i := range g.weekdays {
		g.weekdays[i] = names.Sprintf(weekdayKey(time.Weekday(i)))
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// English returns the "en" Gregorian locale.
func English(opts ...Option) *Gregorian {
	g, err := NewGregorian("en", opts...)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Gregorian) Tag() language.Tag { return g.tag }
func (g *Gregorian) IsRtl() bool       { return g.rtl }

func (g *Gregorian) Today() CalendarDate {
	now := g.now().In(g.loc)
	return CalendarDate{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
}

func (g *Gregorian) MonthName(month int) string {
	if month < 1 || month > 12 {
		return strconv.Itoa(month)
	}
	return g.names[month-1]
}

func (g *Gregorian) WeekdayName(day time.Weekday) string {
	if day < time.Sunday || day > time.Saturday {
		return ""
	}
	return g.weekdays[day]
}

func (g *Gregorian) Weekday(d CalendarDate) time.Weekday {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 12, 0, 0, 0, time.UTC).Weekday()
}

// LanguageDigits renders n in the digit system of the locale, without
// grouping separators so years read as 2023 rather than 2,023.
func (g *Gregorian) LanguageDigits(n int) string {
	return g.digits.Sprint(number.Decimal(n, number.NoSeparator()))
}

func (g *Gregorian) IsBeforeDate(a, b CalendarDate) bool { return IsBeforeDate(a, b) }

func (g *Gregorian) AddMonths(d CalendarDate, dir Direction) CalendarDate {
	return AddMonths(d, dir)
}

func (g *Gregorian) DaysInMonth(year, month int) int { return DaysInMonth(year, month) }

func isRtlScript(tag language.Tag) bool {
	script, _ := tag.Script()
	switch script.String() {
	case "Arab", "Hebr", "Thaa", "Syrc", "Nkoo", "Adlm":
		return true
	}
	return false
}
