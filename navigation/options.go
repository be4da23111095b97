package navigation

import "github.com/jask/slidecal/calendar"

// Button is the presentation state of a previous/next control.
type Button struct {
	Visible  bool
	Disabled bool
}

// Buttons returns the previous and next controls.
func (c *Controller) Buttons() (prev, next Button) {
	prev = Button{Visible: !c.nav.HidePrevButton, Disabled: !c.CanNavigate(calendar.Previous)}
	next = Button{Visible: !c.nav.HideNextButton, Disabled: !c.CanNavigate(calendar.Next)}
	return prev, next
}

// MonthOption is one row of the month selector.
type MonthOption struct {
	Month    int
	Name     string
	Active   bool
	Disabled bool
}

// MonthOptions lists the months of the active year. A month is disabled
// when it starts after the maximum or ends before the minimum.
func (c *Controller) MonthOptions() []MonthOption {
	active := c.state.ActiveDate
	out := make([]MonthOption, 0, 12)
	for m := 1; m <= 12; m++ {
		first := calendar.Date(active.Year, m, 1)
		disabled := false
		if c.bounds.Maximum != nil && c.locale.IsBeforeDate(*c.bounds.Maximum, first) {
			disabled = true
		}
		if c.bounds.Minimum != nil {
			following := c.locale.AddMonths(first, calendar.Next)
			if !c.locale.IsBeforeDate(*c.bounds.Minimum, following) {
				disabled = true
			}
		}
		out = append(out, MonthOption{
			Month:    m,
			Name:     c.locale.MonthName(m),
			Active:   m == active.Month,
			Disabled: disabled,
		})
	}
	return out
}

// YearOption is one row of the year selector.
type YearOption struct {
	Year     int
	Label    string
	Active   bool
	Disabled bool
}

// YearOptions lists the selectable years from the starting to the ending
// year. Years outside the bounds are disabled.
func (c *Controller) YearOptions() []YearOption {
	if c.endYear < c.startYear {
		return nil
	}
	active := c.state.ActiveDate.Year
	out := make([]YearOption, 0, c.endYear-c.startYear+1)
	for y := c.startYear; y <= c.endYear; y++ {
		disabled := (c.bounds.Minimum != nil && y < c.bounds.Minimum.Year) ||
			(c.bounds.Maximum != nil && y > c.bounds.Maximum.Year)
		out = append(out, YearOption{
			Year:     y,
			Label:    c.locale.LanguageDigits(y),
			Active:   y == active,
			Disabled: disabled,
		})
	}
	return out
}
