package navigation

import "github.com/jask/slidecal/calendar"

// Handle is the programmatic capability a host holds for one calendar. The
// triggers take the same path as the on-screen controls, so a single host
// control can step several calendars through their handles. The zero
// Handle does nothing.
type Handle struct {
	c *Controller
}

func (h Handle) TriggerPrevious() {
	if h.c == nil {
		return
	}
	h.c.RequestChange(calendar.Previous)
}

func (h Handle) TriggerNext() {
	if h.c == nil {
		return
	}
	h.c.RequestChange(calendar.Next)
}

func (h Handle) ActiveDate() calendar.CalendarDate {
	if h.c == nil {
		return calendar.CalendarDate{}
	}
	return h.c.state.ActiveDate
}

func (h Handle) UpdateActiveDate(d calendar.CalendarDate) {
	if h.c == nil {
		return
	}
	h.c.UpdateActiveDate(d)
}
