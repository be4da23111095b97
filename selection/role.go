package selection

import "github.com/jask/slidecal/calendar"

// Role is how a day relates to the selection, for highlighting.
type Role int

const (
	RoleNone Role = iota
	RoleSelected
	RoleRangeStart
	RoleRangeBetween
	RoleRangeEnd
)

func (r Role) String() string {
	switch r {
	case RoleSelected:
		return "selected"
	case RoleRangeStart:
		return "range-start"
	case RoleRangeBetween:
		return "range-between"
	case RoleRangeEnd:
		return "range-end"
	}
	return "none"
}

// Role classifies d against v. A range with only From set marks From as
// the start and nothing else.
func (v Value) Role(d calendar.CalendarDate) Role {
	switch v.Kind {
	case KindSingle:
		if v.Single != nil && calendar.IsSameDay(*v.Single, d) {
			return RoleSelected
		}
	case KindMulti:
		for _, m := range v.Multi {
			if calendar.IsSameDay(m, d) {
				return RoleSelected
			}
		}
	case KindRange:
		from, to := v.Range.From, v.Range.To
		switch {
		case from != nil && calendar.IsSameDay(*from, d):
			return RoleRangeStart
		case to != nil && calendar.IsSameDay(*to, d):
			return RoleRangeEnd
		case from != nil && to != nil && calendar.IsBeforeDate(*from, d) && calendar.IsBeforeDate(d, *to):
			return RoleRangeBetween
		}
	}
	return RoleNone
}
