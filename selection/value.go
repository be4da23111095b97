// Package selection classifies the selection value a host hands to the
// calendar and derives the date navigation starts from. It never mutates a
// selection; picking days is the presentation's job.
package selection

import (
	"slices"

	"github.com/jask/slidecal/calendar"
)

// Kind names the active variant of a Value.
type Kind int

const (
	KindSingle Kind = iota
	KindMulti
	KindRange
)

func (k Kind) String() string {
	switch k {
	case KindMulti:
		return "multi"
	case KindRange:
		return "range"
	default:
		return "single"
	}
}

// Range is a from/to selection; either end may be unset.
type Range struct {
	From *calendar.CalendarDate
	To   *calendar.CalendarDate
}

// Value is a classified selection. Only the field matching Kind is
// meaningful.
type Value struct {
	Kind   Kind
	Single *calendar.CalendarDate
	Multi  []calendar.CalendarDate
	Range  Range
}

// Empty is Single(nil), the variant every unrecognised value degrades to.
func Empty() Value {
	return Value{Kind: KindSingle}
}

func Single(d calendar.CalendarDate) Value {
	return Value{Kind: KindSingle, Single: d.Ptr()}
}

func Multi(dates ...calendar.CalendarDate) Value {
	return Value{Kind: KindMulti, Multi: slices.Clone(dates)}
}

func NewRange(from, to *calendar.CalendarDate) Value {
	return Value{Kind: KindRange, Range: Range{From: clonePtr(from), To: clonePtr(to)}}
}

// IsEmpty reports whether no date is selected.
func (v Value) IsEmpty() bool {
	return len(v.Dates()) == 0
}

// Dates lists the selected dates in order. A range contributes its ends.
func (v Value) Dates() []calendar.CalendarDate {
	switch v.Kind {
	case KindMulti:
		return slices.Clone(v.Multi)
	case KindRange:
		var out []calendar.CalendarDate
		if v.Range.From != nil {
			out = append(out, *v.Range.From)
		}
		if v.Range.To != nil {
			out = append(out, *v.Range.To)
		}
		return out
	default:
		if v.Single == nil {
			return nil
		}
		return []calendar.CalendarDate{*v.Single}
	}
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	out := Value{Kind: v.Kind, Single: clonePtr(v.Single)}
	if v.Multi != nil {
		out.Multi = slices.Clone(v.Multi)
	}
	out.Range = Range{From: clonePtr(v.Range.From), To: clonePtr(v.Range.To)}
	return out
}

// ComputeActiveDate is the date navigation opens on: the first of a multi
// selection, the single date, or the start of a range. Anything else
// falls back to today.
func ComputeActiveDate(v Value, today calendar.CalendarDate) calendar.CalendarDate {
	switch v.Kind {
	case KindMulti:
		if len(v.Multi) > 0 {
			return v.Multi[0]
		}
	case KindSingle:
		if v.Single != nil {
			return *v.Single
		}
	case KindRange:
		if v.Range.From != nil {
			return *v.Range.From
		}
	}
	return today
}

func clonePtr(d *calendar.CalendarDate) *calendar.CalendarDate {
	if d == nil {
		return nil
	}
	return d.Ptr()
}
