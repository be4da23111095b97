package selection

import (
	"slices"

	"github.com/tidwall/gjson"

	"github.com/jask/slidecal/calendar"
)

// Classify decides once which variant a host value is. Values of an
// unknown shape become Empty so the widget stays renderable, and dates that
// do not exist are dropped.
func Classify(v any) Value {
	switch x := v.(type) {
	case nil:
		return Empty()
	case Value:
		return sanitize(x)
	case *Value:
		if x == nil {
			return Empty()
		}
		return sanitize(*x)
	case calendar.CalendarDate:
		return sanitize(Single(x))
	case *calendar.CalendarDate:
		if x == nil {
			return Empty()
		}
		return sanitize(Single(*x))
	case []calendar.CalendarDate:
		return sanitize(Multi(x...))
	case Range:
		return sanitize(NewRange(x.From, x.To))
	case *Range:
		if x == nil {
			return Empty()
		}
		return sanitize(NewRange(x.From, x.To))
	}
	return Empty()
}

// sanitize drops dates that do not exist. A single date that does not
// exist leaves the selection empty; invalid multi entries are skipped and
// invalid range ends are unset.
func sanitize(v Value) Value {
	out := v.Clone()
	switch out.Kind {
	case KindMulti:
		out.Multi = slices.DeleteFunc(out.Multi, func(d calendar.CalendarDate) bool { return !d.Valid() })
	case KindRange:
		out.Range.From = validPtr(out.Range.From)
		out.Range.To = validPtr(out.Range.To)
	default:
		out.Single = validPtr(out.Single)
	}
	return out
}

func validPtr(d *calendar.CalendarDate) *calendar.CalendarDate {
	if d == nil || !d.Valid() {
		return nil
	}
	return d
}

// ClassifyJSON classifies a JSON encoded host value by its shape: an
// object with a "from" key is a range, an array is a multi selection, an
// object with day, month and year is a single date. Array entries that are
// not dates are skipped.
func ClassifyJSON(raw []byte) Value {
	if !gjson.ValidBytes(raw) {
		return Empty()
	}
	res := gjson.ParseBytes(raw)
	switch {
	case res.IsArray():
		var dates []calendar.CalendarDate
		res.ForEach(func(_, entry gjson.Result) bool {
			if d, ok := jsonDate(entry); ok {
				dates = append(dates, d)
			}
			return true
		})
		return Value{Kind: KindMulti, Multi: dates}
	case res.IsObject() && res.Get("from").Exists():
		var r Range
		if d, ok := jsonDate(res.Get("from")); ok {
			r.From = d.Ptr()
		}
		if d, ok := jsonDate(res.Get("to")); ok {
			r.To = d.Ptr()
		}
		return Value{Kind: KindRange, Range: r}
	case res.IsObject():
		if d, ok := jsonDate(res); ok {
			return Single(d)
		}
	}
	return Empty()
}

func jsonDate(res gjson.Result) (calendar.CalendarDate, bool) {
	if !res.IsObject() {
		return calendar.CalendarDate{}, false
	}
	day, month, year := res.Get("day"), res.Get("month"), res.Get("year")
	if day.Type != gjson.Number || month.Type != gjson.Number || year.Type != gjson.Number {
		return calendar.CalendarDate{}, false
	}
	d := calendar.Date(int(year.Int()), int(month.Int()), int(day.Int()))
	return d, d.Valid()
}
