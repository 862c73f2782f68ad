package metrics

import (
	"time"

	"github.com/jinzhu/now"
)

// SQLTimeLayout is the layout used to pass time bounds to the relational source
const SQLTimeLayout = "2006-01-02 15:04:05"

// WindowKind identifies how the bounds of a window are derived from "now"
type WindowKind int

const (
	// AllTime has no bounds
	AllTime WindowKind = iota
	// Today covers [midnight today, midnight tomorrow)
	Today
	// LastDays covers [now - Days, now]
	LastDays
	// NextDays covers [now, now + Days]
	NextDays
	// NextMonth covers [now, now + 1 month]
	NextMonth
	// PreviousMonth covers the prior calendar month
	PreviousMonth
	// PreviousISOWeek covers the prior ISO week, Monday to Monday
	PreviousISOWeek
	// Future covers (now, +inf) and only binds "now"
	Future
)

// Window is a time window relative to the request time
type Window struct {
	Kind WindowKind
	Days int
}

// isoCalendar starts weeks on Monday and keeps the location of the time it is applied to
var isoCalendar = &now.Config{
	WeekStartDay: time.Monday,
}

// Bounds returns the window edges computed from reference. Kinds without a bound return zero times.
func (w Window) Bounds(reference time.Time) (time.Time, time.Time) {
	calendar := isoCalendar.With(reference)

	switch w.Kind {
	case Today:
		start := calendar.BeginningOfDay()
		return start, start.AddDate(0, 0, 1)
	case LastDays:
		return reference.AddDate(0, 0, -w.Days), reference
	case NextDays:
		return reference, reference.AddDate(0, 0, w.Days)
	case NextMonth:
		return reference, reference.AddDate(0, 1, 0)
	case PreviousMonth:
		firstOfMonth := calendar.BeginningOfMonth()
		return firstOfMonth.AddDate(0, -1, 0), firstOfMonth
	case PreviousISOWeek:
		monday := calendar.BeginningOfWeek()
		return monday.AddDate(0, 0, -7), monday
	case Future:
		return reference, time.Time{}
	default:
		return time.Time{}, time.Time{}
	}
}

// Args returns the bound parameters the query of this window expects, in order
func (w Window) Args(reference time.Time) []any {
	start, end := w.Bounds(reference)

	switch w.Kind {
	case AllTime:
		return nil
	case Future:
		return []any{start.Format(SQLTimeLayout)}
	default:
		return []any{start.Format(SQLTimeLayout), end.Format(SQLTimeLayout)}
	}
}
