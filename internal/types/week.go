package types

import (
	"fmt"
	"iter"
	"time"
)

// Week is a budgeting week. Weeks start on Sunday and end on the
// following Saturday, so a Week is represented by its start date.
//
// Every component buckets dates through this type so that week
// boundaries are computed in exactly one place.
type Week time.Time

// WeekOf returns the Week containing the given day.
func WeekOf(d Date) Week {
	year, month, day := time.Time(d).Date()
	return Week(time.Date(year, month, day-int(time.Time(d).Weekday()), 0, 0, 0, 0, time.UTC))
}

// ParseWeek parses a YYYY-MM-DD string and returns the Week containing
// that day.
func ParseWeek(s string) (Week, error) {
	d, err := ParseDate(s)
	if err != nil {
		return Week{}, err
	}

	return WeekOf(d), nil
}

// Start returns the Sunday the week starts on.
func (w Week) Start() Date {
	return Date(time.Time(w))
}

// End returns the Saturday the week ends on.
func (w Week) End() Date {
	return w.Start().AddDays(6)
}

// StartTime returns the first instant of the week, Sunday 00:00:00.000.
func (w Week) StartTime() time.Time {
	return time.Time(w)
}

// EndTime returns the last represented instant of the week,
// Saturday 23:59:59.999.
func (w Week) EndTime() time.Time {
	return time.Time(w).AddDate(0, 0, 7).Add(-time.Millisecond)
}

// String returns the start date formatted as YYYY-MM-DD.
func (w Week) String() string {
	return w.Start().String()
}

// Label returns the week formatted as "M/D/YYYY - M/D/YYYY" without
// zero padding.
func (w Week) Label() string {
	start := time.Time(w)
	end := start.AddDate(0, 0, 6)

	return fmt.Sprintf("%d/%d/%d - %d/%d/%d",
		int(start.Month()), start.Day(), start.Year(),
		int(end.Month()), end.Day(), end.Year())
}

// Number returns the ordinal of the week within its calendar year under
// the rule that the week containing January 1 is week 1.
//
// This is not ISO 8601 numbering: weeks start on Sunday and a date in
// late December can fall into week 1 of the following year.
func (w Week) Number() int {
	start := time.Time(w)
	end := start.AddDate(0, 0, 6)

	// A Sunday-Saturday span crossing a year boundary always contains
	// January 1, making it week 1 of the later year.
	if end.Year() != start.Year() {
		return 1
	}

	first := WeekOf(NewDate(start.Year(), time.January, 1))
	days := int(start.Sub(time.Time(first)).Hours() / 24)
	return days/7 + 1
}

// Next returns the following week.
func (w Week) Next() Week {
	return Week(time.Time(w).AddDate(0, 0, 7))
}

// Before reports whether the week w starts before x.
func (w Week) Before(x Week) bool {
	return time.Time(w).Before(time.Time(x))
}

// After reports whether the week w starts after x.
func (w Week) After(x Week) bool {
	return time.Time(w).After(time.Time(x))
}

// Equal reports whether w and x represent the same week.
func (w Week) Equal(x Week) bool {
	return time.Time(w).Equal(time.Time(x))
}

// Contains reports whether the day is in the week.
func (w Week) Contains(d Date) bool {
	return !d.Before(w.Start()) && !d.After(w.End())
}

// RemainingDaysFraction returns the fraction of the week still ahead of
// the given day, inclusive of the day itself. Sunday is 7/7, Saturday is 1/7.
func RemainingDaysFraction(d Date) float64 {
	return float64(7-int(d.Weekday())) / 7
}

// Iterate returns the weeks from start up to, but not including, end.
// The sequence is finite and can be ranged over multiple times.
func Iterate(start, end Week) iter.Seq[Week] {
	return func(yield func(Week) bool) {
		for w := start; w.Before(end); w = w.Next() {
			if !yield(w) {
				return
			}
		}
	}
}
