// Package datekey formats and parses the YYYY-MM-DD and YYYY-MM strings that
// planner records are grouped by.
package datekey

import (
	"fmt"
	"time"
)

const (
	// DayLayout is the layout of a date-key.
	DayLayout = "2006-01-02"
	// MonthLayout is the layout of a month-key.
	MonthLayout = "2006-01"
	// ClockLayout is the zero-padded HH:MM layout of times of day.
	ClockLayout = "15:04"
)

// Clock reports the current time. Features take one so tests can pin "now".
type Clock func() time.Time

// In returns a clock reading the wall clock in loc. A nil loc is local time.
func In(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return func() time.Time { return time.Now().In(loc) }
}

// Fixed returns a clock stuck at t.
func Fixed(t time.Time) Clock {
	return func() time.Time { return t }
}

// Day formats t as a date-key.
func Day(t time.Time) string {
	return t.Format(DayLayout)
}

// Of builds the date-key for a calendar day.
func Of(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// Month formats t as a month-key.
func Month(t time.Time) string {
	return t.Format(MonthLayout)
}

// MonthOf returns the month-key prefix of a date-key. Keys shorter than a
// month-key are returned unchanged.
func MonthOf(dayKey string) string {
	if len(dayKey) < len(MonthLayout) {
		return dayKey
	}
	return dayKey[:len(MonthLayout)]
}

// Parse reads a date-key as midnight in loc.
func Parse(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DayLayout, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: want YYYY-MM-DD", key)
	}
	return t, nil
}

// ParseMonth reads a month-key as the first day of that month in loc.
func ParseMonth(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(MonthLayout, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("month %q: want YYYY-MM", key)
	}
	return t, nil
}

// Valid reports whether key is a real calendar date.
func Valid(key string) bool {
	_, err := time.Parse(DayLayout, key)
	return err == nil
}

// ValidClock reports whether s is a zero-padded HH:MM time of day.
func ValidClock(s string) bool {
	if len(s) != len(ClockLayout) {
		return false
	}
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}

// SameDay compares the (year, month, day) triples of a and b.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsLeap reports whether year has 366 days.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
