// Package calendar lays out a month as a Monday-first grid of day cells.
package calendar

import (
	"strings"
	"time"

	"tableflip.dev/planner/pkg/datekey"
)

// WeekdayLabels is the Monday-first header row: "Lu" to "Di".
var WeekdayLabels = weekdayLabels()

func weekdayLabels() [7]string {
	var labels [7]string
	for i := range labels {
		name := datekey.WeekdayName(time.Weekday((i + 1) % 7))
		labels[i] = strings.ToUpper(name[:1]) + name[1:2]
	}
	return labels
}

// Cell is one square of the grid. Padding cells have Day == 0.
type Cell[T any] struct {
	Day     int
	Key     string
	Items   []T
	IsToday bool
}

// Empty reports whether the cell is padding.
func (c Cell[T]) Empty() bool {
	return c.Day == 0
}

// Grid is a month laid out in whole weeks.
type Grid[T any] struct {
	Year        int
	Month       time.Month
	Offset      int
	DaysInMonth int
	Cells       []Cell[T]
}

// Offset returns how many cells precede the 1st in a Monday-first week.
func Offset(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return (int(first.Weekday()) + 6) % 7
}

// Build lays out month of year. buckets maps date-keys to the records on that
// day and is usually group.Index of a group.ByDate result. today is compared
// by calendar day only, so callers rebuild the grid for every render.
func Build[T any](year int, month time.Month, buckets map[string][]T, today time.Time) Grid[T] {
	// Normalize overflowing months such as 13.
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	year, month = first.Year(), first.Month()

	offset := Offset(year, month)
	days := datekey.DaysIn(year, month)
	total := (offset + days + 6) / 7 * 7

	ty, tm, td := today.Date()
	cells := make([]Cell[T], total)
	for day := 1; day <= days; day++ {
		key := datekey.Of(year, month, day)
		cells[offset+day-1] = Cell[T]{
			Day:     day,
			Key:     key,
			Items:   buckets[key],
			IsToday: ty == year && tm == month && td == day,
		}
	}

	return Grid[T]{
		Year:        year,
		Month:       month,
		Offset:      offset,
		DaysInMonth: days,
		Cells:       cells,
	}
}

// Weeks splits the cells into rows of seven.
func (g Grid[T]) Weeks() [][]Cell[T] {
	weeks := make([][]Cell[T], 0, len(g.Cells)/7)
	for i := 0; i+7 <= len(g.Cells); i += 7 {
		weeks = append(weeks, g.Cells[i:i+7])
	}
	return weeks
}

// Today returns the cell for today, if it is in this month.
func (g Grid[T]) Today() (Cell[T], bool) {
	for _, c := range g.Cells {
		if c.IsToday {
			return c, true
		}
	}
	return Cell[T]{}, false
}

// Prev returns the year and month before g.
func (g Grid[T]) Prev() (int, time.Month) {
	t := time.Date(g.Year, g.Month-1, 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

// Next returns the year and month after g.
func (g Grid[T]) Next() (int, time.Month) {
	t := time.Date(g.Year, g.Month+1, 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}
