package profile

import (
	"fmt"
	"math"
	"time"

	"tableflip.dev/planner/pkg/datekey"
)

// Period is how far along a year, month or day is.
type Period struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Percent int    `json:"percent"`
	Meta    string `json:"meta"`
	Accent  string `json:"accent"`
}

// DayOfYear is the 1-based day of the year of t.
func DayOfYear(t time.Time) int {
	return t.YearDay()
}

// Progress reports how far now is through its year, month and day, in
// now's location.
func Progress(now time.Time) []Period {
	day := DayOfYear(now)
	yearDays := 365
	if datekey.IsLeap(now.Year()) {
		yearDays = 366
	}
	monthDays := datekey.DaysIn(now.Year(), now.Month())
	minutes := now.Hour()*60 + now.Minute()
	month := (float64(now.Day()-1) + float64(now.Hour())/24) / float64(monthDays) * 100

	return []Period{
		{
			Key:     "year",
			Label:   "Année",
			Percent: clampPercent(float64(day) / float64(yearDays) * 100),
			Meta:    fmt.Sprintf("%d / %d jours", day, yearDays),
			Accent:  "#f472b6",
		},
		{
			Key:     "month",
			Label:   "Mois",
			Percent: clampPercent(month),
			Meta:    fmt.Sprintf("Jour %d sur %d", now.Day(), monthDays),
			Accent:  "#60a5fa",
		},
		{
			Key:     "day",
			Label:   "Journée",
			Percent: clampPercent(float64(minutes) / 1440 * 100),
			Meta:    fmt.Sprintf("%dh%02d", now.Hour(), now.Minute()),
			Accent:  "#34d399",
		},
	}
}

func clampPercent(v float64) int {
	return int(math.Round(math.Max(0, math.Min(100, v))))
}
