package datekey

import (
	"fmt"
	"strings"
	"time"
)

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

var frenchWeekdays = [...]string{
	"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
}

// MonthName is the French name of m.
func MonthName(m time.Month) string {
	return frenchMonths[m-1]
}

// WeekdayName is the French name of d.
func WeekdayName(d time.Weekday) string {
	return frenchWeekdays[d]
}

// Long formats t as "13 novembre 2025".
func Long(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), MonthName(t.Month()), t.Year())
}

// Full formats t as "Jeudi 13 novembre 2025".
func Full(t time.Time) string {
	day := WeekdayName(t.Weekday())
	return strings.ToUpper(day[:1]) + day[1:] + " " + Long(t)
}

// DayMonth formats t as "13 novembre".
func DayMonth(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), MonthName(t.Month()))
}
