package tasks

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/planner/pkg/group"
)

// UpcomingLimit is how many tasks the dashboard agenda shows.
const UpcomingLimit = 6

// Accents rotate over the days of the dashboard agenda.
var Accents = []string{"#F8EDEB", "#E3F2FD", "#E8F8F5", "#FDF2F8", "#EDE9FE", "#FFF4E6"}

// UpcomingGroup is one day of the dashboard agenda.
type UpcomingGroup struct {
	Key    string    `json:"key"`
	Date   time.Time `json:"date"`
	Accent string    `json:"accent"`
	Tasks  []Task    `json:"tasks"`
}

type timedTask struct {
	Task
	at time.Time
}

// Upcoming returns the first limit tasks starting at or after now, ordered by
// start. When nothing is ahead it falls back to the first limit tasks overall.
// Consecutive days get rotating accents.
func Upcoming(tasks []Task, now time.Time, limit int) []UpcomingGroup {
	if limit <= 0 {
		limit = UpcomingLimit
	}
	timed := make([]timedTask, 0, len(tasks))
	for _, t := range tasks {
		timed = append(timed, timedTask{Task: t, at: StartsAt(t, now.Location())})
	}

	future := make([]timedTask, 0, len(timed))
	for _, t := range timed {
		if !t.at.Before(now) {
			future = append(future, t)
		}
	}
	slices.SortStableFunc(future, func(a, b timedTask) int { return a.at.Compare(b.at) })

	dataset := future
	if len(dataset) == 0 {
		dataset = timed
	}
	if len(dataset) > limit {
		dataset = dataset[:limit]
	}

	groups := group.By(dataset, func(t timedTask) string { return t.Date }, group.Unsorted[timedTask]())
	out := make([]UpcomingGroup, 0, len(groups))
	for i, g := range groups {
		items := make([]Task, 0, len(g.Items))
		for _, t := range g.Items {
			items = append(items, t.Task)
		}
		out = append(out, UpcomingGroup{
			Key:    g.Key,
			Date:   g.Items[0].at,
			Accent: Accents[i%len(Accents)],
			Tasks:  items,
		})
	}
	return out
}

// StartsAt combines the date and start of t in loc. Missing or unparseable
// parts fall back to the first of the month and midnight.
func StartsAt(t Task, loc *time.Location) time.Time {
	date := fields(t.Date, "-", 1, 1, 1)
	clock := fields(t.Start, ":", 0, 0)
	return time.Date(date[0], time.Month(date[1]), date[2], clock[0], clock[1], 0, 0, loc)
}

func fields(s, sep string, defaults ...int) []int {
	out := append([]int(nil), defaults...)
	for i, part := range strings.Split(s, sep) {
		if i >= len(out) {
			break
		}
		if n, err := strconv.Atoi(part); err == nil {
			out[i] = n
		}
	}
	return out
}
