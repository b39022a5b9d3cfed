package tasks

import (
	"fmt"
	"slices"
	"time"

	"tableflip.dev/planner/pkg/datekey"
)

// Palette is the set of task colours offered by the calendar.
var Palette = []string{"#6366F1", "#0EA5E9", "#F59E0B", "#10B981", "#EC4899"}

type profileTask struct {
	title, start, end, tag string
	color                  int
}

var dayProfiles = [][]profileTask{
	{
		{"Sprint planning", "08:45", "09:30", "Stratégie", 0},
		{"Bloc deep work", "10:00", "12:00", "Focus", 1},
		{"Coaching équipe", "15:00", "15:45", "Leadership", 2},
	},
	{
		{"Revue hebdomadaire", "08:30", "09:00", "Rituel", 3},
		{"Déjeuner mentor", "12:30", "13:30", "Networking", 4},
		{"Préparation contenu", "17:00", "18:00", "Création", 0},
	},
	{
		{"Atelier innovation", "09:15", "11:00", "Workshop", 1},
		{"Suivi clients premium", "13:30", "14:30", "Client", 2},
		{"Sport", "18:30", "19:30", "Énergie", 3},
	},
	{
		{"Routine administrative", "08:00", "09:00", "Organisation", 4},
		{"Point projet", "11:00", "11:45", "Projet", 0},
		{"Temps créatif", "16:00", "17:30", "Création", 1},
	},
}

// Seed is the sample schedule for the month of now: day profiles rotate over
// today and the 1st, 4th, 8th and every fourth day up to the 28th.
func Seed(now time.Time) []Task {
	year, month, today := now.Date()
	days := datekey.DaysIn(year, month)

	candidates := []int{today}
	for _, d := range []int{1, 4, 8, 12, 16, 20, 24, 28} {
		if !slices.Contains(candidates, d) {
			candidates = append(candidates, d)
		}
	}
	candidates = slices.DeleteFunc(candidates, func(d int) bool { return d > days })
	slices.Sort(candidates)

	out := make([]Task, 0, len(candidates)*3)
	for i, day := range candidates {
		for j, p := range dayProfiles[i%len(dayProfiles)] {
			out = append(out, Task{
				ID:    fmt.Sprintf("task-%d-%d", day, j),
				Title: p.title,
				Start: p.start,
				End:   p.end,
				Date:  datekey.Of(year, month, day),
				Color: Palette[p.color],
				Tag:   p.tag,
			})
		}
	}
	return out
}
