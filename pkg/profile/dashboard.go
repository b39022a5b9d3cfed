package profile

import (
	"strings"
	"time"

	"tableflip.dev/planner/pkg/datekey"
	"tableflip.dev/planner/pkg/tasks"
)

// Dashboard is everything the planner home shows at one instant.
type Dashboard struct {
	Profile  Profile               `json:"profile"`
	Name     string                `json:"name"`
	Today    string                `json:"today"`
	DayKey   string                `json:"dayKey"`
	Tasks    []tasks.Task          `json:"tasks"`
	Upcoming []tasks.UpcomingGroup `json:"upcoming"`
	Progress []Period              `json:"progress"`
	Notes    Notes                 `json:"notes"`
}

// Dashboard assembles the home view at now from the profile, the notepad and
// the shared task list.
func (s *Service) Dashboard(t *tasks.Service, now time.Time) Dashboard {
	p := s.Profile()
	key := datekey.Day(now)
	name := strings.TrimSpace(p.DisplayName())
	if name == "" {
		name = s.fallbackName(p)
	}
	return Dashboard{
		Profile:  p,
		Name:     name,
		Today:    datekey.Full(now),
		DayKey:   key,
		Tasks:    t.On(key),
		Upcoming: t.Upcoming(now, tasks.UpcomingLimit),
		Progress: Progress(now),
		Notes:    s.Notes(),
	}
}
