// Package tasks is the scheduled task list shared by the calendar and the
// planner dashboard.
package tasks

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/planner/pkg/calendar"
	"tableflip.dev/planner/pkg/datekey"
	"tableflip.dev/planner/pkg/group"
	"tableflip.dev/planner/pkg/ident"
	"tableflip.dev/planner/pkg/logging"
	"tableflip.dev/planner/pkg/persist"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/validation"
)

// StoreKey is the slot holding the task list.
const StoreKey = "planner.tasks"

// ErrNotFound is returned for unknown task ids.
var ErrNotFound = errors.New("tasks: task not found")

// ValidationError is returned when a draft or patch is rejected.
type ValidationError = validation.Error

// Task is one scheduled block on a day.
type Task struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
	Date  string `json:"date"`
	Color string `json:"color"`
	Tag   string `json:"tag"`
}

// Draft is a task to be added.
type Draft struct {
	Title string
	Start string
	End   string
	Date  string
	Color string
	Tag   string
}

// Patch changes the non-nil fields of a task.
type Patch struct {
	Title *string
	Start *string
	End   *string
	Date  *string
	Color *string
	Tag   *string
}

// Option configures a Service.
type Option func(*Service)

// WithClock pins "now".
func WithClock(c datekey.Clock) Option {
	return func(s *Service) {
		s.now = c
	}
}

// WithIDs replaces the id generator.
func WithIDs(g ident.Generator) Option {
	return func(s *Service) {
		s.ids = g
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.log = l
	}
}

// Service owns the task list slot.
type Service struct {
	value *persist.Value[[]Task]
	ids   ident.Generator
	now   datekey.Clock
	log   *slog.Logger
}

// New mounts the task list. An empty store is seeded with a sample schedule
// for the current month.
func New(s store.Store, opts ...Option) *Service {
	svc := &Service{ids: ident.UUID{}, now: time.Now}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.log == nil {
		svc.log = logging.For(logging.ComponentTasks)
	}
	svc.value = persist.New(s, StoreKey, func() []Task { return Seed(svc.now()) }, persist.WithLogger(svc.log))
	return svc
}

// Value exposes the underlying slot.
func (s *Service) Value() *persist.Value[[]Task] {
	return s.value
}

// List returns the tasks in stored order.
func (s *Service) List() []Task {
	return s.value.Get()
}

// Get returns the task with id.
func (s *Service) Get(id string) (Task, error) {
	for _, t := range s.value.Get() {
		if t.ID == id {
			return t, nil
		}
	}
	return Task{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Add validates d and appends it.
func (s *Service) Add(d Draft) (Task, error) {
	t := Task{
		Title: strings.TrimSpace(d.Title),
		Start: strings.TrimSpace(d.Start),
		End:   strings.TrimSpace(d.End),
		Date:  strings.TrimSpace(d.Date),
		Color: strings.TrimSpace(d.Color),
		Tag:   strings.TrimSpace(d.Tag),
	}
	if t.Color == "" {
		t.Color = Palette[0]
	}
	if err := validate(t); err != nil {
		return Task{}, err
	}
	t.ID = s.ids.New(ident.Task)

	s.value.Update(func(prev []Task) []Task { return append(prev, t) })
	s.log.Debug("task added", "id", t.ID, "date", t.Date)
	return t, nil
}

// Update applies p to the task with id.
func (s *Service) Update(id string, p Patch) (Task, error) {
	current, err := s.Get(id)
	if err != nil {
		return Task{}, err
	}
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	apply(&current.Title, p.Title)
	apply(&current.Start, p.Start)
	apply(&current.End, p.End)
	apply(&current.Date, p.Date)
	apply(&current.Color, p.Color)
	apply(&current.Tag, p.Tag)
	if err := validate(current); err != nil {
		return Task{}, err
	}

	s.value.Update(func(prev []Task) []Task {
		for i := range prev {
			if prev[i].ID == id {
				prev[i] = current
			}
		}
		return prev
	})
	return current, nil
}

// Remove deletes the task with id.
func (s *Service) Remove(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	s.value.Update(func(prev []Task) []Task {
		return slices.DeleteFunc(prev, func(t Task) bool { return t.ID == id })
	})
	return nil
}

// ByDate groups every task by day, ascending, ordered by start time.
func (s *Service) ByDate() []group.Group[string, Task] {
	return ByDate(s.value.Get())
}

// On returns the tasks on dayKey ordered by start time.
func (s *Service) On(dayKey string) []Task {
	var out []Task
	for _, t := range s.value.Get() {
		if t.Date == dayKey {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, func(a, b Task) int { return strings.Compare(a.Start, b.Start) })
	return out
}

// Month lays out month with the tasks of each day.
func (s *Service) Month(year int, month time.Month, today time.Time) calendar.Grid[Task] {
	return calendar.Build(year, month, group.Index(s.ByDate()), today)
}

// Upcoming returns the dashboard agenda, see Upcoming.
func (s *Service) Upcoming(now time.Time, limit int) []UpcomingGroup {
	return Upcoming(s.value.Get(), now, limit)
}

// ByDate groups tasks by day, ascending, ordered by start time.
func ByDate(tasks []Task) []group.Group[string, Task] {
	return group.ByDate(tasks,
		func(t Task) string { return t.Date },
		group.ByTime(func(t Task) string { return t.Start }))
}

func validate(t Task) error {
	if err := validation.Required("title", t.Title); err != nil {
		return err
	}
	if !datekey.Valid(t.Date) {
		return validation.New("date", "%q is not a YYYY-MM-DD date", t.Date)
	}
	if !datekey.ValidClock(t.Start) {
		return validation.New("start", "%q is not an HH:MM time", t.Start)
	}
	if !datekey.ValidClock(t.End) {
		return validation.New("end", "%q is not an HH:MM time", t.End)
	}
	if t.End < t.Start {
		return validation.New("end", "%s is before start %s", t.End, t.Start)
	}
	if _, err := colorful.Hex(t.Color); err != nil {
		return validation.New("color", "%q is not a #rrggbb colour", t.Color)
	}
	return nil
}
