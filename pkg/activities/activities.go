// Package activities tracks experiences to try, from idea to done.
package activities

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"tableflip.dev/planner/pkg/datekey"
	"tableflip.dev/planner/pkg/fold"
	"tableflip.dev/planner/pkg/group"
	"tableflip.dev/planner/pkg/ident"
	"tableflip.dev/planner/pkg/logging"
	"tableflip.dev/planner/pkg/persist"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/validation"
)

// StoreKey is the slot holding the activity list.
const StoreKey = "planner.activities"

// DefaultCategory is used when a draft names none.
const DefaultCategory = "Inspiration"

// ErrNotFound is returned for unknown activity ids.
var ErrNotFound = errors.New("activities: activity not found")

// ValidationError is returned when a draft is rejected.
type ValidationError = validation.Error

// Status is where an activity stands.
type Status string

const (
	ToDo      Status = "a-faire"
	Scheduled Status = "planifie"
	Done      Status = "fait"
)

// Statuses lists every status in board order.
var Statuses = []Status{ToDo, Scheduled, Done}

// Label is the display name of st.
func (st Status) Label() string {
	switch st {
	case ToDo:
		return "A explorer"
	case Scheduled:
		return "Planifie"
	case Done:
		return "Realise"
	}
	return string(st)
}

// Valid reports whether st is a known status.
func (st Status) Valid() bool {
	return slices.Contains(Statuses, st)
}

// ParseStatus accepts a status value or its label, ignoring case and accents.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if fold.Equal(s, string(st)) || fold.Equal(s, st.Label()) {
			return st, nil
		}
	}
	return "", validation.New("status", "unknown status %q", s)
}

// Activity is one experience.
type Activity struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Status    Status `json:"status"`
	IdealDate string `json:"idealDate,omitempty"`
}

// Draft is an activity to be added. Status defaults to ToDo.
type Draft struct {
	Title     string
	Category  string
	Status    Status
	IdealDate string
}

// Defaults is the list an empty store starts with.
func Defaults() []Activity {
	return []Activity{
		{ID: "act-1", Title: "Cours de poterie", Category: "Creativite", Status: Scheduled},
		{ID: "act-2", Title: "Randonnee au lever du soleil", Category: "Nature", Status: ToDo},
		{ID: "act-3", Title: "Atelier photo", Category: "Creativite", Status: Done},
	}
}

// Option configures a Service.
type Option func(*Service)

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

// Service owns the activity slot.
type Service struct {
	value *persist.Value[[]Activity]
	ids   ident.Generator
	log   *slog.Logger
}

// New mounts the activity list.
func New(s store.Store, opts ...Option) *Service {
	svc := &Service{ids: ident.UUID{}}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.log == nil {
		svc.log = logging.For(logging.ComponentActivity)
	}
	svc.value = persist.New(s, StoreKey, Defaults, persist.WithLogger(svc.log))
	return svc
}

// List returns the activities, newest first.
func (s *Service) List() []Activity {
	return s.value.Get()
}

// Add validates d and puts it on top.
func (s *Service) Add(d Draft) (Activity, error) {
	a := Activity{
		Title:     strings.TrimSpace(d.Title),
		Category:  strings.TrimSpace(d.Category),
		Status:    d.Status,
		IdealDate: strings.TrimSpace(d.IdealDate),
	}
	if a.Category == "" {
		a.Category = DefaultCategory
	}
	if a.Status == "" {
		a.Status = ToDo
	}
	if err := validation.Required("title", a.Title); err != nil {
		return Activity{}, err
	}
	if !a.Status.Valid() {
		return Activity{}, validation.New("status", "unknown status %q", a.Status)
	}
	if a.IdealDate != "" && !datekey.Valid(a.IdealDate) {
		return Activity{}, validation.New("idealDate", "%q is not a YYYY-MM-DD date", a.IdealDate)
	}
	a.ID = s.ids.New(ident.Activity)
	s.value.Update(func(prev []Activity) []Activity { return append([]Activity{a}, prev...) })
	s.log.Debug("activity added", "id", a.ID, "status", a.Status)
	return a, nil
}

// SetStatus moves the activity with id to st.
func (s *Service) SetStatus(id string, st Status) (Activity, error) {
	if !st.Valid() {
		return Activity{}, validation.New("status", "unknown status %q", st)
	}
	idx := s.index(id)
	if idx < 0 {
		return Activity{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	var out Activity
	s.value.Update(func(prev []Activity) []Activity {
		prev[idx].Status = st
		out = prev[idx]
		return prev
	})
	return out, nil
}

// Remove deletes the activity with id.
func (s *Service) Remove(id string) error {
	if s.index(id) < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.value.Update(func(prev []Activity) []Activity {
		return slices.DeleteFunc(prev, func(a Activity) bool { return a.ID == id })
	})
	return nil
}

func (s *Service) index(id string) int {
	return slices.IndexFunc(s.value.Get(), func(a Activity) bool { return a.ID == id })
}

// ByStatus groups activities by status in the order statuses first appear.
func (s *Service) ByStatus() []group.Group[Status, Activity] {
	return group.By(s.value.Get(), func(a Activity) Status { return a.Status }, group.Unsorted[Activity]())
}

// Stats counts activities per status.
type Stats struct {
	Ideas     int `json:"ideas"`
	Scheduled int `json:"scheduled"`
	Done      int `json:"done"`
}

// Stats is the board header.
func (s *Service) Stats() Stats {
	var st Stats
	for _, a := range s.value.Get() {
		switch a.Status {
		case ToDo:
			st.Ideas++
		case Scheduled:
			st.Scheduled++
		case Done:
			st.Done++
		}
	}
	return st
}
