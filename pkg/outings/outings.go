// Package outings plans moments out with friends.
package outings

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"tableflip.dev/planner/pkg/datekey"
	"tableflip.dev/planner/pkg/group"
	"tableflip.dev/planner/pkg/ident"
	"tableflip.dev/planner/pkg/logging"
	"tableflip.dev/planner/pkg/persist"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/validation"
)

// StoreKey is the slot holding the outings.
const StoreKey = "planner.outings"

// Lead is how far out a draft without a date is planned.
const Lead = 7 * 24 * time.Hour

// NoDate is shown as the next date when nothing is planned.
const NoDate = "A definir"

// ErrNotFound is returned for unknown outing ids.
var ErrNotFound = errors.New("outings: outing not found")

// ValidationError is returned when a draft is rejected.
type ValidationError = validation.Error

// Outing is one planned moment.
type Outing struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Date     string `json:"date"`
	Details  string `json:"details,omitempty"`
}

// Draft is an outing to be added. An empty Date means DefaultDate.
type Draft struct {
	Title    string
	Location string
	Date     string
	Details  string
}

// DefaultDate is one week after now.
func DefaultDate(now time.Time) string {
	return datekey.Day(now.Add(Lead))
}

// Defaults is the list an empty store starts with.
func Defaults(now time.Time) []Outing {
	return []Outing{{
		ID:       "out-1",
		Title:    "Brunch avec Clara",
		Location: "Cafe pastel",
		Date:     DefaultDate(now),
		Details:  "Penser a reserver une table pour 11h30",
	}}
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

// Service owns the outings slot.
type Service struct {
	value *persist.Value[[]Outing]
	ids   ident.Generator
	now   datekey.Clock
	log   *slog.Logger
}

// New mounts the outings list.
func New(s store.Store, opts ...Option) *Service {
	svc := &Service{ids: ident.UUID{}, now: time.Now}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.log == nil {
		svc.log = logging.For(logging.ComponentOutings)
	}
	svc.value = persist.New(s, StoreKey, func() []Outing { return Defaults(svc.now()) }, persist.WithLogger(svc.log))
	return svc
}

// List returns the outings, newest first.
func (s *Service) List() []Outing {
	return s.value.Get()
}

// Add validates d and puts it on top.
func (s *Service) Add(d Draft) (Outing, error) {
	o := Outing{
		Title:    strings.TrimSpace(d.Title),
		Location: strings.TrimSpace(d.Location),
		Date:     strings.TrimSpace(d.Date),
		Details:  strings.TrimSpace(d.Details),
	}
	if o.Date == "" {
		o.Date = DefaultDate(s.now())
	}
	if err := validation.Required("title", o.Title); err != nil {
		return Outing{}, err
	}
	if !datekey.Valid(o.Date) {
		return Outing{}, validation.New("date", "%q is not a YYYY-MM-DD date", o.Date)
	}
	o.ID = s.ids.New(ident.Outing)
	s.value.Update(func(prev []Outing) []Outing { return append([]Outing{o}, prev...) })
	s.log.Debug("outing planned", "id", o.ID, "date", o.Date)
	return o, nil
}

// Remove deletes the outing with id.
func (s *Service) Remove(id string) error {
	if !slices.ContainsFunc(s.value.Get(), func(o Outing) bool { return o.ID == id }) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.value.Update(func(prev []Outing) []Outing {
		return slices.DeleteFunc(prev, func(o Outing) bool { return o.ID == id })
	})
	return nil
}

// ByDate groups outings by day, soonest first.
func (s *Service) ByDate() []group.Group[string, Outing] {
	return group.ByDate(s.value.Get(), func(o Outing) string { return o.Date })
}

// Stats is the outings header.
type Stats struct {
	Planned  int    `json:"planned"`
	Places   int    `json:"places"`
	NextDate string `json:"nextDate"`
}

// Stats counts outings and distinct places, and finds the first date on or
// after today. With nothing upcoming it reports the most recently added one.
func (s *Service) Stats(today time.Time) Stats {
	outings := s.value.Get()
	st := Stats{Planned: len(outings), NextDate: NoDate}

	places := make(map[string]struct{})
	for _, o := range outings {
		if loc := strings.TrimSpace(o.Location); loc != "" {
			places[loc] = struct{}{}
		}
	}
	st.Places = len(places)

	key := datekey.Day(today)
	for _, g := range s.ByDate() {
		if g.Key >= key {
			st.NextDate = g.Key
			return st
		}
	}
	if len(outings) > 0 {
		st.NextDate = outings[0].Date
	}
	return st
}
