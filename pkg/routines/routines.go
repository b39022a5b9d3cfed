// Package routines holds the fixed morning and evening checklists and which
// of their steps are ticked.
package routines

import (
	"log/slog"
	"slices"

	"tableflip.dev/planner/pkg/logging"
	"tableflip.dev/planner/pkg/persist"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/validation"
)

// StoreKey is the slot holding the ticked step ids.
const StoreKey = "planner.routines.completed"

// ValidationError is returned for unknown step ids.
type ValidationError = validation.Error

// Step is one routine item.
type Step struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
}

// Routine is a named checklist.
type Routine struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Steps []Step `json:"steps"`
}

var (
	Morning = Routine{Name: "morning", Label: "Rituels matin", Steps: []Step{
		{ID: "morning-1", Title: "Hydratation & respiration consciente (5 min)"},
		{ID: "morning-2", Title: "Lecture rapide des objectifs du mois"},
		{ID: "morning-3", Title: "Planification des 3 priorités du jour"},
		{ID: "morning-4", Title: "Mouvement / stretching dynamique"},
	}}
	Evening = Routine{Name: "evening", Label: "Rituels soir", Steps: []Step{
		{ID: "evening-1", Title: "Déconnexion numérique 60 minutes avant le coucher"},
		{ID: "evening-2", Title: "Revue des victoires et gratitude"},
		{ID: "evening-3", Title: "Préparation de la tenue & du sac pour demain"},
		{ID: "evening-4", Title: "Lecture légère ou méditation guidée"},
	}}
)

// All lists the routines in display order.
func All() []Routine {
	return []Routine{Morning, Evening}
}

// Known reports whether id names a step of any routine.
func Known(id string) bool {
	for _, r := range All() {
		if slices.ContainsFunc(r.Steps, func(s Step) bool { return s.ID == id }) {
			return true
		}
	}
	return false
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.log = l
	}
}

// Service owns the completed steps slot.
type Service struct {
	value *persist.Value[[]string]
	log   *slog.Logger
}

// New mounts the completed steps. Nothing is ticked at first.
func New(s store.Store, opts ...Option) *Service {
	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.log == nil {
		svc.log = logging.For(logging.ComponentRoutines)
	}
	svc.value = persist.New(s, StoreKey, func() []string { return []string{} }, persist.WithLogger(svc.log))
	return svc
}

// Completed returns the ticked step ids in the order they were ticked.
func (s *Service) Completed() []string {
	return s.value.Get()
}

// IsDone reports whether the step id is ticked.
func (s *Service) IsDone(id string) bool {
	return slices.Contains(s.value.Get(), id)
}

// Toggle ticks or unticks the step id and reports its new state.
func (s *Service) Toggle(id string) (bool, error) {
	if !Known(id) {
		return false, validation.New("id", "unknown routine step %q", id)
	}
	var done bool
	s.value.Update(func(prev []string) []string {
		if slices.Contains(prev, id) {
			return slices.DeleteFunc(prev, func(v string) bool { return v == id })
		}
		done = true
		return append(prev, id)
	})
	s.log.Debug("routine step toggled", "id", id, "done", done)
	return done, nil
}

// Reset unticks every step.
func (s *Service) Reset() {
	s.value.Set([]string{})
}

// Stats is the routine header.
type Stats struct {
	Morning int `json:"morning"`
	Evening int `json:"evening"`
	Checked int `json:"checked"`
}

// Stats counts steps per routine and ticked steps.
func (s *Service) Stats() Stats {
	checked := 0
	for _, id := range s.value.Get() {
		if Known(id) {
			checked++
		}
	}
	return Stats{Morning: len(Morning.Steps), Evening: len(Evening.Steps), Checked: checked}
}
