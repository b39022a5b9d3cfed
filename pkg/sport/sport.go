// Package sport is the training card: a weekly program, body measurements,
// hydration and a small checklist.
package sport

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"tableflip.dev/planner/pkg/datekey"
	"tableflip.dev/planner/pkg/ident"
	"tableflip.dev/planner/pkg/logging"
	"tableflip.dev/planner/pkg/persist"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/validation"
)

// StoreKey is the slot holding the card.
const StoreKey = "planner.sportCard"

// ErrNotFound is returned for unknown session or todo ids.
var ErrNotFound = errors.New("sport: not found")

// ValidationError is returned when input is rejected.
type ValidationError = validation.Error

// Level is the self assessed training level.
type Level string

const (
	Beginner     Level = "Debutant"
	Intermediate Level = "Intermediaire"
	Advanced     Level = "Avance"
)

// Levels in ascending order.
var Levels = []Level{Beginner, Intermediate, Advanced}

// Override replaces the editable fields of a template session.
type Override struct {
	Title           string `json:"title"`
	Details         string `json:"details"`
	DurationMinutes int    `json:"durationMinutes"`
}

// OverridePatch changes the non-nil fields of a session.
type OverridePatch struct {
	Title           *string
	Details         *string
	DurationMinutes *int
}

// Todo is a checklist item.
type Todo struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// State is the persisted card.
type State struct {
	ProfileName         string              `json:"profileName"`
	ProgramName         string              `json:"programName"`
	Motto               string              `json:"motto"`
	Level               Level               `json:"level"`
	FocusAreas          []string            `json:"focusAreas"`
	StartDate           string              `json:"startDate"`
	StartWeightKg       float64             `json:"startWeightKg"`
	CurrentWeightKg     float64             `json:"currentWeightKg"`
	GoalWeightKg        float64             `json:"goalWeightKg"`
	HeightCm            float64             `json:"heightCm"`
	StartWaistCm        float64             `json:"startWaistCm"`
	WaistCm             float64             `json:"waistCm"`
	GoalWaistCm         float64             `json:"goalWaistCm"`
	PlanOverrides       map[string]Override `json:"planOverrides"`
	CompletedSessionIDs []string            `json:"completedSessionIds"`
	Todos               []Todo              `json:"todos"`
	Notes               string              `json:"notes"`
	WaterLiters         float64             `json:"waterLiters"`
}

// Default is the card an empty store starts with.
func Default() State {
	return State{
		ProfileName:         "Alex",
		ProgramName:         "Programme Fit 2025",
		Motto:               "Chaque jour compte !",
		Level:               Intermediate,
		FocusAreas:          []string{"Perte de poids", "Endurance", "Bien-etre"},
		StartDate:           "2025-01-06",
		StartWeightKg:       72,
		CurrentWeightKg:     70,
		GoalWeightKg:        65,
		HeightCm:            168,
		StartWaistCm:        82,
		WaistCm:             80,
		GoalWaistCm:         74,
		PlanOverrides:       map[string]Override{},
		CompletedSessionIDs: []string{},
		Todos: []Todo{
			{ID: "todo-1", Text: "Echauffement articulaire 5 min"},
			{ID: "todo-2", Text: "Planche 45 sec x3"},
			{ID: "todo-3", Text: "Etirements profonds"},
		},
		WaterLiters: 1.5,
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

// Service owns the card slot.
type Service struct {
	value *persist.Value[State]
	ids   ident.Generator
	log   *slog.Logger
}

// New mounts the card. A card stored without overrides gets an empty set.
func New(s store.Store, opts ...Option) *Service {
	svc := &Service{ids: ident.UUID{}}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.log == nil {
		svc.log = logging.For(logging.ComponentSport)
	}
	svc.value = persist.New(s, StoreKey, Default, persist.WithLogger(svc.log))
	if svc.value.Get().PlanOverrides == nil {
		svc.update(func(st *State) {})
	}
	return svc
}

// State returns the card.
func (s *Service) State() State {
	return s.value.Get()
}

func (s *Service) update(fn func(*State)) State {
	return s.value.Update(func(prev State) State {
		fn(&prev)
		if prev.PlanOverrides == nil {
			prev.PlanOverrides = map[string]Override{}
		}
		return prev
	})
}

// Schedule is the weekly template with overrides applied.
func (s *Service) Schedule() []Session {
	return schedule(s.value.Get())
}

func schedule(st State) []Session {
	out := make([]Session, len(Week))
	for i, session := range Week {
		if o, ok := st.PlanOverrides[session.ID]; ok {
			session.Title = o.Title
			session.Details = o.Details
			session.DurationMinutes = o.DurationMinutes
		}
		out[i] = session
	}
	return out
}

// ToggleSession ticks or unticks the session id and reports its new state.
func (s *Service) ToggleSession(id string) (bool, error) {
	session, ok := template(id)
	if !ok {
		return false, fmt.Errorf("%w: session %s", ErrNotFound, id)
	}
	if session.IsRest() {
		return false, validation.New("session", "%s is a rest day", session.Day)
	}
	var done bool
	s.update(func(st *State) {
		if slices.Contains(st.CompletedSessionIDs, id) {
			st.CompletedSessionIDs = slices.DeleteFunc(st.CompletedSessionIDs, func(v string) bool { return v == id })
			return
		}
		done = true
		st.CompletedSessionIDs = append(st.CompletedSessionIDs, id)
	})
	return done, nil
}

// Override edits the session id. An override that matches the template is
// dropped.
func (s *Service) Override(id string, p OverridePatch) (Session, error) {
	base, ok := template(id)
	if !ok {
		return Session{}, fmt.Errorf("%w: session %s", ErrNotFound, id)
	}
	if p.DurationMinutes != nil && *p.DurationMinutes < 0 {
		return Session{}, validation.New("durationMinutes", "must not be negative")
	}
	st := s.update(func(st *State) {
		cur, ok := st.PlanOverrides[id]
		if !ok {
			cur = Override{Title: base.Title, Details: base.Details, DurationMinutes: base.DurationMinutes}
		}
		if p.Title != nil {
			cur.Title = *p.Title
		}
		if p.Details != nil {
			cur.Details = *p.Details
		}
		if p.DurationMinutes != nil {
			cur.DurationMinutes = *p.DurationMinutes
		}
		if cur == (Override{Title: base.Title, Details: base.Details, DurationMinutes: base.DurationMinutes}) {
			delete(st.PlanOverrides, id)
			return
		}
		if st.PlanOverrides == nil {
			st.PlanOverrides = map[string]Override{}
		}
		st.PlanOverrides[id] = cur
	})
	for _, session := range schedule(st) {
		if session.ID == id {
			return session, nil
		}
	}
	return base, nil
}

// NumericField names a measurement.
type NumericField string

const (
	StartWeight   NumericField = "startWeightKg"
	CurrentWeight NumericField = "currentWeightKg"
	GoalWeight    NumericField = "goalWeightKg"
	Height        NumericField = "heightCm"
	StartWaist    NumericField = "startWaistCm"
	Waist         NumericField = "waistCm"
	GoalWaist     NumericField = "goalWaistCm"
)

// NumericFields lists every measurement.
var NumericFields = []NumericField{StartWeight, CurrentWeight, GoalWeight, Height, StartWaist, Waist, GoalWaist}

func (st *State) field(f NumericField) *float64 {
	switch f {
	case StartWeight:
		return &st.StartWeightKg
	case CurrentWeight:
		return &st.CurrentWeightKg
	case GoalWeight:
		return &st.GoalWeightKg
	case Height:
		return &st.HeightCm
	case StartWaist:
		return &st.StartWaistCm
	case Waist:
		return &st.WaistCm
	case GoalWaist:
		return &st.GoalWaistCm
	}
	return nil
}

// SetNumber parses raw into field f. A value that is not a number leaves the
// field untouched and is reported.
func (s *Service) SetNumber(f NumericField, raw string) (float64, error) {
	probe := s.value.Get()
	if probe.field(f) == nil {
		return 0, validation.New("field", "unknown measurement %q", f)
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(raw), ",", "."), 64)
	if err != nil {
		return *probe.field(f), validation.New(string(f), "%q is not a number", raw)
	}
	s.update(func(st *State) { *st.field(f) = v })
	return v, nil
}

// SetText sets one of the card labels: profileName, programName or motto.
func (s *Service) SetText(field, value string) error {
	switch field {
	case "profileName":
		s.update(func(st *State) { st.ProfileName = value })
	case "programName":
		s.update(func(st *State) { st.ProgramName = value })
	case "motto":
		s.update(func(st *State) { st.Motto = value })
	default:
		return validation.New("field", "unknown field %q", field)
	}
	return nil
}

// SetStartDate sets the program start. An empty date clears it.
func (s *Service) SetStartDate(day string) error {
	day = strings.TrimSpace(day)
	if day != "" && !datekey.Valid(day) {
		return validation.New("startDate", "%q is not a YYYY-MM-DD date", day)
	}
	s.update(func(st *State) { st.StartDate = day })
	return nil
}

// SetLevel sets the training level.
func (s *Service) SetLevel(l Level) error {
	if !slices.Contains(Levels, l) {
		return validation.New("level", "unknown level %q", l)
	}
	s.update(func(st *State) { st.Level = l })
	return nil
}

// AddFocusArea appends a focus area if it is not listed yet.
func (s *Service) AddFocusArea(area string) error {
	area = strings.TrimSpace(area)
	if err := validation.Required("focusArea", area); err != nil {
		return err
	}
	if slices.Contains(s.value.Get().FocusAreas, area) {
		return nil
	}
	s.update(func(st *State) { st.FocusAreas = append(st.FocusAreas, area) })
	return nil
}

// RemoveFocusArea drops a focus area.
func (s *Service) RemoveFocusArea(area string) {
	s.update(func(st *State) {
		st.FocusAreas = slices.DeleteFunc(st.FocusAreas, func(v string) bool { return v == area })
	})
}

// AdjustWater adds delta litres, rounded to centilitres and never below zero.
func (s *Service) AdjustWater(delta float64) float64 {
	st := s.update(func(st *State) {
		next := decimal.NewFromFloat(st.WaterLiters).Add(decimal.NewFromFloat(delta)).Round(2)
		if next.IsNegative() {
			next = decimal.Zero
		}
		st.WaterLiters = next.InexactFloat64()
	})
	return st.WaterLiters
}

// ResetWater empties the day's water count.
func (s *Service) ResetWater() {
	s.update(func(st *State) { st.WaterLiters = 0 })
}

// AddTodo appends a checklist item.
func (s *Service) AddTodo(text string) (Todo, error) {
	text = strings.TrimSpace(text)
	if err := validation.Required("todo", text); err != nil {
		return Todo{}, err
	}
	t := Todo{ID: s.ids.New(ident.Todo), Text: text}
	s.update(func(st *State) { st.Todos = append(st.Todos, t) })
	return t, nil
}

// ToggleTodo flips the checklist item id.
func (s *Service) ToggleTodo(id string) (Todo, error) {
	idx := slices.IndexFunc(s.value.Get().Todos, func(t Todo) bool { return t.ID == id })
	if idx < 0 {
		return Todo{}, fmt.Errorf("%w: todo %s", ErrNotFound, id)
	}
	st := s.update(func(st *State) { st.Todos[idx].Done = !st.Todos[idx].Done })
	return st.Todos[idx], nil
}

// RemoveTodo deletes the checklist item id.
func (s *Service) RemoveTodo(id string) error {
	if !slices.ContainsFunc(s.value.Get().Todos, func(t Todo) bool { return t.ID == id }) {
		return fmt.Errorf("%w: todo %s", ErrNotFound, id)
	}
	s.update(func(st *State) {
		st.Todos = slices.DeleteFunc(st.Todos, func(t Todo) bool { return t.ID == id })
	})
	return nil
}

// SetNotes replaces the free notes.
func (s *Service) SetNotes(notes string) {
	s.update(func(st *State) { st.Notes = notes })
}

// Metrics derives the card figures.
func (s *Service) Metrics() Metrics {
	return Compute(s.value.Get())
}
