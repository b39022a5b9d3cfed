package sport

import (
	"errors"
	"math"
	"testing"

	"tableflip.dev/planner/pkg/ident"
	"tableflip.dev/planner/pkg/logging"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/validation"
)

func newService(s store.Store) *Service {
	return New(s, WithIDs(&ident.Sequence{}), WithLogger(logging.Discard()))
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDefaultMetrics(t *testing.T) {
	m := newService(store.NewMemory()).Metrics()

	if m.ActiveSessions != 5 || m.MinutesGoal != 210 || m.CompletedSessions != 0 {
		t.Fatalf("unexpected sessions %+v", m)
	}
	if !near(m.HydrationTarget, 2.45) || !near(m.HydrationRemaining, 0.95) {
		t.Fatalf("unexpected hydration %v %v", m.HydrationTarget, m.HydrationRemaining)
	}
	if !near(m.BMIRounded, 24.8) || m.BMIStatus != BMIBalanced {
		t.Fatalf("unexpected bmi %v %s", m.BMIRounded, m.BMIStatus)
	}
	if m.WeightProgress != 29 || m.WaistProgress != 25 {
		t.Fatalf("unexpected progress %d %d", m.WeightProgress, m.WaistProgress)
	}
	if m.EndDate != "2025-03-03" {
		t.Fatalf("expected an eight week program, got %s", m.EndDate)
	}
	if m.NextSession == nil || m.NextSession.ID != "sport-mon" {
		t.Fatalf("unexpected next session %+v", m.NextSession)
	}
}

func TestToggleSession(t *testing.T) {
	s := store.NewMemory()
	svc := newService(s)
	for _, id := range []string{"sport-mon", "sport-tue"} {
		if done, err := svc.ToggleSession(id); err != nil || !done {
			t.Fatalf("toggle %s: %v %v", id, done, err)
		}
	}
	m := newService(s).Metrics()
	if m.WeeklyPercent != 40 || m.MinutesPercent != 40 || m.MinutesDone != 85 {
		t.Fatalf("unexpected metrics after reload %+v", m)
	}
	if m.NextSession.ID != "sport-thu" {
		t.Fatalf("expected thursday next, got %s", m.NextSession.ID)
	}
	if m.Weeks[len(m.Weeks)-1].Percent != 40 || m.Weeks[0].Percent != 45 {
		t.Fatalf("unexpected weeks %+v", m.Weeks)
	}

	if _, err := svc.ToggleSession("sport-wed"); !errors.Is(err, validation.ErrInvalid) {
		t.Fatalf("expected rest day to be rejected, got %v", err)
	}
	if _, err := svc.ToggleSession("sport-xyz"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if done, _ := svc.ToggleSession("sport-mon"); done {
		t.Fatal("expected second toggle to untick")
	}
}

func TestOverride(t *testing.T) {
	svc := newService(store.NewMemory())

	minutes := 60
	session, err := svc.Override("sport-mon", OverridePatch{DurationMinutes: &minutes})
	if err != nil {
		t.Fatalf("override: %v", err)
	}
	if session.DurationMinutes != 60 || session.Title != "Full body" {
		t.Fatalf("unexpected session %+v", session)
	}
	if got := svc.Metrics().MinutesGoal; got != 225 {
		t.Fatalf("expected overridden minutes in goal, got %d", got)
	}

	back := 45
	if _, err := svc.Override("sport-mon", OverridePatch{DurationMinutes: &back}); err != nil {
		t.Fatalf("override: %v", err)
	}
	if got := len(svc.State().PlanOverrides); got != 0 {
		t.Fatalf("expected override equal to the template to be dropped, got %d", got)
	}

	neg := -1
	if _, err := svc.Override("sport-mon", OverridePatch{DurationMinutes: &neg}); !errors.Is(err, validation.ErrInvalid) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestMissingOverridesAreFilled(t *testing.T) {
	s := store.NewMemory()
	if err := s.Set(StoreKey, `{"profileName":"Sam","currentWeightKg":80,"heightCm":0}`); err != nil {
		t.Fatal(err)
	}
	svc := newService(s)
	if svc.State().PlanOverrides == nil {
		t.Fatal("expected overrides to be initialised")
	}
	if m := svc.Metrics(); m.BMIStatus != BMIUnknown || m.BMI != 0 {
		t.Fatalf("expected no bmi without a height, got %+v", m)
	}
}

func TestSetNumber(t *testing.T) {
	svc := newService(store.NewMemory())

	v, err := svc.SetNumber(CurrentWeight, "68,5")
	if err != nil || v != 68.5 {
		t.Fatalf("set number: %v %v", v, err)
	}
	prev, err := svc.SetNumber(CurrentWeight, "abc")
	if !errors.Is(err, validation.ErrInvalid) || prev != 68.5 {
		t.Fatalf("expected previous value kept, got %v %v", prev, err)
	}
	if svc.State().CurrentWeightKg != 68.5 {
		t.Fatalf("unexpected weight %v", svc.State().CurrentWeightKg)
	}
	if _, err := svc.SetNumber("shoeSize", "40"); !errors.Is(err, validation.ErrInvalid) {
		t.Fatalf("expected unknown field to be rejected, got %v", err)
	}
}

func TestWater(t *testing.T) {
	svc := newService(store.NewMemory())
	if got := svc.AdjustWater(0.25); !near(got, 1.75) {
		t.Fatalf("expected 1.75, got %v", got)
	}
	if got := svc.AdjustWater(0.1); !near(got, 1.85) {
		t.Fatalf("expected 1.85, got %v", got)
	}
	if got := svc.AdjustWater(-5); got != 0 {
		t.Fatalf("expected clamp at zero, got %v", got)
	}
	svc.AdjustWater(1)
	svc.ResetWater()
	if got := svc.State().WaterLiters; got != 0 {
		t.Fatalf("expected reset, got %v", got)
	}
}

func TestFocusAreasAndTodos(t *testing.T) {
	svc := newService(store.NewMemory())

	if err := svc.AddFocusArea("Endurance"); err != nil {
		t.Fatalf("add focus: %v", err)
	}
	if err := svc.AddFocusArea("Souplesse"); err != nil {
		t.Fatalf("add focus: %v", err)
	}
	if got := svc.State().FocusAreas; len(got) != 4 || got[3] != "Souplesse" {
		t.Fatalf("unexpected focus areas %v", got)
	}
	svc.RemoveFocusArea("Endurance")
	if got := len(svc.State().FocusAreas); got != 3 {
		t.Fatalf("expected 3 focus areas, got %d", got)
	}

	todo, err := svc.AddTodo("Gainage")
	if err != nil {
		t.Fatalf("add todo: %v", err)
	}
	if todo.ID != "todo-0001" {
		t.Fatalf("unexpected todo id %s", todo.ID)
	}
	toggled, err := svc.ToggleTodo(todo.ID)
	if err != nil || !toggled.Done {
		t.Fatalf("toggle todo: %+v %v", toggled, err)
	}
	if err := svc.RemoveTodo(todo.ID); err != nil {
		t.Fatalf("remove todo: %v", err)
	}
	if _, err := svc.ToggleTodo(todo.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetters(t *testing.T) {
	svc := newService(store.NewMemory())
	if err := svc.SetLevel(Advanced); err != nil {
		t.Fatalf("set level: %v", err)
	}
	if err := svc.SetLevel("Pro"); !errors.Is(err, validation.ErrInvalid) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := svc.SetStartDate("2025-13-01"); !errors.Is(err, validation.ErrInvalid) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := svc.SetStartDate(""); err != nil {
		t.Fatalf("clear start date: %v", err)
	}
	if got := svc.Metrics().EndDate; got != "" {
		t.Fatalf("expected no end date, got %s", got)
	}
	if err := svc.SetText("motto", "Go"); err != nil {
		t.Fatalf("set text: %v", err)
	}
	svc.SetNotes("genou fragile")
	st := svc.State()
	if st.Level != Advanced || st.Motto != "Go" || st.Notes != "genou fragile" {
		t.Fatalf("unexpected state %+v", st)
	}
}
