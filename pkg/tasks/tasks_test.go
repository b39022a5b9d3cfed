package tasks

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/planner/pkg/datekey"
	"tableflip.dev/planner/pkg/ident"
	"tableflip.dev/planner/pkg/logging"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/validation"
)

var march5 = time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)

func newService(t *testing.T, s store.Store) *Service {
	t.Helper()
	return New(s,
		WithClock(datekey.Fixed(march5)),
		WithIDs(&ident.Sequence{}),
		WithLogger(logging.Discard()))
}

func emptyStore(t *testing.T) *store.Memory {
	t.Helper()
	s := store.NewMemory()
	if err := s.Set(StoreKey, "[]"); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return s
}

func TestSeedOnFirstUse(t *testing.T) {
	s := store.NewMemory()
	svc := newService(t, s)

	// today (5) plus 1, 4, 8, 12, 16, 20, 24, 28, three tasks each
	if got := len(svc.List()); got != 27 {
		t.Fatalf("expected 27 seeded tasks, got %d", got)
	}
	if _, ok, _ := s.Get(StoreKey); !ok {
		t.Fatal("expected seed to be persisted")
	}
	today := svc.On("2024-03-05")
	if len(today) != 3 {
		t.Fatalf("expected 3 tasks today, got %d", len(today))
	}
	// 5 is the third candidate day, so it gets the third profile.
	if today[0].Title != "Atelier innovation" || today[0].ID != "task-5-0" {
		t.Fatalf("unexpected first task today %+v", today[0])
	}
}

func TestSeedSkipsDaysPastMonthEnd(t *testing.T) {
	feb := Seed(time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC))
	for _, task := range feb {
		if !datekey.Valid(task.Date) {
			t.Fatalf("invalid seeded date %s", task.Date)
		}
	}
	if len(feb) != 8*3 {
		t.Fatalf("expected 8 distinct days, got %d tasks", len(feb))
	}
}

func TestAddUpdateRemove(t *testing.T) {
	svc := newService(t, emptyStore(t))

	added, err := svc.Add(Draft{Title: " Yoga ", Start: "07:00", End: "08:00", Date: "2024-03-06", Tag: "Énergie"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if added.ID != "task-0001" || added.Title != "Yoga" || added.Color != Palette[0] {
		t.Fatalf("unexpected task %+v", added)
	}

	title := "Yin yoga"
	updated, err := svc.Update(added.ID, Patch{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != title || updated.Start != "07:00" {
		t.Fatalf("expected patched title only, got %+v", updated)
	}
	if got, _ := svc.Get(added.ID); got.Title != title {
		t.Fatalf("expected stored title %q, got %q", title, got.Title)
	}

	if err := svc.Remove(added.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.Remove(added.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Update("nope", Patch{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddValidation(t *testing.T) {
	svc := newService(t, emptyStore(t))
	tests := []struct {
		name  string
		draft Draft
		field string
	}{
		{"blank title", Draft{Start: "07:00", End: "08:00", Date: "2024-03-06"}, "title"},
		{"bad date", Draft{Title: "x", Start: "07:00", End: "08:00", Date: "2024-02-31"}, "date"},
		{"bad start", Draft{Title: "x", Start: "7:00", End: "08:00", Date: "2024-03-06"}, "start"},
		{"end before start", Draft{Title: "x", Start: "09:00", End: "08:00", Date: "2024-03-06"}, "end"},
		{"bad colour", Draft{Title: "x", Start: "07:00", End: "08:00", Date: "2024-03-06", Color: "red"}, "color"},
	}
	for _, tt := range tests {
		_, err := svc.Add(tt.draft)
		var verr *ValidationError
		if !errors.As(err, &verr) || !errors.Is(err, validation.ErrInvalid) {
			t.Fatalf("%s: expected validation error, got %v", tt.name, err)
		}
		if verr.Field != tt.field {
			t.Fatalf("%s: expected field %q, got %q", tt.name, tt.field, verr.Field)
		}
	}
	if len(svc.List()) != 0 {
		t.Fatalf("expected rejected drafts to leave the list empty, got %v", svc.List())
	}
}

func TestOnAndMonth(t *testing.T) {
	svc := newService(t, emptyStore(t))
	for _, d := range []Draft{
		{Title: "late", Start: "18:00", End: "19:00", Date: "2024-03-05"},
		{Title: "early", Start: "08:00", End: "09:00", Date: "2024-03-05"},
		{Title: "other", Start: "08:00", End: "09:00", Date: "2024-03-06"},
	} {
		if _, err := svc.Add(d); err != nil {
			t.Fatalf("add %s: %v", d.Title, err)
		}
	}

	on := svc.On("2024-03-05")
	if len(on) != 2 || on[0].Title != "early" || on[1].Title != "late" {
		t.Fatalf("expected early then late, got %+v", on)
	}

	grid := svc.Month(2024, time.March, march5)
	cell, ok := grid.Today()
	if !ok || len(cell.Items) != 2 || cell.Items[0].Title != "early" {
		t.Fatalf("expected today cell with sorted tasks, got %+v", cell)
	}
}

func TestUpcoming(t *testing.T) {
	list := []Task{
		{ID: "a", Date: "2024-03-04", Start: "09:00"},
		{ID: "b", Date: "2024-03-06", Start: "09:00"},
		{ID: "c", Date: "2024-03-05", Start: "11:00"},
		{ID: "d", Date: "2024-03-05", Start: "10:00"},
		{ID: "e", Date: "2024-03-05", Start: "09:59"},
	}
	groups := Upcoming(list, march5, 6)
	if len(groups) != 2 {
		t.Fatalf("expected 2 days, got %+v", groups)
	}
	if groups[0].Key != "2024-03-05" || len(groups[0].Tasks) != 2 || groups[0].Tasks[0].ID != "d" {
		t.Fatalf("unexpected first group %+v", groups[0])
	}
	if groups[0].Accent != Accents[0] || groups[1].Accent != Accents[1] {
		t.Fatalf("expected rotating accents, got %s and %s", groups[0].Accent, groups[1].Accent)
	}

	past := Upcoming(list[:1], march5, 6)
	if len(past) != 1 || past[0].Tasks[0].ID != "a" {
		t.Fatalf("expected fallback to all tasks, got %+v", past)
	}

	many := make([]Task, 0, 10)
	for i := 0; i < 10; i++ {
		many = append(many, Task{ID: string(rune('a' + i)), Date: "2024-03-07", Start: "09:00"})
	}
	if got := Upcoming(many, march5, 0); len(got[0].Tasks) != UpcomingLimit {
		t.Fatalf("expected %d tasks, got %d", UpcomingLimit, len(got[0].Tasks))
	}
}

func TestStartsAtFallsBack(t *testing.T) {
	at := StartsAt(Task{Date: "2024-03", Start: "xx:30"}, time.UTC)
	want := time.Date(2024, time.March, 1, 0, 30, 0, 0, time.UTC)
	if !at.Equal(want) {
		t.Fatalf("expected %v, got %v", want, at)
	}
}

func TestTint(t *testing.T) {
	got, err := Tint("#000000", 0.5)
	if err != nil {
		t.Fatalf("tint: %v", err)
	}
	if got != "#808080" {
		t.Fatalf("expected #808080, got %s", got)
	}
	if got, _ := Tint("#6366F1", 0); got != "#ffffff" {
		t.Fatalf("expected white at alpha 0, got %s", got)
	}
	if _, err := Tint("nope", 1); err == nil {
		t.Fatal("expected error for bad colour")
	}
}
