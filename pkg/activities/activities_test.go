package activities

import (
	"errors"
	"testing"

	"tableflip.dev/planner/pkg/ident"
	"tableflip.dev/planner/pkg/logging"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/validation"
)

func newService(s store.Store) *Service {
	return New(s, WithIDs(&ident.Sequence{}), WithLogger(logging.Discard()))
}

func TestDefaults(t *testing.T) {
	s := store.NewMemory()
	svc := newService(s)

	if got := len(svc.List()); got != 3 {
		t.Fatalf("expected 3 default activities, got %d", got)
	}
	if _, ok, _ := s.Get(StoreKey); !ok {
		t.Fatal("expected defaults to be persisted")
	}
	st := svc.Stats()
	if st != (Stats{Ideas: 1, Scheduled: 1, Done: 1}) {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestAdd(t *testing.T) {
	svc := newService(store.NewMemory())

	a, err := svc.Add(Draft{Title: "  Cours de danse ", IdealDate: "2024-06-01"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if a.Category != DefaultCategory || a.Status != ToDo || a.Title != "Cours de danse" {
		t.Fatalf("unexpected activity %+v", a)
	}
	if got := svc.List()[0].ID; got != "activity-0001" {
		t.Fatalf("expected new activity on top, got %s", got)
	}

	if _, err := svc.Add(Draft{Title: "   "}); !errors.Is(err, validation.ErrInvalid) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.Add(Draft{Title: "x", IdealDate: "juin"}); !errors.Is(err, validation.ErrInvalid) {
		t.Fatalf("expected validation error for date, got %v", err)
	}
	if _, err := svc.Add(Draft{Title: "x", Status: "bientot"}); !errors.Is(err, validation.ErrInvalid) {
		t.Fatalf("expected validation error for status, got %v", err)
	}
	if got := len(svc.List()); got != 4 {
		t.Fatalf("expected rejected drafts to leave the list alone, got %d", got)
	}
}

func TestSetStatusAndRemove(t *testing.T) {
	s := store.NewMemory()
	svc := newService(s)

	a, err := svc.SetStatus("act-2", Done)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if a.Status != Done {
		t.Fatalf("expected done, got %s", a.Status)
	}
	if got := newService(s).Stats(); got.Done != 2 || got.Ideas != 0 {
		t.Fatalf("expected status change to persist, got %+v", got)
	}

	if _, err := svc.SetStatus("nope", Done); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.Remove("act-1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.Remove("act-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second remove, got %v", err)
	}
}

func TestByStatusFirstSeenOrder(t *testing.T) {
	s := store.NewMemory()
	if err := s.Set(StoreKey, `[
		{"id":"a","title":"A","category":"x","status":"fait"},
		{"id":"b","title":"B","category":"x","status":"a-faire"},
		{"id":"c","title":"C","category":"x","status":"fait"}
	]`); err != nil {
		t.Fatal(err)
	}
	groups := newService(s).ByStatus()
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Key != Done || len(groups[0].Items) != 2 || groups[1].Key != ToDo {
		t.Fatalf("unexpected groups %+v", groups)
	}
}

func TestParseStatus(t *testing.T) {
	for in, want := range map[string]Status{
		"fait":       Done,
		"Planifie":   Scheduled,
		"a explorer": ToDo,
	} {
		got, err := ParseStatus(in)
		if err != nil || got != want {
			t.Fatalf("ParseStatus(%q): expected %s, got %s (%v)", in, want, got, err)
		}
	}
	if _, err := ParseStatus("later"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}
