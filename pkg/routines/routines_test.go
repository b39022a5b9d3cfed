package routines

import (
	"errors"
	"testing"

	"tableflip.dev/planner/pkg/logging"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/validation"
)

func TestToggle(t *testing.T) {
	s := store.NewMemory()
	svc := New(s, WithLogger(logging.Discard()))

	done, err := svc.Toggle("morning-2")
	if err != nil || !done {
		t.Fatalf("expected step ticked, got %v %v", done, err)
	}
	if !New(s, WithLogger(logging.Discard())).IsDone("morning-2") {
		t.Fatal("expected tick to persist")
	}
	done, err = svc.Toggle("morning-2")
	if err != nil || done {
		t.Fatalf("expected step unticked, got %v %v", done, err)
	}
	if svc.IsDone("morning-2") {
		t.Fatal("expected step to be unticked")
	}
}

func TestToggleUnknown(t *testing.T) {
	s := store.NewMemory()
	svc := New(s, WithLogger(logging.Discard()))
	before := s.Writes
	if _, err := svc.Toggle("noon-1"); !errors.Is(err, validation.ErrInvalid) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if s.Writes != before {
		t.Fatalf("expected no write for a rejected toggle, got %d", s.Writes-before)
	}
}

func TestStatsAndReset(t *testing.T) {
	s := store.NewMemory()
	// A stale id from an older checklist is ignored.
	if err := s.Set(StoreKey, `["morning-1","evening-4","old-1"]`); err != nil {
		t.Fatal(err)
	}
	svc := New(s, WithLogger(logging.Discard()))
	if got := svc.Stats(); got != (Stats{Morning: 4, Evening: 4, Checked: 2}) {
		t.Fatalf("unexpected stats %+v", got)
	}
	svc.Reset()
	if got := len(svc.Completed()); got != 0 {
		t.Fatalf("expected no completed steps, got %d", got)
	}
	if raw, _, _ := s.Get(StoreKey); raw != "[]" {
		t.Fatalf("expected empty list persisted, got %s", raw)
	}
}
