package ident

import (
	"sort"
	"testing"
)

func TestUUIDIsUniqueAndOrdered(t *testing.T) {
	ids := make([]string, 0, 1000)
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := New(Task)
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if !sort.StringsAreSorted(ids) {
		t.Fatal("expected ids minted in one process to sort in creation order")
	}
	if !HasPrefix(ids[0], Task) {
		t.Fatalf("expected task prefix, got %s", ids[0])
	}
}

func TestSequence(t *testing.T) {
	var s Sequence
	if got := s.New(Finance); got != "finance-0001" {
		t.Fatalf("expected finance-0001, got %s", got)
	}
	if got := s.New(""); got != "0002" {
		t.Fatalf("expected 0002, got %s", got)
	}
}
