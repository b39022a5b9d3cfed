package watchlist

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

func TestDefaultsAndStats(t *testing.T) {
	s := store.NewMemory()
	svc := newService(s)
	if got := svc.Stats(); got != (Stats{ToDiscover: 1, Watching: 1, Watched: 1}) {
		t.Fatalf("unexpected stats %+v", got)
	}
	for _, key := range []string{StoreKey, BannersKey} {
		if _, ok, _ := s.Get(key); !ok {
			t.Fatalf("expected %s to be seeded", key)
		}
	}
}

func TestCycleWrapsAround(t *testing.T) {
	svc := newService(store.NewMemory())
	want := []Status{Finished, ToWatch, Watching}
	for i, st := range want {
		it, err := svc.Cycle("watch-2")
		if err != nil {
			t.Fatalf("cycle %d: %v", i, err)
		}
		if it.Status != st {
			t.Fatalf("cycle %d: expected %s, got %s", i, st, it.Status)
		}
	}
	if _, err := svc.Cycle("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddEditRemove(t *testing.T) {
	s := store.NewMemory()
	svc := newService(s)

	it, err := svc.Add(Draft{Title: " Dune ", Type: "Film", Platform: " "})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if it.ID != "watch-0001" || it.Status != ToWatch || it.Platform != "" || it.Thumbnail == "" {
		t.Fatalf("unexpected item %+v", it)
	}
	if it.Subtitle() != "Film" {
		t.Fatalf("expected subtitle to fall back to the type, got %q", it.Subtitle())
	}
	if _, err := svc.Add(Draft{}); !errors.Is(err, validation.ErrInvalid) {
		t.Fatalf("expected validation error, got %v", err)
	}

	edited, err := svc.Edit(it.ID, "Dune 2", "Max")
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if edited.Title != "Dune 2" || edited.Subtitle() != "Max" {
		t.Fatalf("unexpected edit %+v", edited)
	}
	if _, err := svc.MarkWatched(it.ID); err != nil {
		t.Fatalf("mark watched: %v", err)
	}
	if got := newService(s).Stats().Watched; got != 2 {
		t.Fatalf("expected 2 watched after reload, got %d", got)
	}
	if err := svc.Remove(it.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := len(svc.List()); got != 3 {
		t.Fatalf("expected 3 items, got %d", got)
	}
}

func TestByStatusKeepsColumnOrder(t *testing.T) {
	s := store.NewMemory()
	if err := s.Set(StoreKey, `[{"id":"x","title":"X","type":"Film","status":"termine","thumbnail":""}]`); err != nil {
		t.Fatal(err)
	}
	svc := newService(s)
	if err := svc.SetBanner(Watching, "data:image/png;base64,AA=="); err != nil {
		t.Fatalf("set banner: %v", err)
	}
	cols := svc.ByStatus()
	if len(cols) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(cols))
	}
	for i, st := range Statuses {
		if cols[i].Status != st {
			t.Fatalf("column %d: expected %s, got %s", i, st, cols[i].Status)
		}
	}
	if len(cols[0].Items) != 0 || cols[0].Items == nil || len(cols[2].Items) != 1 {
		t.Fatalf("unexpected columns %+v", cols)
	}
	if cols[1].Banner != "data:image/png;base64,AA==" || cols[0].Banner != DefaultBanners()[ToWatch] {
		t.Fatalf("unexpected banners %q %q", cols[0].Banner, cols[1].Banner)
	}
	if err := svc.SetBanner("later", "x"); !errors.Is(err, validation.ErrInvalid) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
