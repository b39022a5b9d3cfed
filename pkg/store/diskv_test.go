package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

type testConfig struct {
	path    string
	backend string
}

func (t testConfig) BasePath() string {
	return t.path
}

func (t testConfig) Backend() string {
	return t.backend
}

func loadDisk(t *testing.T) (Store, string) {
	t.Helper()
	base := t.TempDir()
	s, err := Load(testConfig{path: base, backend: BackendDisk})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return s, base
}

func TestDiskRoundTrip(t *testing.T) {
	s, base := loadDisk(t)

	if _, ok, err := s.Get("planner.finance.expenses"); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}

	if err := s.Set("planner.finance.expenses", "[]"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := s.Get("planner.finance.expenses")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got != "[]" {
		t.Fatalf("expected %q, got %q", "[]", got)
	}

	if _, err := os.Stat(filepath.Join(base, "planner", "finance", "expenses.json")); err != nil {
		t.Fatalf("expected value file on disk: %v", err)
	}
}

func TestDiskPrefixKeysDoNotCollide(t *testing.T) {
	s, _ := loadDisk(t)

	if err := s.Set("planner.routines", `"a"`); err != nil {
		t.Fatalf("set parent: %v", err)
	}
	if err := s.Set("planner.routines.completed", `["morning-1"]`); err != nil {
		t.Fatalf("set child: %v", err)
	}

	parent, _, _ := s.Get("planner.routines")
	child, _, _ := s.Get("planner.routines.completed")
	if parent != `"a"` {
		t.Fatalf("expected parent value kept, got %q", parent)
	}
	if child != `["morning-1"]` {
		t.Fatalf("expected child value kept, got %q", child)
	}
}

func TestDiskKeysAndDelete(t *testing.T) {
	s, _ := loadDisk(t)

	for _, key := range []string{"planner.tasks", "planner.notes", "planner_daily_tasks"} {
		if err := s.Set(key, "{}"); err != nil {
			t.Fatalf("set %s: %v", key, err)
		}
	}

	want := []string{"planner.notes", "planner.tasks", "planner_daily_tasks"}
	if got := s.Keys(context.Background()); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected keys %v, got %v", want, got)
	}

	if err := s.Delete("planner.notes"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete("planner.notes"); err != nil {
		t.Fatalf("delete twice: %v", err)
	}
	if _, ok, _ := s.Get("planner.notes"); ok {
		t.Fatal("expected deleted key to be absent")
	}
}

func TestDiskRejectsInvalidKey(t *testing.T) {
	s, _ := loadDisk(t)
	if err := s.Set("../escape", "x"); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
}

func TestLoadBackends(t *testing.T) {
	if _, err := Load(testConfig{backend: BackendNone}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable for none, got %v", err)
	}
	s, err := Load(testConfig{backend: BackendMemory})
	if err != nil {
		t.Fatalf("load memory: %v", err)
	}
	if _, ok := s.(*Memory); !ok {
		t.Fatalf("expected *Memory, got %T", s)
	}
	if _, err := Load(testConfig{backend: "sqlite"}); err == nil {
		t.Fatal("expected error for unknown backend")
	}
	if _, err := Load(testConfig{backend: BackendDisk}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable for missing path, got %v", err)
	}
}

func TestPathToKeyTransformSkipsForeignFiles(t *testing.T) {
	if got := keyForPath("/base", "/base/planner/tasks.json"); got != "planner.tasks" {
		t.Fatalf("expected planner.tasks, got %q", got)
	}
	if got := keyForPath("/base", "/base/planner/notes.txt"); got != "" {
		t.Fatalf("expected foreign file to be skipped, got %q", got)
	}
	if got := keyForPath("/base", "/base/.tmp/x.json"); got != "" {
		t.Fatalf("expected temp file to be skipped, got %q", got)
	}
	if got := keyForPath("/base", "/other/x.json"); got != "" {
		t.Fatalf("expected path outside base to be skipped, got %q", got)
	}
}
