package store

import (
	"context"
	"testing"
	"time"
)

func TestMemoryWatchAndWrites(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := m.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	if err := m.Set("planner.tasks", "[]"); err != nil {
		t.Fatalf("set: %v", err)
	}

	select {
	case evt := <-ch:
		if evt.Key != "planner.tasks" {
			t.Fatalf("expected planner.tasks, got %q", evt.Key)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}

	if err := m.Delete("planner.unknown"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if m.Writes != 1 {
		t.Fatalf("expected 1 write, got %d", m.Writes)
	}
}
