package store

import (
	"context"
	"testing"
	"time"
)

func TestDiskWatchEmitsKeyChanges(t *testing.T) {
	s, _ := loadDisk(t)

	// Create the folder first so the watcher subscribes to it.
	if err := s.Set("planner.tasks", "[]"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before storing.
	time.Sleep(50 * time.Millisecond)

	if err := s.Set("planner.tasks", `[{"id":"task-1"}]`); err != nil {
		t.Fatalf("set: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventInvalidated {
				return
			}
			if evt.Key != "planner.tasks" {
				t.Fatalf("expected key 'planner.tasks', got %q", evt.Key)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for key change event")
		}
	}
}
