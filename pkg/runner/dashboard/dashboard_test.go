package dashboard

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/datekey"
	"tableflip.dev/planner/pkg/ident"
	"tableflip.dev/planner/pkg/logging"
	"tableflip.dev/planner/pkg/profile"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/tasks"
)

var now = time.Date(2024, time.March, 5, 13, 45, 0, 0, time.UTC)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newDashboard(s store.Store, out *syncBuffer) *Dashboard {
	clock := datekey.Fixed(now)
	return &Dashboard{
		Profile: profile.New(s, profile.WithClock(clock), profile.WithLogger(logging.Discard())),
		Tasks:   tasks.New(s, tasks.WithClock(clock), tasks.WithIDs(&ident.Sequence{}), tasks.WithLogger(logging.Discard())),
		Store:   s,
		Now:     clock,
		Out:     out,
		Log:     logging.Discard(),
	}
}

func TestRender(t *testing.T) {
	color.NoColor = true
	out := &syncBuffer{}
	if err := newDashboard(store.NewMemory(), out).Do(context.Background()); err != nil {
		t.Fatalf("render: %v", err)
	}
	got := out.String()
	for _, want := range []string{"Bonjour " + profile.DefaultName, "Mardi 5 mars 2024", "Aujourd'hui", "65 / 366 jours", "1. …"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in:\n%s", want, got)
		}
	}
}

func TestRenderJSON(t *testing.T) {
	out := &syncBuffer{}
	d := newDashboard(store.NewMemory(), out)
	d.JSON = true
	if err := d.Do(context.Background()); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out.String(), `"dayKey": "2024-03-05"`) {
		t.Fatalf("unexpected json %s", out.String())
	}
}

func TestWatchRerendersOnWrite(t *testing.T) {
	color.NoColor = true
	s := store.NewMemory()
	out := &syncBuffer{}
	d := newDashboard(s, out)
	d.Watch = true
	d.Interval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Do(ctx) }()

	waitFor(t, out, "Bonjour")
	other := profile.New(s, profile.WithLogger(logging.Discard()))
	if err := other.SetNote(0, "yoga"); err != nil {
		t.Fatal(err)
	}
	waitFor(t, out, "1. yoga")

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected a clean stop, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("dashboard did not stop")
	}
}

func waitFor(t *testing.T, out *syncBuffer, want string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(out.String(), want) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %q in:\n%s", want, out.String())
}

func TestWatched(t *testing.T) {
	for key, want := range map[string]bool{
		tasks.StoreKey:          true,
		profile.NotesKey:        true,
		profile.StoreKey:        true,
		"planner.finance.items": false,
	} {
		if got := Watched(key); got != want {
			t.Fatalf("Watched(%q): expected %v, got %v", key, want, got)
		}
	}
}
