package transfer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"tableflip.dev/planner/pkg/logging"
	"tableflip.dev/planner/pkg/store"
)

func TestExport(t *testing.T) {
	s := store.NewMemory()
	_ = s.Set("planner.notes", `["a","","",""]`)
	_ = s.Set("planner.raw", "not json")

	var buf bytes.Buffer
	n, err := Export(context.Background(), s, &buf)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 slots, got %d", n)
	}
	got := buf.String()
	if !strings.Contains(got, `"planner.raw": "not json"`) || !strings.Contains(got, `"planner.notes": "[\"a\",\"\",\"\",\"\"]"`) {
		t.Fatalf("unexpected export %s", got)
	}
}

func TestRoundTrip(t *testing.T) {
	src := store.NewMemory()
	_ = src.Set("planner.tasks", `[{"id":"1","title":"Yoga"}]`)
	_ = src.Set("planner.routines.completed", `["morning-1"]`)
	_ = src.Set("planner.watch.filter", `"x"`)
	_ = src.Set("planner.sport", "{\n  \"level\": \"Débutant\",\n  \"note\": \"<3 & co\"\n}")
	_ = src.Set("planner.raw", "not json")

	var buf bytes.Buffer
	if _, err := Export(context.Background(), src, &buf); err != nil {
		t.Fatal(err)
	}
	dst := store.NewMemory()
	res, err := Load(context.Background(), dst, &buf, Options{Log: logging.Discard()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(res.Written) != 5 {
		t.Fatalf("expected 5 written, got %v", res.Written)
	}
	for _, key := range src.Keys(context.Background()) {
		want, _, _ := src.Get(key)
		got, _, _ := dst.Get(key)
		if got != want {
			t.Fatalf("%s: expected %q, got %q", key, want, got)
		}
	}
}

func TestLoadCompactsObjectMembers(t *testing.T) {
	dump := `{"planner.notes": [ "a", "", "", "" ]}`
	s := store.NewMemory()
	if _, err := Load(context.Background(), s, strings.NewReader(dump), Options{Log: logging.Discard()}); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got, _, _ := s.Get("planner.notes"); got != `["a","","",""]` {
		t.Fatalf("expected compacted value, got %q", got)
	}
}

func TestLoadLocalStorageDump(t *testing.T) {
	// localStorage holds strings; each one is the encoded value.
	dump := `{"planner.notes": "[\"courses\",\"\",\"\",\"\"]", "bad..key": "1", "other.app": "x"}`
	s := store.NewMemory()
	res, err := Load(context.Background(), s, strings.NewReader(dump), Options{Prefix: "planner", Log: logging.Discard()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got, _, _ := s.Get("planner.notes"); got != `["courses","","",""]` {
		t.Fatalf("expected decoded string value, got %q", got)
	}
	if len(res.Written) != 1 || len(res.Skipped) != 2 {
		t.Fatalf("unexpected result %+v", res)
	}

	res, err = Load(context.Background(), s, strings.NewReader(dump), Options{Log: logging.Discard()})
	if !errors.Is(err, store.ErrInvalidKey) {
		t.Fatalf("expected invalid key error, got %v", err)
	}
	if len(res.Written) != 2 {
		t.Fatalf("expected valid keys to be written anyway, got %+v", res)
	}
}

func TestLoadRejectsNonObject(t *testing.T) {
	if _, err := Load(context.Background(), store.NewMemory(), strings.NewReader(`[1,2]`), Options{Log: logging.Discard()}); err == nil {
		t.Fatal("expected an error")
	}
}
