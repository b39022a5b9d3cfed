package dataurl

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tableflip.dev/planner/pkg/logging"
	"tableflip.dev/planner/pkg/validation"
)

// The smallest PNG signature http.DetectContentType recognises.
var png = []byte("\x89PNG\r\n\x1a\n" + strings.Repeat("\x00", 16))

func writeFile(t *testing.T, name string, b []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFromFile(t *testing.T) {
	url, err := FromFile(writeFile(t, "a.png", png))
	if err != nil {
		t.Fatalf("from file: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") || !IsImage(url) {
		t.Fatalf("unexpected url %s", url)
	}
	mime, b, err := Decode(url)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if mime != "image/png" || string(b) != string(png) {
		t.Fatalf("expected round trip, got %s %q", mime, b)
	}
}

func TestFromFileRejects(t *testing.T) {
	if _, err := FromFile(writeFile(t, "a.txt", []byte("hello"))); !errors.Is(err, validation.ErrInvalid) {
		t.Fatalf("expected text to be rejected, got %v", err)
	}
	if _, err := FromFile(t.TempDir()); !errors.Is(err, validation.ErrInvalid) {
		t.Fatalf("expected directory to be rejected, got %v", err)
	}
	if _, err := FromFile(filepath.Join(t.TempDir(), "missing.png")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not exist, got %v", err)
	}
}

func TestDecodeRejects(t *testing.T) {
	for _, in := range []string{"image/png;base64,AA", "data:image/png;base64", "data:text/plain,hi", "data:image/png;base64,!!"} {
		if _, _, err := Decode(in); !errors.Is(err, validation.ErrInvalid) {
			t.Fatalf("Decode(%q): expected validation error, got %v", in, err)
		}
	}
}

func TestRead(t *testing.T) {
	path := writeFile(t, "a.png", png)
	res, ok := <-ReadWith(context.Background(), path, logging.Discard())
	if !ok {
		t.Fatal("expected a result")
	}
	if res.Err != nil || res.Path != path || !IsImage(res.URL) {
		t.Fatalf("unexpected result %+v", res)
	}

	res = <-ReadWith(context.Background(), "/does/not/exist.png", logging.Discard())
	if res.Err == nil || res.URL != "" {
		t.Fatalf("expected failure, got %+v", res)
	}
}
