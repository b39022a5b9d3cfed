package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/calendar"
	"tableflip.dev/planner/pkg/theme"
)

func init() {
	color.NoColor = true
}

func TestTable(t *testing.T) {
	var out bytes.Buffer
	pp := New(&out, theme.Watchlist)
	pp.Table([]string{"ID", "Titre", "Statut"}, [][]string{
		{"watch-1", "Dune", "En cours"},
	})
	got := out.String()
	if strings.Contains(got, "watch-1") {
		t.Fatalf("expected ids hidden, got %q", got)
	}
	if !strings.Contains(got, "Dune") || !strings.Contains(got, "Titre") {
		t.Fatalf("expected row and header, got %q", got)
	}

	out.Reset()
	pp.ShowID = true
	pp.Table([]string{"ID", "Titre"}, [][]string{{"watch-1", "Dune"}})
	if !strings.Contains(out.String(), "watch-1") {
		t.Fatalf("expected ids shown, got %q", out.String())
	}

	out.Reset()
	pp.Table([]string{"ID"}, nil)
	if !strings.Contains(out.String(), "aucun") {
		t.Fatalf("expected empty marker, got %q", out.String())
	}
}

func TestWrapped(t *testing.T) {
	var out bytes.Buffer
	pp := New(&out, theme.Journal)
	pp.Width = 24
	pp.Wrapped("une journée calme avec une longue promenade au parc", 2)
	for _, line := range strings.Split(strings.TrimRight(out.String(), "\n"), "\n") {
		if !strings.HasPrefix(line, "  ") {
			t.Fatalf("expected indented line, got %q", line)
		}
		if len([]rune(line)) > 24 {
			t.Fatalf("line too long: %q", line)
		}
	}
}

func TestMonth(t *testing.T) {
	var out bytes.Buffer
	pp := New(&out, theme.Calendar)
	today := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	g := calendar.Build(2024, time.March, map[string][]string{"2024-03-05": {"Yoga"}}, today)
	Month(pp, g, func(s string) string { return s })

	got := out.String()
	for _, want := range []string{"mars 2024", "Lu Ma Me", "Yoga", " 5 mar"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
}

func TestJSON(t *testing.T) {
	var out bytes.Buffer
	if err := JSON(&out, map[string]int{"a": 1}); err != nil {
		t.Fatal(err)
	}
	if out.String() != "{\n  \"a\": 1\n}\n" {
		t.Fatalf("unexpected json %q", out.String())
	}
}
