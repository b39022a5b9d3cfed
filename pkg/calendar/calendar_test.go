package calendar

import (
	"strings"
	"testing"
	"time"
)

func TestOffsetIsMondayFirst(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 0},   // Monday
		{2024, time.September, 6}, // Sunday
		{2024, time.March, 4},     // Friday
		{2026, time.February, 6},  // Sunday
	}
	for _, tt := range tests {
		if got := Offset(tt.year, tt.month); got != tt.want {
			t.Fatalf("Offset(%d, %s): expected %d, got %d", tt.year, tt.month, tt.want, got)
		}
	}
}

func TestGridCoverage(t *testing.T) {
	today := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	for year := 2023; year <= 2025; year++ {
		for month := time.January; month <= time.December; month++ {
			g := Build[string](year, month, nil, today)
			if len(g.Cells)%7 != 0 {
				t.Fatalf("%d-%s: %d cells is not whole weeks", year, month, len(g.Cells))
			}
			if len(g.Cells) < g.Offset+g.DaysInMonth || len(g.Cells) >= g.Offset+g.DaysInMonth+7 {
				t.Fatalf("%d-%s: %d cells for offset %d and %d days", year, month, len(g.Cells), g.Offset, g.DaysInMonth)
			}
			days := 0
			for i, c := range g.Cells {
				if c.Empty() {
					continue
				}
				days++
				if i != g.Offset+c.Day-1 {
					t.Fatalf("%d-%s: day %d in cell %d", year, month, c.Day, i)
				}
			}
			if days != g.DaysInMonth {
				t.Fatalf("%d-%s: expected %d day cells, got %d", year, month, g.DaysInMonth, days)
			}
		}
	}
}

func TestBuildBucketsAndToday(t *testing.T) {
	buckets := map[string][]string{
		"2024-03-05": {"standup", "gym"},
		"2024-04-01": {"next month"},
	}
	today := time.Date(2024, time.March, 5, 23, 59, 0, 0, time.UTC)
	g := Build(2024, time.March, buckets, today)

	cell, ok := g.Today()
	if !ok || cell.Key != "2024-03-05" {
		t.Fatalf("expected today cell 2024-03-05, got %+v (%v)", cell, ok)
	}
	if len(cell.Items) != 2 {
		t.Fatalf("expected 2 items, got %v", cell.Items)
	}

	todays := 0
	for _, c := range g.Cells {
		if c.IsToday {
			todays++
		}
		if c.Key == "2024-04-01" {
			t.Fatal("expected no cell from another month")
		}
	}
	if todays != 1 {
		t.Fatalf("expected one today cell, got %d", todays)
	}

	other := Build(2024, time.April, buckets, today)
	if _, ok := other.Today(); ok {
		t.Fatal("expected no today cell in April")
	}
}

func TestWeeksAndNavigation(t *testing.T) {
	g := Build[int](2024, time.December, nil, time.Time{})
	weeks := g.Weeks()
	if len(weeks)*7 != len(g.Cells) {
		t.Fatalf("expected %d weeks, got %d", len(g.Cells)/7, len(weeks))
	}
	if y, m := g.Next(); y != 2025 || m != time.January {
		t.Fatalf("expected 2025-January, got %d-%s", y, m)
	}
	if y, m := Build[int](2024, time.January, nil, time.Time{}).Prev(); y != 2023 || m != time.December {
		t.Fatalf("expected 2023-December, got %d-%s", y, m)
	}
}

func TestRender(t *testing.T) {
	g := Build(2024, time.January, map[string][]int{"2024-01-10": {1}}, time.Time{})
	out := Render(g, Options{ShowHeader: true})
	lines := strings.Split(out, "\n")
	if lines[0] != "Lu Ma Me Je Ve Sa Di" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], " 1  2  3") {
		t.Fatalf("expected first week to start on Monday, got %q", lines[1])
	}
	if len(lines) != 1+len(g.Weeks()) {
		t.Fatalf("expected %d lines, got %d", 1+len(g.Weeks()), len(lines))
	}
}
