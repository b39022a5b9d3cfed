package finance

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tableflip.dev/planner/pkg/datekey"
	"tableflip.dev/planner/pkg/ident"
	"tableflip.dev/planner/pkg/logging"
	"tableflip.dev/planner/pkg/store"
)

var now = time.Date(2024, time.March, 20, 9, 0, 0, 0, time.UTC)

func newService(s store.Store) *Service {
	return New(s,
		WithClock(datekey.Fixed(now)),
		WithIDs(&ident.Sequence{}),
		WithLogger(logging.Discard()))
}

func mustAdd(t *testing.T, svc *Service, d Draft) Entry {
	t.Helper()
	e, err := svc.Add(d)
	if err != nil {
		t.Fatalf("add %+v: %v", d, err)
	}
	return e
}

func TestNewSeedsEmptySlots(t *testing.T) {
	s := store.NewMemory()
	newService(s)
	if raw, _, _ := s.Get(EntriesKey); raw != "[]" {
		t.Fatalf("expected %q, got %q", "[]", raw)
	}
	if raw, _, _ := s.Get(SnapshotsKey); raw != "{}" {
		t.Fatalf("expected %q, got %q", "{}", raw)
	}
}

func TestAddParsesAndDefaults(t *testing.T) {
	svc := newService(store.NewMemory())

	e := mustAdd(t, svc, Draft{Amount: "45,904", Date: "2024-03-05"})
	if e.Amount != 45.9 {
		t.Fatalf("expected 45.9, got %v", e.Amount)
	}
	if e.Label != "Dépense" || e.Direction != Out || e.Category != Food {
		t.Fatalf("unexpected defaults %+v", e)
	}

	in := mustAdd(t, svc, Draft{Amount: "1200", Direction: In, Category: Leisure})
	if in.Label != "Revenus" || in.Category != "" || in.Date != "2024-03-20" {
		t.Fatalf("unexpected income entry %+v", in)
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	svc := newService(store.NewMemory())
	for _, d := range []Draft{
		{Amount: ""},
		{Amount: "abc"},
		{Amount: "0"},
		{Amount: "-3"},
		{Amount: "0,001"},
		{Amount: "3", Direction: "sideways"},
		{Amount: "3", Category: "pets"},
		{Amount: "3", Date: "2024-13-01"},
	} {
		_, err := svc.Add(d)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected validation error for %+v, got %v", d, err)
		}
	}
	if len(svc.Entries()) != 0 {
		t.Fatalf("expected no entries, got %v", svc.Entries())
	}
}

func TestEntriesSortedNewestFirst(t *testing.T) {
	svc := newService(store.NewMemory())
	a := mustAdd(t, svc, Draft{Amount: "1", Date: "2024-03-05"})
	b := mustAdd(t, svc, Draft{Amount: "2", Date: "2024-03-10"})
	c := mustAdd(t, svc, Draft{Amount: "3", Date: "2024-03-05"})

	var ids []string
	for _, e := range svc.MonthEntries("2024-03") {
		ids = append(ids, e.ID)
	}
	if want := []string{b.ID, c.ID, a.ID}; !reflect.DeepEqual(ids, want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}

	groups := svc.ByDate("2024-03")
	if len(groups) != 2 || groups[0].Key != "2024-03-10" {
		t.Fatalf("expected newest day first, got %v", groups)
	}
}

func TestLegacyEntriesWithoutDirection(t *testing.T) {
	s := store.NewMemory()
	_ = s.Set(EntriesKey, `[{"id":"finance-1","label":"Pain","amount":2.5,"date":"2024-03-01","category":"food"}]`)
	svc := newService(s)

	entries := svc.Entries()
	if len(entries) != 1 || entries[0].Direction != Out {
		t.Fatalf("expected legacy entry to count as out, got %+v", entries)
	}
	if got := svc.Summarize("2024-03").TotalSpent; !got.Equal(decimal.RequireFromString("2.5")) {
		t.Fatalf("expected 2.5 spent, got %s", got)
	}
}

func TestRemove(t *testing.T) {
	svc := newService(store.NewMemory())
	e := mustAdd(t, svc, Draft{Amount: "1"})
	if err := svc.Remove(e.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.Remove(e.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStartingAmount(t *testing.T) {
	svc := newService(store.NewMemory())
	if err := svc.SetStartingAmount("2024-03", "1000,5"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok := svc.StartingAmount("2024-03")
	if !ok || !got.Equal(decimal.RequireFromString("1000.5")) {
		t.Fatalf("expected 1000.5, got %s (%v)", got, ok)
	}
	if err := svc.SetStartingAmount("2024-03", "0"); err != nil {
		t.Fatalf("zero is a valid starting amount: %v", err)
	}
	if err := svc.SetStartingAmount("2024-03", "-1"); err == nil {
		t.Fatal("expected negative amount to be rejected")
	}
	if err := svc.SetStartingAmount("March", "1"); err == nil {
		t.Fatal("expected bad month to be rejected")
	}
	if err := svc.SetStartingAmount("2024-03", " "); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := svc.StartingAmount("2024-03"); ok {
		t.Fatal("expected starting amount cleared")
	}
}

func TestMonthOptions(t *testing.T) {
	svc := newService(store.NewMemory())
	mustAdd(t, svc, Draft{Amount: "1", Date: "2023-11-02"})
	mustAdd(t, svc, Draft{Amount: "1", Date: "2024-01-02"})
	if err := svc.SetStartingAmount("2024-05", "10"); err != nil {
		t.Fatalf("set: %v", err)
	}
	want := []string{"2024-05", "2024-03", "2024-01", "2023-11"}
	if got := svc.MonthOptions(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestHistory(t *testing.T) {
	svc := newService(store.NewMemory())
	for i := 0; i < 7; i++ {
		mustAdd(t, svc, Draft{Amount: "1", Date: "2024-03-01"})
	}
	preview, more := svc.History("2024-03", false)
	if len(preview) != HistoryPreview || !more {
		t.Fatalf("expected %d entries and more, got %d (%v)", HistoryPreview, len(preview), more)
	}
	full, more := svc.History("2024-03", true)
	if len(full) != 7 || more {
		t.Fatalf("expected all 7 entries, got %d (%v)", len(full), more)
	}
}

func TestSummarize(t *testing.T) {
	svc := newService(store.NewMemory())
	mustAdd(t, svc, Draft{Amount: "100", Category: Housing, Date: "2024-03-01"})
	mustAdd(t, svc, Draft{Amount: "50", Category: Food, Date: "2024-03-02"})
	mustAdd(t, svc, Draft{Amount: "50", Category: Leisure, Date: "2024-03-03"})
	mustAdd(t, svc, Draft{Amount: "25.5", Category: Friends, Date: "2024-03-04"})
	mustAdd(t, svc, Draft{Amount: "500", Direction: In, Date: "2024-03-05"})
	mustAdd(t, svc, Draft{Amount: "999", Category: Food, Date: "2024-02-01"})
	if err := svc.SetStartingAmount("2024-03", "1000"); err != nil {
		t.Fatalf("set: %v", err)
	}

	sum := svc.Summarize("2024-03")
	dec := decimal.RequireFromString
	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"spent", sum.TotalSpent, "225.5"},
		{"income", sum.TotalIncome, "500"},
		{"net", sum.NetCashflow, "274.5"},
		{"ending", sum.EndingAmount, "1274.5"},
		{"saved", sum.SavedAmount, "274.5"},
		{"idea target", sum.Idea.Target, "90"},
		{"idea saving", sum.Idea.Saving, "10"},
	}
	for _, c := range checks {
		if !c.got.Equal(dec(c.want)) {
			t.Fatalf("%s: expected %s, got %s", c.name, c.want, c.got)
		}
	}
	if math.Abs(sum.SavingsPercentage-27.45) > 1e-9 {
		t.Fatalf("expected 27.45%%, got %v", sum.SavingsPercentage)
	}

	if len(sum.Totals) != len(Categories) {
		t.Fatalf("expected a total per category, got %d", len(sum.Totals))
	}
	var top []Category
	for _, c := range sum.Top {
		top = append(top, c.Category)
	}
	// Food and Leisure tie; display order breaks the tie.
	if want := []Category{Housing, Food, Leisure}; !reflect.DeepEqual(top, want) {
		t.Fatalf("expected top %v, got %v", want, top)
	}

	if len(sum.Pie) != 4 {
		t.Fatalf("expected 4 pie segments, got %d", len(sum.Pie))
	}
	if sum.Pie[0].StartAngle != 0 || math.Abs(sum.Pie[len(sum.Pie)-1].EndAngle-360) > 1e-9 {
		t.Fatalf("expected pie to span 0..360, got %+v", sum.Pie)
	}
	for i := 1; i < len(sum.Pie); i++ {
		if sum.Pie[i].StartAngle != sum.Pie[i-1].EndAngle {
			t.Fatalf("expected contiguous segments at %d", i)
		}
	}

	if sum.Bars.EndHeight != 100 || sum.Bars.StartHeight != 78 {
		t.Fatalf("unexpected bars %+v", sum.Bars)
	}
}

func TestSummarizeEmptyMonth(t *testing.T) {
	sum := Summarize("2024-04", nil, decimal.Zero)
	if sum.Idea != nil || len(sum.Top) != 0 || len(sum.Pie) != 0 {
		t.Fatalf("expected empty report, got %+v", sum)
	}
	if sum.SavingsPercentage != 0 {
		t.Fatalf("expected 0%% without a starting amount, got %v", sum.SavingsPercentage)
	}
	if sum.Bars.StartHeight != minBarHeightPct || sum.Bars.EndHeight != minBarHeightPct {
		t.Fatalf("expected minimum bar heights, got %+v", sum.Bars)
	}
}

func TestFormat(t *testing.T) {
	if got := FormatSigned(decimal.RequireFromString("12.5")); !strings.HasPrefix(got, "+") || !strings.Contains(got, "12.50") {
		t.Fatalf("unexpected signed format %q", got)
	}
	if got := FormatSigned(decimal.RequireFromString("-3")); !strings.HasPrefix(got, "-") || !strings.Contains(got, "3.00") {
		t.Fatalf("unexpected signed format %q", got)
	}
	if got := FormatSigned(decimal.Zero); strings.HasPrefix(got, "+") || strings.HasPrefix(got, "-") {
		t.Fatalf("expected unsigned zero, got %q", got)
	}
	tests := map[float64]string{0: "0 %", 27.45: "+27.5 %", -3.04: "-3 %", math.NaN(): "0 %"}
	for in, want := range tests {
		if got := FormatPercent(in); got != want {
			t.Fatalf("FormatPercent(%v): expected %q, got %q", in, want, got)
		}
	}
}
