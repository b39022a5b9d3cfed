// Package finance is the monthly ledger: dated income and expense entries,
// a starting balance per month and the summary derived from both.
package finance

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"tableflip.dev/planner/pkg/datekey"
	"tableflip.dev/planner/pkg/group"
	"tableflip.dev/planner/pkg/ident"
	"tableflip.dev/planner/pkg/logging"
	"tableflip.dev/planner/pkg/persist"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/validation"
)

// Slots holding the ledger.
const (
	EntriesKey   = "planner.finance.expenses"
	SnapshotsKey = "planner.finance.monthlySnapshots"
)

// HistoryPreview is how many entries History shows unless asked for all.
const HistoryPreview = 5

// ErrNotFound is returned for unknown entry ids.
var ErrNotFound = errors.New("finance: entry not found")

// ValidationError is returned when a draft is rejected.
type ValidationError = validation.Error

// Direction tells income from spending.
type Direction string

const (
	In  Direction = "in"
	Out Direction = "out"
)

// Entry is one ledger line. Amount is always positive; Direction carries the
// sign. Entries written before directions existed have none and count as Out.
type Entry struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Amount    float64   `json:"amount"`
	Date      string    `json:"date"`
	Category  Category  `json:"category,omitempty"`
	Direction Direction `json:"direction,omitempty"`
}

// Flow returns the direction, defaulting to Out.
func (e Entry) Flow() Direction {
	if e.Direction == "" {
		return Out
	}
	return e.Direction
}

// Value returns the amount as a decimal rounded to cents.
func (e Entry) Value() decimal.Decimal {
	return decimal.NewFromFloat(e.Amount).Round(2)
}

// Snapshot is the bookkeeping of one month.
type Snapshot struct {
	StartingAmount float64 `json:"startingAmount"`
}

// Draft is an entry as typed by the user.
type Draft struct {
	Label     string
	Amount    string
	Category  Category
	Date      string
	Direction Direction
}

// Option configures a Service.
type Option func(*Service)

// WithClock pins "now".
func WithClock(c datekey.Clock) Option {
	return func(s *Service) {
		s.now = c
	}
}

// WithIDs replaces the id generator.
func WithIDs(g ident.Generator) Option {
	return func(s *Service) {
		s.ids = g
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.log = l
	}
}

// Service owns the ledger slots.
type Service struct {
	entries   *persist.Value[[]Entry]
	snapshots *persist.Value[map[string]Snapshot]
	ids       ident.Generator
	now       datekey.Clock
	log       *slog.Logger
}

// New mounts the ledger. Both slots default to empty.
func New(s store.Store, opts ...Option) *Service {
	svc := &Service{ids: ident.UUID{}, now: time.Now}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.log == nil {
		svc.log = logging.For(logging.ComponentFinance)
	}
	svc.entries = persist.New(s, EntriesKey, func() []Entry { return []Entry{} }, persist.WithLogger(svc.log))
	svc.snapshots = persist.New(s, SnapshotsKey, func() map[string]Snapshot { return map[string]Snapshot{} }, persist.WithLogger(svc.log))
	return svc
}

// Entries returns every entry with its direction filled in.
func (s *Service) Entries() []Entry {
	stored := s.entries.Get()
	out := make([]Entry, 0, len(stored))
	for _, e := range stored {
		e.Direction = e.Flow()
		out = append(out, e)
	}
	return out
}

// CurrentMonth is the month-key of now.
func (s *Service) CurrentMonth() string {
	return datekey.Month(s.now())
}

// DefaultDate is today when month is the current month, else its first day.
func (s *Service) DefaultDate(month string) string {
	if month == s.CurrentMonth() {
		return datekey.Day(s.now())
	}
	return month + "-01"
}

// Add validates d and records it. The list stays sorted newest first.
func (s *Service) Add(d Draft) (Entry, error) {
	amount, err := ParseAmount(d.Amount)
	if err != nil {
		return Entry{}, err
	}
	if !amount.IsPositive() {
		return Entry{}, validation.New("amount", "must be greater than zero")
	}

	dir := d.Direction
	if dir == "" {
		dir = Out
	}
	if dir != In && dir != Out {
		return Entry{}, validation.New("direction", "%q is neither %q nor %q", dir, In, Out)
	}

	date := strings.TrimSpace(d.Date)
	if date == "" {
		date = datekey.Day(s.now())
	}
	if !datekey.Valid(date) {
		return Entry{}, validation.New("date", "%q is not a YYYY-MM-DD date", date)
	}

	e := Entry{
		ID:        s.ids.New(ident.Finance),
		Label:     strings.TrimSpace(d.Label),
		Amount:    amount.InexactFloat64(),
		Date:      date,
		Direction: dir,
	}
	if e.Label == "" {
		e.Label = defaultLabel(dir)
	}
	if dir == Out {
		cat := d.Category
		if cat == "" {
			cat = Food
		}
		if _, ok := Lookup(cat); !ok {
			return Entry{}, validation.New("category", "unknown category %q", cat)
		}
		e.Category = cat
	}

	s.entries.Update(func(prev []Entry) []Entry {
		next := append([]Entry{e}, prev...)
		sortNewestFirst(next)
		return next
	})
	s.log.Debug("entry added", "id", e.ID, "direction", e.Direction, "amount", e.Amount)
	return e, nil
}

// Remove deletes the entry with id.
func (s *Service) Remove(id string) error {
	found := slices.ContainsFunc(s.entries.Get(), func(e Entry) bool { return e.ID == id })
	if !found {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.entries.Update(func(prev []Entry) []Entry {
		return slices.DeleteFunc(prev, func(e Entry) bool { return e.ID == id })
	})
	return nil
}

// SetStartingAmount records the balance month started with. A blank raw
// clears it.
func (s *Service) SetStartingAmount(month, raw string) error {
	if _, err := datekey.ParseMonth(month, time.UTC); err != nil {
		return validation.New("month", "%q is not a YYYY-MM month", month)
	}
	if strings.TrimSpace(raw) == "" {
		s.snapshots.Update(func(prev map[string]Snapshot) map[string]Snapshot {
			if prev == nil {
				prev = map[string]Snapshot{}
			}
			delete(prev, month)
			return prev
		})
		return nil
	}
	amount, err := ParseAmount(raw)
	if err != nil {
		return err
	}
	if amount.IsNegative() {
		return validation.New("amount", "cannot be negative")
	}
	s.snapshots.Update(func(prev map[string]Snapshot) map[string]Snapshot {
		if prev == nil {
			prev = map[string]Snapshot{}
		}
		prev[month] = Snapshot{StartingAmount: amount.InexactFloat64()}
		return prev
	})
	return nil
}

// StartingAmount returns the recorded starting balance of month.
func (s *Service) StartingAmount(month string) (decimal.Decimal, bool) {
	snap, ok := s.snapshots.Get()[month]
	if !ok {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(snap.StartingAmount).Round(2), true
}

// MonthOptions lists the months with entries or snapshots plus the current
// month, newest first.
func (s *Service) MonthOptions() []string {
	set := map[string]struct{}{s.CurrentMonth(): {}}
	for _, e := range s.entries.Get() {
		if len(e.Date) >= len(datekey.MonthLayout) {
			set[datekey.MonthOf(e.Date)] = struct{}{}
		}
	}
	for key := range s.snapshots.Get() {
		if key != "" {
			set[key] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for key := range set {
		out = append(out, key)
	}
	slices.Sort(out)
	slices.Reverse(out)
	return out
}

// MonthEntries returns the entries of month, newest first.
func (s *Service) MonthEntries(month string) []Entry {
	var out []Entry
	for _, e := range s.Entries() {
		if datekey.MonthOf(e.Date) == month {
			out = append(out, e)
		}
	}
	sortNewestFirst(out)
	return out
}

// History returns the entries of month shown by default and whether more
// are hidden.
func (s *Service) History(month string, full bool) ([]Entry, bool) {
	all := s.MonthEntries(month)
	if full || len(all) <= HistoryPreview {
		return all, false
	}
	return all[:HistoryPreview], true
}

// ByDate groups the entries of month by day, newest day first.
func (s *Service) ByDate(month string) []group.Group[string, Entry] {
	return group.ByDate(s.MonthEntries(month), func(e Entry) string { return e.Date }, group.Descending[Entry]())
}

// Summarize computes the month report.
func (s *Service) Summarize(month string) Summary {
	start, _ := s.StartingAmount(month)
	return Summarize(month, s.MonthEntries(month), start)
}

func defaultLabel(d Direction) string {
	if d == In {
		return "Revenus"
	}
	return "Dépense"
}

// sortNewestFirst orders by date descending then id descending.
func sortNewestFirst(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		if a.Date == b.Date {
			return strings.Compare(b.ID, a.ID)
		}
		return strings.Compare(b.Date, a.Date)
	})
}
