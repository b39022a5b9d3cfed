// Package journal keeps dated journal pages written freely or through the
// guided prompts.
package journal

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"tableflip.dev/planner/pkg/datekey"
	"tableflip.dev/planner/pkg/group"
	"tableflip.dev/planner/pkg/ident"
	"tableflip.dev/planner/pkg/logging"
	"tableflip.dev/planner/pkg/persist"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/validation"
)

// StoreKey is the slot holding the journal.
const StoreKey = "planner.journal.entries"

// ErrNotFound is returned for unknown entry ids.
var ErrNotFound = errors.New("journal: entry not found")

// ValidationError is returned when a draft is rejected.
type ValidationError = validation.Error

// Answer types.
const (
	AnswerText = "text"
	AnswerList = "list"
)

// Answer is the reply to one prompt field.
type Answer struct {
	Label string   `json:"label"`
	Type  string   `json:"type"`
	Value string   `json:"value,omitempty"`
	Items []string `json:"items,omitempty"`
}

// Section is the answered part of a prompt section.
type Section struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Answers []Answer `json:"answers"`
}

// Entry is one journal page. Content combines the prompt answers and the
// free writing as plain text.
type Entry struct {
	ID            string    `json:"id"`
	Date          string    `json:"date"`
	Mood          string    `json:"mood"`
	Content       string    `json:"content"`
	Feeling       Feeling   `json:"feeling"`
	FeelingReason string    `json:"feelingReason"`
	Prompts       []Section `json:"prompts,omitempty"`
	FreeWriting   string    `json:"freeWriting,omitempty"`
}

// Draft is a page being written. Responses holds textarea answers by field
// id, Selections the chosen options of checkbox fields.
type Draft struct {
	Date          string
	Mood          string
	Feeling       Feeling
	FeelingReason string
	FreeWriting   string
	Responses     map[string]string
	Selections    map[string][]string
}

// Compose builds the entry for d. The date prompt is answered with d.Date
// when left blank but does not count as content on its own.
func Compose(d Draft) (Entry, error) {
	date := strings.TrimSpace(d.Date)
	if !datekey.Valid(date) {
		return Entry{}, validation.New("date", "%q is not a YYYY-MM-DD date", d.Date)
	}
	mood := strings.TrimSpace(d.Mood)
	if mood == "" {
		mood = DefaultMood
	}
	feeling := d.Feeling
	if feeling == "" {
		feeling = Feelings[0].Value
	}
	if _, ok := LookupFeeling(feeling); !ok {
		return Entry{}, validation.New("feeling", "unknown feeling %q", feeling)
	}

	for id := range d.Selections {
		if f, ok := LookupField(id); !ok || f.Kind != Checkboxes {
			return Entry{}, validation.New("selections", "%q is not a multiple choice prompt", id)
		}
	}
	for id := range d.Responses {
		if f, ok := LookupField(id); !ok || f.Kind != Textarea {
			return Entry{}, validation.New("responses", "%q is not a text prompt", id)
		}
	}

	sections, answered := answerSections(d, date)
	free := strings.TrimSpace(d.FreeWriting)
	if !answered && free == "" {
		return Entry{}, validation.New("content", "answer a prompt or write freely")
	}

	e := Entry{
		Date:          date,
		Mood:          mood,
		Feeling:       feeling,
		FeelingReason: strings.TrimSpace(d.FeelingReason),
		Prompts:       sections,
		FreeWriting:   free,
	}
	e.Content = joinNonEmpty("\n\n", summary(sections), free)
	return e, nil
}

// answerSections keeps the answered fields. answered is false when only the
// date prompt was filled in.
func answerSections(d Draft, date string) ([]Section, bool) {
	var sections []Section
	answered := false
	for _, ps := range Prompts {
		var answers []Answer
		for _, f := range ps.Fields {
			switch f.Kind {
			case Textarea:
				v := strings.TrimSpace(d.Responses[f.ID])
				if f.ID == DatePromptField && v == "" {
					v = date
				} else if v != "" {
					answered = true
				}
				if v != "" {
					answers = append(answers, Answer{Label: f.Label, Type: AnswerText, Value: v})
				}
			case Checkboxes:
				if items := d.Selections[f.ID]; len(items) > 0 {
					answered = true
					answers = append(answers, Answer{Label: f.Label, Type: AnswerList, Items: slices.Clone(items)})
				}
			}
		}
		if len(answers) > 0 {
			sections = append(sections, Section{ID: ps.ID, Title: ps.Title, Answers: answers})
		}
	}
	if !answered {
		return nil, false
	}
	return sections, true
}

func summary(sections []Section) string {
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		answers := make([]string, 0, len(s.Answers))
		for _, a := range s.Answers {
			if a.Type == AnswerList {
				items := make([]string, 0, len(a.Items))
				for _, item := range a.Items {
					items = append(items, "- "+item)
				}
				answers = append(answers, a.Label+"\n"+strings.Join(items, "\n"))
				continue
			}
			answers = append(answers, a.Label+"\n"+a.Value)
		}
		parts = append(parts, s.Title+"\n"+strings.Join(answers, "\n\n"))
	}
	return strings.Join(parts, "\n\n")
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := slices.DeleteFunc(parts, func(s string) bool { return s == "" })
	return strings.Join(kept, sep)
}

// Option configures a Service.
type Option func(*Service)

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

// Service owns the journal slot. The journal is never truncated.
type Service struct {
	value *persist.Value[[]Entry]
	ids   ident.Generator
	log   *slog.Logger
}

// New mounts the journal. It starts empty.
func New(s store.Store, opts ...Option) *Service {
	svc := &Service{ids: ident.UUID{}}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.log == nil {
		svc.log = logging.For(logging.ComponentJournal)
	}
	svc.value = persist.New(s, StoreKey, func() []Entry { return []Entry{} }, persist.WithLogger(svc.log))
	return svc
}

// List returns the entries, latest written first.
func (s *Service) List() []Entry {
	return s.value.Get()
}

// Add composes d and puts it on top.
func (s *Service) Add(d Draft) (Entry, error) {
	e, err := Compose(d)
	if err != nil {
		return Entry{}, err
	}
	e.ID = s.ids.New(ident.Journal)
	s.value.Update(func(prev []Entry) []Entry { return append([]Entry{e}, prev...) })
	s.log.Debug("entry written", "id", e.ID, "date", e.Date)
	return e, nil
}

// Remove deletes the entry with id.
func (s *Service) Remove(id string) error {
	if !slices.ContainsFunc(s.value.Get(), func(e Entry) bool { return e.ID == id }) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.value.Update(func(prev []Entry) []Entry {
		return slices.DeleteFunc(prev, func(e Entry) bool { return e.ID == id })
	})
	return nil
}

// ByDate groups entries by day, newest day first.
func (s *Service) ByDate() []group.Group[string, Entry] {
	return group.ByDate(s.value.Get(), func(e Entry) string { return e.Date }, group.Descending[Entry]())
}

// Since returns the entries dated within window before now.
func (s *Service) Since(now time.Time, window time.Duration) []Entry {
	cutoff := datekey.Day(now.Add(-window))
	var out []Entry
	for _, e := range s.value.Get() {
		if e.Date >= cutoff {
			out = append(out, e)
		}
	}
	return out
}

// Stats is the journal header.
type Stats struct {
	Total      int         `json:"total"`
	ActiveDays int         `json:"activeDays"`
	Mood       string      `json:"mood"`
	Feeling    FeelingInfo `json:"feeling"`
}

// Stats counts pages and days and reports the mood of the latest page.
func (s *Service) Stats() Stats {
	entries := s.value.Get()
	st := Stats{
		Total:      len(entries),
		ActiveDays: len(s.ByDate()),
		Mood:       DefaultMood,
		Feeling:    Feelings[0],
	}
	if len(entries) > 0 {
		st.Mood = entries[0].Mood
		if info, ok := LookupFeeling(entries[0].Feeling); ok {
			st.Feeling = info
		}
	}
	return st
}
