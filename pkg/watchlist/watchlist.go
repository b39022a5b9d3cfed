// Package watchlist keeps films, series and podcasts to watch.
package watchlist

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"tableflip.dev/planner/pkg/fold"
	"tableflip.dev/planner/pkg/group"
	"tableflip.dev/planner/pkg/ident"
	"tableflip.dev/planner/pkg/logging"
	"tableflip.dev/planner/pkg/persist"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/validation"
)

const (
	// StoreKey is the slot holding the items.
	StoreKey = "planner.watchlist"
	// BannersKey holds one banner image per status column.
	BannersKey = "planner.watchlist.banners"
)

// ErrNotFound is returned for unknown item ids.
var ErrNotFound = errors.New("watchlist: item not found")

// ValidationError is returned when a draft is rejected.
type ValidationError = validation.Error

// Status is the viewing state of an item.
type Status string

const (
	ToWatch  Status = "a-regarder"
	Watching Status = "en-cours"
	Finished Status = "termine"
)

// Statuses is the fixed column order. Cycle walks it.
var Statuses = []Status{ToWatch, Watching, Finished}

// Label is the display name of st.
func (st Status) Label() string {
	switch st {
	case ToWatch:
		return "À regarder"
	case Watching:
		return "En cours"
	case Finished:
		return "Terminé"
	}
	return string(st)
}

// Valid reports whether st is a known status.
func (st Status) Valid() bool {
	return slices.Contains(Statuses, st)
}

// Next is the status after st, wrapping around.
func (st Status) Next() Status {
	i := slices.Index(Statuses, st)
	return Statuses[(i+1)%len(Statuses)]
}

// ParseStatus accepts a status value or its label, ignoring case and accents.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if fold.Equal(s, string(st)) || fold.Equal(s, st.Label()) {
			return st, nil
		}
	}
	return "", validation.New("status", "unknown status %q", s)
}

// Types offered for new items.
var Types = []string{"Film", "Série", "Documentaire", "Vidéo", "Podcast"}

// DefaultType is used when a draft names none.
const DefaultType = "Film"

// ParseType matches s against Types, ignoring case and accents.
func ParseType(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultType, nil
	}
	for _, t := range Types {
		if fold.Equal(s, t) {
			return t, nil
		}
	}
	return "", validation.New("type", "unknown type %q, expected one of %s", s, strings.Join(Types, ", "))
}

// Item is one thing to watch. Thumbnail is an image reference and may be a
// data URL.
type Item struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Status    Status `json:"status"`
	Platform  string `json:"platform,omitempty"`
	Thumbnail string `json:"thumbnail"`
}

// Subtitle is the platform, or the type when no platform is known.
func (it Item) Subtitle() string {
	if it.Platform != "" {
		return it.Platform
	}
	return it.Type
}

// Draft is an item to be added.
type Draft struct {
	Title    string
	Type     string
	Status   Status
	Platform string
}

// Banners maps a status column to its banner image.
type Banners map[Status]string

// Defaults is the list an empty store starts with.
func Defaults() []Item {
	return []Item{
		{ID: "watch-1", Title: "The Creative Act", Type: "Documentaire", Status: ToWatch, Platform: "YouTube", Thumbnail: thumbnails["Documentaire"]},
		{ID: "watch-2", Title: "Only Murders", Type: "Série", Status: Watching, Platform: "Disney+", Thumbnail: thumbnails["Série"]},
		{ID: "watch-3", Title: "Minimalism", Type: "Film", Status: Finished, Platform: "Netflix", Thumbnail: thumbnails["Film"]},
	}
}

// thumbnails names the mood picture used per type.
var thumbnails = map[string]string{
	"Film":         "planner-07.jpg",
	"Série":        "planner-02.jpg",
	"Documentaire": "planner-09.jpg",
	"Vidéo":        "planner-02.jpg",
	"Podcast":      "planner-07.jpg",
}

// DefaultBanners is the banner set an empty store starts with.
func DefaultBanners() Banners {
	return Banners{
		ToWatch:  "planner-07.jpg",
		Watching: "planner-02.jpg",
		Finished: "planner-09.jpg",
	}
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

// Service owns the watchlist slots.
type Service struct {
	items   *persist.Value[[]Item]
	banners *persist.Value[Banners]
	ids     ident.Generator
	log     *slog.Logger
}

// New mounts the watchlist and its banners.
func New(s store.Store, opts ...Option) *Service {
	svc := &Service{ids: ident.UUID{}}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.log == nil {
		svc.log = logging.For(logging.ComponentWatch)
	}
	svc.items = persist.New(s, StoreKey, Defaults, persist.WithLogger(svc.log))
	svc.banners = persist.New(s, BannersKey, DefaultBanners, persist.WithLogger(svc.log))
	return svc
}

// List returns the items, newest first.
func (s *Service) List() []Item {
	return s.items.Get()
}

// Add validates d and puts it on top.
func (s *Service) Add(d Draft) (Item, error) {
	it := Item{
		Title:    strings.TrimSpace(d.Title),
		Status:   d.Status,
		Platform: strings.TrimSpace(d.Platform),
	}
	typ, err := ParseType(d.Type)
	if err != nil {
		return Item{}, err
	}
	it.Type = typ
	if it.Status == "" {
		it.Status = ToWatch
	}
	if err := validation.Required("title", it.Title); err != nil {
		return Item{}, err
	}
	if !it.Status.Valid() {
		return Item{}, validation.New("status", "unknown status %q", it.Status)
	}
	it.Thumbnail = thumbnails[it.Type]
	it.ID = s.ids.New(ident.Watch)
	s.items.Update(func(prev []Item) []Item { return append([]Item{it}, prev...) })
	s.log.Debug("item added", "id", it.ID, "type", it.Type)
	return it, nil
}

// Edit renames the item with id. An empty platform falls back to the type.
func (s *Service) Edit(id, title, platform string) (Item, error) {
	title = strings.TrimSpace(title)
	if err := validation.Required("title", title); err != nil {
		return Item{}, err
	}
	return s.modify(id, func(it *Item) {
		it.Title = title
		it.Platform = strings.TrimSpace(platform)
	})
}

// Cycle moves the item with id to the next status.
func (s *Service) Cycle(id string) (Item, error) {
	return s.modify(id, func(it *Item) { it.Status = it.Status.Next() })
}

// MarkWatched moves the item with id to Finished.
func (s *Service) MarkWatched(id string) (Item, error) {
	return s.modify(id, func(it *Item) { it.Status = Finished })
}

func (s *Service) modify(id string, fn func(*Item)) (Item, error) {
	idx := slices.IndexFunc(s.items.Get(), func(it Item) bool { return it.ID == id })
	if idx < 0 {
		return Item{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	var out Item
	s.items.Update(func(prev []Item) []Item {
		fn(&prev[idx])
		out = prev[idx]
		return prev
	})
	return out, nil
}

// Remove deletes the item with id.
func (s *Service) Remove(id string) error {
	if !slices.ContainsFunc(s.items.Get(), func(it Item) bool { return it.ID == id }) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.items.Update(func(prev []Item) []Item {
		return slices.DeleteFunc(prev, func(it Item) bool { return it.ID == id })
	})
	return nil
}

// Column is one status with its items and banner.
type Column struct {
	Status Status `json:"status"`
	Banner string `json:"banner"`
	Items  []Item `json:"items"`
}

// ByStatus returns one column per status in fixed order, empty ones included.
func (s *Service) ByStatus() []Column {
	idx := group.Index(group.By(s.items.Get(), func(it Item) Status { return it.Status }))
	banners := s.Banners()
	cols := make([]Column, 0, len(Statuses))
	for _, st := range Statuses {
		items := idx[st]
		if items == nil {
			items = []Item{}
		}
		cols = append(cols, Column{Status: st, Banner: banners[st], Items: items})
	}
	return cols
}

// Banners returns the banner per status, with defaults for unset columns.
func (s *Service) Banners() Banners {
	out := DefaultBanners()
	for st, b := range s.banners.Get() {
		if b != "" {
			out[st] = b
		}
	}
	return out
}

// SetBanner replaces the banner of a status column.
func (s *Service) SetBanner(st Status, banner string) error {
	if !st.Valid() {
		return validation.New("status", "unknown status %q", st)
	}
	s.banners.Update(func(prev Banners) Banners {
		if prev == nil {
			prev = Banners{}
		}
		prev[st] = banner
		return prev
	})
	return nil
}

// Stats counts items per status.
type Stats struct {
	ToDiscover int `json:"toDiscover"`
	Watching   int `json:"watching"`
	Watched    int `json:"watched"`
}

// Stats is the watchlist header.
func (s *Service) Stats() Stats {
	var st Stats
	for _, it := range s.items.Get() {
		switch it.Status {
		case ToWatch:
			st.ToDiscover++
		case Watching:
			st.Watching++
		case Finished:
			st.Watched++
		}
	}
	return st
}
