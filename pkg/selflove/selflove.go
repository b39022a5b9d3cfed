// Package selflove is the self-love board: a photo wall, qualities, thoughts
// to let go of and a short journal.
package selflove

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"tableflip.dev/planner/pkg/dataurl"
	"tableflip.dev/planner/pkg/ident"
	"tableflip.dev/planner/pkg/logging"
	"tableflip.dev/planner/pkg/persist"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/validation"
)

const (
	// StoreKey is the slot holding the whole board.
	StoreKey = "planner.selfLove"
	// PhotoSlots is the size of the photo wall.
	PhotoSlots = 6
	// JournalLimit is how many journal entries are kept.
	JournalLimit = 12
)

// ErrNotFound is returned for unknown ids.
var ErrNotFound = errors.New("selflove: not found")

// ValidationError is returned when input is rejected.
type ValidationError = validation.Error

// Photo is one slot of the wall. DataURL is nil while the slot is empty.
type Photo struct {
	ID      string  `json:"id"`
	DataURL *string `json:"dataUrl"`
}

// Note is a quality or a thought.
type Note struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// JournalEntry is one short journal line.
type JournalEntry struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// State is the persisted board.
type State struct {
	CertificatePhoto *string        `json:"certificatePhoto"`
	Photos           []Photo        `json:"photos"`
	Qualities        []Note         `json:"qualities"`
	Thoughts         []Note         `json:"thoughts"`
	Journal          []JournalEntry `json:"journal"`
}

// Default is the board an empty store starts with.
func Default() State {
	photos := make([]Photo, PhotoSlots)
	for i := range photos {
		photos[i] = Photo{ID: fmt.Sprintf("photo-%d", i)}
	}
	return State{
		Photos: photos,
		Qualities: []Note{
			{ID: "quality-1", Text: "Mon sourire illumine les gens."},
			{ID: "quality-2", Text: "J'ai une force tranquille."},
			{ID: "quality-3", Text: "Je sais écouter avec le cœur."},
		},
		Thoughts: []Note{
			{ID: "thought-1", Text: "Je ne suis pas assez."},
			{ID: "thought-2", Text: "Je dois tout contrôler."},
			{ID: "thought-3", Text: "Je ne mérite pas ce que j'ai."},
		},
		Journal: []JournalEntry{},
	}
}

// Option configures a Service.
type Option func(*Service)

// WithClock pins "now".
func WithClock(c func() time.Time) Option {
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

// Service owns the board slot.
type Service struct {
	value *persist.Value[State]
	ids   ident.Generator
	now   func() time.Time
	log   *slog.Logger
}

// New mounts the board.
func New(s store.Store, opts ...Option) *Service {
	svc := &Service{ids: ident.UUID{}, now: time.Now}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.log == nil {
		svc.log = logging.For(logging.ComponentSelfLove)
	}
	svc.value = persist.New(s, StoreKey, Default, persist.WithLogger(svc.log))
	return svc
}

// State returns the board.
func (s *Service) State() State {
	return s.value.Get()
}

// AddQuality puts a quality on top.
func (s *Service) AddQuality(text string) (Note, error) {
	n, err := s.note(ident.Quality, text)
	if err != nil {
		return Note{}, err
	}
	s.value.Update(func(prev State) State {
		prev.Qualities = append([]Note{n}, prev.Qualities...)
		return prev
	})
	return n, nil
}

// RemoveQuality deletes a quality.
func (s *Service) RemoveQuality(id string) error {
	return s.removeNote(id, func(st *State) *[]Note { return &st.Qualities })
}

// AddThought appends a thought to let go of.
func (s *Service) AddThought(text string) (Note, error) {
	n, err := s.note(ident.Thought, text)
	if err != nil {
		return Note{}, err
	}
	s.value.Update(func(prev State) State {
		prev.Thoughts = append(prev.Thoughts, n)
		return prev
	})
	return n, nil
}

// ReleaseThought lets a thought go.
func (s *Service) ReleaseThought(id string) error {
	return s.removeNote(id, func(st *State) *[]Note { return &st.Thoughts })
}

func (s *Service) note(kind, text string) (Note, error) {
	text = strings.TrimSpace(text)
	if err := validation.Required(kind, text); err != nil {
		return Note{}, err
	}
	return Note{ID: s.ids.New(kind), Text: text}, nil
}

func (s *Service) removeNote(id string, list func(*State) *[]Note) error {
	st := s.value.Get()
	if !slices.ContainsFunc(*list(&st), func(n Note) bool { return n.ID == id }) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.value.Update(func(prev State) State {
		l := list(&prev)
		*l = slices.DeleteFunc(*l, func(n Note) bool { return n.ID == id })
		return prev
	})
	return nil
}

// AddJournal puts a journal entry on top and keeps the JournalLimit most
// recent. It returns how many older entries were dropped.
func (s *Service) AddJournal(text string) (JournalEntry, int, error) {
	text = strings.TrimSpace(text)
	if err := validation.Required("text", text); err != nil {
		return JournalEntry{}, 0, err
	}
	e := JournalEntry{ID: s.ids.New(ident.Entry), Text: text, CreatedAt: s.now().UTC()}
	dropped := 0
	s.value.Update(func(prev State) State {
		prev.Journal = append([]JournalEntry{e}, prev.Journal...)
		if len(prev.Journal) > JournalLimit {
			dropped = len(prev.Journal) - JournalLimit
			prev.Journal = prev.Journal[:JournalLimit]
		}
		return prev
	})
	if dropped > 0 {
		s.log.Info("journal truncated", "dropped", dropped, "kept", JournalLimit)
	}
	return e, dropped, nil
}

// SetPhoto fills slot id with an image data URL.
func (s *Service) SetPhoto(id, url string) error {
	if !dataurl.IsImage(url) {
		return validation.New("photo", "expected an image data URL")
	}
	return s.photo(id, &url)
}

// ClearPhoto empties slot id.
func (s *Service) ClearPhoto(id string) error {
	return s.photo(id, nil)
}

func (s *Service) photo(id string, url *string) error {
	st := s.value.Get()
	idx := slices.IndexFunc(st.Photos, func(p Photo) bool { return p.ID == id })
	if idx < 0 {
		return fmt.Errorf("%w: photo %s", ErrNotFound, id)
	}
	s.value.Update(func(prev State) State {
		prev.Photos[idx].DataURL = url
		return prev
	})
	return nil
}

// SetCertificatePhoto sets the certificate picture from an image data URL.
func (s *Service) SetCertificatePhoto(url string) error {
	if !dataurl.IsImage(url) {
		return validation.New("certificatePhoto", "expected an image data URL")
	}
	s.value.Update(func(prev State) State {
		prev.CertificatePhoto = &url
		return prev
	})
	return nil
}

// ClearCertificatePhoto removes the certificate picture.
func (s *Service) ClearCertificatePhoto() {
	s.value.Update(func(prev State) State {
		prev.CertificatePhoto = nil
		return prev
	})
}

// CertificateImage is the certificate picture, or the first filled photo
// slot. It is empty when there is neither.
func (s *Service) CertificateImage() string {
	st := s.value.Get()
	if st.CertificatePhoto != nil && *st.CertificatePhoto != "" {
		return *st.CertificatePhoto
	}
	for _, p := range st.Photos {
		if p.DataURL != nil && *p.DataURL != "" {
			return *p.DataURL
		}
	}
	return ""
}

// Certificate is the text shared for the day dayKey.
func (s *Service) Certificate(dayKey string) string {
	return Certificate(s.value.Get().Qualities, dayKey)
}
