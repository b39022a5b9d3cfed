// Package profile is the planner dashboard: the owner's profile card, a four
// slot notepad, time progress and the day's tasks.
package profile

import (
	"log/slog"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"tableflip.dev/planner/pkg/dataurl"
	"tableflip.dev/planner/pkg/datekey"
	"tableflip.dev/planner/pkg/fold"
	"tableflip.dev/planner/pkg/logging"
	"tableflip.dev/planner/pkg/persist"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/validation"
)

const (
	// StoreKey is the slot holding the profile.
	StoreKey = "planner.profile"
	// DefaultName is shown when nothing better is known.
	DefaultName = "Profil Planner"
	// DefaultJoinedDate is the sign-up date of a fresh profile.
	DefaultJoinedDate = "2025-11-13T00:00:00.000Z"
	// DefaultPhoto is the stock profile picture.
	DefaultPhoto = "planner-10.jpg"

	isoDay = "2006-01-02T15:04:05.000Z"
)

// ValidationError is returned when input is rejected.
type ValidationError = validation.Error

// Profile is the persisted profile card. Dates are ISO timestamps at UTC
// midnight.
type Profile struct {
	Photo      string `json:"photo"`
	Name       string `json:"name"`
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	Birthday   string `json:"birthday,omitempty"`
	JoinedDate string `json:"joinedDate"`
	ZodiacSign string `json:"zodiacSign"`
}

// DisplayName is first and last name, or Name when both are blank.
func (p Profile) DisplayName() string {
	return DisplayName(p.FirstName, p.LastName, p.Name)
}

// Parts returns the first and last name, derived from the display name when
// the fields are blank.
func (p Profile) Parts() (string, string) {
	first, last := DeriveNameParts(p.DisplayName())
	if f := strings.TrimSpace(p.FirstName); f != "" {
		first = f
	}
	if l := strings.TrimSpace(p.LastName); l != "" {
		last = l
	}
	return first, last
}

// CustomPhoto reports whether the stock picture was replaced.
func (p Profile) CustomPhoto() bool {
	return p.Photo != "" && p.Photo != DefaultPhoto
}

// Sign is the profile's zodiac sign.
func (p Profile) Sign() Sign {
	s, _ := LookupSign(p.ZodiacSign)
	return s
}

// JoinedLabel formats the joined date, or "Date inconnue".
func (p Profile) JoinedLabel() string {
	if t, ok := parseISO(p.JoinedDate); ok {
		return datekey.Long(t)
	}
	return "Date inconnue"
}

// BirthdayLabel formats the birthday, or "Non précisée".
func (p Profile) BirthdayLabel() string {
	if t, ok := parseISO(p.Birthday); ok {
		return datekey.Long(t)
	}
	return "Non précisée"
}

var nameSeparators = regexp.MustCompile(`[._-]`)

// NameFromEmail turns "marie-claire.dupont@x.fr" into "Marie Claire Dupont".
func NameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	var parts []string
	for _, seg := range nameSeparators.Split(local, -1) {
		if seg == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(seg)
		parts = append(parts, string(unicode.ToUpper(r))+seg[size:])
	}
	return strings.Join(parts, " ")
}

// DeriveNameParts splits a full name: the last word is the last name, the
// rest is the first name.
func DeriveNameParts(full string) (string, string) {
	words := strings.Fields(full)
	switch len(words) {
	case 0:
		return "", ""
	case 1:
		return words[0], ""
	}
	return strings.Join(words[:len(words)-1], " "), words[len(words)-1]
}

// DisplayName joins the trimmed first and last name, falling back when both
// are blank.
func DisplayName(first, last, fallback string) string {
	var parts []string
	for _, p := range []string{first, last} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return fallback
	}
	return strings.Join(parts, " ")
}

// DetailKey names an editable profile detail.
type DetailKey string

const (
	FirstName  DetailKey = "firstName"
	LastName   DetailKey = "lastName"
	Birthday   DetailKey = "birthday"
	JoinedDate DetailKey = "joinedDate"
	ZodiacSign DetailKey = "zodiacSign"
)

// DetailKeys lists the editable details.
var DetailKeys = []DetailKey{FirstName, LastName, Birthday, JoinedDate, ZodiacSign}

// Option configures a Service.
type Option func(*Service)

// WithEmail names the signed-in account. Its local part provides the
// fallback display name.
func WithEmail(email string) Option {
	return func(s *Service) {
		s.fallback = NameFromEmail(email)
	}
}

// WithClock pins "now".
func WithClock(c datekey.Clock) Option {
	return func(s *Service) {
		s.now = c
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.log = l
	}
}

// Service owns the profile and notes slots.
type Service struct {
	value    *persist.Value[Profile]
	notes    *persist.Value[Notes]
	fallback string
	now      datekey.Clock
	log      *slog.Logger
}

// New mounts the profile and the notepad. A stored profile still carrying
// the default name picks up the account name.
func New(s store.Store, opts ...Option) *Service {
	svc := &Service{now: time.Now}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.log == nil {
		svc.log = logging.For(logging.ComponentProfile)
	}
	svc.value = persist.New(s, StoreKey, svc.defaultProfile, persist.WithLogger(svc.log))
	svc.notes = persist.New(s, NotesKey, func() Notes { return legacyNotes(s, svc.log) }, persist.WithLogger(svc.log))

	if fb := svc.fallback; fb != "" {
		p := svc.value.Get()
		if (p.Name == "" || p.Name == DefaultName) && p.Name != fb {
			svc.value.Update(func(prev Profile) Profile {
				prev.Name = fb
				return prev
			})
		}
	}
	return svc
}

func (s *Service) defaultProfile() Profile {
	name := s.fallback
	if name == "" {
		name = DefaultName
	}
	first, _, _ := strings.Cut(s.fallback, " ")
	return Profile{
		Photo:      DefaultPhoto,
		Name:       name,
		FirstName:  first,
		JoinedDate: DefaultJoinedDate,
		ZodiacSign: DefaultSign,
	}
}

func (s *Service) fallbackName(p Profile) string {
	if s.fallback != "" {
		return s.fallback
	}
	if p.Name != "" {
		return p.Name
	}
	return DefaultName
}

// Reload re-reads the profile and the notepad after another process wrote
// them.
func (s *Service) Reload() {
	s.value.Reload()
	s.notes.Reload()
}

// Profile returns the profile.
func (s *Service) Profile() Profile {
	return s.value.Get()
}

// SetDetail edits one detail and rebuilds the display name. Dates are given
// as YYYY-MM-DD; an empty value clears them.
func (s *Service) SetDetail(key DetailKey, value string) (Profile, error) {
	stored := value
	switch key {
	case FirstName, LastName:
		stored = strings.TrimSpace(value)
	case Birthday, JoinedDate:
		iso, err := isoFromDay(value)
		if err != nil {
			return Profile{}, validation.New(string(key), "%v", err)
		}
		stored = iso
	case ZodiacSign:
		if value == "" {
			stored = DefaultSign
			break
		}
		sign, ok := lookupSignFolded(value)
		if !ok {
			return Profile{}, validation.New(string(key), "unknown sign %q", value)
		}
		stored = sign.Value
	default:
		return Profile{}, validation.New("key", "unknown detail %q", key)
	}

	return s.value.Update(func(prev Profile) Profile {
		switch key {
		case FirstName:
			prev.FirstName = stored
		case LastName:
			prev.LastName = stored
		case Birthday:
			prev.Birthday = stored
		case JoinedDate:
			prev.JoinedDate = stored
		case ZodiacSign:
			prev.ZodiacSign = stored
		}
		prev.Name = DisplayName(prev.FirstName, prev.LastName, s.fallbackName(prev))
		return prev
	}), nil
}

// Draft is the whole profile form.
type Draft struct {
	FirstName  string
	LastName   string
	Birthday   string
	JoinedDate string
	ZodiacSign string
}

// Save applies the profile form. A blank joined date means today.
func (s *Service) Save(d Draft) (Profile, error) {
	birthday, err := isoFromDay(d.Birthday)
	if err != nil {
		return Profile{}, validation.New(string(Birthday), "%v", err)
	}
	joined, err := isoFromDay(d.JoinedDate)
	if err != nil {
		return Profile{}, validation.New(string(JoinedDate), "%v", err)
	}
	if joined == "" {
		joined = s.now().UTC().Format(isoDay)
	}
	sign := Signs[0]
	if strings.TrimSpace(d.ZodiacSign) != "" {
		var ok bool
		if sign, ok = lookupSignFolded(d.ZodiacSign); !ok {
			return Profile{}, validation.New(string(ZodiacSign), "unknown sign %q", d.ZodiacSign)
		}
	}
	first, last := strings.TrimSpace(d.FirstName), strings.TrimSpace(d.LastName)
	return s.value.Update(func(prev Profile) Profile {
		prev.FirstName = first
		prev.LastName = last
		prev.Name = DisplayName(first, last, s.fallbackName(prev))
		prev.Birthday = birthday
		prev.JoinedDate = joined
		prev.ZodiacSign = sign.Value
		return prev
	}), nil
}

// SetPhoto replaces the profile picture with an image data URL.
func (s *Service) SetPhoto(url string) error {
	if !dataurl.IsImage(url) {
		return validation.New("photo", "expected an image data URL")
	}
	s.value.Update(func(prev Profile) Profile {
		prev.Photo = url
		return prev
	})
	return nil
}

// ResetPhoto restores the stock picture.
func (s *Service) ResetPhoto() {
	s.value.Update(func(prev Profile) Profile {
		prev.Photo = DefaultPhoto
		return prev
	})
}

func lookupSignFolded(value string) (Sign, bool) {
	for _, sign := range Signs {
		if fold.Equal(sign.Value, value) {
			return sign, true
		}
	}
	return Sign{}, false
}

// isoFromDay turns YYYY-MM-DD into an ISO timestamp at UTC midnight.
func isoFromDay(day string) (string, error) {
	day = strings.TrimSpace(day)
	if day == "" {
		return "", nil
	}
	t, err := time.Parse(datekey.DayLayout, day)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(isoDay), nil
}

// DayFromISO returns the YYYY-MM-DD part of an ISO timestamp.
func DayFromISO(iso string) string {
	if len(iso) >= 10 {
		return iso[:10]
	}
	if t, ok := parseISO(iso); ok {
		return datekey.Day(t.UTC())
	}
	return ""
}

func parseISO(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, datekey.DayLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
