package selflove

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"tableflip.dev/planner/pkg/ident"
	"tableflip.dev/planner/pkg/logging"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/validation"
)

const pixel = "data:image/png;base64,iVBORw0KGgo="

func newService(s store.Store) *Service {
	return New(s,
		WithClock(func() time.Time { return time.Date(2024, time.May, 10, 9, 0, 0, 0, time.UTC) }),
		WithIDs(&ident.Sequence{}),
		WithLogger(logging.Discard()))
}

func TestDefault(t *testing.T) {
	st := newService(store.NewMemory()).State()
	if len(st.Photos) != PhotoSlots || st.Photos[5].ID != "photo-5" || st.Photos[0].DataURL != nil {
		t.Fatalf("unexpected photos %+v", st.Photos)
	}
	if len(st.Qualities) != 3 || len(st.Thoughts) != 3 || st.Journal == nil {
		t.Fatalf("unexpected default state %+v", st)
	}
}

func TestQualitiesAndThoughts(t *testing.T) {
	svc := newService(store.NewMemory())

	q, err := svc.AddQuality("  Je suis curieuse. ")
	if err != nil {
		t.Fatalf("add quality: %v", err)
	}
	if svc.State().Qualities[0] != q || q.Text != "Je suis curieuse." || q.ID != "quality-0001" {
		t.Fatalf("expected new quality on top, got %+v", svc.State().Qualities)
	}
	th, err := svc.AddThought("Je dois être parfaite.")
	if err != nil {
		t.Fatalf("add thought: %v", err)
	}
	thoughts := svc.State().Thoughts
	if thoughts[len(thoughts)-1] != th {
		t.Fatalf("expected new thought last, got %+v", thoughts)
	}
	if _, err := svc.AddQuality(" "); !errors.Is(err, validation.ErrInvalid) {
		t.Fatalf("expected validation error, got %v", err)
	}

	if err := svc.ReleaseThought("thought-1"); err != nil {
		t.Fatalf("release: %v", err)
	}
	if err := svc.ReleaseThought("thought-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.RemoveQuality(q.ID); err != nil {
		t.Fatalf("remove quality: %v", err)
	}
	if got := len(svc.State().Qualities); got != 3 {
		t.Fatalf("expected 3 qualities, got %d", got)
	}
}

func TestJournalKeepsTwelve(t *testing.T) {
	s := store.NewMemory()
	svc := newService(s)
	for i := 0; i < JournalLimit; i++ {
		if _, dropped, err := svc.AddJournal(fmt.Sprintf("note %d", i)); err != nil || dropped != 0 {
			t.Fatalf("entry %d: dropped %d, err %v", i, dropped, err)
		}
	}
	e, dropped, err := svc.AddJournal("note 12")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if dropped != 1 {
		t.Fatalf("expected 1 dropped, got %d", dropped)
	}
	journal := newService(s).State().Journal
	if len(journal) != JournalLimit || journal[0].ID != e.ID || journal[JournalLimit-1].Text != "note 1" {
		t.Fatalf("unexpected journal after reload: %d entries, first %+v", len(journal), journal[0])
	}
	if !journal[0].CreatedAt.Equal(time.Date(2024, time.May, 10, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected createdAt %v", journal[0].CreatedAt)
	}
}

func TestPhotosAndCertificateImage(t *testing.T) {
	svc := newService(store.NewMemory())
	if got := svc.CertificateImage(); got != "" {
		t.Fatalf("expected no image, got %q", got)
	}
	if err := svc.SetPhoto("photo-2", pixel); err != nil {
		t.Fatalf("set photo: %v", err)
	}
	if got := svc.CertificateImage(); got != pixel {
		t.Fatalf("expected the first filled slot, got %q", got)
	}
	if err := svc.SetPhoto("photo-9", pixel); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.SetPhoto("photo-1", "https://example.com/a.png"); !errors.Is(err, validation.ErrInvalid) {
		t.Fatalf("expected validation error, got %v", err)
	}

	cert := pixel + "AA"
	if err := svc.SetCertificatePhoto(cert); err != nil {
		t.Fatalf("set certificate photo: %v", err)
	}
	if got := svc.CertificateImage(); got != cert {
		t.Fatalf("expected the certificate photo, got %q", got)
	}
	svc.ClearCertificatePhoto()
	if err := svc.ClearPhoto("photo-2"); err != nil {
		t.Fatalf("clear photo: %v", err)
	}
	if got := svc.CertificateImage(); got != "" {
		t.Fatalf("expected no image after clearing, got %q", got)
	}
}

func TestNullBoardHeals(t *testing.T) {
	s := store.NewMemory()
	if err := s.Set(StoreKey, "null"); err != nil {
		t.Fatal(err)
	}
	svc := newService(s)
	if err := svc.SetPhoto("photo-1", pixel); err != nil {
		t.Fatalf("expected the default photo slots, got %v", err)
	}
}

func TestDaily(t *testing.T) {
	// "2024-05-10" sums to 488.
	if got := AffirmationOfDay("2024-05-10"); got != Affirmations[2] {
		t.Fatalf("unexpected affirmation %q", got)
	}
	if got := QuoteOfDay("2024-05-10"); got != Quotes[3] {
		t.Fatalf("unexpected quote %q", got)
	}
}

func TestCertificate(t *testing.T) {
	got := Certificate(nil, "2024-05-10")
	want := strings.Join([]string{
		"✨ Certificat de pure beauté ✨",
		"Je célèbre la personne que je suis :",
		"• Je m'aime pour qui je suis.",
		Affirmations[2],
	}, "\n")
	if got != want {
		t.Fatalf("expected\n%s\ngot\n%s", want, got)
	}

	svc := newService(store.NewMemory())
	if text := svc.Certificate("2024-05-10"); !strings.Contains(text, "• J'ai une force tranquille.\n• Je sais") {
		t.Fatalf("expected qualities listed, got\n%s", text)
	}
}
