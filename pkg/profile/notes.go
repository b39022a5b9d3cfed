package profile

import (
	"encoding/json"
	"log/slog"

	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/validation"
)

const (
	// NotesKey is the slot holding the notepad.
	NotesKey = "planner.notes"
	// LegacyNotesKey is the older notepad shape, read once to seed NotesKey.
	LegacyNotesKey = "planner_daily_tasks"
	// NoteSlots is the size of the notepad.
	NoteSlots = 4
)

// Notes is the notepad. It always has NoteSlots entries.
type Notes []string

// UnmarshalJSON accepts any array, turning non-string entries into blanks
// and padding or cutting to NoteSlots. Anything else is an error.
func (n *Notes) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	vals := make([]string, 0, len(raw))
	for _, r := range raw {
		var s string
		if json.Unmarshal(r, &s) != nil {
			s = ""
		}
		vals = append(vals, s)
	}
	*n = pad(vals)
	return nil
}

func pad(vals []string) Notes {
	out := make(Notes, NoteSlots)
	copy(out, vals)
	return out
}

// legacyNotes maps {"tasks":[{"text":…}]} from LegacyNotesKey onto the
// notepad. A missing or unreadable legacy slot yields a blank notepad.
func legacyNotes(s store.Store, log *slog.Logger) Notes {
	if s == nil {
		return pad(nil)
	}
	raw, ok, err := s.Get(LegacyNotesKey)
	if err != nil || !ok {
		return pad(nil)
	}
	var legacy struct {
		Tasks []json.RawMessage `json:"tasks"`
	}
	if err := json.Unmarshal([]byte(raw), &legacy); err != nil {
		log.Warn("legacy notes unreadable", "key", LegacyNotesKey, "error", err)
		return pad(nil)
	}
	vals := make([]string, 0, len(legacy.Tasks))
	for _, t := range legacy.Tasks {
		var task struct {
			Text *string `json:"text"`
		}
		if json.Unmarshal(t, &task) != nil || task.Text == nil {
			vals = append(vals, "")
			continue
		}
		vals = append(vals, *task.Text)
	}
	log.Info("notes migrated", "from", LegacyNotesKey, "entries", len(vals))
	return pad(vals)
}

// Notes returns the notepad.
func (s *Service) Notes() Notes {
	return pad(s.notes.Get())
}

// SetNote writes slot i.
func (s *Service) SetNote(i int, text string) error {
	if i < 0 || i >= NoteSlots {
		return validation.New("slot", "must be between 1 and %d", NoteSlots)
	}
	s.notes.Update(func(prev Notes) Notes {
		prev = pad(prev)
		prev[i] = text
		return prev
	})
	return nil
}

// ClearNote empties slot i. An empty slot is left alone.
func (s *Service) ClearNote(i int) error {
	if i < 0 || i >= NoteSlots {
		return validation.New("slot", "must be between 1 and %d", NoteSlots)
	}
	if s.Notes()[i] == "" {
		return nil
	}
	return s.SetNote(i, "")
}
