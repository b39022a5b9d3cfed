// Package share hands text to the system clipboard.
package share

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/atotto/clipboard"

	"tableflip.dev/planner/pkg/logging"
)

// Method is how the text was shared.
type Method string

const (
	Clipboard Method = "clipboard"
	Printed   Method = "printed"
)

// Copier writes to a clipboard.
type Copier func(string) error

// Sharer copies text, printing it for manual copy when no clipboard works.
type Sharer struct {
	Copy Copier
	Log  *slog.Logger
}

// New uses the system clipboard.
func New() *Sharer {
	s := &Sharer{Log: logging.For(logging.ComponentShare)}
	if !clipboard.Unsupported {
		s.Copy = clipboard.WriteAll
	}
	return s
}

// Text shares text. w receives a confirmation, or the text itself when the
// clipboard is unavailable.
func (s *Sharer) Text(w io.Writer, text string) (Method, error) {
	if s.Copy != nil {
		err := s.Copy(text)
		if err == nil {
			_, err = fmt.Fprintln(w, "Copié dans le presse-papiers.")
			return Clipboard, err
		}
		if s.Log != nil {
			s.Log.Warn("clipboard unavailable, printing instead", "error", err)
		}
	}
	if _, err := fmt.Fprintln(w, text); err != nil {
		return Printed, fmt.Errorf("share: print: %w", err)
	}
	return Printed, nil
}

// Text shares text with the system clipboard.
func Text(w io.Writer, text string) (Method, error) {
	return New().Text(w, text)
}
