// Package validation holds the error returned when user input is rejected.
package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid matches every *Error with errors.Is.
var ErrInvalid = errors.New("invalid input")

// Error names the rejected field and why it was rejected.
type Error struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// New returns an *Error for field.
func New(field, reason string, args ...any) *Error {
	if len(args) > 0 {
		reason = fmt.Sprintf(reason, args...)
	}
	return &Error{Field: field, Reason: reason}
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

func (e *Error) Is(target error) bool {
	return target == ErrInvalid
}

// Required rejects blank values.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return New(field, "is required")
	}
	return nil
}

// First returns the first non-nil error.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
