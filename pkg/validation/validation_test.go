package validation

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("add: %w", New("amount", "must be greater than %d", 0))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	var verr *Error
	if !errors.As(err, &verr) || verr.Field != "amount" {
		t.Fatalf("expected amount field, got %v", err)
	}
	if got := verr.Error(); got != "amount: must be greater than 0" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestRequiredAndFirst(t *testing.T) {
	if err := Required("title", "  "); err == nil {
		t.Fatal("expected blank title to be rejected")
	}
	if err := First(nil, Required("title", "ok"), nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if err := First(nil, Required("a", ""), Required("b", "")); err.(*Error).Field != "a" {
		t.Fatalf("expected first error, got %v", err)
	}
}
