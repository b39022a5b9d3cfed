// Package store provides the durable string-keyed, string-valued slots that
// planner state is persisted into.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Store is the durable key-value contract every persisted slot goes through.
// Keys are dotted paths such as "planner.finance.expenses".
type Store interface {
	// Get returns the value stored at key. The boolean is false when the key
	// has never been written.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	// Keys lists every stored key in ascending order.
	Keys(ctx context.Context) []string
	Watch(ctx context.Context) (<-chan Event, error)
}

var (
	// ErrInvalidKey is returned for keys that cannot address a slot.
	ErrInvalidKey = errors.New("store: invalid key")
	// ErrUnavailable is returned when durable storage cannot be used at all in
	// the current environment. Callers fall back to in-memory state.
	ErrUnavailable = errors.New("store: durable storage unavailable")
)

// ValidateKey checks that key is a dotted path of non-empty segments made of
// letters, digits, '_' and '-'.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty", ErrInvalidKey)
	}
	for _, segment := range strings.Split(key, ".") {
		if segment == "" {
			return fmt.Errorf("%w: %q has an empty segment", ErrInvalidKey, key)
		}
		for _, r := range segment {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			default:
				return fmt.Errorf("%w: %q contains %q", ErrInvalidKey, key, r)
			}
		}
	}
	return nil
}
