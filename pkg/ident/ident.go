// Package ident mints record identifiers.
//
// Identifiers are a feature prefix followed by a version 7 UUID. Version 7
// UUIDs start with a millisecond timestamp and are monotonic within a
// process, so identifiers of one feature sort in creation order.
package ident

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Prefixes used by planner features.
const (
	Task     = "task"
	Finance  = "finance"
	Journal  = "journal"
	Activity = "activity"
	Outing   = "outing"
	Watch    = "watch"
	Quality  = "quality"
	Thought  = "thought"
	Entry    = "entry"
	Todo     = "todo"
)

// Generator mints identifiers. Tests substitute a Sequence.
type Generator interface {
	New(prefix string) string
}

// UUID mints prefix-UUIDv7 identifiers.
type UUID struct{}

// New returns prefix-<uuidv7>.
func (UUID) New(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		// Only fails when the random source fails.
		id = uuid.New()
	}
	return join(prefix, id.String())
}

// New mints an identifier with the default generator.
func New(prefix string) string {
	return UUID{}.New(prefix)
}

// Sequence mints prefix-0001, prefix-0002 and so on. Zero padding keeps the
// lexical and creation orders equal.
type Sequence struct {
	n int
}

func (s *Sequence) New(prefix string) string {
	s.n++
	return join(prefix, fmt.Sprintf("%04d", s.n))
}

func join(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "-" + id
}

// HasPrefix reports whether id was minted for prefix.
func HasPrefix(id, prefix string) bool {
	return strings.HasPrefix(id, prefix+"-")
}
