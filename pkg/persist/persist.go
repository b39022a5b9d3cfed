// Package persist provides Value, in-memory state mirrored into a store slot.
//
// A Value is created once per command run. Creation reads the slot and falls
// back to a caller supplied default when the slot is absent, null or cannot
// be decoded; the default is written back straight away so broken state heals
// on first read. Every later write replaces the in-memory value first and then
// persists it. Store and codec failures are logged and never returned: the
// in-memory value stays authoritative.
package persist

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"tableflip.dev/planner/pkg/logging"
	"tableflip.dev/planner/pkg/store"
)

// Codec turns values into the strings held by a store slot.
type Codec interface {
	Encode(v any) (string, error)
	Decode(data string, v any) error
}

// JSON is the default codec.
var JSON Codec = jsonCodec{}

type jsonCodec struct{}

func (jsonCodec) Encode(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (jsonCodec) Decode(data string, v any) error {
	return json.Unmarshal([]byte(data), v)
}

type options struct {
	codec Codec
	log   *slog.Logger
}

// Option configures a Value.
type Option func(*options)

// WithCodec replaces the JSON codec.
func WithCodec(c Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// WithLogger sets the logger diagnostics are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// Value is a typed slot. It is safe for concurrent use; writes to one Value
// are totally ordered and each produces exactly one store write.
type Value[T any] struct {
	mu         sync.Mutex
	key        string
	store      store.Store
	codec      Codec
	log        *slog.Logger
	value      T
	persistent bool
	err        error
}

// New initializes the slot at key. A nil store, or one reporting
// store.ErrUnavailable, leaves the Value in memory for its whole life.
func New[T any](s store.Store, key string, makeDefault func() T, opts ...Option) *Value[T] {
	o := options{codec: JSON}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logging.For(logging.ComponentPersist)
	}

	v := &Value[T]{
		key:        key,
		store:      s,
		codec:      o.codec,
		log:        o.log.With("key", key),
		persistent: s != nil,
	}

	if !v.persistent {
		v.log.Debug("no store, keeping value in memory")
		v.value = makeDefault()
		return v
	}

	if loaded, ok := v.load(); ok {
		v.value = loaded
		return v
	}

	v.value = makeDefault()
	if v.persistent {
		v.persistLocked()
	}
	return v
}

// load reads and decodes the slot. ok is false when the default must be used.
func (v *Value[T]) load() (T, bool) {
	var zero T
	raw, found, err := v.store.Get(v.key)
	if err != nil {
		v.fail("read", err)
		return zero, false
	}
	if !found {
		return zero, false
	}
	if strings.TrimSpace(raw) == "null" {
		v.log.Warn("discarding null value")
		return zero, false
	}
	var decoded T
	if err := v.codec.Decode(raw, &decoded); err != nil {
		v.log.Warn("discarding undecodable value", "error", err)
		return zero, false
	}
	return decoded, true
}

// fail records a store failure and drops to memory when the store is gone for
// good.
func (v *Value[T]) fail(op string, err error) {
	v.err = err
	if errors.Is(err, store.ErrUnavailable) || errors.Is(err, store.ErrInvalidKey) {
		v.log.Warn("store unavailable, keeping value in memory", "op", op, "error", err)
		v.persistent = false
		return
	}
	v.log.Error("store "+op+" failed", "error", err)
}

func (v *Value[T]) persistLocked() {
	data, err := v.codec.Encode(v.value)
	if err != nil {
		v.err = err
		v.log.Error("encode failed", "error", err)
		return
	}
	if err := v.store.Set(v.key, data); err != nil {
		v.fail("write", err)
		return
	}
	v.err = nil
}

// Key returns the slot key.
func (v *Value[T]) Key() string {
	return v.key
}

// Persistent reports whether writes still reach the store.
func (v *Value[T]) Persistent() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.persistent
}

// Err returns the failure of the latest persist attempt, if any.
func (v *Value[T]) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// Get returns the current value. It never touches the store.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.value
}

// Set replaces the value and persists it.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.value = value
	if v.persistent {
		v.persistLocked()
	}
}

// Update replaces the value with fn(previous) and persists it. fn receives a
// private copy and may mutate it freely.
func (v *Value[T]) Update(fn func(T) T) T {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.value = fn(clone(v.value))
	if v.persistent {
		v.persistLocked()
	}
	return v.value
}

// Reload re-reads the slot, for example after another process wrote it. The
// current value is kept when the slot is absent or undecodable.
func (v *Value[T]) Reload() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.persistent {
		return false
	}
	loaded, ok := v.load()
	if ok {
		v.value = loaded
	}
	return ok
}

func clone[T any](in T) T {
	b, err := json.Marshal(in)
	if err != nil {
		return in
	}
	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		return in
	}
	return out
}
