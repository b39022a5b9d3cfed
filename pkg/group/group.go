// Package group buckets flat record lists by a key, usually a YYYY-MM-DD
// date string, for display.
package group

import (
	"cmp"
	"slices"
	"sort"
)

// Group is one bucket: the key shared by every item and the items in order.
type Group[K cmp.Ordered, T any] struct {
	Key   K
	Items []T
}

type order int

const (
	ascending order = iota
	descending
	firstSeen
)

type config[T any] struct {
	order order
	less  func(a, b T) bool
}

// Option tunes By.
type Option[T any] func(*config[T])

// Descending orders groups from the greatest key down.
func Descending[T any]() Option[T] {
	return func(c *config[T]) {
		c.order = descending
	}
}

// Unsorted keeps groups in the order their key first appears in the input.
func Unsorted[T any]() Option[T] {
	return func(c *config[T]) {
		c.order = firstSeen
	}
}

// Within stably sorts the items of each group by less.
func Within[T any](less func(a, b T) bool) Option[T] {
	return func(c *config[T]) {
		c.less = less
	}
}

// By groups items by key. Keys compare by plain equality, so malformed dates
// still get a group of their own. Without options groups ascend by key and
// items keep their input order. The input is never modified.
func By[T any, K cmp.Ordered](items []T, key func(T) K, opts ...Option[T]) []Group[K, T] {
	var c config[T]
	for _, opt := range opts {
		opt(&c)
	}

	groups := make([]Group[K, T], 0)
	index := make(map[K]int)
	for _, item := range items {
		k := key(item)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	switch c.order {
	case ascending:
		slices.SortFunc(groups, func(a, b Group[K, T]) int { return cmp.Compare(a.Key, b.Key) })
	case descending:
		slices.SortFunc(groups, func(a, b Group[K, T]) int { return cmp.Compare(b.Key, a.Key) })
	}

	if c.less != nil {
		for _, g := range groups {
			sort.SliceStable(g.Items, func(i, j int) bool { return c.less(g.Items[i], g.Items[j]) })
		}
	}
	return groups
}

// ByDate groups items by a date-key string.
func ByDate[T any](items []T, date func(T) string, opts ...Option[T]) []Group[string, T] {
	return By(items, date, opts...)
}

// ByTime orders items by a zero-padded HH:MM field. Lexicographic order is
// chronological for that format.
func ByTime[T any](clock func(T) string) Option[T] {
	return Within(func(a, b T) bool { return clock(a) < clock(b) })
}

// Index flattens groups into a lookup by key.
func Index[K cmp.Ordered, T any](groups []Group[K, T]) map[K][]T {
	out := make(map[K][]T, len(groups))
	for _, g := range groups {
		out[g.Key] = g.Items
	}
	return out
}

// Keys returns the group keys in order.
func Keys[K cmp.Ordered, T any](groups []Group[K, T]) []K {
	out := make([]K, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Key)
	}
	return out
}
