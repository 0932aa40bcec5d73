package client

import (
	"strings"
)

// Predicate is one independent filter over an entity. Predicates compose
// with And and are pure: the filtered view is recomputed from the full
// collection every time, never kept as separate state.
type Predicate[T any] func(T) bool

// And composes predicates; all must match. No predicates matches
// everything.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return func(item T) bool {
		for _, pred := range preds {
			if !pred(item) {
				return false
			}
		}
		return true
	}
}

// Apply returns the entries matching the predicate, preserving order.
func Apply[T any](items []T, pred Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Search matches a case-insensitive substring against any of the fields
// returned by the accessor. An empty query matches everything, and absent
// optional fields come through as empty strings rather than panicking.
func Search[T any](query string, fields func(T) []string) Predicate[T] {
	query = strings.ToLower(strings.TrimSpace(query))
	return func(item T) bool {
		if query == "" {
			return true
		}
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), query) {
				return true
			}
		}
		return false
	}
}

// Equals matches a categorical field exactly. An empty want acts as the
// "all" option.
func Equals[T any](want string, field func(T) string) Predicate[T] {
	return func(item T) bool {
		if want == "" {
			return true
		}
		return field(item) == want
	}
}

// Where matches on an arbitrary boolean field, e.g. urgency.
func Where[T any](enabled bool, field func(T) bool) Predicate[T] {
	return func(item T) bool {
		if !enabled {
			return true
		}
		return field(item)
	}
}
