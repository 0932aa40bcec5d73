package client

import (
	"sync"
)

// Entity is anything a Collection can key by id.
type Entity interface {
	EntityID() string
}

// SyncPolicy declares how a resource keeps its collection consistent after
// a mutation. Refetch when the server computes fields the client cannot
// know; patch in place when the mutation's effect is fully known
// client-side.
type SyncPolicy int

const (
	SyncRefetch SyncPolicy = iota
	SyncPatch
)

// Collection holds a page's in-memory copy of a remote collection.
//
// List responses carry a ticket from Begin; Complete discards any response
// that is not the latest issued, so two overlapping fetches can never leave
// an older response as the visible state. Patches are applied only after
// the server has confirmed the mutation.
type Collection[T Entity] struct {
	mu     sync.Mutex
	items  []T
	policy SyncPolicy

	issued  uint64 // last fetch ticket handed out
	applied uint64 // ticket of the response currently visible
}

func NewCollection[T Entity](policy SyncPolicy) *Collection[T] {
	return &Collection[T]{policy: policy}
}

func (c *Collection[T]) Policy() SyncPolicy {
	return c.policy
}

// Items returns a snapshot copy of the collection.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Get returns the entity with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if item.EntityID() == id {
			return item, true
		}
	}

	var zero T
	return zero, false
}

// Begin issues a fetch ticket. Call before the list request goes out.
func (c *Collection[T]) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.issued++
	return c.issued
}

// Complete installs a list response unless a newer fetch has been issued or
// applied since; stale responses are discarded and the visible state is
// left alone. Reports whether the response was applied.
func (c *Collection[T]) Complete(ticket uint64, items []T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ticket != c.issued || ticket <= c.applied {
		return false
	}

	c.items = items
	c.applied = ticket
	return true
}

// Prepend inserts a newly created entity at the head of the collection.
func (c *Collection[T]) Prepend(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append([]T{item}, c.items...)
}

// Patch replaces the entry whose id matches with merge(old). Every other
// entry is left untouched. Reports whether a matching entry was found.
func (c *Collection[T]) Patch(id string, merge func(T) T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.EntityID() == id {
			c.items[i] = merge(item)
			return true
		}
	}
	return false
}

// Remove drops the entry with the given id.
func (c *Collection[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.EntityID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}
