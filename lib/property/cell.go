package property

import (
	"sync"
	"sync/atomic"
)

// ChangeListener is invoked with the previous and the new value after a cell changed.
type ChangeListener[T comparable] func(oldValue, newValue T)

type listenerEntry[T comparable] struct {
	fn      ChangeListener[T]
	removed atomic.Bool
}

// Cell is a single mutable value with change notification.
//
// Listeners run synchronously on the goroutine calling Set, in registration
// order, and only if the value actually changed. The cell's lock is never held
// while listeners run, so a listener may set this or any other cell again.
type Cell[T comparable] struct {
	mu        sync.Mutex
	value     T
	listeners []*listenerEntry[T]
}

// NewCell creates a cell holding initial.
func NewCell[T comparable](initial T) *Cell[T] {
	return &Cell[T]{value: initial}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set replaces the value and notifies all listeners.
// It returns false, without notifying anybody, if v equals the current value.
func (c *Cell[T]) Set(v T) bool {
	c.mu.Lock()
	if c.value == v {
		c.mu.Unlock()
		return false
	}
	old := c.value
	c.value = v
	listeners := c.listeners
	c.mu.Unlock()

	for _, l := range listeners {
		if !l.removed.Load() {
			l.fn(old, v)
		}
	}
	return true
}

// AddListener registers l and returns a function that removes it again.
// Calling the returned function more than once is a no-op.
func (c *Cell[T]) AddListener(l ChangeListener[T]) (remove func()) {
	entry := &listenerEntry[T]{fn: l}

	c.mu.Lock()
	c.listeners = append(c.listeners, entry)
	c.mu.Unlock()

	return func() {
		if entry.removed.Swap(true) {
			return
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		// copy on write, a dispatch in progress keeps iterating its own slice
		kept := make([]*listenerEntry[T], 0, len(c.listeners))
		for _, e := range c.listeners {
			if e != entry {
				kept = append(kept, e)
			}
		}
		c.listeners = kept
	}
}

// Listeners returns the number of registered listeners.
func (c *Cell[T]) Listeners() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.listeners)
}
