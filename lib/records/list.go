package records

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Change describes one structural modification of a List.
type Change[T comparable] struct {
	Added   []T  // elements inserted into the list
	Removed []T  // elements taken out of the list
	Moved   bool // the order changed, no element was added or removed
}

type listEntry[T comparable] struct {
	fn      func(Change[T])
	removed atomic.Bool
}

// List is an ordered observable collection. Every mutation notifies the
// listeners synchronously, in registration order, with exactly one Change.
// Mutations that change nothing do not notify.
//
// Mutators taking an index report false for an index out of range.
type List[T comparable] struct {
	mu        sync.Mutex
	items     []T
	listeners []*listEntry[T]
}

// NewList creates a list holding items.
func NewList[T comparable](items ...T) *List[T] {
	return &List[T]{items: slices.Clone(items)}
}

// --------------------------------------------------------------------------
// Read access
// --------------------------------------------------------------------------

// Len returns the number of elements.
func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Get returns the element at index i. It panics if i is out of range.
func (l *List[T]) Get(i int) T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.items[i]
}

// All returns a copy of the elements in order.
func (l *List[T]) All() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.items)
}

// Index returns the position of the first occurrence of v, or -1.
func (l *List[T]) Index(v T) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Index(l.items, v)
}

// --------------------------------------------------------------------------
// Mutations
// --------------------------------------------------------------------------

// Add appends items.
func (l *List[T]) Add(items ...T) {
	l.Insert(l.Len(), items...)
}

// Insert inserts items before index i, i == Len() appends.
func (l *List[T]) Insert(i int, items ...T) bool {
	l.mu.Lock()
	if i < 0 || i > len(l.items) {
		l.mu.Unlock()
		return false
	}
	if len(items) == 0 {
		l.mu.Unlock()
		return true
	}
	l.items = slices.Insert(l.items, i, items...)
	l.unlockAndNotify(Change[T]{Added: slices.Clone(items)})
	return true
}

// Remove removes the first occurrence of v and reports whether it was present.
func (l *List[T]) Remove(v T) bool {
	l.mu.Lock()
	i := slices.Index(l.items, v)
	if i < 0 {
		l.mu.Unlock()
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	l.unlockAndNotify(Change[T]{Removed: []T{v}})
	return true
}

// RemoveAt removes and returns the element at index i.
func (l *List[T]) RemoveAt(i int) (T, bool) {
	l.mu.Lock()
	if i < 0 || i >= len(l.items) {
		l.mu.Unlock()
		var zero T
		return zero, false
	}
	v := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	l.unlockAndNotify(Change[T]{Removed: []T{v}})
	return v, true
}

// Set replaces the element at index i. Replacing an element with itself is a no-op.
func (l *List[T]) Set(i int, v T) bool {
	l.mu.Lock()
	if i < 0 || i >= len(l.items) {
		l.mu.Unlock()
		return false
	}
	old := l.items[i]
	if old == v {
		l.mu.Unlock()
		return true
	}
	l.items[i] = v
	l.unlockAndNotify(Change[T]{Added: []T{v}, Removed: []T{old}})
	return true
}

// Move moves the element at index from to index to, shifting the elements in
// between.
func (l *List[T]) Move(from, to int) bool {
	l.mu.Lock()
	if from < 0 || from >= len(l.items) || to < 0 || to >= len(l.items) {
		l.mu.Unlock()
		return false
	}
	if from == to {
		l.mu.Unlock()
		return true
	}
	v := l.items[from]
	l.items = slices.Insert(slices.Delete(l.items, from, from+1), to, v)
	l.unlockAndNotify(Change[T]{Moved: true})
	return true
}

// SortFunc sorts the elements with cmp (see slices.SortStableFunc).
func (l *List[T]) SortFunc(cmp func(a, b T) int) {
	l.mu.Lock()
	sorted := slices.Clone(l.items)
	slices.SortStableFunc(sorted, cmp)
	if slices.Equal(sorted, l.items) {
		l.mu.Unlock()
		return
	}
	l.items = sorted
	l.unlockAndNotify(Change[T]{Moved: true})
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	l.mu.Lock()
	if len(l.items) == 0 {
		l.mu.Unlock()
		return
	}
	removed := l.items
	l.items = nil
	l.unlockAndNotify(Change[T]{Removed: removed})
}

// --------------------------------------------------------------------------
// Listeners
// --------------------------------------------------------------------------

// AddListener registers fn and returns a function that removes it again.
func (l *List[T]) AddListener(fn func(Change[T])) (remove func()) {
	entry := &listEntry[T]{fn: fn}

	l.mu.Lock()
	l.listeners = append(l.listeners, entry)
	l.mu.Unlock()

	return func() {
		if entry.removed.Swap(true) {
			return
		}
		l.mu.Lock()
		defer l.mu.Unlock()
		kept := make([]*listEntry[T], 0, len(l.listeners))
		for _, e := range l.listeners {
			if e != entry {
				kept = append(kept, e)
			}
		}
		l.listeners = kept
	}
}

// unlockAndNotify releases l.mu, which must be held, and dispatches c.
func (l *List[T]) unlockAndNotify(c Change[T]) {
	listeners := l.listeners
	l.mu.Unlock()

	for _, e := range listeners {
		if !e.removed.Load() {
			e.fn(c)
		}
	}
}
