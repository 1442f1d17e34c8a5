package records

import (
	"sync"
	"sync/atomic"

	"github.com/ValentinKolb/prefsync/lib/common"
	"github.com/ValentinKolb/prefsync/lib/property"
)

var log = common.GetLogger(common.LoggerRecords)

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// IRecord is a structured domain object that can be persisted by a Store.
type IRecord interface {
	// Persistable reports whether the record is written at all. Drafts and
	// placeholder rows return false.
	Persistable() bool
	// LoadFromNode populates the record from its persisted element.
	LoadFromNode(n *Node) error
	// AppendToNode writes the record's fields into its (empty) element.
	AppendToNode(n *Node) error
	// OnChange registers fn to be called after any field of the record
	// changed. The returned function removes fn again.
	OnChange(fn func()) (remove func())
}

// Record is the constraint of the generic record functions. Records are
// compared by identity, so they are typically pointers.
type Record interface {
	comparable
	IRecord
}

// --------------------------------------------------------------------------
// Change Notification
// --------------------------------------------------------------------------

type notifyEntry struct {
	fn      func()
	removed atomic.Bool
}

// Notifier implements IRecord.OnChange and is meant to be embedded in
// records. Call Changed after a field was modified, or let WatchCell do it.
type Notifier struct {
	mu        sync.Mutex
	listeners []*notifyEntry
}

// OnChange registers fn, see IRecord.
func (n *Notifier) OnChange(fn func()) (remove func()) {
	entry := &notifyEntry{fn: fn}

	n.mu.Lock()
	n.listeners = append(n.listeners, entry)
	n.mu.Unlock()

	return func() {
		if entry.removed.Swap(true) {
			return
		}
		n.mu.Lock()
		defer n.mu.Unlock()
		kept := make([]*notifyEntry, 0, len(n.listeners))
		for _, e := range n.listeners {
			if e != entry {
				kept = append(kept, e)
			}
		}
		n.listeners = kept
	}
}

// Changed notifies all registered listeners synchronously.
func (n *Notifier) Changed() {
	n.mu.Lock()
	listeners := n.listeners
	n.mu.Unlock()

	for _, l := range listeners {
		if !l.removed.Load() {
			l.fn()
		}
	}
}

// WatchCell forwards every change of c to n.
func WatchCell[T comparable](n *Notifier, c *property.Cell[T]) (remove func()) {
	return c.AddListener(func(_, _ T) {
		n.Changed()
	})
}
