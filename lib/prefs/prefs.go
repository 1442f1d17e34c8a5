package prefs

import (
	"maps"
	"sync"
	"sync/atomic"

	"github.com/ValentinKolb/prefsync/lib/common"
	"github.com/ValentinKolb/prefsync/lib/property"
	"github.com/ValentinKolb/prefsync/lib/property/converter"
	"github.com/puzpuzpuz/xsync/v3"
)

var log = common.GetLogger(common.LoggerPrefs)

type listenerEntry struct {
	fn      Listener
	removed atomic.Bool
}

type prefsImpl struct {
	// mu guards values and listeners, it is never held while listeners or cells run
	mu        sync.Mutex
	values    map[string]string
	listeners []*listenerEntry

	cells    *xsync.MapOf[string, *property.Cell[string]]
	recorder *common.Recorder
}

// New creates an in-memory store holding a copy of values. Entries with an
// empty key or an empty value are ignored.
func New(values map[string]string) IPreferences {
	p := &prefsImpl{
		values:   make(map[string]string, len(values)),
		cells:    xsync.NewMapOf[string, *property.Cell[string]](),
		recorder: common.NewRecorder(common.KindPreferences),
	}
	for k, v := range values {
		if k != "" && v != "" {
			p.values[k] = v
		}
	}
	return p
}

// Typed returns a cell of type T bound to the string cell of key. See
// property.Bind for the conversion rules, def is used when key is unset.
//
// Typed cells are not cached. Every call binds a new adapter whose listener
// stays registered on the string cell of key for the lifetime of the store,
// so call it once per key and keep the returned cell.
func Typed[T comparable](p IPreferences, key string, c converter.IConverter[T], def T) *property.Cell[T] {
	return property.Bind(p.StringCell(key, ""), c, def)
}

// --------------------------------------------------------------------------
// Interface Methods (docu see prefs/interface.go)
// --------------------------------------------------------------------------

func (p *prefsImpl) GetString(key string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.values[key]
	return v, ok
}

func (p *prefsImpl) SetString(key, value string) bool {
	if key == "" {
		log.Warningf("ignoring value for empty key")
		return false
	}

	p.mu.Lock()
	old := p.values[key]
	if old == value {
		p.mu.Unlock()
		return false
	}
	if value == "" {
		delete(p.values, key)
	} else {
		p.values[key] = value
	}
	listeners := p.listeners
	p.mu.Unlock()

	p.recorder.Changed()
	log.Debugf("%s changed from %q to %q", key, old, value)

	// the cell's own listener calls SetString again with the same value,
	// which ends at the equality check above
	if cell, ok := p.cells.Load(key); ok {
		cell.Set(value)
	}
	for _, l := range listeners {
		if !l.removed.Load() {
			l.fn(key, old, value)
		}
	}
	return true
}

func (p *prefsImpl) StringCell(key, def string) *property.Cell[string] {
	if key == "" {
		log.Warningf("cell for empty key requested, returning a detached cell")
		return property.NewCell(def)
	}

	cell, _ := p.cells.LoadOrCompute(key, func() *property.Cell[string] {
		p.mu.Lock()
		v, ok := p.values[key]
		p.mu.Unlock()
		if !ok {
			v = def
		}

		c := property.NewCell(v)
		c.AddListener(func(_, newValue string) {
			p.SetString(key, newValue)
		})
		return c
	})
	return cell
}

func (p *prefsImpl) Snapshot() map[string]string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return maps.Clone(p.values)
}

func (p *prefsImpl) AddListener(l Listener) (remove func()) {
	entry := &listenerEntry{fn: l}

	p.mu.Lock()
	p.listeners = append(p.listeners, entry)
	p.mu.Unlock()

	return func() {
		if entry.removed.Swap(true) {
			return
		}
		p.mu.Lock()
		defer p.mu.Unlock()
		kept := make([]*listenerEntry, 0, len(p.listeners))
		for _, e := range p.listeners {
			if e != entry {
				kept = append(kept, e)
			}
		}
		p.listeners = kept
	}
}

func (p *prefsImpl) Stats() common.Stats {
	return p.recorder.Stats()
}
