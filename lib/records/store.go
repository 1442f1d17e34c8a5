package records

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/ValentinKolb/prefsync/lib/common"
)

// Store is a List of records mirrored to a backing file. Any change of the
// list or of a record in it rewrites the whole file.
type Store[T Record] struct {
	*List[T]

	path     string
	opts     []Option
	recorder *common.Recorder

	mu     sync.Mutex
	wiring map[T]*wire
}

// wire is the OnChange registration of the store on one record
type wire struct {
	count  int // occurrences of the record in the list
	remove func()
}

// LoadObserved loads the records stored at path and returns them as a Store.
//
// A missing, unreadable or corrupt file yields an empty store, the file is
// left untouched until the first change. Loading never writes. Afterward
//   - removing a record detaches the store from it,
//   - adding a record attaches the store, so that a change of the record
//     rewrites the file,
//   - every structural change (add, remove, move) rewrites the file once.
//
// Write failures are logged and counted in Stats, the records stay usable in
// memory. An empty path or a nil factory is a configuration error.
func LoadObserved[T Record](path string, factory func() T, opts ...Option) (*Store[T], error) {
	if path == "" {
		return nil, common.NewError(common.RetCInvalidConfiguration, "no records file given")
	}
	if factory == nil {
		return nil, common.NewError(common.RetCInvalidConfiguration, "no record factory given")
	}
	o := newOptions(opts)
	if o.elementName == "" {
		name := typeName(factory())
		if name == "" {
			return nil, common.NewError(common.RetCInvalidConfiguration, "cannot derive element name from record type, use WithElementName")
		}
		// pin the name so writing does not depend on the dynamic record types
		opts = append(slices.Clip(opts), WithElementName(name))
		o.elementName = name
	}
	if o.serializer == nil {
		return nil, common.NewError(common.RetCInvalidConfiguration, "no document serializer given")
	}

	s := &Store[T]{
		List:     NewList[T](),
		path:     path,
		opts:     opts,
		recorder: common.NewRecorder(common.KindRecords),
		wiring:   make(map[T]*wire),
	}

	s.List.AddListener(s.rewire)
	s.List.Add(s.load(factory)...)
	s.List.AddListener(func(Change[T]) {
		s.recorder.Changed()
		s.write()
	})

	return s, nil
}

// Path returns the backing file.
func (s *Store[T]) Path() string {
	return s.path
}

// Stats returns the change and rewrite counters of this store.
func (s *Store[T]) Stats() common.Stats {
	return s.recorder.Stats()
}

// Flush rewrites the backing file and returns the error a regular rewrite
// would only log.
func (s *Store[T]) Flush() error {
	start := time.Now()
	err := s.writeFile()
	s.recorder.Rewrite(start, err)
	return err
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func (s *Store[T]) load(factory func() T) []T {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debugf("no records stored at %s yet", s.path)
		return nil
	}
	if err != nil {
		log.Warningf("cannot read records from %s, starting empty: %v", s.path, err)
		return nil
	}

	records, err := ReadRecords(data, factory, s.opts...)
	if err != nil {
		log.Warningf("cannot load records from %s, starting empty: %v", s.path, err)
		return nil
	}
	log.Infof("loaded %d records from %s", len(records), s.path)
	return records
}

// rewire detaches the store from removed records and attaches it to added
// ones. A record that is in the list more than once is attached only once.
func (s *Store[T]) rewire(c Change[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range c.Removed {
		w, ok := s.wiring[r]
		if !ok {
			continue
		}
		if w.count--; w.count == 0 {
			w.remove()
			delete(s.wiring, r)
		}
	}

	for _, r := range c.Added {
		if w, ok := s.wiring[r]; ok {
			w.count++
			continue
		}
		s.wiring[r] = &wire{
			count: 1,
			remove: r.OnChange(func() {
				s.recorder.Changed()
				s.write()
			}),
		}
	}
}

// write is the best-effort rewrite triggered by changes.
func (s *Store[T]) write() {
	start := time.Now()
	err := s.writeFile()
	if err != nil {
		log.Warningf("cannot write records into %s: %v", s.path, err)
	}
	s.recorder.Rewrite(start, err)
}

func (s *Store[T]) writeFile() error {
	records := s.List.All()
	data, err := WriteRecords(records, s.opts...)
	if err != nil {
		return err
	}

	log.Debugf("storing %d records into %s", len(records), s.path)
	return common.WriteFile(s.path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}
