// Package records persists ordered collections of structured records. The
// whole collection is written to its backing file whenever the collection or
// any record in it changes.
//
// Key Components:
//
//   - IRecord: implemented by the domain objects. A record writes its fields
//     into a Node and reads them back, reports changes through OnChange and
//     may opt out of persistence (Persistable() == false), e.g. while it is
//     still a draft. Embed Notifier to get OnChange for free and use WatchCell
//     to forward changes of property cells.
//
//   - Node: a generic document element with ordered attributes, children and
//     text. The helpers AppendAttr, AppendAttrValue and ExtractAttr encode
//     single fields with the converters of package converter, empty values are
//     skipped when writing and absent ones reported as ok=false when reading.
//
//   - IDocumentSerializer: writes the node tree as xml (default) or yaml. The
//     root element is called "records", each record becomes one child named
//     after its Go type. Documents can be compressed with any compression of
//     package codec, format and compression are detected when reading.
//
//   - List: an ordered observable collection that reports every mutation as a
//     single Change (added, removed or moved elements).
//
//   - Store and LoadObserved: a List seeded from the backing file. The store
//     detaches itself from removed records, attaches itself to added ones and
//     rewrites the file once per change. Loading never writes.
//
// Failure Handling:
//
//	Same policy as package prefs: a file that cannot be read or decoded yields
//	an empty store and is left untouched, write failures are logged and counted
//	(Stats().RewriteErrors). Flush reports the error of a rewrite to callers
//	that need to know. An empty path or a missing factory is reported as
//	*common.Error with code RetCInvalidConfiguration.
//
// Usage:
//
//	type Task struct {
//		records.Notifier
//		Title *property.Cell[string]
//	}
//
//	func NewTask() *Task {
//		t := &Task{Title: property.NewCell("")}
//		records.WatchCell(&t.Notifier, t.Title)
//		return t
//	}
//
//	func (t *Task) Persistable() bool { return t.Title.Get() != "" }
//	func (t *Task) LoadFromNode(n *records.Node) error {
//		title, _ := records.ExtractAttrString(n, "title")
//		t.Title.Set(title)
//		return nil
//	}
//	func (t *Task) AppendToNode(n *records.Node) error {
//		records.AppendAttr(n, "title", t.Title.Get())
//		return nil
//	}
//
//	tasks, err := records.LoadObserved(path, NewTask)
//	if err != nil { ... }
//	task := NewTask()
//	tasks.Add(task)           // rewrites the file
//	task.Title.Set("Buy milk") // rewrites the file again
package records
