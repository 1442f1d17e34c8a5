package records

import (
	"time"

	"github.com/ValentinKolb/prefsync/lib/property"
	"github.com/ValentinKolb/prefsync/lib/property/converter"
	"github.com/ValentinKolb/prefsync/lib/records"
	"github.com/google/uuid"
)

var dueConverter = converter.Date(time.DateOnly, time.DateOnly, "02.01.2006", time.RFC3339)

// Entry is the record edited by the records commands. It is stored as
//
//	<Entry id="..." title="..." done="true" due="2024-05-01"/>
type Entry struct {
	records.Notifier

	ID    string
	Title *property.Cell[string]
	Done  *property.Cell[bool]
	Due   *property.Cell[time.Time]
}

// NewEntry creates an empty entry with a fresh id
func NewEntry() *Entry {
	e := &Entry{
		ID:    uuid.NewString(),
		Title: property.NewCell(""),
		Done:  property.NewCell(false),
		Due:   property.NewCell(time.Time{}),
	}
	records.WatchCell(&e.Notifier, e.Title)
	records.WatchCell(&e.Notifier, e.Done)
	records.WatchCell(&e.Notifier, e.Due)
	return e
}

// Persistable reports false for entries without a title
func (e *Entry) Persistable() bool {
	return e.Title.Get() != ""
}

func (e *Entry) LoadFromNode(n *records.Node) error {
	if id, ok := records.ExtractAttrString(n, "id"); ok {
		if _, err := uuid.Parse(id); err != nil {
			return err
		}
		e.ID = id
	}
	title, _ := records.ExtractAttrString(n, "title")
	e.Title.Set(title)

	done, _, err := records.ExtractAttr(n, "done", converter.Bool())
	if err != nil {
		return err
	}
	e.Done.Set(done)

	due, _, err := records.ExtractAttr(n, "due", dueConverter)
	if err != nil {
		return err
	}
	e.Due.Set(due)
	return nil
}

func (e *Entry) AppendToNode(n *records.Node) error {
	records.AppendAttr(n, "id", e.ID)
	records.AppendAttr(n, "title", e.Title.Get())
	if e.Done.Get() {
		records.AppendAttr(n, "done", "true")
	}
	return records.AppendAttrValue(n, "due", e.Due.Get(), dueConverter)
}

// ShortID is the prefix of the id shown by the list command
func (e *Entry) ShortID() string {
	if len(e.ID) < 8 {
		return e.ID
	}
	return e.ID[:8]
}
