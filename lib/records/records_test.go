package records

import (
	"time"

	"github.com/ValentinKolb/prefsync/lib/property"
	"github.com/ValentinKolb/prefsync/lib/property/converter"
)

// Task is the record used throughout the tests of this package
type Task struct {
	Notifier
	Title *property.Cell[string]
	Done  *property.Cell[bool]
	Due   *property.Cell[time.Time]
	Draft bool
}

var dateConverter = converter.Date(time.DateOnly)

func NewTask() *Task {
	t := &Task{
		Title: property.NewCell(""),
		Done:  property.NewCell(false),
		Due:   property.NewCell(time.Time{}),
	}
	WatchCell(&t.Notifier, t.Title)
	WatchCell(&t.Notifier, t.Done)
	WatchCell(&t.Notifier, t.Due)
	return t
}

func newTitledTask(title string) *Task {
	t := NewTask()
	t.Title.Set(title)
	return t
}

func (t *Task) Persistable() bool {
	return !t.Draft
}

func (t *Task) LoadFromNode(n *Node) error {
	if title, ok := ExtractAttrString(n, "title"); ok {
		t.Title.Set(title)
	}
	done, _, err := ExtractAttr(n, "done", converter.Bool())
	if err != nil {
		return err
	}
	t.Done.Set(done)
	due, _, err := ExtractAttr(n, "due", dateConverter)
	if err != nil {
		return err
	}
	t.Due.Set(due)
	return nil
}

func (t *Task) AppendToNode(n *Node) error {
	AppendAttr(n, "title", t.Title.Get())
	if t.Done.Get() {
		AppendAttr(n, "done", "true")
	}
	return AppendAttrValue(n, "due", t.Due.Get(), dateConverter)
}

// Note is a second record type that shares documents with Task
type Note struct {
	Notifier
	Text string
}

func (n *Note) Persistable() bool { return true }

func (n *Note) LoadFromNode(node *Node) error {
	n.Text = node.Text
	return nil
}

func (n *Note) AppendToNode(node *Node) error {
	node.Text = n.Text
	return nil
}

func titles(tasks []*Task) []string {
	var result []string
	for _, t := range tasks {
		result = append(result, t.Title.Get())
	}
	return result
}
