package records

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ValentinKolb/prefsync/lib/codec"
	"github.com/ValentinKolb/prefsync/lib/property/converter"
)

var testDocumentSerializers = map[string]func() IDocumentSerializer{
	"XML":  NewXMLDocumentSerializer,
	"YAML": NewYAMLDocumentSerializer,
}

// testDocument returns a tree that uses every feature of a node
func testDocument() *Node {
	root := NewNode("records")

	task := root.AddChild("Task")
	task.SetAttr("title", `Buy "milk" & <eggs>`)
	task.SetAttr("due", "2024-05-01")
	task.SetAttr("count", "007")
	task.SetAttr("flag", "yes")

	note := root.AddChild("Note")
	note.Text = "  line one\nline two  "

	nested := root.AddChild("Group")
	nested.SetAttr("name", "Grüße 世界")
	nested.Text = "group text"
	nested.AddChild("Task").SetAttr("title", "inner")
	nested.AddChild("Empty")

	return root
}

func TestDocumentRoundTrip(t *testing.T) {
	for name, factory := range testDocumentSerializers {
		t.Run(name, func(t *testing.T) {
			s := factory()
			want := testDocument()

			data, err := s.Serialize(want)
			if err != nil {
				t.Fatalf("Serialize failed: %v", err)
			}
			got, err := s.Deserialize(data)
			if err != nil {
				t.Fatalf("Deserialize failed: %v\n%s", err, data)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Round trip mismatch:\n got  %+v\n want %+v\n%s", got, want, data)
			}
		})
	}
}

func TestDocumentAttributeOrder(t *testing.T) {
	for name, factory := range testDocumentSerializers {
		t.Run(name, func(t *testing.T) {
			root := NewNode("records")
			n := root.AddChild("Task")
			for _, a := range []string{"zeta", "alpha", "mid"} {
				n.SetAttr(a, a)
			}

			data, err := factory().Serialize(root)
			if err != nil {
				t.Fatal(err)
			}
			text := string(data)
			if !(strings.Index(text, "zeta") < strings.Index(text, "alpha") && strings.Index(text, "alpha") < strings.Index(text, "mid")) {
				t.Errorf("Attributes must keep insertion order:\n%s", text)
			}
		})
	}
}

func TestReadHandWrittenDocuments(t *testing.T) {
	documents := map[string]string{
		"xml": `<?xml version="1.0"?>
<!-- exported by hand -->
<records>
  <Task title="a" done="true"/>
  <Other title="ignored"/>
  <Group><Task title="nested, ignored"/></Group>
  <Task title="b"></Task>
</records>`,
		"yaml": `records:
  - Task: {title: a, done: true}
  - Other:
      title: ignored
  - Group:
      - Task:
          title: nested, ignored
  - Task:
      title: b
`,
		"xml-bare": `<records><Task title="a" done="true"/><Task title="b"/></records>`,
	}

	for name, doc := range documents {
		t.Run(name, func(t *testing.T) {
			tasks, err := ReadRecords([]byte(doc), NewTask)
			if err != nil {
				t.Fatalf("ReadRecords failed: %v", err)
			}
			if got := titles(tasks); !reflect.DeepEqual(got, []string{"a", "b"}) {
				t.Errorf("Expected direct Task children only, got %v", got)
			}
			if !tasks[0].Done.Get() || tasks[1].Done.Get() {
				t.Errorf("Unexpected done flags")
			}
		})
	}
}

func TestWriteRecordsMixedTypes(t *testing.T) {
	records := []IRecord{newTitledTask("task"), &Note{Text: "note"}}

	data, err := WriteRecords(records)
	if err != nil {
		t.Fatalf("WriteRecords failed: %v", err)
	}

	tasks, err := ReadRecords(data, NewTask)
	if err != nil {
		t.Fatal(err)
	}
	notes, err := ReadRecords(data, func() *Note { return &Note{} })
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 || len(notes) != 1 || notes[0].Text != "note" {
		t.Errorf("Expected one record of each type, got %d tasks and %d notes", len(tasks), len(notes))
	}
}

func TestWriteRecordsOptions(t *testing.T) {
	tasks := []*Task{newTitledTask("a")}

	data, err := WriteRecords(tasks, WithRootName("todo"), WithElementName("item"), WithCompression(codec.CompressionGzip))
	if err != nil {
		t.Fatal(err)
	}
	if codec.DetectCompression(data) != codec.CompressionGzip {
		t.Errorf("Expected gzip compressed document")
	}

	if got, _ := ReadRecords(data, NewTask); len(got) != 0 {
		t.Errorf("Default element name must not match renamed records")
	}
	got, err := ReadRecords(data, NewTask, WithElementName("item"))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(titles(got), []string{"a"}) {
		t.Errorf("Expected renamed record, got %v", titles(got))
	}
}

func TestDocumentErrors(t *testing.T) {
	broken := map[string]string{
		"xml-two-roots":  "<a></a><b></b>",
		"xml-empty":      "<?xml version=\"1.0\"?>",
		"yaml-empty":     "",
		"yaml-scalar":    "just text",
		"yaml-two-names": "a: []\nb: []\n",
		"yaml-nested":    "records:\n  - Task:\n      title: [not, scalar]\n",
	}

	for name, doc := range broken {
		t.Run(name, func(t *testing.T) {
			if _, err := ReadRecords([]byte(doc), NewTask); err == nil {
				t.Errorf("Expected error for %q", doc)
			}
		})
	}
}

func TestAttrHelpers(t *testing.T) {
	n := NewNode("Task")
	price := converter.Float(converter.FloatOptions{Precision: 2, DecimalSeparator: ","})

	AppendAttr(n, "empty", "")
	if _, ok := n.Attr("empty"); ok {
		t.Errorf("Empty values must not be appended")
	}

	if err := AppendAttrValue(n, "price", 12.5, price); err != nil {
		t.Fatal(err)
	}
	if v, _ := n.Attr("price"); v != "12,50" {
		t.Errorf("Expected 12,50, got %q", v)
	}
	if err := AppendAttrValue(n, "zero", 0, price); err != nil {
		t.Fatal(err)
	}
	if _, ok := n.Attr("zero"); ok {
		t.Errorf("Zero must not be appended")
	}

	v, ok, err := ExtractAttr(n, "price", price)
	if err != nil || !ok || v != 12.5 {
		t.Errorf("Expected (12.5, true, nil), got (%v, %v, %v)", v, ok, err)
	}
	if _, ok, err := ExtractAttr(n, "missing", price); ok || err != nil {
		t.Errorf("Missing attribute must yield ok=false without error")
	}

	n.SetAttr("bad", "1.5")
	if _, _, err := ExtractAttr(n, "bad", price); err == nil {
		t.Errorf("Expected decode error")
	}

	n.SetAttr("bad", "2,5")
	if v, _, _ := ExtractAttr(n, "bad", price); v != 2.5 {
		t.Errorf("SetAttr must replace the value, got %v", v)
	}
	n.RemoveAttr("bad")
	if _, ok := ExtractAttrString(n, "bad"); ok {
		t.Errorf("Expected attribute to be removed")
	}
}
