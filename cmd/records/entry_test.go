package records

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ValentinKolb/prefsync/lib/records"
)

func TestEntryRoundTrip(t *testing.T) {
	e := NewEntry()
	e.Title.Set("Buy milk")
	e.Done.Set(true)
	e.Due.Set(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))

	draft := NewEntry()

	data, err := records.WriteRecords([]*Entry{e, draft})
	if err != nil {
		t.Fatalf("WriteRecords failed: %v", err)
	}
	if !strings.Contains(string(data), `<Entry id="`+e.ID+`" title="Buy milk" done="true" due="2024-05-01"`) {
		t.Errorf("Unexpected document:\n%s", data)
	}

	loaded, err := records.ReadRecords(data, NewEntry)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 1 {
		t.Fatalf("Entries without title must not be written, got %d entries", len(loaded))
	}
	got := loaded[0]
	if got.ID != e.ID || got.Title.Get() != "Buy milk" || !got.Done.Get() || !got.Due.Get().Equal(e.Due.Get()) {
		t.Errorf("Unexpected entry %s %q %v %v", got.ID, got.Title.Get(), got.Done.Get(), got.Due.Get())
	}
}

func TestEntryDueLayouts(t *testing.T) {
	for _, raw := range []string{"2024-05-01", "01.05.2024", "2024-05-01T00:00:00Z"} {
		due, err := dueConverter.FromString(raw)
		if err != nil {
			t.Errorf("Expected %q to parse, got %v", raw, err)
			continue
		}
		if s, _ := dueConverter.ToString(due); s != "2024-05-01" {
			t.Errorf("Expected 2024-05-01 for %q, got %q", raw, s)
		}
	}
}

func TestEntryInvalidID(t *testing.T) {
	if _, err := records.ReadRecords([]byte(`<records><Entry id="nope" title="a"/></records>`), NewEntry); err == nil {
		t.Errorf("Expected error for invalid id")
	}
}

func TestFind(t *testing.T) {
	var err error
	store, err = records.LoadObserved(filepath.Join(t.TempDir(), "records.xml"), NewEntry)
	if err != nil {
		t.Fatal(err)
	}

	a, b := NewEntry(), NewEntry()
	a.ID = "aaaa1111-0000-0000-0000-000000000000"
	b.ID = "aaaa2222-0000-0000-0000-000000000000"
	a.Title.Set("a")
	b.Title.Set("b")
	store.Add(a, b)

	if e, err := find("aaaa2"); err != nil || e != b {
		t.Errorf("Expected b, got %v %v", e, err)
	}
	if _, err := find("aaaa"); err == nil {
		t.Errorf("Expected ambiguous prefix error")
	}
	if _, err := find("bbbb"); err == nil {
		t.Errorf("Expected missing id error")
	}
	if err := flush(); err != nil {
		t.Errorf("Unexpected flush error %v", err)
	}
}
