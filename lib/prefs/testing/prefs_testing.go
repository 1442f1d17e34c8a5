package testing

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"
	"testing"

	"github.com/ValentinKolb/prefsync/lib/prefs"
	"github.com/ValentinKolb/prefsync/lib/property"
	"github.com/ValentinKolb/prefsync/lib/property/converter"
)

// Factory creates an empty store for a single test. File backed factories
// should place their file in t.TempDir().
type Factory func(t *testing.T) prefs.IPreferences

// RunPreferencesTests runs the conformance test suite for an IPreferences implementation.
func RunPreferencesTests(t *testing.T, name string, factory Factory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Set&Get", func(t *testing.T) {
			testSetGet(t, factory(t))
		})

		t.Run("EmptyIsUnset", func(t *testing.T) {
			testEmptyIsUnset(t, factory(t))
		})

		t.Run("IdempotentNoOp", func(t *testing.T) {
			testIdempotentNoOp(t, factory(t))
		})

		t.Run("ListenerOrder", func(t *testing.T) {
			testListenerOrder(t, factory(t))
		})

		t.Run("RemoveListener", func(t *testing.T) {
			testRemoveListener(t, factory(t))
		})

		t.Run("StringCell", func(t *testing.T) {
			testStringCell(t, factory(t))
		})

		t.Run("CellWriteThrough", func(t *testing.T) {
			testCellWriteThrough(t, factory(t))
		})

		t.Run("Typed", func(t *testing.T) {
			testTyped(t, factory(t))
		})

		t.Run("Snapshot", func(t *testing.T) {
			testSnapshot(t, factory(t))
		})

		t.Run("ReentrantListener", func(t *testing.T) {
			testReentrantListener(t, factory(t))
		})

		t.Run("EmptyKey", func(t *testing.T) {
			testEmptyKey(t, factory(t))
		})

		t.Run("Stats", func(t *testing.T) {
			testStats(t, factory(t))
		})

		t.Run("ConcurrentCells", func(t *testing.T) {
			testConcurrentCells(t, factory(t))
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

type event struct {
	key, old, new string
}

// recordEvents registers a listener that appends every notification to the returned slice
func recordEvents(p prefs.IPreferences) *[]event {
	events := &[]event{}
	p.AddListener(func(key, oldValue, newValue string) {
		*events = append(*events, event{key, oldValue, newValue})
	})
	return events
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testSetGet(t *testing.T, p prefs.IPreferences) {
	if _, ok := p.GetString("theme"); ok {
		t.Errorf("Expected unset key to report ok=false")
	}

	if !p.SetString("theme", "dark") {
		t.Errorf("Expected first SetString to report a change")
	}
	if v, ok := p.GetString("theme"); !ok || v != "dark" {
		t.Errorf("Expected (dark, true), got (%q, %v)", v, ok)
	}

	if !p.SetString("theme", "light") {
		t.Errorf("Expected update to report a change")
	}
	if v, _ := p.GetString("theme"); v != "light" {
		t.Errorf("Expected light, got %q", v)
	}

	unicode := "Grüße, 世界 👋\n\ttabbed"
	p.SetString("unicode", unicode)
	if v, _ := p.GetString("unicode"); v != unicode {
		t.Errorf("Expected %q, got %q", unicode, v)
	}
}

func testEmptyIsUnset(t *testing.T, p prefs.IPreferences) {
	events := recordEvents(p)

	if p.SetString("never.set", "") {
		t.Errorf("Setting an absent key to empty must be a no-op")
	}
	if len(*events) != 0 {
		t.Errorf("Expected no notification, got %v", *events)
	}

	p.SetString("k", "v")
	if !p.SetString("k", "") {
		t.Errorf("Clearing a key must report a change")
	}
	if v, ok := p.GetString("k"); ok || v != "" {
		t.Errorf("Expected cleared key to be unset, got (%q, %v)", v, ok)
	}
	if _, ok := p.Snapshot()["k"]; ok {
		t.Errorf("Cleared key must not appear in the snapshot")
	}

	want := []event{{"k", "", "v"}, {"k", "v", ""}}
	if !reflect.DeepEqual(*events, want) {
		t.Errorf("Expected %v, got %v", want, *events)
	}
}

func testIdempotentNoOp(t *testing.T, p prefs.IPreferences) {
	events := recordEvents(p)

	p.SetString("k", "v")
	if p.SetString("k", "v") {
		t.Errorf("Second identical SetString must report no change")
	}
	if len(*events) != 1 {
		t.Errorf("Expected exactly one notification, got %d", len(*events))
	}

	cell := p.StringCell("k", "")
	if cell.Set("v") {
		t.Errorf("Setting the cell to the stored value must be a no-op")
	}
	if len(*events) != 1 {
		t.Errorf("Expected still one notification, got %d", len(*events))
	}
}

func testListenerOrder(t *testing.T, p prefs.IPreferences) {
	var order []int
	for i := 0; i < 5; i++ {
		p.AddListener(func(_, _, _ string) {
			order = append(order, i)
		})
	}

	p.SetString("k", "v")
	if !reflect.DeepEqual(order, []int{0, 1, 2, 3, 4}) {
		t.Errorf("Listeners must run in registration order, got %v", order)
	}
}

func testRemoveListener(t *testing.T, p prefs.IPreferences) {
	calls := 0
	remove := p.AddListener(func(_, _, _ string) { calls++ })

	p.SetString("k", "1")
	remove()
	remove()
	p.SetString("k", "2")

	if calls != 1 {
		t.Errorf("Expected 1 call before removal, got %d", calls)
	}
}

func testStringCell(t *testing.T, p prefs.IPreferences) {
	p.SetString("stored", "value")

	stored := p.StringCell("stored", "default")
	if stored.Get() != "value" {
		t.Errorf("Cell must be seeded with the stored value, got %q", stored.Get())
	}

	fresh := p.StringCell("fresh", "default")
	if fresh.Get() != "default" {
		t.Errorf("Cell of an unset key must be seeded with the default, got %q", fresh.Get())
	}
	if _, ok := p.GetString("fresh"); ok {
		t.Errorf("The default must not be stored")
	}

	again := p.StringCell("fresh", "other default")
	if again != fresh {
		t.Errorf("StringCell must return the cached cell")
	}
	if again.Get() != "default" {
		t.Errorf("Later defaults must be ignored, got %q", again.Get())
	}
	if n := fresh.Listeners(); n != 1 {
		t.Errorf("Repeated lookups must not add listeners, got %d", n)
	}
}

func testCellWriteThrough(t *testing.T, p prefs.IPreferences) {
	events := recordEvents(p)
	cell := p.StringCell("theme", "")

	cell.Set("dark")
	if v, _ := p.GetString("theme"); v != "dark" {
		t.Errorf("Cell changes must reach the store, got %q", v)
	}

	p.SetString("theme", "light")
	if cell.Get() != "light" {
		t.Errorf("Store changes must reach the cell, got %q", cell.Get())
	}

	want := []event{{"theme", "", "dark"}, {"theme", "dark", "light"}}
	if !reflect.DeepEqual(*events, want) {
		t.Errorf("Expected %v, got %v", want, *events)
	}
}

func testTyped(t *testing.T, p prefs.IPreferences) {
	p.SetString("width", "640")

	width := prefs.Typed(p, "width", converter.Int(), 800)
	if width.Get() != 640 {
		t.Errorf("Expected 640, got %d", width.Get())
	}

	width.Set(1024)
	if v, _ := p.GetString("width"); v != "1024" {
		t.Errorf("Expected stored 1024, got %q", v)
	}

	p.SetString("width", "12x")
	if width.Get() != 0 {
		t.Errorf("Expected fallback 0 for malformed input, got %d", width.Get())
	}
	if v, _ := p.GetString("width"); v != "12x" {
		t.Errorf("Malformed input must not be overwritten, got %q", v)
	}

	height := prefs.Typed(p, "height", converter.Int(), 480)
	if height.Get() != 480 {
		t.Errorf("Expected default 480, got %d", height.Get())
	}
}

func testSnapshot(t *testing.T, p prefs.IPreferences) {
	p.SetString("a", "1")
	p.SetString("b", "2")

	snapshot := p.Snapshot()
	if !reflect.DeepEqual(snapshot, map[string]string{"a": "1", "b": "2"}) {
		t.Errorf("Unexpected snapshot %v", snapshot)
	}

	snapshot["a"] = "changed"
	snapshot["c"] = "3"
	if v, _ := p.GetString("a"); v != "1" {
		t.Errorf("Changing the snapshot must not change the store")
	}
	if _, ok := p.GetString("c"); ok {
		t.Errorf("Changing the snapshot must not change the store")
	}

	p.SetString("b", "changed")
	if snapshot["b"] != "2" {
		t.Errorf("Changing the store must not change the snapshot")
	}
}

func testReentrantListener(t *testing.T, p prefs.IPreferences) {
	// mirror every change of "source" into "mirror"
	p.AddListener(func(key, _, newValue string) {
		if key == "source" {
			p.SetString("mirror", newValue)
		}
	})
	mirror := p.StringCell("mirror", "")

	p.SetString("source", "x")
	if v, _ := p.GetString("mirror"); v != "x" {
		t.Errorf("Expected mirror x, got %q", v)
	}
	if mirror.Get() != "x" {
		t.Errorf("Expected mirror cell x, got %q", mirror.Get())
	}
}

func testEmptyKey(t *testing.T, p prefs.IPreferences) {
	if p.SetString("", "value") {
		t.Errorf("SetString with empty key must be a no-op")
	}
	if len(p.Snapshot()) != 0 {
		t.Errorf("Empty key must not be stored")
	}

	detached := p.StringCell("", "default")
	detached.Set("changed")
	if len(p.Snapshot()) != 0 {
		t.Errorf("The cell of the empty key must be detached from the store")
	}
}

func testStats(t *testing.T, p prefs.IPreferences) {
	before := p.Stats().Changes
	p.SetString("k", "1")
	p.SetString("k", "1")
	p.SetString("k", "2")
	if got := p.Stats().Changes - before; got != 2 {
		t.Errorf("Expected 2 changes, got %d", got)
	}
}

func testConcurrentCells(t *testing.T, p prefs.IPreferences) {
	const goroutines = 16
	const keys = 32

	cells := make([][]*property.Cell[string], goroutines)
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < keys; k++ {
				cells[g] = append(cells[g], p.StringCell(fmt.Sprintf("key-%d", k), ""))
			}
		}()
	}
	wg.Wait()

	for g := 1; g < goroutines; g++ {
		for k := 0; k < keys; k++ {
			if cells[g][k] != cells[0][k] {
				t.Fatalf("Goroutine %d got a different cell for key-%d", g, k)
			}
		}
	}

	p.SetString("key-3", strconv.Itoa(3))
	if v := p.StringCell("key-3", "").Get(); v != "3" {
		t.Errorf("Expected 3, got %q", v)
	}
}
