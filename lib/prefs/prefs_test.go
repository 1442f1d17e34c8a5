package prefs_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ValentinKolb/prefsync/lib/codec"
	"github.com/ValentinKolb/prefsync/lib/common"
	"github.com/ValentinKolb/prefsync/lib/prefs"
	prefstesting "github.com/ValentinKolb/prefsync/lib/prefs/testing"
	"github.com/ValentinKolb/prefsync/lib/property/converter"
)

func TestInMemory(t *testing.T) {
	prefstesting.RunPreferencesTests(t, "InMemory", func(t *testing.T) prefs.IPreferences {
		return prefs.New(nil)
	})
}

func TestFileBacked(t *testing.T) {
	codecs := map[string]*codec.Codec{
		"Default":   nil,
		"XML/None":  {Serializer: codec.NewXMLSerializer(), Compression: codec.CompressionNone},
		"YAML/Zstd": {Serializer: codec.NewYAMLSerializer(), Compression: codec.CompressionZstd},
		"JSON/LZ4":  {Serializer: codec.NewJSONSerializer(), Compression: codec.CompressionLZ4},
	}

	for name, c := range codecs {
		prefstesting.RunPreferencesTests(t, name, func(t *testing.T) prefs.IPreferences {
			p, err := prefs.Build(filepath.Join(t.TempDir(), "preferences"), c)
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			return p
		})
	}
}

// --------------------------------------------------------------------------
// Builder
// --------------------------------------------------------------------------

func TestThemeScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences")

	p, err := prefs.Build(path, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	type event struct{ key, old, new string }
	var events []event
	p.AddListener(func(key, oldValue, newValue string) {
		events = append(events, event{key, oldValue, newValue})
	})

	p.SetString("theme", "dark")

	if want := []event{{"theme", "", "dark"}}; !reflect.DeepEqual(events, want) {
		t.Errorf("Expected %v, got %v", want, events)
	}
	if want := map[string]string{"theme": "dark"}; !reflect.DeepEqual(p.Snapshot(), want) {
		t.Errorf("Expected snapshot %v, got %v", want, p.Snapshot())
	}

	reloaded, err := prefs.Build(path, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if v, ok := reloaded.GetString("theme"); !ok || v != "dark" {
		t.Errorf("Expected (dark, true) after reload, got (%q, %v)", v, ok)
	}
}

func TestOneRewritePerChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences")
	p, err := prefs.Build(path, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	p.SetString("a", "1")
	p.SetString("a", "1")
	p.SetString("b", "2")
	p.StringCell("a", "").Set("3")
	p.StringCell("a", "").Set("3")
	prefs.Typed(p, "c", converter.Int(), 0).Set(4)

	stats := p.Stats()
	if stats.Rewrites != 4 {
		t.Errorf("Expected 4 rewrites, got %d", stats.Rewrites)
	}
	if stats.Changes != 4 {
		t.Errorf("Expected 4 changes, got %d", stats.Changes)
	}
	if stats.RewriteErrors != 0 {
		t.Errorf("Expected no rewrite errors, got %d", stats.RewriteErrors)
	}

	stored, err := codec.Default().Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if want := map[string]string{"a": "3", "b": "2", "c": "4"}; !reflect.DeepEqual(stored, want) {
		t.Errorf("Expected file content %v, got %v", want, stored)
	}
}

func TestDefaultIsNotPersisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences")
	p, err := prefs.Build(path, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	foo := p.StringCell("foo", "fooDefaultValue")
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Creating a cell must not write the file")
	}

	foo.Set("fooNewValue")

	reloaded, err := prefs.Build(path, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if got := reloaded.StringCell("foo", "").Get(); got != "fooNewValue" {
		t.Errorf("Expected fooNewValue, got %q", got)
	}
}

func TestBestEffortLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences")
	corrupt := []byte{0x1f, 0x8b, 0xde, 0xad, 0xbe, 0xef}
	if err := os.WriteFile(path, corrupt, 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := prefs.Build(path, nil)
	if err != nil {
		t.Fatalf("Build must not fail on a corrupt file: %v", err)
	}
	if len(p.Snapshot()) != 0 {
		t.Errorf("Expected empty snapshot, got %v", p.Snapshot())
	}
	if after, _ := os.ReadFile(path); !reflect.DeepEqual(after, corrupt) {
		t.Errorf("Loading must not touch the corrupt file")
	}

	p.SetString("recovered", "yes")

	reloaded, err := prefs.Build(path, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if v, _ := reloaded.GetString("recovered"); v != "yes" {
		t.Errorf("Expected recovered value after reload, got %q", v)
	}
}

func TestUnwritableFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := prefs.Build(filepath.Join(blocker, "preferences"), nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if !p.SetString("k", "v") {
		t.Errorf("SetString must succeed in memory")
	}
	if v, _ := p.GetString("k"); v != "v" {
		t.Errorf("Expected in-memory value v, got %q", v)
	}
	if stats := p.Stats(); stats.RewriteErrors != 1 || stats.Rewrites != 0 {
		t.Errorf("Expected one failed rewrite, got %s", stats)
	}
}

func TestMissingPath(t *testing.T) {
	_, err := prefs.Build("", nil)
	if err == nil {
		t.Fatal("Expected configuration error")
	}
	if !errors.Is(err, &common.Error{Code: common.RetCInvalidConfiguration}) {
		t.Errorf("Expected RetCInvalidConfiguration, got %v", err)
	}
}

func TestSwitchingCodec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences")

	xmlCodec := &codec.Codec{Serializer: codec.NewXMLSerializer(), Compression: codec.CompressionGzip}
	p, err := prefs.Build(path, xmlCodec)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	p.SetString("theme", "dark")

	// a store configured for yaml/zstd still reads the xml/gzip file and
	// rewrites it in its own format on the next change
	yamlCodec := &codec.Codec{Serializer: codec.NewYAMLSerializer(), Compression: codec.CompressionZstd}
	p, err = prefs.Build(path, yamlCodec)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if v, _ := p.GetString("theme"); v != "dark" {
		t.Fatalf("Expected dark, got %q", v)
	}
	p.SetString("font", "mono")

	stored, err := yamlCodec.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if want := map[string]string{"theme": "dark", "font": "mono"}; !reflect.DeepEqual(stored, want) {
		t.Errorf("Expected %v, got %v", want, stored)
	}
}

func TestTypedViewsOfOneKey(t *testing.T) {
	p := prefs.New(nil)

	first := prefs.Typed(p, "n", converter.Int(), 0)
	second := prefs.Typed(p, "n", converter.Int(), 0)

	first.Set(5)
	if second.Get() != 5 {
		t.Errorf("Expected both typed cells to follow the key, got %d", second.Get())
	}
	p.SetString("n", "6")
	if first.Get() != 6 || second.Get() != 6 {
		t.Errorf("Expected 6 in both typed cells, got %d and %d", first.Get(), second.Get())
	}

	// store listener plus one adapter per Typed call
	if n := p.StringCell("n", "").Listeners(); n != 3 {
		t.Errorf("Expected 3 listeners on the string cell, got %d", n)
	}
}

func TestYAMLKeysLookingLikeXML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences")
	c := &codec.Codec{Serializer: codec.NewYAMLSerializer(), Compression: codec.CompressionGzip}

	p, err := prefs.Build(path, c)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	p.SetString("<recent>", "a.txt")
	p.SetString("theme", "dark")

	reloaded, err := prefs.Build(path, c)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if want := map[string]string{"<recent>": "a.txt", "theme": "dark"}; !reflect.DeepEqual(reloaded.Snapshot(), want) {
		t.Errorf("Expected %v after reload, got %v", want, reloaded.Snapshot())
	}
}
