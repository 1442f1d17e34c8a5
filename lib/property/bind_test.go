package property

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ValentinKolb/prefsync/lib/property/converter"
)

func TestBindSeed(t *testing.T) {
	tests := []struct {
		name     string
		str      string
		def      int
		expected int
	}{
		{"FromString", "12", 99, 12},
		{"DefaultWhenEmpty", "", 99, 99},
		{"FallbackWhenInvalid", "abc", 99, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typed := Bind(NewCell(tt.str), converter.Int(), tt.def)
			if got := typed.Get(); got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestBindPropagatesBothWays(t *testing.T) {
	str := NewCell("1")
	typed := Bind(str, converter.Int(), 0)

	str.Set("2")
	if got := typed.Get(); got != 2 {
		t.Errorf("Expected typed value 2 after string change, got %d", got)
	}

	typed.Set(3)
	if got := str.Get(); got != "3" {
		t.Errorf("Expected string value 3 after typed change, got %s", got)
	}
}

func TestBindEchoSuppression(t *testing.T) {
	str := NewCell("1.50")
	typed := Bind(str, converter.Float(converter.FloatOptions{Precision: 2}), 0)
	if typed.Get() != 1.5 {
		t.Fatalf("Expected 1.5, got %v", typed.Get())
	}

	stringChanges := 0
	str.AddListener(func(_, _ string) { stringChanges++ })

	// 1.501 is encoded as "1.50" which is what the string cell already holds
	typed.Set(1.501)
	if stringChanges != 0 {
		t.Errorf("Expected no string change, got %d (value %q)", stringChanges, str.Get())
	}

	// the typed side keeps its own value, the mismatch is tolerated
	if typed.Get() != 1.501 {
		t.Errorf("Expected typed value 1.501, got %v", typed.Get())
	}

	// a spelling that decodes to the same value is not normalized either
	str.Set("1.5")
	typedChanges := 0
	typed.AddListener(func(_, _ float64) { typedChanges++ })
	str.Set("1.5")
	if typedChanges != 0 {
		t.Errorf("Expected no typed change for an unchanged string, got %d", typedChanges)
	}
}

func TestBindFallbackOnBadDecode(t *testing.T) {
	str := NewCell("12")
	typed := Bind(str, converter.Int(), 0)

	str.Set("12x")
	if got := typed.Get(); got != 0 {
		t.Errorf("Expected fallback 0, got %d", got)
	}
	if got := str.Get(); got != "12x" {
		t.Errorf("Expected invalid string to be kept, got %q", got)
	}

	str.Set("123")
	if got := typed.Get(); got != 123 {
		t.Errorf("Expected 123 after a valid value, got %d", got)
	}
}

func TestBindConverterPanicsAndErrors(t *testing.T) {
	failing := converter.Func(
		func(v int) (string, error) {
			if v < 0 {
				return "", errors.New("negative values are not supported")
			}
			return strconv.Itoa(v), nil
		},
		func(s string) (int, error) {
			if s == "boom" {
				panic("converter exploded")
			}
			if s == "" {
				return 0, nil
			}
			return strconv.Atoi(s)
		},
	)

	str := NewCell("5")
	typed := Bind(str, failing, 0)

	str.Set("boom")
	if got := typed.Get(); got != 0 {
		t.Errorf("Expected fallback after panic, got %d", got)
	}

	str.Set("7")
	typed.Set(-1)

	// the failed encode clears the string, which decodes to 0 again
	if str.Get() != strconv.Itoa(typed.Get()) {
		t.Errorf("Expected cells to settle, got string %q and typed %d", str.Get(), typed.Get())
	}
}

func TestBindMultipleAdaptersOnOneString(t *testing.T) {
	str := NewCell("42")
	asInt := Bind(str, converter.Int(), 0)
	asFloat := Bind(str, converter.Float(converter.DefaultFloatOptions()), 0)

	asInt.Set(7)
	if got := asFloat.Get(); got != 7 {
		t.Errorf("Expected float view 7, got %v", got)
	}

	asFloat.Set(8)
	if got := asInt.Get(); got != 8 {
		t.Errorf("Expected int view 8, got %d", got)
	}
}
