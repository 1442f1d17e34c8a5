package converter

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestIdentity(t *testing.T) {
	c := Identity()
	for _, s := range []string{"", "abc", "äöü ✓"} {
		to, _ := c.ToString(s)
		from, _ := c.FromString(s)
		if to != s || from != s {
			t.Errorf("Expected identity for %q, got %q and %q", s, to, from)
		}
	}
}

func TestFloat(t *testing.T) {
	german := Float(FloatOptions{Precision: 2, DecimalSeparator: ","})

	t.Run("ToString", func(t *testing.T) {
		if s, _ := german.ToString(1.23); s != "1,23" {
			t.Errorf("Expected 1,23, got %s", s)
		}
		if s, _ := german.ToString(0); s != "" {
			t.Errorf("Expected empty string for zero, got %s", s)
		}
		if s, _ := Float(DefaultFloatOptions()).ToString(2.5); s != "2.5" {
			t.Errorf("Expected 2.5, got %s", s)
		}
	})

	t.Run("FromString", func(t *testing.T) {
		tests := []struct {
			input    string
			expected float64
		}{
			{"1,23", 1.23},
			{"", 0},
			{"-", 0},
			{"+", 0},
			{" 4,5 ", 4.5},
		}
		for _, tt := range tests {
			v, err := german.FromString(tt.input)
			if err != nil {
				t.Errorf("Unexpected error for %q: %v", tt.input, err)
			}
			if v != tt.expected {
				t.Errorf("Expected %v for %q, got %v", tt.expected, tt.input, v)
			}
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, input := range []string{"INVALID", "1.23", "1,2,3"} {
			if _, err := german.FromString(input); err == nil {
				t.Errorf("Expected error for %q", input)
			}
		}
	})
}

func TestIntBoolDuration(t *testing.T) {
	if v, err := Int().FromString("42"); err != nil || v != 42 {
		t.Errorf("Expected 42, got %d (%v)", v, err)
	}
	if _, err := Int().FromString("forty-two"); err == nil {
		t.Errorf("Expected error for non numeric input")
	}
	if s, _ := Int().ToString(-7); s != "-7" {
		t.Errorf("Expected -7, got %s", s)
	}
	for input, want := range map[string]int{"010": 10, "08": 8, "+5": 5, " -0012 ": -12, "": 0} {
		if v, err := Int().FromString(input); err != nil || v != want {
			t.Errorf("Expected %d for %q, got %d (%v)", want, input, v, err)
		}
	}
	if _, err := Int().FromString("0x10"); err == nil {
		t.Errorf("Expected error for hex input")
	}
	if s, _ := Int().ToString(0); s != "0" {
		t.Errorf("Expected 0, got %q", s)
	}

	if v, err := Bool().FromString("true"); err != nil || !v {
		t.Errorf("Expected true, got %t (%v)", v, err)
	}
	if v, err := Bool().FromString(""); err != nil || v {
		t.Errorf("Expected false for empty string, got %t (%v)", v, err)
	}
	if _, err := Bool().FromString("maybe"); err == nil {
		t.Errorf("Expected error for maybe")
	}
	if s, _ := Bool().ToString(false); s != "false" {
		t.Errorf("Expected false, got %q", s)
	}

	if v, err := Duration().FromString("1h30m"); err != nil || v != 90*time.Minute {
		t.Errorf("Expected 1h30m, got %v (%v)", v, err)
	}
	if s, _ := Duration().ToString(1500 * time.Millisecond); s != "1.5s" {
		t.Errorf("Expected 1.5s, got %s", s)
	}
	if _, err := Duration().FromString("bogus"); err == nil {
		t.Errorf("Expected error for bogus duration")
	}
	if s, _ := Duration().ToString(0); s != "0s" {
		t.Errorf("Expected 0s, got %q", s)
	}
	if v, err := Duration().FromString(""); err != nil || v != 0 {
		t.Errorf("Expected zero for empty string, got %v (%v)", v, err)
	}
}

func TestPath(t *testing.T) {
	c := Path()
	s, err := c.ToString("relative/file.txt")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !filepath.IsAbs(s) {
		t.Errorf("Expected absolute path, got %s", s)
	}
	if s, _ := c.ToString(""); s != "" {
		t.Errorf("Expected empty string for empty path, got %s", s)
	}
	if p, _ := c.FromString("/a/b/../c"); p != filepath.Clean("/a/c") {
		t.Errorf("Expected cleaned path, got %s", p)
	}
}

func TestDate(t *testing.T) {
	day := time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC)

	t.Run("ToString", func(t *testing.T) {
		if s, _ := Date("2006__01__02").ToString(day); s != "2000__01__02" {
			t.Errorf("Expected 2000__01__02, got %s", s)
		}
		if s, _ := Date("2006__01__02").ToString(time.Time{}); s != "" {
			t.Errorf("Expected empty string for zero time, got %s", s)
		}
	})

	t.Run("FromString", func(t *testing.T) {
		multi := Date("2006-01-02", "02012006", "2006__01__02")
		for _, input := range []string{"02012000", "2000__01__02"} {
			v, err := multi.FromString(input)
			if err != nil {
				t.Errorf("Unexpected error for %s: %v", input, err)
				continue
			}
			if !v.Equal(day) {
				t.Errorf("Expected %v for %s, got %v", day, input, v)
			}
		}
		if _, err := multi.FromString("INVALID"); err == nil {
			t.Errorf("Expected error for INVALID")
		}
		if v, err := multi.FromString(""); err != nil || !v.IsZero() {
			t.Errorf("Expected zero time for empty string, got %v (%v)", v, err)
		}
	})
}

func TestSwallowing(t *testing.T) {
	failing := Func(
		func(v int) (string, error) { return "", errors.New("cannot encode") },
		func(s string) (int, error) {
			if s == "panic" {
				panic("boom")
			}
			return 0, errors.New("cannot decode")
		},
	)
	c := Swallowing(failing, -1)

	if v, err := c.FromString("x"); err != nil || v != -1 {
		t.Errorf("Expected fallback -1 without error, got %d (%v)", v, err)
	}
	if v, err := c.FromString("panic"); err != nil || v != -1 {
		t.Errorf("Expected fallback -1 after panic, got %d (%v)", v, err)
	}
	if s, err := c.ToString(3); err != nil || s != "" {
		t.Errorf("Expected empty string without error, got %q (%v)", s, err)
	}

	// successful conversions pass through untouched
	if v, _ := Swallowing(Int(), -1).FromString("5"); v != 5 {
		t.Errorf("Expected 5, got %d", v)
	}
}
