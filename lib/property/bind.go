package property

import (
	"github.com/ValentinKolb/prefsync/lib/property/converter"
)

// Bind creates a cell of type T that is kept in lock-step with str through c.
//
// The typed cell is seeded with the decoded value of str, or with def if str is
// empty. Afterwards every change on one side is converted and applied to the
// other side. A change is not echoed back if the other side already represents
// the new value: a string is only rewritten if it does not decode to the new
// typed value, and the typed cell is only set if the decoded value differs.
// Equality is the only cycle breaker.
//
// Conversion failures never reach the caller of Set. A string that cannot be
// decoded sets the typed cell to the zero value of T and is left untouched, so
// a half typed number survives until the user finishes typing.
func Bind[T comparable](str *Cell[string], c converter.IConverter[T], def T) *Cell[T] {
	var zero T
	safe := converter.Swallowing(c, zero)

	decode := func(s string) T {
		v, _ := safe.FromString(s)
		return v
	}
	encode := func(v T) string {
		s, _ := safe.ToString(v)
		return s
	}

	initial := def
	if s := str.Get(); s != "" {
		initial = decode(s)
	}
	typed := NewCell(initial)

	str.AddListener(func(_, newString string) {
		typed.Set(decode(newString))
	})
	typed.AddListener(func(_, newValue T) {
		current := str.Get()
		if current != "" && decode(current) == newValue {
			return
		}
		str.Set(encode(newValue))
	})
	return typed
}
