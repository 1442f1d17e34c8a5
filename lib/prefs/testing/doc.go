// Package testing provides a conformance test suite for implementations of
// the prefs.IPreferences interface.
//
// The suite covers the observable contract of a store: empty values mean
// "unset", identical writes are no-ops, listeners run in registration order,
// cells are cached per key and write through in both directions.
//
// Example usage:
//
//	func TestMyStore(t *testing.T) {
//		prefstesting.RunPreferencesTests(t, "MyStore", func(t *testing.T) prefs.IPreferences {
//			return NewMyStore(filepath.Join(t.TempDir(), "prefs"))
//		})
//	}
package testing
