// Package converter defines the IConverter contract used by typed properties and
// ships converters for the value types desktop preferences usually hold.
//
// A converter maps a domain type to its string representation and back. Both
// directions may fail; callers that must never fail (typed properties bound to
// text fields that pass through invalid states while the user types) wrap the
// converter with Swallowing.
//
// Converters:
//   - Identity: string to string
//   - Func: any pair of functions
//   - Float: float64 with configurable precision and decimal separator
//   - Int, Bool, Duration: parsed with spf13/cast
//   - Path: absolute file paths
//   - Date: time.Time with one output format and several accepted input layouts
//   - Swallowing: never fails, yields a fallback instead
package converter
