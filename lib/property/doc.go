// Package property implements observable cells, the unit all synchronization in
// prefsync is built from, and the typed adapter that keeps a string cell and a
// cell of a domain type in lock-step.
//
// A Cell holds one value and notifies its listeners synchronously, in
// registration order, whenever Set changes the value. Setting a value equal to
// the current one is a no-op. Because of this rule two cells can listen to each
// other without an explicit "update in progress" flag: the echo of a change
// arrives with an equal value and stops there.
//
// Bind builds a typed cell on top of a string cell:
//
//	width := prefs.StringCell("window.width", "")
//	widthPx := property.Bind(width, converter.Int(), 800)
//	widthPx.Set(1024) // width now holds "1024"
//	width.Set("640")  // widthPx now holds 640
//
// Conversion failures are swallowed by the adapter and logged; see Bind.
package property
