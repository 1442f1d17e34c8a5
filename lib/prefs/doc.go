// Package prefs implements preference stores: named string values kept in sync
// with a backing file and exposed as observable cells.
//
// Key Components:
//
//   - IPreferences: the store interface. Values are plain strings, the empty
//     string means "unset". SetString reports whether anything changed and
//     notifies the store listeners synchronously, in registration order.
//
//   - StringCell: returns the one cell of a key. The cell is created lazily and
//     cached for the lifetime of the store. Setting the cell writes through to
//     the store and SetString updates the cell, both directions stop as soon as
//     the value is unchanged.
//
//   - Typed: binds a cell of a domain type to the string cell of a key, using a
//     converter from package converter.
//
//   - New: an in-memory store, useful in tests and as the base of Build.
//
//   - Build: loads a store from a backing file (see package codec) and rewrites
//     the complete file after every effective change. There is no batching, the
//     file always holds the last committed value.
//
// Failure Handling:
//
//	Persistence is best-effort. A file that cannot be read yields an empty
//	store, a failed rewrite is logged and counted (Stats().RewriteErrors) and
//	superseded by the next successful one. The in-memory values are always
//	authoritative. Only an empty path is reported as an error (*common.Error
//	with code RetCInvalidConfiguration).
//
// Thread Safety:
//
//	One mutex per store guards the values and the listener list, the cell cache
//	is an xsync.MapOf so that a cell is created exactly once per key. The lock is
//	released before cells and listeners are notified, so listeners may call
//	back into the store. Two stores over the same file are not coordinated.
//
// Usage:
//
//	p, err := prefs.Build(filepath.Join(home, ".app", "preferences"), nil)
//	if err != nil { ... }
//	theme := p.StringCell("theme", "light")
//	width := prefs.Typed(p, "window.width", converter.Int(), 800)
//	theme.Set("dark") // the file now contains theme=dark
//	width.Set(1024)   // and window.width=1024
package prefs
