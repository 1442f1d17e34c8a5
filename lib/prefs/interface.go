package prefs

import (
	"github.com/ValentinKolb/prefsync/lib/common"
	"github.com/ValentinKolb/prefsync/lib/property"
)

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// Listener is invoked after the value of key changed. An empty string stands
// for "unset" in both oldValue and newValue.
type Listener func(key, oldValue, newValue string)

// IPreferences is a set of named string values with observable cells.
// The empty string is treated as "unset" everywhere: storing it removes the key.
type IPreferences interface {
	// GetString returns the value of key. The boolean is false if the key is unset.
	GetString(key string) (value string, ok bool)
	// SetString stores value under key and returns whether the stored value changed.
	// On a change the cell of key (if one was created) is updated and then every
	// listener is notified, all before SetString returns.
	SetString(key, value string) (changed bool)
	// StringCell returns the cell of key, creating it on first use. A new cell is
	// seeded with the stored value, or def if key is unset. Later calls return the
	// same cell and ignore def. Setting the cell is the same as calling SetString.
	StringCell(key, def string) *property.Cell[string]
	// Snapshot returns an independent copy of all stored values.
	Snapshot() map[string]string
	// AddListener registers l and returns a function that removes it again.
	AddListener(l Listener) (remove func())
	// Stats returns the change and rewrite counters of this store.
	Stats() common.Stats
}
