// Package cmd implements the command-line interface of prefsync. It provides
// a hierarchical command structure to inspect and edit the files written by
// applications that use the prefsync libraries.
//
// The package is organized into several subpackages:
//
//   - prefs: Commands for preference files (get, set, unset, list, convert)
//   - records: Commands for record files (list, add, done, rename, move, remove)
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// Every flag can also be set with an environment variable prefixed with
// PREFSYNC_ (e.g. PREFSYNC_LOG_LEVEL=debug), .env and .env.local files in the
// working directory are loaded on startup. The --file flags map to
// PREFSYNC_PREFERENCES_FILE and PREFSYNC_RECORDS_FILE.
//
// See prefsync -help for a list of all commands.
package cmd
