// Package common provides the infrastructure shared by all prefsync packages.
//
// The package focuses on:
//   - Logging through dragonboat's logger facade with a custom formatter
//   - Process wide metrics (VictoriaMetrics) and per store statistics (go-metrics)
//   - Crash safe replacement of small backing files
//   - The configuration struct of the command line front end
//
// Key Components:
//
//   - Logger: CreateLogger is registered as dragonboat's logger factory when the
//     package is initialized. Every package obtains its named logger with GetLogger
//     and InitLoggers adjusts the level of all of them at once. Log lines are
//     written to stderr in the format "LEVEL | name | message".
//
//   - Recorder: Each store owns a Recorder that counts effective changes, full
//     rewrites and failed rewrites in its own go-metrics registry, so a single
//     store can be observed in isolation. The same events are added to the
//     process wide prometheus counters, which WritePrometheus exposes.
//
//   - WriteFile: Writes a file through a temporary sibling that is flushed,
//     synced and renamed over the target. The parent directory is created on
//     demand.
//
//   - Config: Settings of the command line tool with a human readable String().
package common
