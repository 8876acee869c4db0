// Package log provides the logging abstraction used by et.
//
// Diagnostics go to stderr so they never mix with the timestamps written to
// stdout. The default implementation wraps zerolog; a no-op logger is
// provided for tests and library use.
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.WarnLevel)
//	logger.Warn("skipping line", log.Int("line", 3), log.Err(err))
//
// # Version
//
// Current version: 2.0.0
// Minimum compatible version: 2.0.0
package log
