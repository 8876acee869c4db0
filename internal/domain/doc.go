// Package domain contains the value types and error kinds shared by the et
// packages.
//
// This package is the innermost layer: it has no dependencies on I/O,
// configuration or logging and holds only the data model and its invariants.
//
// # Values
//
//   - [Epoch]: signed seconds since 1970-01-01T00:00:00Z, UTC
//   - [Duration]: a signed magnitude tagged with exactly one [Unit]
//   - [Unit]: fixed-length (s, m, h, d, w) or calendar (M, Y)
//
// # Design Principles
//
// All values are immutable, comparable with ==, and constructed per
// invocation. Nothing in this package keeps state between calls.
package domain
