// Package ports defines the interfaces that connect the et command layer to
// its environment.
//
// # Port Interfaces
//
//   - [Clock]: source of the current epoch
//   - [Logger]: structured logging abstraction
//
// # Usage
//
// The command layer (internal/cli) depends only on these interfaces.
// Adapters (internal/adapters) provide the system clock; pkg/log provides
// the zerolog-backed logger. Tests substitute a fixed clock and a no-op
// logger so every command is deterministic.
package ports
