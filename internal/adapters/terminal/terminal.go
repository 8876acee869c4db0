// Package terminal detects whether a file is an interactive terminal.
package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsInteractive reports whether f is attached to a terminal, including
// Cygwin/MSYS pseudo terminals on Windows.
func IsInteractive(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
