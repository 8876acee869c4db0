// Package clock provides ports.Clock implementations.
package clock

import (
	"time"

	"github.com/bft-labs/et/internal/domain"
)

// System reads the wall clock in whole UTC seconds.
type System struct{}

// Now returns the current epoch.
func (System) Now() domain.Epoch {
	return domain.Epoch(time.Now().Unix())
}

// Fixed always reports the same epoch.
type Fixed domain.Epoch

// Now returns the fixed epoch.
func (f Fixed) Now() domain.Epoch {
	return domain.Epoch(f)
}
