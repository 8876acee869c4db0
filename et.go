// Package et generates and transforms Unix epoch timestamps with UTC-only
// semantics.
//
// Example usage:
//
//	e, err := et.ParseISO("2024-01-31T00:00:00Z")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, err := et.ParseDuration("+1M")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	next, err := et.Apply(e, d)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(et.FormatISO(next)) // 2024-02-29T00:00:00Z
package et

import (
	"github.com/bft-labs/et/internal/domain"
	"github.com/bft-labs/et/pkg/calendar"
	"github.com/bft-labs/et/pkg/duration"
	"github.com/bft-labs/et/pkg/iso8601"
)

// Epoch is a number of seconds since 1970-01-01T00:00:00Z.
type Epoch = domain.Epoch

// Duration is a signed magnitude of exactly one Unit.
type Duration = domain.Duration

// Unit is the kind of a Duration.
type Unit = domain.Unit

// Offset is an ordered list of durations, as produced by ParseOffset.
type Offset = duration.Offset

// InputError describes a rejected input value; it unwraps to one of the Err* kinds.
type InputError = domain.InputError

// Duration units.
const (
	Second = domain.Second
	Minute = domain.Minute
	Hour   = domain.Hour
	Day    = domain.Day
	Week   = domain.Week
	Month  = domain.Month
	Year   = domain.Year
)

// Error kinds. Check them with errors.Is.
var (
	ErrInvalidDuration  = domain.ErrInvalidDuration
	ErrInvalidTimestamp = domain.ErrInvalidTimestamp
	ErrInvalidEpoch     = domain.ErrInvalidEpoch
	ErrEpochOverflow    = domain.ErrEpochOverflow
)

// ParseDuration parses an offset token such as "+7d" or "-1M".
func ParseDuration(token string) (Duration, error) {
	return duration.Parse(token)
}

// ParseOffset parses an offset token or an ISO-8601 duration such as "P1M2D".
func ParseOffset(token string) (Offset, error) {
	return duration.ParseOffset(token)
}

// ParseEpoch parses a decimal epoch literal.
func ParseEpoch(s string) (Epoch, error) {
	return domain.ParseEpoch(s)
}

// Apply returns e moved by d, with day-of-month clamping for calendar units.
func Apply(e Epoch, d Duration) (Epoch, error) {
	return calendar.Apply(e, d)
}

// ApplyOffset applies each component of off in order.
func ApplyOffset(e Epoch, off Offset) (Epoch, error) {
	return calendar.ApplyOffset(e, off)
}

// ParseISO converts a canonical YYYY-MM-DDTHH:MM:SSZ string to an epoch.
func ParseISO(text string) (Epoch, error) {
	return iso8601.Parse(text)
}

// FormatISO renders e as a canonical ISO-8601 UTC string.
func FormatISO(e Epoch) string {
	return iso8601.Format(e)
}
