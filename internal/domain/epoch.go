package domain

import (
	"strconv"
	"strings"
)

// EpochFormat describes an accepted epoch literal in error messages.
const EpochFormat = "an integer number of seconds, e.g. 1704912345 or -86400"

// Epoch is a number of seconds since 1970-01-01T00:00:00Z.
// Every int64 value is a valid Epoch.
type Epoch int64

// String returns the decimal representation of the epoch.
func (e Epoch) String() string {
	return strconv.FormatInt(int64(e), 10)
}

// ParseEpoch parses a decimal epoch literal. Surrounding whitespace is ignored.
func ParseEpoch(s string) (Epoch, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &InputError{Kind: ErrInvalidEpoch, Input: s, Reason: "empty", Expected: EpochFormat}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		reason := "not an integer"
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			reason = "out of the 64-bit range"
		}
		return 0, &InputError{Kind: ErrInvalidEpoch, Input: s, Reason: reason, Expected: EpochFormat}
	}
	return Epoch(v), nil
}
