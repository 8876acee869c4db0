package domain

import (
	"fmt"
	"math"
)

// Unit is the kind of a Duration.
type Unit int

const (
	Second Unit = iota + 1
	Minute
	Hour
	Day
	Week
	Month
	Year
)

// Seconds per fixed-length unit.
const (
	SecondsPerMinute = 60
	SecondsPerHour   = 60 * SecondsPerMinute
	SecondsPerDay    = 24 * SecondsPerHour
	SecondsPerWeek   = 7 * SecondsPerDay
)

var unitLetters = map[Unit]byte{
	Second: 's',
	Minute: 'm',
	Hour:   'h',
	Day:    'd',
	Week:   'w',
	Month:  'M',
	Year:   'Y',
}

var unitNames = map[Unit]string{
	Second: "second",
	Minute: "minute",
	Hour:   "hour",
	Day:    "day",
	Week:   "week",
	Month:  "month",
	Year:   "year",
}

// UnitFromLetter maps a unit letter to its Unit. The match is case-sensitive:
// 'm' is minutes, 'M' is months, and only 'Y' means years.
func UnitFromLetter(c byte) (Unit, bool) {
	for u, l := range unitLetters {
		if l == c {
			return u, true
		}
	}
	return 0, false
}

// Letter returns the unit letter used in offset tokens.
func (u Unit) Letter() byte {
	return unitLetters[u]
}

// String returns the unit name.
func (u Unit) String() string {
	if n, ok := unitNames[u]; ok {
		return n
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// Valid reports whether u is one of the defined units.
func (u Unit) Valid() bool {
	_, ok := unitLetters[u]
	return ok
}

// IsCalendar reports whether the unit's length depends on the date it is applied to.
func (u Unit) IsCalendar() bool {
	return u == Month || u == Year
}

// FixedSeconds returns the exact length of a fixed unit in seconds,
// or 0 for calendar units.
func (u Unit) FixedSeconds() int64 {
	switch u {
	case Second:
		return 1
	case Minute:
		return SecondsPerMinute
	case Hour:
		return SecondsPerHour
	case Day:
		return SecondsPerDay
	case Week:
		return SecondsPerWeek
	}
	return 0
}

// Duration is a signed magnitude of exactly one unit.
type Duration struct {
	Magnitude int64
	Unit      Unit
}

// IsCalendar reports whether d uses a calendar unit (month or year).
func (d Duration) IsCalendar() bool {
	return d.Unit.IsCalendar()
}

// Seconds returns the exact second count of a fixed-length duration.
// Calendar durations have no fixed length and return an error.
func (d Duration) Seconds() (int64, error) {
	per := d.Unit.FixedSeconds()
	if per == 0 {
		return 0, fmt.Errorf("%s has no fixed length in seconds", d.Unit)
	}
	if d.Magnitude > math.MaxInt64/per || d.Magnitude < math.MinInt64/per {
		return 0, Overflow("%s is beyond the 64-bit range in seconds", d)
	}
	return d.Magnitude * per, nil
}

// Neg returns the duration with its sign flipped.
func (d Duration) Neg() (Duration, error) {
	if d.Magnitude == math.MinInt64 {
		return Duration{}, Overflow("cannot negate %s", d)
	}
	return Duration{Magnitude: -d.Magnitude, Unit: d.Unit}, nil
}

// String renders d as a canonical offset token such as "+7d" or "-1M".
func (d Duration) String() string {
	sign := "+"
	if d.Magnitude < 0 {
		sign = ""
	}
	return fmt.Sprintf("%s%d%c", sign, d.Magnitude, d.Unit.Letter())
}
