// Package duration parses offset tokens into typed durations.
//
// A token is an optional sign, a run of decimal digits and exactly one unit
// letter:
//
//	s  seconds
//	m  minutes (60s)
//	h  hours (3600s)
//	d  days (86400s)
//	w  weeks (604800s)
//	M  months (calendar)
//	Y  years (calendar)
//
// Unit letters are case-sensitive. Examples: "+7d", "-1M", "30s", "+1Y".
//
// [ParseOffset] additionally accepts ISO-8601 durations such as "P1Y2M" or
// "-PT90M", which decompose into several single-unit durations.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package duration
