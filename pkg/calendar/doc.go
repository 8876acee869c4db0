// Package calendar applies durations to epochs using proleptic Gregorian
// calendar arithmetic in UTC.
//
// Fixed-length units (s, m, h, d, w) are added as exact second counts. Every
// day is 86400 seconds; leap seconds do not exist here.
//
// Calendar units (M, Y) move the civil date. The day of month is clamped to
// the length of the resulting month and the time of day is preserved:
//
//	2024-01-31T00:00:00Z +1M  ->  2024-02-29T00:00:00Z
//	2023-01-31T00:00:00Z +1M  ->  2023-02-28T00:00:00Z
//	2024-02-29T00:00:00Z +1Y  ->  2025-02-28T00:00:00Z
//
// Clamping loses information, so calendar offsets are not invertible:
// 2024-01-31 +1M -1M is 2024-01-29.
//
// Conversions between [domain.Epoch] and [Civil] are exact for the whole
// int64 range; arithmetic that leaves that range fails with
// [domain.ErrEpochOverflow] instead of wrapping.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package calendar
