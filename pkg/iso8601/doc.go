// Package iso8601 converts between epochs and canonical ISO-8601 UTC strings
// of the form YYYY-MM-DDTHH:MM:SSZ.
//
// Years outside 0000-9999 use the expanded representation: a '+' followed by
// all digits for years above 9999, and a '-' followed by at least four digits
// for years before year 0. This keeps Parse and Format exact inverses over the
// whole int64 epoch range.
//
// [ParseLenient] accepts the many timestamp shapes recognized by
// github.com/araddon/dateparse for interactive use.
package iso8601
