package calendar

import (
	"fmt"

	"github.com/bft-labs/et/internal/domain"
)

// Years beyond this bound cannot map to an int64 epoch. FromCivil rejects them
// before doing any day arithmetic.
const maxAbsYear = 292_277_026_597

// Civil is the UTC calendar representation of an epoch.
type Civil struct {
	Year   int64
	Month  int // 1-12
	Day    int // 1-DaysIn(Year, Month)
	Hour   int // 0-23
	Minute int // 0-59
	Second int // 0-59
}

// String renders c as YYYY-MM-DD HH:MM:SS for diagnostics.
func (c Civil) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second)
}

// Validate checks every component against its calendar range.
func (c Civil) Validate() error {
	switch {
	case c.Month < 1 || c.Month > 12:
		return fmt.Errorf("month %d out of range 1-12", c.Month)
	case c.Day < 1 || c.Day > DaysIn(c.Year, c.Month):
		return fmt.Errorf("day %d out of range 1-%d for %04d-%02d", c.Day, DaysIn(c.Year, c.Month), c.Year, c.Month)
	case c.Hour < 0 || c.Hour > 23:
		return fmt.Errorf("hour %d out of range 0-23", c.Hour)
	case c.Minute < 0 || c.Minute > 59:
		return fmt.Errorf("minute %d out of range 0-59", c.Minute)
	case c.Second < 0 || c.Second > 59:
		return fmt.Errorf("second %d out of range 0-59", c.Second)
	}
	return nil
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in the given month (1-12) of year.
func DaysIn(year int64, month int) int {
	switch month {
	case 2:
		if IsLeap(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	}
	return 31
}

// ToCivil converts an epoch to its UTC calendar representation.
func ToCivil(e domain.Epoch) Civil {
	days := floorDiv(int64(e), domain.SecondsPerDay)
	sod := floorMod(int64(e), domain.SecondsPerDay)

	y, m, d := civilFromDays(days)
	return Civil{
		Year:   y,
		Month:  m,
		Day:    d,
		Hour:   int(sod / domain.SecondsPerHour),
		Minute: int(sod % domain.SecondsPerHour / domain.SecondsPerMinute),
		Second: int(sod % domain.SecondsPerMinute),
	}
}

// FromCivil converts a calendar representation back to an epoch.
// c must be valid (see Validate).
func FromCivil(c Civil) (domain.Epoch, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	if c.Year > maxAbsYear || c.Year < -maxAbsYear {
		return 0, domain.Overflow("year %d is beyond the 64-bit epoch range", c.Year)
	}

	days := daysFromCivil(c.Year, c.Month, c.Day)
	sod := int64(c.Hour)*domain.SecondsPerHour + int64(c.Minute)*domain.SecondsPerMinute + int64(c.Second)
	// Borrow a day on the negative side so days*86400 stays in range near
	// the minimum epoch.
	if days < 0 && sod > 0 {
		days++
		sod -= domain.SecondsPerDay
	}
	secs, ok := mulInt64(days, domain.SecondsPerDay)
	if !ok {
		return 0, domain.Overflow("%s is beyond the 64-bit epoch range", c)
	}
	secs, ok = addInt64(secs, sod)
	if !ok {
		return 0, domain.Overflow("%s is beyond the 64-bit epoch range", c)
	}
	return domain.Epoch(secs), nil
}

// daysFromCivil returns the day number relative to 1970-01-01 of the given
// proleptic Gregorian date. Years are grouped into 400-year eras of 146097
// days, with each year starting on March 1 so the leap day falls last.
func daysFromCivil(y int64, m, d int) int64 {
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := int64(m+9) % 12
	doy := (153*mp+2)/5 + int64(d) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(z int64) (int64, int, int) {
	z += 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := int(doy - (153*mp+2)/5 + 1)
	m := int(mp+2)%12 + 1
	if m <= 2 {
		y++
	}
	return y, m, d
}
