package calendar

import (
	"fmt"

	"github.com/bft-labs/et/internal/domain"
	"github.com/bft-labs/et/pkg/duration"
)

// Apply returns e moved by d.
func Apply(e domain.Epoch, d domain.Duration) (domain.Epoch, error) {
	switch {
	case d.Unit == domain.Month:
		return addMonths(e, d.Magnitude)
	case d.Unit == domain.Year:
		return addYears(e, d.Magnitude)
	case d.Unit.Valid():
		secs, err := d.Seconds()
		if err != nil {
			return 0, err
		}
		r, ok := addInt64(int64(e), secs)
		if !ok {
			return 0, domain.Overflow("%s %s is beyond the 64-bit epoch range", e, d)
		}
		return domain.Epoch(r), nil
	}
	return 0, fmt.Errorf("%w: unknown unit %v", domain.ErrInvalidDuration, d.Unit)
}

// ApplyOffset applies every component of off in order.
func ApplyOffset(e domain.Epoch, off duration.Offset) (domain.Epoch, error) {
	for _, d := range off {
		var err error
		if e, err = Apply(e, d); err != nil {
			return 0, err
		}
	}
	return e, nil
}

func addMonths(e domain.Epoch, n int64) (domain.Epoch, error) {
	c := ToCivil(e)

	// ToCivil years are bounded by maxAbsYear, so only adding n can overflow.
	total, ok := addInt64(c.Year*12+int64(c.Month-1), n)
	if !ok {
		return 0, domain.Overflow("%s %+dM is beyond the 64-bit epoch range", e, n)
	}
	c.Year = floorDiv(total, 12)
	c.Month = int(floorMod(total, 12)) + 1
	c.Day = min(c.Day, DaysIn(c.Year, c.Month))

	return FromCivil(c)
}

func addYears(e domain.Epoch, n int64) (domain.Epoch, error) {
	c := ToCivil(e)

	year, ok := addInt64(c.Year, n)
	if !ok {
		return 0, domain.Overflow("%s %+dY is beyond the 64-bit epoch range", e, n)
	}
	c.Year = year
	c.Day = min(c.Day, DaysIn(c.Year, c.Month))

	return FromCivil(c)
}
