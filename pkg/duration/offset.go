package duration

import (
	"math"
	"strings"

	isoduration "github.com/sosodev/duration"

	"github.com/bft-labs/et/internal/domain"
)

// ISOFormat describes the accepted ISO-8601 duration form in error messages.
const ISOFormat = "[+|-]P[nY][nM][nW][nD][T[nH][nM][nS]], e.g. P1M or -PT90M"

// Offset is an ordered list of single-unit durations, applied first to last.
type Offset []domain.Duration

// String renders the offset as space-separated tokens.
func (o Offset) String() string {
	parts := make([]string, len(o))
	for i, d := range o {
		parts[i] = d.String()
	}
	return strings.Join(parts, " ")
}

// ParseOffset parses either a single offset token (see Parse) or an
// ISO-8601 duration. ISO components are emitted largest unit first and zero
// components are dropped; all components must be whole numbers.
func ParseOffset(token string) (Offset, error) {
	body := strings.TrimLeft(token, "+-")
	if len(token)-len(body) > 1 || !strings.HasPrefix(body, "P") {
		d, err := Parse(token)
		if err != nil {
			return nil, err
		}
		return Offset{d}, nil
	}
	return parseISO(token, body)
}

func parseISO(token, body string) (Offset, error) {
	fail := func(reason string) (Offset, error) {
		return nil, &domain.InputError{
			Kind:     domain.ErrInvalidDuration,
			Input:    token,
			Reason:   reason,
			Expected: ISOFormat,
		}
	}

	if body == "P" || body == "PT" {
		return fail("no components")
	}
	iso, err := isoduration.Parse(body)
	if err != nil {
		return fail(err.Error())
	}

	negative := strings.HasPrefix(token, "-") != iso.Negative
	components := []struct {
		value float64
		unit  domain.Unit
	}{
		{iso.Years, domain.Year},
		{iso.Months, domain.Month},
		{iso.Weeks, domain.Week},
		{iso.Days, domain.Day},
		{iso.Hours, domain.Hour},
		{iso.Minutes, domain.Minute},
		{iso.Seconds, domain.Second},
	}

	var off Offset
	for _, c := range components {
		if c.value == 0 {
			continue
		}
		if c.value != math.Trunc(c.value) {
			return fail("fractional " + c.unit.String() + " component")
		}
		if c.value >= math.MaxInt64 || c.value < math.MinInt64 {
			return fail(c.unit.String() + " component out of the 64-bit range")
		}
		d := domain.Duration{Magnitude: int64(c.value), Unit: c.unit}
		if negative {
			if d, err = d.Neg(); err != nil {
				return nil, err
			}
		}
		off = append(off, d)
	}
	if len(off) == 0 {
		// P0D and friends move nothing.
		return Offset{{Magnitude: 0, Unit: domain.Second}}, nil
	}
	return off, nil
}
