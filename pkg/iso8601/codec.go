package iso8601

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bft-labs/et/internal/domain"
	"github.com/bft-labs/et/pkg/calendar"
)

// Layout describes the canonical form in error messages.
const Layout = "YYYY-MM-DDTHH:MM:SSZ, e.g. 2026-01-05T12:00:00Z"

// suffix is "-MM-DDTHH:MM:SSZ"; only the year in front of it varies in width.
const suffixLen = 16

var separators = []struct {
	at   int
	char byte
}{
	{0, '-'}, {3, '-'}, {6, 'T'}, {9, ':'}, {12, ':'},
}

// Format renders e as a canonical ISO-8601 UTC string.
func Format(e domain.Epoch) string {
	c := calendar.ToCivil(e)
	return fmt.Sprintf("%s-%02d-%02dT%02d:%02d:%02dZ", formatYear(c.Year), c.Month, c.Day, c.Hour, c.Minute, c.Second)
}

func formatYear(y int64) string {
	switch {
	case y < 0:
		return fmt.Sprintf("-%04d", -y)
	case y > 9999:
		return "+" + strconv.FormatInt(y, 10)
	}
	return fmt.Sprintf("%04d", y)
}

// Parse converts a canonical ISO-8601 UTC string to an epoch. Components out
// of their calendar range are rejected rather than normalized.
func Parse(text string) (domain.Epoch, error) {
	fail := func(reason string) (domain.Epoch, error) {
		return 0, &domain.InputError{
			Kind:     domain.ErrInvalidTimestamp,
			Input:    text,
			Reason:   reason,
			Expected: Layout,
		}
	}

	if !strings.HasSuffix(text, "Z") {
		if hasNumericOffset(text) {
			return fail("only the UTC designator Z is supported")
		}
		return fail("missing UTC designator Z")
	}
	if len(text) < 4+suffixLen {
		return fail("too short")
	}

	head, tail := text[:len(text)-suffixLen], text[len(text)-suffixLen:]
	year, err := parseYear(head)
	if err != nil {
		return fail(err.Error())
	}

	// Separators sit at fixed offsets within the suffix.
	for _, sep := range separators {
		if tail[sep.at] != sep.char {
			return fail(fmt.Sprintf("expected %q at position %d", sep.char, len(head)+sep.at+1))
		}
	}

	var fields [5]int
	for n, at := range []int{1, 4, 7, 10, 13} {
		v, ok := twoDigits(tail[at : at+2])
		if !ok {
			return fail(fmt.Sprintf("expected two digits at position %d", len(head)+at+1))
		}
		fields[n] = v
	}

	c := calendar.Civil{
		Year:   year,
		Month:  fields[0],
		Day:    fields[1],
		Hour:   fields[2],
		Minute: fields[3],
		Second: fields[4],
	}
	if err := c.Validate(); err != nil {
		return fail(err.Error())
	}
	e, err := calendar.FromCivil(c)
	if err != nil {
		return fail(err.Error())
	}
	return e, nil
}

// parseYear accepts exactly the renderings produced by formatYear.
func parseYear(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("missing year")
	}
	sign, digits := s[0], s
	if sign == '+' || sign == '-' {
		digits = s[1:]
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, fmt.Errorf("year %q is not a number", s)
		}
	}

	switch sign {
	case '+':
		if len(digits) < 5 || digits[0] == '0' {
			return 0, fmt.Errorf("expanded year %q must be above 9999 without leading zeros", s)
		}
	case '-':
		if len(digits) < 4 || (len(digits) > 4 && digits[0] == '0') || strings.Trim(digits, "0") == "" {
			return 0, fmt.Errorf("negative year %q must be at least four digits without extra padding", s)
		}
	default:
		if len(digits) != 4 {
			return 0, fmt.Errorf("year %q must be four digits", s)
		}
	}

	y, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("year %q is beyond the 64-bit epoch range", s)
	}
	if sign == '-' {
		y = -y
	}
	return y, nil
}

func twoDigits(s string) (int, bool) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

// hasNumericOffset reports whether text ends in a +HH:MM, -HH:MM, +HHMM or -HHMM zone.
func hasNumericOffset(text string) bool {
	t := strings.LastIndex(text, "T")
	if t < 0 {
		return false
	}
	clock := text[t+1:]
	return strings.ContainsAny(clock, "+-")
}
