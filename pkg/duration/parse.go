package duration

import (
	"strconv"

	"github.com/bft-labs/et/internal/domain"
)

// TokenFormat describes the accepted token grammar in error messages.
const TokenFormat = "[+|-]<digits><s|m|h|d|w|M|Y>, e.g. +7d or -1M"

// Parse converts an offset token into a Duration.
// A missing sign means positive.
func Parse(token string) (domain.Duration, error) {
	fail := func(reason string) (domain.Duration, error) {
		return domain.Duration{}, &domain.InputError{
			Kind:     domain.ErrInvalidDuration,
			Input:    token,
			Reason:   reason,
			Expected: TokenFormat,
		}
	}

	if token == "" {
		return fail("empty")
	}

	rest := token
	negative := false
	switch rest[0] {
	case '+':
		rest = rest[1:]
	case '-':
		negative = true
		rest = rest[1:]
	}

	i := 0
	for i < len(rest) && isDigit(rest[i]) {
		i++
	}
	digits, suffix := rest[:i], rest[i:]

	if digits == "" {
		if suffix == "" {
			return fail("missing magnitude")
		}
		if _, ok := domain.UnitFromLetter(suffix[0]); ok {
			return fail("missing magnitude")
		}
		return fail("magnitude is not a number")
	}
	if suffix == "" {
		return fail("missing unit")
	}

	unit, ok := domain.UnitFromLetter(suffix[0])
	if !ok {
		if containsDigit(suffix) {
			return fail("magnitude is not a number")
		}
		return fail("unknown unit " + strconv.Quote(suffix))
	}
	if len(suffix) > 1 {
		return fail("unexpected characters " + strconv.Quote(suffix[1:]) + " after unit")
	}

	// Parse with the sign attached so the most negative int64 stays reachable.
	signed := digits
	if negative {
		signed = "-" + digits
	}
	n, err := strconv.ParseInt(signed, 10, 64)
	if err != nil {
		return fail("magnitude out of the 64-bit range")
	}

	return domain.Duration{Magnitude: n, Unit: unit}, nil
}

// IsOffset reports whether arg should be read as an offset rather than an
// epoch literal: it carries an explicit sign and is not a plain signed integer.
// It does not validate the token; Parse does.
func IsOffset(arg string) bool {
	if len(arg) < 2 || (arg[0] != '+' && arg[0] != '-') {
		return false
	}
	return !allDigits(arg[1:])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return s != ""
}

func containsDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			return true
		}
	}
	return false
}
