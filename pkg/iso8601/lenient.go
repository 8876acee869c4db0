package iso8601

import (
	"time"

	"github.com/araddon/dateparse"

	"github.com/bft-labs/et/internal/domain"
)

// ParseLenient accepts canonical input and anything dateparse understands,
// such as "2024-01-10T12:00:00+02:00", "2024-01-10 12:00:00" or
// "Wed, 10 Jan 2024 12:00:00 GMT". Input without a zone is read as UTC and
// sub-second precision is dropped.
func ParseLenient(text string) (domain.Epoch, error) {
	if e, err := Parse(text); err == nil {
		return e, nil
	}
	t, err := dateparse.ParseIn(text, time.UTC)
	if err != nil {
		return 0, &domain.InputError{
			Kind:     domain.ErrInvalidTimestamp,
			Input:    text,
			Reason:   err.Error(),
			Expected: "a recognizable date and time",
		}
	}
	return domain.Epoch(t.Unix()), nil
}
