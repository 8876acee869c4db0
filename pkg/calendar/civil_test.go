package calendar

import (
	"errors"
	"math"
	"testing"

	"github.com/bft-labs/et/internal/domain"
)

func TestToCivil(t *testing.T) {
	tests := []struct {
		epoch domain.Epoch
		want  Civil
	}{
		{0, Civil{1970, 1, 1, 0, 0, 0}},
		{-1, Civil{1969, 12, 31, 23, 59, 59}},
		{951782400, Civil{2000, 2, 29, 0, 0, 0}},
		{1704912345, Civil{2024, 1, 10, 18, 45, 45}},
		{1767614400, Civil{2026, 1, 5, 12, 0, 0}},
		{-62167219200, Civil{0, 1, 1, 0, 0, 0}},
		{253402300799, Civil{9999, 12, 31, 23, 59, 59}},
		{math.MaxInt64, Civil{292277026596, 12, 4, 15, 30, 7}},
		{math.MinInt64, Civil{-292277022657, 1, 27, 8, 29, 52}},
	}

	for _, tt := range tests {
		got := ToCivil(tt.epoch)
		if got != tt.want {
			t.Errorf("ToCivil(%d) = %v, want %v", tt.epoch, got, tt.want)
		}
	}
}

func TestCivilRoundTrip(t *testing.T) {
	for _, e := range sampleEpochs() {
		c := ToCivil(e)
		if err := c.Validate(); err != nil {
			t.Fatalf("ToCivil(%d) = %v is invalid: %v", e, c, err)
		}
		got, err := FromCivil(c)
		if err != nil {
			t.Fatalf("FromCivil(%v) error = %v", c, err)
		}
		if got != e {
			t.Errorf("FromCivil(ToCivil(%d)) = %d", e, got)
		}
	}
}

func TestFromCivilOverflow(t *testing.T) {
	tests := []Civil{
		{292277026596, 12, 4, 15, 30, 8},
		{292277026597, 1, 1, 0, 0, 0},
		{-292277022657, 1, 27, 8, 29, 51},
		{1_000_000_000_000, 1, 1, 0, 0, 0},
		{-1_000_000_000_000, 1, 1, 0, 0, 0},
	}
	for _, c := range tests {
		if _, err := FromCivil(c); !errors.Is(err, domain.ErrEpochOverflow) {
			t.Errorf("FromCivil(%v) error = %v, want ErrEpochOverflow", c, err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		c       Civil
		wantErr bool
	}{
		{"valid", Civil{2024, 2, 29, 23, 59, 59}, false},
		{"month 0", Civil{2024, 0, 1, 0, 0, 0}, true},
		{"month 13", Civil{2024, 13, 1, 0, 0, 0}, true},
		{"day 32", Civil{2024, 1, 32, 0, 0, 0}, true},
		{"feb 29 non-leap", Civil{2023, 2, 29, 0, 0, 0}, true},
		{"feb 30", Civil{2024, 2, 30, 0, 0, 0}, true},
		{"april 31", Civil{2024, 4, 31, 0, 0, 0}, true},
		{"hour 24", Civil{2024, 1, 1, 24, 0, 0}, true},
		{"minute 60", Civil{2024, 1, 1, 0, 60, 0}, true},
		{"second 60", Civil{2024, 1, 1, 0, 0, 60}, true},
		{"negative second", Civil{2024, 1, 1, 0, 0, -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsLeap(t *testing.T) {
	tests := []struct {
		year int64
		want bool
	}{
		{2024, true},
		{2023, false},
		{2000, true},
		{1900, false},
		{2100, false},
		{2400, true},
		{0, true},
		{-1, false},
		{-4, true},
		{-100, false},
		{-400, true},
	}
	for _, tt := range tests {
		if got := IsLeap(tt.year); got != tt.want {
			t.Errorf("IsLeap(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestDaysIn(t *testing.T) {
	want := []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	for m, n := range want {
		if got := DaysIn(2023, m+1); got != n {
			t.Errorf("DaysIn(2023, %d) = %d, want %d", m+1, got, n)
		}
	}
	if got := DaysIn(2024, 2); got != 29 {
		t.Errorf("DaysIn(2024, 2) = %d, want 29", got)
	}
}

// sampleEpochs returns a deterministic spread of epochs covering both int64
// extremes, the epoch origin and ordinary dates.
func sampleEpochs() []domain.Epoch {
	out := []domain.Epoch{
		math.MinInt64, math.MinInt64 + 1, math.MinInt64 + 86399, math.MinInt64 + 86400,
		math.MaxInt64, math.MaxInt64 - 1, math.MaxInt64 - 86400,
		-1, 0, 1, 86399, 86400,
		951782400, 1704912345, 1767614400, -62167219200, 253402300799,
	}
	// Walk a prime stride across roughly +/- 10000 years.
	for e := int64(-315_569_520_000); e <= 315_569_520_000; e += 7_777_777_777 {
		out = append(out, domain.Epoch(e))
	}
	return out
}
