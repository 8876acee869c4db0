package calendar

import (
	"errors"
	"math"
	"testing"

	"github.com/bft-labs/et/internal/domain"
	"github.com/bft-labs/et/pkg/duration"
)

func mustEpoch(t *testing.T, c Civil) domain.Epoch {
	t.Helper()
	e, err := FromCivil(c)
	if err != nil {
		t.Fatalf("FromCivil(%v) error = %v", c, err)
	}
	return e
}

func mustParse(t *testing.T, token string) domain.Duration {
	t.Helper()
	d, err := duration.Parse(token)
	if err != nil {
		t.Fatalf("duration.Parse(%q) error = %v", token, err)
	}
	return d
}

func TestApplyCalendar(t *testing.T) {
	tests := []struct {
		name  string
		from  Civil
		token string
		want  Civil
	}{
		{"clamp leap february", Civil{2024, 1, 31, 0, 0, 0}, "+1M", Civil{2024, 2, 29, 0, 0, 0}},
		{"clamp common february", Civil{2023, 1, 31, 0, 0, 0}, "+1M", Civil{2023, 2, 28, 0, 0, 0}},
		{"leap day plus a year", Civil{2024, 2, 29, 0, 0, 0}, "+1Y", Civil{2025, 2, 28, 0, 0, 0}},
		{"leap day plus four years", Civil{2024, 2, 29, 0, 0, 0}, "+4Y", Civil{2028, 2, 29, 0, 0, 0}},
		{"leap day to 2100", Civil{2096, 2, 29, 0, 0, 0}, "+4Y", Civil{2100, 2, 28, 0, 0, 0}},
		{"leap day to 2000", Civil{1996, 2, 29, 0, 0, 0}, "+4Y", Civil{2000, 2, 29, 0, 0, 0}},
		{"year rollover forward", Civil{2023, 12, 15, 10, 0, 0}, "+1M", Civil{2024, 1, 15, 10, 0, 0}},
		{"year rollover backward", Civil{2024, 1, 15, 10, 0, 0}, "-1M", Civil{2023, 12, 15, 10, 0, 0}},
		{"thirteen months", Civil{2024, 5, 31, 0, 0, 0}, "+13M", Civil{2025, 6, 30, 0, 0, 0}},
		{"minus twenty-five months", Civil{2024, 3, 31, 0, 0, 0}, "-25M", Civil{2022, 2, 28, 0, 0, 0}},
		{"time of day kept", Civil{2024, 1, 31, 23, 59, 59}, "+1M", Civil{2024, 2, 29, 23, 59, 59}},
		{"zero months", Civil{2024, 1, 31, 12, 0, 0}, "+0M", Civil{2024, 1, 31, 12, 0, 0}},
		{"across year zero", Civil{1, 1, 15, 0, 0, 0}, "-2M", Civil{0, 11, 15, 0, 0, 0}},
		{"into negative years", Civil{0, 3, 1, 0, 0, 0}, "-1Y", Civil{-1, 3, 1, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(mustEpoch(t, tt.from), mustParse(t, tt.token))
			if err != nil {
				t.Fatalf("Apply error = %v", err)
			}
			if c := ToCivil(got); c != tt.want {
				t.Errorf("%v %s = %v, want %v", tt.from, tt.token, c, tt.want)
			}
		})
	}
}

func TestApplyFixed(t *testing.T) {
	tests := []struct {
		from  domain.Epoch
		token string
		want  domain.Epoch
	}{
		{1704912345, "+7d", 1705517145},
		{1704912345, "-7d", 1704307545},
		{1704912345, "+1h", 1704915945},
		{0, "-1s", -1},
		{0, "+2w", 1209600},
		{100, "-90m", -5300},
	}
	for _, tt := range tests {
		got, err := Apply(tt.from, mustParse(t, tt.token))
		if err != nil {
			t.Fatalf("Apply(%d, %s) error = %v", tt.from, tt.token, err)
		}
		if got != tt.want {
			t.Errorf("Apply(%d, %s) = %d, want %d", tt.from, tt.token, got, tt.want)
		}
	}
}

func TestApplyAdditivity(t *testing.T) {
	for _, e := range ordinaryEpochs() {
		a, err := Apply(e, mustParse(t, "+60s"))
		if err != nil {
			t.Fatal(err)
		}
		b, err := Apply(e, mustParse(t, "+1m"))
		if err != nil {
			t.Fatal(err)
		}
		if a != b {
			t.Errorf("%d: +60s = %d, +1m = %d", e, a, b)
		}

		days := e
		for i := 0; i < 28; i++ {
			if days, err = Apply(days, mustParse(t, "+1d")); err != nil {
				t.Fatal(err)
			}
		}
		weeks, err := Apply(e, mustParse(t, "+4w"))
		if err != nil {
			t.Fatal(err)
		}
		if days != weeks {
			t.Errorf("%d: 28 x +1d = %d, +4w = %d", e, days, weeks)
		}
	}
}

func TestApplySignSymmetry(t *testing.T) {
	tokens := []string{"1s", "59m", "25h", "400d", "3w"}
	for _, e := range ordinaryEpochs() {
		for _, tok := range tokens {
			fwd, err := Apply(e, mustParse(t, "+"+tok))
			if err != nil {
				t.Fatal(err)
			}
			back, err := Apply(fwd, mustParse(t, "-"+tok))
			if err != nil {
				t.Fatal(err)
			}
			if back != e {
				t.Errorf("%d +%s -%s = %d", e, tok, tok, back)
			}
		}
	}
}

func TestApplyMonthsNotInvertible(t *testing.T) {
	start := mustEpoch(t, Civil{2024, 1, 31, 0, 0, 0})
	fwd, err := Apply(start, mustParse(t, "+1M"))
	if err != nil {
		t.Fatal(err)
	}
	back, err := Apply(fwd, mustParse(t, "-1M"))
	if err != nil {
		t.Fatal(err)
	}
	if want := (Civil{2024, 1, 29, 0, 0, 0}); ToCivil(back) != want {
		t.Errorf("2024-01-31 +1M -1M = %v, want %v", ToCivil(back), want)
	}
}

func TestApplyOverflow(t *testing.T) {
	tests := []struct {
		name string
		from domain.Epoch
		d    domain.Duration
	}{
		{"max plus a second", math.MaxInt64, domain.Duration{Magnitude: 1, Unit: domain.Second}},
		{"min minus a second", math.MinInt64, domain.Duration{Magnitude: -1, Unit: domain.Second}},
		{"huge weeks", 0, domain.Duration{Magnitude: math.MaxInt64 / 2, Unit: domain.Week}},
		{"max plus a month", math.MaxInt64, domain.Duration{Magnitude: 1, Unit: domain.Month}},
		{"min minus a year", math.MinInt64, domain.Duration{Magnitude: -1, Unit: domain.Year}},
		{"huge months", 0, domain.Duration{Magnitude: math.MaxInt64, Unit: domain.Month}},
		{"huge negative months", 0, domain.Duration{Magnitude: math.MinInt64, Unit: domain.Month}},
		{"huge years", 0, domain.Duration{Magnitude: math.MaxInt64, Unit: domain.Year}},
		{"trillion years", 0, domain.Duration{Magnitude: 1_000_000_000_000, Unit: domain.Year}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Apply(tt.from, tt.d); !errors.Is(err, domain.ErrEpochOverflow) {
				t.Errorf("Apply error = %v, want ErrEpochOverflow", err)
			}
		})
	}
}

func TestApplyUnknownUnit(t *testing.T) {
	_, err := Apply(0, domain.Duration{Magnitude: 1, Unit: domain.Unit(42)})
	if !errors.Is(err, domain.ErrInvalidDuration) {
		t.Errorf("Apply error = %v, want ErrInvalidDuration", err)
	}
}

func TestApplyOffset(t *testing.T) {
	off, err := duration.ParseOffset("P1M1D")
	if err != nil {
		t.Fatal(err)
	}
	start := mustEpoch(t, Civil{2024, 1, 31, 6, 0, 0})
	got, err := ApplyOffset(start, off)
	if err != nil {
		t.Fatal(err)
	}
	// Months go first: Jan 31 clamps to Feb 29, then one day on.
	if want := (Civil{2024, 3, 1, 6, 0, 0}); ToCivil(got) != want {
		t.Errorf("ApplyOffset = %v, want %v", ToCivil(got), want)
	}

	if _, err := ApplyOffset(math.MaxInt64, duration.Offset{{Magnitude: 1, Unit: domain.Day}}); !errors.Is(err, domain.ErrEpochOverflow) {
		t.Errorf("ApplyOffset error = %v, want ErrEpochOverflow", err)
	}
}

// ordinaryEpochs stays well inside the int64 range so fixed offsets never overflow.
func ordinaryEpochs() []domain.Epoch {
	var out []domain.Epoch
	for e := int64(-100_000_000_000); e <= 100_000_000_000; e += 3_333_333_337 {
		out = append(out, domain.Epoch(e))
	}
	return append(out, 0, -1, 1704912345, 951782400)
}
