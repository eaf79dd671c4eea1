package pricing

import (
	"errors"
	"testing"
	"time"

	"staycove/internal/domain/availability"
	"staycove/internal/domain/shared/daterange"
	"staycove/internal/domain/shared/money"
)

func stayRange(t *testing.T, nights int) daterange.DateRange {
	t.Helper()
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	dr, err := daterange.New(start, start.AddDate(0, 0, nights))
	if err != nil {
		t.Fatalf("build range: %v", err)
	}
	return dr
}

func ratedDays(dr daterange.DateRange, rate int64) []availability.Day {
	days := make([]availability.Day, 0, dr.Nights())
	for _, date := range dr.Days() {
		nightly := money.Dollars(rate)
		days = append(days, availability.Day{Date: date, Available: true, Rate: &nightly})
	}
	return days
}

func TestAggregateRates(t *testing.T) {
	t.Parallel()

	t.Run("sums nightly rates and averages", func(t *testing.T) {
		dr := stayRange(t, 7)
		summary, err := AggregateRates(ratedDays(dr, 200), dr)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if summary.AccommodationTotal.Amount != 1400 {
			t.Fatalf("expected 1400, got %d", summary.AccommodationTotal.Amount)
		}
		if summary.BaseRate.Amount != 200 {
			t.Fatalf("expected base rate 200, got %d", summary.BaseRate.Amount)
		}
	})

	t.Run("base rate rounds ties away from zero", func(t *testing.T) {
		dr := stayRange(t, 2)
		days := ratedDays(dr, 0)
		first := money.Dollars(100)
		second := money.Dollars(101)
		days[0].Rate = &first
		days[1].Rate = &second
		summary, err := AggregateRates(days, dr)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if summary.BaseRate.Amount != 101 { // 100.5 rounds up
			t.Fatalf("expected base rate 101, got %d", summary.BaseRate.Amount)
		}
	})

	t.Run("fails when a day is missing", func(t *testing.T) {
		dr := stayRange(t, 3)
		days := ratedDays(dr, 150)[:2]
		_, err := AggregateRates(days, dr)
		if !errors.Is(err, ErrIncompleteAvailability) {
			t.Fatalf("expected ErrIncompleteAvailability, got %v", err)
		}
	})

	t.Run("fails when a single day is unavailable", func(t *testing.T) {
		dr := stayRange(t, 5)
		days := ratedDays(dr, 150)
		days[2].Available = false
		_, err := AggregateRates(days, dr)
		if !errors.Is(err, ErrIncompleteAvailability) {
			t.Fatalf("expected ErrIncompleteAvailability, got %v", err)
		}
	})

	t.Run("fails when an available day has no rate", func(t *testing.T) {
		dr := stayRange(t, 4)
		days := ratedDays(dr, 150)
		days[1].Rate = nil
		_, err := AggregateRates(days, dr)
		if !errors.Is(err, ErrIncompleteAvailability) {
			t.Fatalf("expected ErrIncompleteAvailability, got %v", err)
		}
	})

	t.Run("negative rate is an invalid amount", func(t *testing.T) {
		dr := stayRange(t, 2)
		days := ratedDays(dr, 150)
		bad := money.Dollars(-5)
		days[0].Rate = &bad
		_, err := AggregateRates(days, dr)
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("zero-night range is invalid", func(t *testing.T) {
		_, err := AggregateRates(nil, daterange.DateRange{})
		if !errors.Is(err, daterange.ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})
}
