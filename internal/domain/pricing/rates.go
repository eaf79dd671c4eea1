package pricing

import (
	"fmt"
	"time"

	"staycove/internal/domain/availability"
	"staycove/internal/domain/shared/daterange"
	"staycove/internal/domain/shared/money"
)

// RateSummary is the accommodation portion of a quote.
type RateSummary struct {
	AccommodationTotal money.Money
	// BaseRate is the average nightly rate, rounded to the nearest whole
	// unit, ties away from zero.
	BaseRate money.Money
}

// AggregateRates sums nightly rates across the stay window. Every night in
// [checkIn, checkOut) must be present, available and priced; otherwise the
// stay is not bookable and ErrIncompleteAvailability is returned.
func AggregateRates(days []availability.Day, dr daterange.DateRange) (RateSummary, error) {
	nights := dr.Nights()
	if nights <= 0 {
		return RateSummary{}, daterange.ErrInvalidDateRange
	}

	byDate := make(map[time.Time]availability.Day, len(days))
	for _, day := range days {
		byDate[daterange.Day(day.Date)] = day
	}

	total := money.Dollars(0)
	for _, night := range dr.Days() {
		day, ok := byDate[night]
		if !ok || !day.Available {
			return RateSummary{}, fmt.Errorf("%w: %s", ErrIncompleteAvailability, night.Format("2006-01-02"))
		}
		if !day.HasRate() {
			return RateSummary{}, fmt.Errorf("%w: no rate for %s", ErrIncompleteAvailability, night.Format("2006-01-02"))
		}
		if day.Rate.IsNegative() {
			return RateSummary{}, fmt.Errorf("%w: negative rate for %s", ErrInvalidAmount, night.Format("2006-01-02"))
		}
		sum, err := total.Add(*day.Rate)
		if err != nil {
			return RateSummary{}, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
		}
		total = sum
	}

	return RateSummary{
		AccommodationTotal: total,
		BaseRate:           total.DivRounded(int64(nights)),
	}, nil
}
