package availability

import (
	"context"
	"time"

	"staycove/internal/domain/property"
	"staycove/internal/domain/shared/money"
)

// Day is one calendar day of a property's availability as reported by the
// PMS. Rate is nil when the PMS publishes no nightly price for the day.
type Day struct {
	Date        time.Time
	Available   bool
	Rate        *money.Money
	MinimumStay int
}

// HasRate reports whether the day carries a nightly rate.
func (d Day) HasRate() bool {
	return d.Rate != nil
}

// Source supplies per-day availability for a property over [from, to).
// Implementations are the PMS integration, a caching decorator around it,
// or the in-memory store used in dev and tests.
type Source interface {
	Days(ctx context.Context, id property.ID, from, to time.Time) ([]Day, error)
}
