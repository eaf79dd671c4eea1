package pricing

import (
	"fmt"

	"staycove/internal/domain/property"
	"staycove/internal/domain/shared/daterange"
	"staycove/internal/domain/shared/money"
)

// FeeKind names a charge contributing to the subtotal.
type FeeKind string

const (
	FeeCleaning        FeeKind = "cleaning"
	FeePet             FeeKind = "pet"
	FeeDamageWaiver    FeeKind = "damage_waiver"
	FeePoolHeat        FeeKind = "pool_heat"
	FeeTravelInsurance FeeKind = "travel_insurance"
	// FeeConvenience is charged once a payment method is chosen; it never
	// appears in a quote.
	FeeConvenience FeeKind = "convenience"
)

// FeeLine is one named, priced, optionally-taxable charge.
type FeeLine struct {
	Kind    FeeKind
	Amount  money.Money
	Taxable bool
}

// Selections carries guest-chosen add-ons. Nothing is selected in the
// default quote flow; the consumer app sends them explicitly.
type Selections struct {
	PoolHeat        bool
	TravelInsurance bool
}

// StayRequest describes the stay a quote is requested for.
type StayRequest struct {
	PropertyID property.ID
	Range      daterange.DateRange
	Adults     int
	Children   int
	Pets       int
	PromoCode  string
	Selections Selections
}

// Quote is the fully itemized price breakdown for a stay. It is built
// fresh per request and never mutated afterwards.
type Quote struct {
	PropertyID         property.ID
	Range              daterange.DateRange
	Nights             int
	Weeks              int
	BaseRate           money.Money
	AccommodationTotal money.Money
	FeeLines           []FeeLine
	Subtotal           money.Money
	Discount           money.Money
	Taxes              money.Money
	Total              money.Money
}

// reconcile re-derives the quote equations and reports the first mismatch.
// A failure here is an internal bug, never bad user input.
func (q Quote) reconcile() error {
	subtotal := q.AccommodationTotal
	for _, line := range q.FeeLines {
		sum, err := subtotal.Add(line.Amount)
		if err != nil {
			return fmt.Errorf("%w: fee line %s: %v", ErrInvariantViolation, line.Kind, err)
		}
		subtotal = sum
	}
	if subtotal != q.Subtotal {
		return fmt.Errorf("%w: subtotal %d != accommodation+fees %d",
			ErrInvariantViolation, q.Subtotal.Amount, subtotal.Amount)
	}
	if q.Discount.Currency != q.Subtotal.Currency {
		return fmt.Errorf("%w: discount currency %s != quote currency %s",
			ErrInvariantViolation, q.Discount.Currency, q.Subtotal.Currency)
	}
	if q.Discount.Amount > q.Subtotal.Amount {
		return fmt.Errorf("%w: discount %d exceeds subtotal %d",
			ErrInvariantViolation, q.Discount.Amount, q.Subtotal.Amount)
	}
	expected := q.Subtotal.Amount - q.Discount.Amount + q.Taxes.Amount
	if q.Total.Amount != expected {
		return fmt.Errorf("%w: total %d != subtotal-discount+taxes %d",
			ErrInvariantViolation, q.Total.Amount, expected)
	}
	return nil
}
