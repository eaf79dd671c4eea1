package pricing

import (
	"fmt"
	"math"

	"staycove/internal/domain/shared/money"
)

// TaxRates are the fixed jurisdiction rates applied to a quote.
type TaxRates struct {
	Accommodation float64
	Fee           float64
}

// ComputeTaxes applies the jurisdiction rates to the accommodation total
// and the taxable fee lines. Each component is rounded separately and the
// rounded components are summed; rounding the combined base instead can
// differ by a unit and would break reconciliation against the booking
// system.
func ComputeTaxes(accommodation money.Money, fees []FeeLine, rates TaxRates) (money.Money, error) {
	if err := validRate(rates.Accommodation); err != nil {
		return money.Money{}, fmt.Errorf("accommodation tax rate: %w", err)
	}
	if err := validRate(rates.Fee); err != nil {
		return money.Money{}, fmt.Errorf("fee tax rate: %w", err)
	}
	if accommodation.IsNegative() {
		return money.Money{}, fmt.Errorf("%w: negative accommodation total", ErrInvalidAmount)
	}

	taxableFees := money.Money{Amount: 0, Currency: accommodation.Currency}
	for _, line := range fees {
		if line.Amount.IsNegative() {
			return money.Money{}, fmt.Errorf("%w: negative %s fee", ErrInvalidAmount, line.Kind)
		}
		if !line.Taxable {
			continue
		}
		sum, err := taxableFees.Add(line.Amount)
		if err != nil {
			return money.Money{}, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
		}
		taxableFees = sum
	}

	accommodationTax := accommodation.MulRateRounded(rates.Accommodation)
	feeTax := taxableFees.MulRateRounded(rates.Fee)
	return accommodationTax.Add(feeTax)
}

func validRate(rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, rate)
	}
	return nil
}
