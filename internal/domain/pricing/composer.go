package pricing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"staycove/internal/domain/availability"
	"staycove/internal/domain/promo"
	"staycove/internal/domain/property"
	"staycove/internal/domain/shared/daterange"
	"staycove/internal/domain/shared/money"
)

// Composer assembles quotes from the availability, fee-configuration and
// promotion collaborators. It holds no per-request state; concurrent
// quotes need no coordination.
type Composer struct {
	Availability availability.Source
	FeeConfigs   property.ConfigSource
	FeeDefaults  property.FeeConfig
	Promotions   promo.Validator
	Rates        TaxRates
	Logger       *slog.Logger
}

// Quote computes the full price breakdown for a stay. Availability
// failures propagate unchanged; promotion failures degrade to "no
// discount" rather than failing the quote.
func (c *Composer) Quote(ctx context.Context, req StayRequest) (Quote, error) {
	var zero Quote

	if c.Availability == nil {
		return zero, errors.New("pricing: availability source not configured")
	}
	nights := req.Range.Nights()
	if nights <= 0 {
		return zero, daterange.ErrInvalidDateRange
	}
	if req.Adults < 0 || req.Children < 0 || req.Pets < 0 {
		return zero, fmt.Errorf("%w: negative guest count", ErrInvalidAmount)
	}

	days, err := c.Availability.Days(ctx, req.PropertyID, req.Range.CheckIn, req.Range.CheckOut)
	if err != nil {
		return zero, fmt.Errorf("fetch availability: %w", err)
	}

	summary, err := AggregateRates(days, req.Range)
	if err != nil {
		return zero, err
	}

	cfg := c.resolveFeeConfig(ctx, req.PropertyID)
	weeks := req.Range.Weeks()
	fees := ResolveFees(nights, weeks, req.Pets, req.Selections, cfg)

	taxes, err := ComputeTaxes(summary.AccommodationTotal, fees, c.Rates)
	if err != nil {
		return zero, err
	}

	subtotal := summary.AccommodationTotal
	for _, line := range fees {
		sum, addErr := subtotal.Add(line.Amount)
		if addErr != nil {
			return zero, fmt.Errorf("%w: %v", ErrInvalidAmount, addErr)
		}
		subtotal = sum
	}

	discount := c.resolveDiscount(ctx, req.PromoCode, subtotal)

	quote := Quote{
		PropertyID:         req.PropertyID,
		Range:              req.Range,
		Nights:             nights,
		Weeks:              weeks,
		BaseRate:           summary.BaseRate,
		AccommodationTotal: summary.AccommodationTotal,
		FeeLines:           fees,
		Subtotal:           subtotal,
		Discount:           discount,
		Taxes:              taxes,
		Total: money.Money{
			Amount:   subtotal.Amount - discount.Amount + taxes.Amount,
			Currency: subtotal.Currency,
		},
	}

	if err := quote.reconcile(); err != nil {
		c.log().Error("quote failed reconciliation",
			"property_id", req.PropertyID,
			"check_in", req.Range.CheckIn,
			"check_out", req.Range.CheckOut,
			"error", err,
		)
		return zero, err
	}
	return quote, nil
}

// resolveFeeConfig loads the per-property override and falls back to the
// global defaults field by field. A missing config is routine, any other
// lookup failure is logged and defaults apply.
func (c *Composer) resolveFeeConfig(ctx context.Context, id property.ID) property.FeeConfig {
	if c.FeeConfigs == nil {
		return c.FeeDefaults
	}
	cfg, err := c.FeeConfigs.FeeConfig(ctx, id)
	if err != nil {
		if !errors.Is(err, property.ErrFeeConfigNotFound) {
			c.log().Warn("fee config lookup failed, using defaults", "property_id", id, "error", err)
		}
		return c.FeeDefaults
	}
	return property.Resolve(cfg, c.FeeDefaults)
}

// resolveDiscount asks the promotion collaborator about the code. Unknown
// codes, transport failures and discounts in a foreign currency all
// degrade to zero discount; the discount never exceeds the subtotal.
// Taxes stay computed on the pre-discount components.
func (c *Composer) resolveDiscount(ctx context.Context, code string, subtotal money.Money) money.Money {
	discount := money.Money{Amount: 0, Currency: subtotal.Currency}
	if code == "" || c.Promotions == nil {
		return discount
	}
	validation, err := c.Promotions.Validate(ctx, code)
	if err != nil {
		c.log().Warn("promo validation failed, quoting without discount", "code", code, "error", err)
		return discount
	}
	if !validation.Valid {
		return discount
	}
	discount = validation.Discount
	if discount.Currency == "" {
		discount.Currency = subtotal.Currency
	}
	if discount.Currency != subtotal.Currency {
		c.log().Warn("promo discount currency mismatch, quoting without discount",
			"code", code, "discount_currency", discount.Currency, "quote_currency", subtotal.Currency)
		return money.Money{Amount: 0, Currency: subtotal.Currency}
	}
	if discount.Amount < 0 {
		discount.Amount = 0
	}
	if discount.Amount > subtotal.Amount {
		discount.Amount = subtotal.Amount
	}
	return discount
}

func (c *Composer) log() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
