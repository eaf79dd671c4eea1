package dto

import (
	"time"

	"staycove/internal/domain/pricing"
)

// FeeLine is one itemized charge in a quote response.
type FeeLine struct {
	Kind    string `json:"kind"`
	Amount  int64  `json:"amount"`
	Taxable bool   `json:"taxable"`
}

// Quote is the wire representation of a computed quote.
type Quote struct {
	QuoteID            string    `json:"quote_id"`
	PropertyID         string    `json:"property_id"`
	CheckIn            time.Time `json:"check_in"`
	CheckOut           time.Time `json:"check_out"`
	Nights             int       `json:"nights"`
	Weeks              int       `json:"weeks"`
	Currency           string    `json:"currency"`
	BaseRate           int64     `json:"base_rate"`
	AccommodationTotal int64     `json:"accommodation_total"`
	FeeLines           []FeeLine `json:"fee_lines"`
	Subtotal           int64     `json:"subtotal"`
	Discount           *int64    `json:"discount,omitempty"`
	Taxes              int64     `json:"taxes"`
	Total              int64     `json:"total"`
}

// MapQuote converts a domain quote into its response shape.
func MapQuote(quoteID string, q pricing.Quote) Quote {
	fees := make([]FeeLine, 0, len(q.FeeLines))
	for _, line := range q.FeeLines {
		fees = append(fees, FeeLine{
			Kind:    string(line.Kind),
			Amount:  line.Amount.Amount,
			Taxable: line.Taxable,
		})
	}
	out := Quote{
		QuoteID:            quoteID,
		PropertyID:         string(q.PropertyID),
		CheckIn:            q.Range.CheckIn,
		CheckOut:           q.Range.CheckOut,
		Nights:             q.Nights,
		Weeks:              q.Weeks,
		Currency:           q.BaseRate.Currency,
		BaseRate:           q.BaseRate.Amount,
		AccommodationTotal: q.AccommodationTotal.Amount,
		FeeLines:           fees,
		Subtotal:           q.Subtotal.Amount,
		Taxes:              q.Taxes.Amount,
		Total:              q.Total.Amount,
	}
	if !q.Discount.IsZero() {
		discount := q.Discount.Amount
		out.Discount = &discount
	}
	return out
}
