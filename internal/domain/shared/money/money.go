package money

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrInvalidCurrency  = errors.New("money: invalid currency code")
	ErrCurrencyMismatch = errors.New("money: currency mismatch")
)

// USD is the currency every quote is produced in today.
const USD = "USD"

// Money keeps amounts in integer whole-currency units to avoid floating
// point drift; rate data arrives from the PMS in whole dollars.
type Money struct {
	Amount   int64
	Currency string
}

// New constructs a Money value validating minimal invariants.
func New(amount int64, currency string) (Money, error) {
	if len(currency) != 3 {
		return Money{}, ErrInvalidCurrency
	}
	currency = strings.ToUpper(currency)
	return Money{Amount: amount, Currency: currency}, nil
}

// Must creates Money and panics if validation fails; useful in tests and fixtures.
func Must(amount int64, currency string) Money {
	m, err := New(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// Dollars is shorthand for whole-USD amounts.
func Dollars(amount int64) Money {
	return Money{Amount: amount, Currency: USD}
}

// Add adds two money values ensuring currencies match.
func (m Money) Add(other Money) (Money, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{Amount: m.Amount + other.Amount, Currency: m.Currency}, nil
}

// Sub subtracts other from the receiver.
func (m Money) Sub(other Money) (Money, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{Amount: m.Amount - other.Amount, Currency: m.Currency}, nil
}

// Multiply multiplies the amount by the provided factor.
func (m Money) Multiply(times int64) Money {
	return Money{Amount: m.Amount * times, Currency: m.Currency}
}

// MulRateRounded applies a fractional rate and rounds to the nearest whole
// unit, ties away from zero. Tax math depends on this exact rounding.
func (m Money) MulRateRounded(rate float64) Money {
	return Money{
		Amount:   int64(math.Round(float64(m.Amount) * rate)),
		Currency: m.Currency,
	}
}

// DivRounded divides the amount, rounding to nearest, ties away from zero.
func (m Money) DivRounded(by int64) Money {
	return Money{
		Amount:   int64(math.Round(float64(m.Amount) / float64(by))),
		Currency: m.Currency,
	}
}

// IsZero returns true if the amount equals zero.
func (m Money) IsZero() bool {
	return m.Amount == 0
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.Amount < 0
}

func (m Money) ensureSameCurrency(other Money) error {
	if m.Currency == "" || other.Currency == "" {
		return ErrInvalidCurrency
	}
	if m.Currency != other.Currency {
		return ErrCurrencyMismatch
	}
	return nil
}
