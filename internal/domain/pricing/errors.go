package pricing

import "errors"

var (
	// ErrIncompleteAvailability means the requested window is not fully
	// available or priced; the stay is simply not bookable for these dates.
	ErrIncompleteAvailability = errors.New("pricing: requested dates are not fully available")

	// ErrInvalidAmount flags malformed upstream data (negative or NaN
	// amounts). This is a programming/data error, not a user condition.
	ErrInvalidAmount = errors.New("pricing: invalid amount")

	// ErrInvariantViolation means the assembled quote failed its own
	// reconciliation check. Always a bug in fee/tax/composer logic.
	ErrInvariantViolation = errors.New("pricing: quote totals do not reconcile")
)
