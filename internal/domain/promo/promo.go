package promo

import (
	"context"

	"staycove/internal/domain/shared/money"
)

// Validation is the promotion collaborator's verdict on a code. An invalid
// or unknown code is a zero-discount outcome, never an error.
type Validation struct {
	Valid    bool
	Discount money.Money
}

// Validator checks promo codes against the promotion source.
type Validator interface {
	Validate(ctx context.Context, code string) (Validation, error)
}

// None is the validation result for absent or rejected codes.
func None() Validation {
	return Validation{}
}
