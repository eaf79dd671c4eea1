package property

import (
	"context"
	"errors"

	"staycove/internal/domain/shared/money"
)

// ID identifies a property in the PMS and the CMS alike.
type ID string

// ErrFeeConfigNotFound signals that no per-property fee configuration
// exists; callers fall back to the global defaults.
var ErrFeeConfigNotFound = errors.New("property: fee config not found")

// FeeConfig holds the per-property fee schedule. A zero Money value means
// the property does not override that fee.
type FeeConfig struct {
	Cleaning        money.Money
	PetPerWeek      money.Money
	DamageWaiver    money.Money
	PoolHeat        money.Money
	TravelInsurance money.Money
}

// ConfigSource resolves per-property fee configuration.
type ConfigSource interface {
	FeeConfig(ctx context.Context, id ID) (FeeConfig, error)
}

// Resolve overlays cfg onto defaults field by field. The PMS fee feed is
// still provisional, so most properties carry only partial overrides.
func Resolve(cfg, defaults FeeConfig) FeeConfig {
	out := defaults
	if !cfg.Cleaning.IsZero() {
		out.Cleaning = cfg.Cleaning
	}
	if !cfg.PetPerWeek.IsZero() {
		out.PetPerWeek = cfg.PetPerWeek
	}
	if !cfg.DamageWaiver.IsZero() {
		out.DamageWaiver = cfg.DamageWaiver
	}
	if !cfg.PoolHeat.IsZero() {
		out.PoolHeat = cfg.PoolHeat
	}
	if !cfg.TravelInsurance.IsZero() {
		out.TravelInsurance = cfg.TravelInsurance
	}
	return out
}
