package pricing

import "staycove/internal/domain/property"

// ResolveFees builds the ordered fee schedule for a stay. The order is a
// display contract consumed by the apps and snapshot-tested there:
// cleaning, pet, damage waiver, pool heat, travel insurance. Zero-amount
// lines are omitted, never emitted as zero. The convenience fee is
// resolved at payment time, not here.
func ResolveFees(nights, weeks, pets int, sel Selections, cfg property.FeeConfig) []FeeLine {
	lines := make([]FeeLine, 0, 5)

	if !cfg.Cleaning.IsZero() {
		lines = append(lines, FeeLine{Kind: FeeCleaning, Amount: cfg.Cleaning, Taxable: true})
	}
	if pets > 0 && !cfg.PetPerWeek.IsZero() {
		amount := cfg.PetPerWeek.Multiply(int64(pets) * int64(weeks))
		lines = append(lines, FeeLine{Kind: FeePet, Amount: amount, Taxable: true})
	}
	if !cfg.DamageWaiver.IsZero() {
		lines = append(lines, FeeLine{Kind: FeeDamageWaiver, Amount: cfg.DamageWaiver, Taxable: true})
	}
	if sel.PoolHeat && !cfg.PoolHeat.IsZero() {
		lines = append(lines, FeeLine{Kind: FeePoolHeat, Amount: cfg.PoolHeat, Taxable: true})
	}
	if sel.TravelInsurance && !cfg.TravelInsurance.IsZero() {
		lines = append(lines, FeeLine{Kind: FeeTravelInsurance, Amount: cfg.TravelInsurance, Taxable: false})
	}
	return lines
}
