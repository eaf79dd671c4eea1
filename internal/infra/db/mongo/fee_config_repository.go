package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"staycove/internal/domain/property"
	"staycove/internal/domain/shared/money"
)

const feeConfigsCollection = "fee_configs"

// FeeConfigRepository resolves per-property fee overrides.
type FeeConfigRepository struct {
	col *mongo.Collection
}

// NewFeeConfigRepository binds the repository to its collection.
func NewFeeConfigRepository(client *Client) *FeeConfigRepository {
	return &FeeConfigRepository{col: client.DB.Collection(feeConfigsCollection)}
}

type feeConfigDoc struct {
	PropertyID      string `bson:"property_id"`
	Cleaning        *int64 `bson:"cleaning,omitempty"`
	PetPerWeek      *int64 `bson:"pet_per_week,omitempty"`
	DamageWaiver    *int64 `bson:"damage_waiver,omitempty"`
	PoolHeat        *int64 `bson:"pool_heat,omitempty"`
	TravelInsurance *int64 `bson:"travel_insurance,omitempty"`
}

// FeeConfig loads the property's fee overrides; absent fields stay zero so
// the caller's defaults apply.
func (r *FeeConfigRepository) FeeConfig(ctx context.Context, id property.ID) (property.FeeConfig, error) {
	var doc feeConfigDoc
	err := r.col.FindOne(ctx, bson.M{"property_id": string(id)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return property.FeeConfig{}, property.ErrFeeConfigNotFound
	}
	if err != nil {
		return property.FeeConfig{}, fmt.Errorf("mongo: find fee config: %w", err)
	}

	cfg := property.FeeConfig{}
	assign := func(target *money.Money, value *int64) {
		if value != nil {
			*target = money.Dollars(*value)
		}
	}
	assign(&cfg.Cleaning, doc.Cleaning)
	assign(&cfg.PetPerWeek, doc.PetPerWeek)
	assign(&cfg.DamageWaiver, doc.DamageWaiver)
	assign(&cfg.PoolHeat, doc.PoolHeat)
	assign(&cfg.TravelInsurance, doc.TravelInsurance)
	return cfg, nil
}

var _ property.ConfigSource = (*FeeConfigRepository)(nil)
