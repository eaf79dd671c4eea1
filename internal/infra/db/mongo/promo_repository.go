package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"staycove/internal/domain/promo"
	"staycove/internal/domain/shared/money"
)

const promotionsCollection = "promotions"

// PromotionRepository validates promo codes against the promotions collection.
type PromotionRepository struct {
	col *mongo.Collection
}

// NewPromotionRepository binds the repository to its collection.
func NewPromotionRepository(client *Client) *PromotionRepository {
	return &PromotionRepository{col: client.DB.Collection(promotionsCollection)}
}

type promotionDoc struct {
	Code           string `bson:"code"`
	Active         bool   `bson:"active"`
	DiscountAmount int64  `bson:"discount_amount"`
	Currency       string `bson:"currency"`
}

// Validate looks the code up. Unknown or inactive codes are a zero-discount
// outcome, not an error.
func (r *PromotionRepository) Validate(ctx context.Context, code string) (promo.Validation, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return promo.None(), nil
	}

	var doc promotionDoc
	err := r.col.FindOne(ctx, bson.M{"code": code, "active": true}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return promo.None(), nil
	}
	if err != nil {
		return promo.None(), fmt.Errorf("mongo: find promotion: %w", err)
	}

	currency := doc.Currency
	if currency == "" {
		currency = money.USD
	}
	discount, err := money.New(doc.DiscountAmount, currency)
	if err != nil {
		return promo.None(), fmt.Errorf("mongo: promotion %s: %w", code, err)
	}
	return promo.Validation{Valid: true, Discount: discount}, nil
}

var _ promo.Validator = (*PromotionRepository)(nil)
