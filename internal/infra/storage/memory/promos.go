package memory

import (
	"context"
	"strings"
	"sync"

	"staycove/internal/domain/promo"
	"staycove/internal/domain/shared/money"
)

// PromoStore is an in-memory promotion validator for dev and tests.
type PromoStore struct {
	mu    sync.RWMutex
	items map[string]money.Money
}

// NewPromoStore builds an empty store.
func NewPromoStore() *PromoStore {
	return &PromoStore{items: make(map[string]money.Money)}
}

// Add registers a code with its discount.
func (s *PromoStore) Add(code string, discount money.Money) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[normalizeCode(code)] = discount
}

// Validate reports the discount for known codes; unknown codes are a
// zero-discount outcome.
func (s *PromoStore) Validate(ctx context.Context, code string) (promo.Validation, error) {
	if err := ctx.Err(); err != nil {
		return promo.None(), err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	discount, ok := s.items[normalizeCode(code)]
	if !ok {
		return promo.None(), nil
	}
	return promo.Validation{Valid: true, Discount: discount}, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

var _ promo.Validator = (*PromoStore)(nil)
