package pricing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"staycove/internal/app/audit"
	"staycove/internal/app/dto"
	"staycove/internal/app/queries"
	domainpricing "staycove/internal/domain/pricing"
	domainproperty "staycove/internal/domain/property"
	domainrange "staycove/internal/domain/shared/daterange"
)

const getQuoteKey = "pricing.quote"

// GetQuoteQuery asks for a full price breakdown for a stay.
type GetQuoteQuery struct {
	PropertyID      string
	CheckIn         time.Time
	CheckOut        time.Time
	Adults          int
	Children        int
	Pets            int
	PromoCode       string
	PoolHeat        bool
	TravelInsurance bool
}

func (q GetQuoteQuery) Key() string { return getQuoteKey }

// GetQuoteHandler runs the pricing composer and records the audit event.
type GetQuoteHandler struct {
	Composer *domainpricing.Composer
	Audit    audit.Recorder
}

func (h *GetQuoteHandler) Handle(ctx context.Context, q GetQuoteQuery) (dto.Quote, error) {
	if h.Composer == nil {
		return dto.Quote{}, errors.New("pricing: composer not configured")
	}

	dr, err := domainrange.New(q.CheckIn, q.CheckOut)
	if err != nil {
		return dto.Quote{}, err
	}

	quote, err := h.Composer.Quote(ctx, domainpricing.StayRequest{
		PropertyID: domainproperty.ID(q.PropertyID),
		Range:      dr,
		Adults:     q.Adults,
		Children:   q.Children,
		Pets:       q.Pets,
		PromoCode:  q.PromoCode,
		Selections: domainpricing.Selections{
			PoolHeat:        q.PoolHeat,
			TravelInsurance: q.TravelInsurance,
		},
	})
	if err != nil {
		return dto.Quote{}, err
	}

	result := dto.MapQuote(uuid.NewString(), quote)
	if h.Audit != nil {
		h.Audit.Record(ctx, audit.Event{
			QuoteID:    result.QuoteID,
			PropertyID: result.PropertyID,
			IssuedAt:   time.Now().UTC(),
			Quote:      result,
		})
	}
	return result, nil
}

var _ queries.Handler[GetQuoteQuery, dto.Quote] = (*GetQuoteHandler)(nil)
