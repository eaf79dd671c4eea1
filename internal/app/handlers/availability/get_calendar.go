package availability

import (
	"context"
	"errors"
	"time"

	"staycove/internal/app/dto"
	"staycove/internal/app/queries"
	domainavailability "staycove/internal/domain/availability"
	domainproperty "staycove/internal/domain/property"
)

const getCalendarKey = "availability.calendar"

// GetCalendarQuery loads the per-day availability window for a property.
type GetCalendarQuery struct {
	PropertyID string
	From       time.Time
	To         time.Time
}

func (q GetCalendarQuery) Key() string { return getCalendarKey }

// GetCalendarHandler reads the availability source directly.
type GetCalendarHandler struct {
	Source domainavailability.Source
}

func (h *GetCalendarHandler) Handle(ctx context.Context, q GetCalendarQuery) (dto.Calendar, error) {
	if h.Source == nil {
		return dto.Calendar{}, errors.New("availability: source not configured")
	}
	days, err := h.Source.Days(ctx, domainproperty.ID(q.PropertyID), q.From, q.To)
	if err != nil {
		return dto.Calendar{}, err
	}
	return dto.MapCalendar(q.PropertyID, q.From, q.To, days), nil
}

var _ queries.Handler[GetCalendarQuery, dto.Calendar] = (*GetCalendarHandler)(nil)
