package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"staycove/internal/domain/availability"
	"staycove/internal/domain/property"
	"staycove/internal/domain/shared/daterange"
	"staycove/internal/domain/shared/money"
)

// AvailabilitySource keeps per-property calendars in memory; used in dev
// and tests in place of the PMS integration.
type AvailabilitySource struct {
	mu        sync.RWMutex
	calendars map[property.ID]map[time.Time]availability.Day
}

// NewAvailabilitySource builds an empty source.
func NewAvailabilitySource() *AvailabilitySource {
	return &AvailabilitySource{
		calendars: make(map[property.ID]map[time.Time]availability.Day),
	}
}

// SetDay stores or replaces one calendar day.
func (s *AvailabilitySource) SetDay(id property.ID, day availability.Day) {
	s.mu.Lock()
	defer s.mu.Unlock()
	calendar, ok := s.calendars[id]
	if !ok {
		calendar = make(map[time.Time]availability.Day)
		s.calendars[id] = calendar
	}
	day.Date = daterange.Day(day.Date)
	calendar[day.Date] = day
}

// SeedRange marks every day in [from, to) available at the given nightly rate.
func (s *AvailabilitySource) SeedRange(id property.ID, from, to time.Time, rate int64, minimumStay int) {
	for cursor := daterange.Day(from); cursor.Before(daterange.Day(to)); cursor = cursor.AddDate(0, 0, 1) {
		nightly := money.Dollars(rate)
		s.SetDay(id, availability.Day{
			Date:        cursor,
			Available:   true,
			Rate:        &nightly,
			MinimumStay: minimumStay,
		})
	}
}

// Block marks a single day unavailable, keeping any published rate.
func (s *AvailabilitySource) Block(id property.ID, date time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	calendar, ok := s.calendars[id]
	if !ok {
		return
	}
	date = daterange.Day(date)
	day := calendar[date]
	day.Date = date
	day.Available = false
	calendar[date] = day
}

// Days returns the stored days within [from, to) sorted by date. Missing
// days are simply absent, mirroring how the PMS reports gaps.
func (s *AvailabilitySource) Days(ctx context.Context, id property.ID, from, to time.Time) ([]availability.Day, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	calendar, ok := s.calendars[id]
	if !ok {
		return nil, nil
	}
	from = daterange.Day(from)
	to = daterange.Day(to)

	days := make([]availability.Day, 0, len(calendar))
	for date, day := range calendar {
		if date.Before(from) || !date.Before(to) {
			continue
		}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	return days, nil
}

var _ availability.Source = (*AvailabilitySource)(nil)
