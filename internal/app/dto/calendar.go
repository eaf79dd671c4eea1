package dto

import (
	"time"

	"staycove/internal/domain/availability"
)

// CalendarDay is one day of a property's availability view.
type CalendarDay struct {
	Date        string `json:"date"`
	Available   bool   `json:"available"`
	Rate        *int64 `json:"rate,omitempty"`
	MinimumStay int    `json:"minimum_stay,omitempty"`
}

// Calendar is the availability window returned to the apps.
type Calendar struct {
	PropertyID string        `json:"property_id"`
	From       time.Time     `json:"from"`
	To         time.Time     `json:"to"`
	Days       []CalendarDay `json:"days"`
}

// MapCalendar converts raw availability days into the calendar view.
func MapCalendar(propertyID string, from, to time.Time, days []availability.Day) Calendar {
	out := Calendar{
		PropertyID: propertyID,
		From:       from,
		To:         to,
		Days:       make([]CalendarDay, 0, len(days)),
	}
	for _, day := range days {
		entry := CalendarDay{
			Date:        day.Date.Format("2006-01-02"),
			Available:   day.Available,
			MinimumStay: day.MinimumStay,
		}
		if day.HasRate() {
			rate := day.Rate.Amount
			entry.Rate = &rate
		}
		out.Days = append(out.Days, entry)
	}
	return out
}
