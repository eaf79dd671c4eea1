package daterange

import (
	"errors"
	"time"
)

// ErrInvalidDateRange is returned when check-out does not follow check-in.
var ErrInvalidDateRange = errors.New("daterange: check-out must be after check-in")

// DateRange is a stay window with an exclusive check-out day.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// New builds a DateRange normalized to UTC midnight boundaries.
func New(checkIn, checkOut time.Time) (DateRange, error) {
	dr := DateRange{
		CheckIn:  Day(checkIn),
		CheckOut: Day(checkOut),
	}
	if !dr.CheckOut.After(dr.CheckIn) {
		return DateRange{}, ErrInvalidDateRange
	}
	return dr, nil
}

// Day truncates a timestamp to its UTC calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Nights returns the number of nights in the range.
func (dr DateRange) Nights() int {
	return int(dr.CheckOut.Sub(dr.CheckIn) / (24 * time.Hour))
}

// Weeks returns the stay length in whole weeks, rounded up. Weekly-priced
// fees (pet fee) bill per started week.
func (dr DateRange) Weeks() int {
	nights := dr.Nights()
	if nights <= 0 {
		return 0
	}
	return (nights + 6) / 7
}

// Days yields every night of the stay in order, check-out excluded.
func (dr DateRange) Days() []time.Time {
	nights := dr.Nights()
	if nights <= 0 {
		return nil
	}
	days := make([]time.Time, 0, nights)
	for cursor := dr.CheckIn; cursor.Before(dr.CheckOut); cursor = cursor.AddDate(0, 0, 1) {
		days = append(days, cursor)
	}
	return days
}

// Contains reports whether the given day falls inside the stay window.
func (dr DateRange) Contains(t time.Time) bool {
	day := Day(t)
	return !day.Before(dr.CheckIn) && day.Before(dr.CheckOut)
}
