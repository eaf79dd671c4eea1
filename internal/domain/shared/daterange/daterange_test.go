package daterange

import (
	"errors"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	t.Parallel()

	checkIn := time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)
	checkOut := time.Date(2025, 6, 8, 11, 0, 0, 0, time.UTC)

	t.Run("normalizes to day boundaries", func(t *testing.T) {
		dr, err := New(checkIn, checkOut)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if dr.CheckIn.Hour() != 0 || dr.CheckOut.Hour() != 0 {
			t.Fatalf("expected midnight boundaries, got %v / %v", dr.CheckIn, dr.CheckOut)
		}
		if dr.Nights() != 7 {
			t.Fatalf("expected 7 nights, got %d", dr.Nights())
		}
	})

	t.Run("rejects zero-night range", func(t *testing.T) {
		_, err := New(checkIn, checkIn)
		if !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		_, err := New(checkOut, checkIn)
		if !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})
}

func TestWeeks(t *testing.T) {
	t.Parallel()

	cases := []struct {
		nights int
		weeks  int
	}{
		{1, 1},
		{6, 1},
		{7, 1},
		{8, 2},
		{14, 2},
		{15, 3},
	}
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, tc := range cases {
		dr, err := New(start, start.AddDate(0, 0, tc.nights))
		if err != nil {
			t.Fatalf("nights=%d: %v", tc.nights, err)
		}
		if got := dr.Weeks(); got != tc.weeks {
			t.Errorf("nights=%d: expected %d weeks, got %d", tc.nights, tc.weeks, got)
		}
	}
}

func TestDays(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	dr, err := New(start, start.AddDate(0, 0, 3))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	days := dr.Days()
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	for i, day := range days {
		if !day.Equal(start.AddDate(0, 0, i)) {
			t.Errorf("day %d: expected %v, got %v", i, start.AddDate(0, 0, i), day)
		}
	}
	if dr.Contains(dr.CheckOut) {
		t.Fatal("check-out day must be excluded from the stay")
	}
	if !dr.Contains(dr.CheckIn) {
		t.Fatal("check-in day must be included in the stay")
	}
}
