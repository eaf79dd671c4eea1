package pms

import (
	"context"
	"testing"
	"time"

	"staycove/internal/domain/availability"
	"staycove/internal/domain/property"
	"staycove/internal/domain/shared/money"
	"staycove/internal/infra/cache"
)

type countingSource struct {
	calls int
	days  []availability.Day
}

func (s *countingSource) Days(ctx context.Context, id property.ID, from, to time.Time) ([]availability.Day, error) {
	s.calls++
	return s.days, nil
}

func TestCachedSource(t *testing.T) {
	t.Parallel()

	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 2)
	rate := money.Dollars(200)
	upstream := []availability.Day{
		{Date: from, Available: true, Rate: &rate, MinimumStay: 1},
		{Date: from.AddDate(0, 0, 1), Available: true, Rate: &rate, MinimumStay: 1},
	}

	t.Run("second read hits the cache", func(t *testing.T) {
		source := &countingSource{days: upstream}
		cached := &CachedSource{Source: source, Cache: cache.NewMemory(), TTL: time.Minute}

		first, err := cached.Days(context.Background(), "prop-1", from, to)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		second, err := cached.Days(context.Background(), "prop-1", from, to)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if source.calls != 1 {
			t.Fatalf("expected 1 upstream call, got %d", source.calls)
		}
		if len(first) != 2 || len(second) != 2 {
			t.Fatalf("expected 2 days both times, got %d / %d", len(first), len(second))
		}
		if !second[0].HasRate() || second[0].Rate.Amount != 200 {
			t.Fatalf("rate lost through the cache: %+v", second[0])
		}
	})

	t.Run("different windows are cached separately", func(t *testing.T) {
		source := &countingSource{days: upstream}
		cached := &CachedSource{Source: source, Cache: cache.NewMemory(), TTL: time.Minute}

		if _, err := cached.Days(context.Background(), "prop-1", from, to); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, err := cached.Days(context.Background(), "prop-1", from, to.AddDate(0, 0, 1)); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if source.calls != 2 {
			t.Fatalf("expected 2 upstream calls, got %d", source.calls)
		}
	})

	t.Run("zero ttl bypasses the cache", func(t *testing.T) {
		source := &countingSource{days: upstream}
		cached := &CachedSource{Source: source, Cache: cache.NewMemory()}

		for i := 0; i < 2; i++ {
			if _, err := cached.Days(context.Background(), "prop-1", from, to); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		}
		if source.calls != 2 {
			t.Fatalf("expected 2 upstream calls, got %d", source.calls)
		}
	})
}
