package pms

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"staycove/internal/domain/availability"
	"staycove/internal/domain/property"
	"staycove/internal/infra/cache"
)

// CachedSource decorates an availability source with a short-TTL cache
// keyed by property and window. The TTL must stay short: a stale
// available-day entry only delays the not-bookable answer, it must not
// make it common.
type CachedSource struct {
	Source availability.Source
	Cache  cache.Cache
	TTL    time.Duration
	Logger *slog.Logger
}

func (s *CachedSource) Days(ctx context.Context, id property.ID, from, to time.Time) ([]availability.Day, error) {
	if s.Cache == nil || s.TTL <= 0 {
		return s.Source.Days(ctx, id, from, to)
	}

	key := fmt.Sprintf("availability:%s:%s:%s", id, from.Format(dateLayout), to.Format(dateLayout))
	if payload, ok, err := s.Cache.Get(ctx, key); err != nil {
		s.logWarn("availability cache read failed", id, err)
	} else if ok {
		var days []availability.Day
		if err := json.Unmarshal(payload, &days); err != nil {
			s.logWarn("availability cache entry corrupt", id, err)
			_ = s.Cache.Delete(ctx, key)
		} else {
			return days, nil
		}
	}

	days, err := s.Source.Days(ctx, id, from, to)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(days); err != nil {
		s.logWarn("availability cache marshal failed", id, err)
	} else if err := s.Cache.Set(ctx, key, payload, s.TTL); err != nil {
		s.logWarn("availability cache write failed", id, err)
	}
	return days, nil
}

func (s *CachedSource) logWarn(msg string, id property.ID, err error) {
	if s.Logger == nil {
		return
	}
	s.Logger.Warn(msg, "property_id", id, "error", err)
}

var _ availability.Source = (*CachedSource)(nil)
