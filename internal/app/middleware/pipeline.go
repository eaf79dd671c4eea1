package middleware

import (
	"context"
	"log/slog"
	"time"

	"staycove/internal/app/queries"
)

// QueryMiddleware wraps a query bus with extra behavior.
type QueryMiddleware func(next queries.Bus) queries.Bus

// ChainQueries builds a query bus with middleware applied (outermost first).
func ChainQueries(base queries.Bus, mws ...QueryMiddleware) queries.Bus {
	wrapped := base
	for i := len(mws) - 1; i >= 0; i-- {
		wrapped = mws[i](wrapped)
	}
	return wrapped
}

// queryFunc allows lightweight middleware composition without new structs per wrapper.
type queryFunc func(ctx context.Context, query queries.Query) (any, error)

func (f queryFunc) Ask(ctx context.Context, q queries.Query) (any, error) {
	return f(ctx, q)
}

// Logging records every query with its latency and outcome.
func Logging(logger *slog.Logger) QueryMiddleware {
	return func(next queries.Bus) queries.Bus {
		return queryFunc(func(ctx context.Context, q queries.Query) (any, error) {
			start := time.Now()
			result, err := next.Ask(ctx, q)
			elapsed := time.Since(start)
			if logger == nil {
				return result, err
			}
			if err != nil {
				logger.Warn("query failed", "key", q.Key(), "elapsed", elapsed, "error", err)
			} else {
				logger.Debug("query handled", "key", q.Key(), "elapsed", elapsed)
			}
			return result, err
		})
	}
}
