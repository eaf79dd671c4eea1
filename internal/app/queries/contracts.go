package queries

import (
	"context"
	"errors"
)

var (
	ErrHandlerNotFound = errors.New("queries: handler not found")
	ErrInvalidQuery    = errors.New("queries: invalid query for handler")
	ErrResultType      = errors.New("queries: result type mismatch")
	ErrNilBus          = errors.New("queries: nil bus")
)

// Query is a read request. Key names the handler it is routed to; the two
// keys in use are the quote and calendar lookups.
type Query interface {
	Key() string
}

// Handler answers one query type.
type Handler[Q Query, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Bus routes queries by key. The HTTP layer holds a Bus, never a concrete
// handler, so middleware can wrap every query uniformly.
type Bus interface {
	Ask(ctx context.Context, query Query) (any, error)
}

// Ask dispatches the query and narrows the untyped bus result back to R.
// Callers pair it with the RegisterHandler that bound the same Q and R.
func Ask[Q Query, R any](ctx context.Context, bus Bus, query Q) (R, error) {
	var zero R
	if bus == nil {
		return zero, ErrNilBus
	}
	res, err := bus.Ask(ctx, query)
	if err != nil {
		return zero, err
	}
	if res == nil {
		return zero, nil
	}
	value, ok := res.(R)
	if !ok {
		return zero, ErrResultType
	}
	return value, nil
}
