package queries

import (
	"context"
	"sync"
)

// InMemoryBus dispatches queries to handlers registered by key.
type InMemoryBus struct {
	mu       sync.RWMutex
	handlers map[string]func(ctx context.Context, query Query) (any, error)
}

// NewInMemoryBus builds an empty bus.
func NewInMemoryBus() *InMemoryBus {
	return &InMemoryBus{
		handlers: make(map[string]func(ctx context.Context, query Query) (any, error)),
	}
}

// Ask routes the query to its registered handler.
func (b *InMemoryBus) Ask(ctx context.Context, query Query) (any, error) {
	b.mu.RLock()
	handler, ok := b.handlers[query.Key()]
	b.mu.RUnlock()
	if !ok {
		return nil, ErrHandlerNotFound
	}
	return handler(ctx, query)
}

// RegisterHandler binds a typed handler to a query key.
func RegisterHandler[Q Query, R any](bus *InMemoryBus, key string, handler Handler[Q, R]) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.handlers[key] = func(ctx context.Context, query Query) (any, error) {
		typed, ok := query.(Q)
		if !ok {
			return nil, ErrInvalidQuery
		}
		return handler.Handle(ctx, typed)
	}
}
