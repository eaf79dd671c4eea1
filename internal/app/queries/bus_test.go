package queries

import (
	"context"
	"errors"
	"testing"
)

type echoQuery struct {
	value string
}

func (echoQuery) Key() string { return "test.echo" }

type otherQuery struct{}

func (otherQuery) Key() string { return "test.other" }

type echoHandler struct {
	err error
}

func (h echoHandler) Handle(ctx context.Context, q echoQuery) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return q.value, nil
}

func TestBus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("routes to the registered handler", func(t *testing.T) {
		bus := NewInMemoryBus()
		RegisterHandler(bus, echoQuery{}.Key(), echoHandler{})

		result, err := Ask[echoQuery, string](ctx, bus, echoQuery{value: "hello"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result != "hello" {
			t.Fatalf("expected hello, got %q", result)
		}
	})

	t.Run("handler errors pass through", func(t *testing.T) {
		bus := NewInMemoryBus()
		boom := errors.New("boom")
		RegisterHandler(bus, echoQuery{}.Key(), echoHandler{err: boom})

		_, err := Ask[echoQuery, string](ctx, bus, echoQuery{})
		if !errors.Is(err, boom) {
			t.Fatalf("expected handler error, got %v", err)
		}
	})

	t.Run("unregistered key is ErrHandlerNotFound", func(t *testing.T) {
		bus := NewInMemoryBus()

		_, err := Ask[echoQuery, string](ctx, bus, echoQuery{})
		if !errors.Is(err, ErrHandlerNotFound) {
			t.Fatalf("expected ErrHandlerNotFound, got %v", err)
		}
	})

	t.Run("wrong query type for a key is ErrInvalidQuery", func(t *testing.T) {
		bus := NewInMemoryBus()
		RegisterHandler(bus, otherQuery{}.Key(), echoHandler{})

		_, err := bus.Ask(ctx, otherQuery{})
		if !errors.Is(err, ErrInvalidQuery) {
			t.Fatalf("expected ErrInvalidQuery, got %v", err)
		}
	})

	t.Run("result type mismatch is ErrResultType", func(t *testing.T) {
		bus := NewInMemoryBus()
		RegisterHandler(bus, echoQuery{}.Key(), echoHandler{})

		_, err := Ask[echoQuery, int](ctx, bus, echoQuery{value: "hello"})
		if !errors.Is(err, ErrResultType) {
			t.Fatalf("expected ErrResultType, got %v", err)
		}
	})

	t.Run("nil bus is ErrNilBus", func(t *testing.T) {
		_, err := Ask[echoQuery, string](ctx, nil, echoQuery{})
		if !errors.Is(err, ErrNilBus) {
			t.Fatalf("expected ErrNilBus, got %v", err)
		}
	})
}
