package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"staycove/internal/app/dto"
)

// Event is the audit record emitted after a quote is served.
type Event struct {
	QuoteID    string    `json:"quote_id"`
	PropertyID string    `json:"property_id"`
	IssuedAt   time.Time `json:"issued_at"`
	Quote      dto.Quote `json:"quote"`
}

// Recorder receives quote audit events. Recording is best-effort: a failed
// audit never fails the quote it describes.
type Recorder interface {
	Record(ctx context.Context, event Event)
}

// Publisher pushes the serialized event onto the broker.
type Publisher interface {
	Publish(ctx context.Context, key string, payload []byte) error
}

// Archiver stores a durable snapshot of the event.
type Archiver interface {
	ArchiveQuote(ctx context.Context, quoteID string, payload []byte) error
}

// Fanout records events to the broker and the archive, logging failures.
type Fanout struct {
	Publisher Publisher
	Archiver  Archiver
	Logger    *slog.Logger
}

func (f Fanout) Record(ctx context.Context, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		f.log().Error("audit event marshal failed", "quote_id", event.QuoteID, "error", err)
		return
	}
	if f.Publisher != nil {
		if err := f.Publisher.Publish(ctx, event.PropertyID, payload); err != nil {
			f.log().Warn("audit publish failed", "quote_id", event.QuoteID, "error", err)
		}
	}
	if f.Archiver != nil {
		if err := f.Archiver.ArchiveQuote(ctx, event.QuoteID, payload); err != nil {
			f.log().Warn("audit archive failed", "quote_id", event.QuoteID, "error", err)
		}
	}
}

func (f Fanout) log() *slog.Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return slog.Default()
}

// Nop discards audit events; used when no broker/archive is configured.
type Nop struct{}

func (Nop) Record(context.Context, Event) {}
