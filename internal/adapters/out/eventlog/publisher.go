// Package eventlog publishes committed domain events to the structured log.
// It is the default EventPublisher wiring; a message broker adapter can
// replace it without touching the unit of work.
package eventlog

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
)

// SlogEventPublisher writes each domain event as a structured log record.
type SlogEventPublisher struct {
	logger *slog.Logger
}

// NewSlogEventPublisher creates a publisher that logs events through the given logger.
func NewSlogEventPublisher(logger *slog.Logger) *SlogEventPublisher {
	return &SlogEventPublisher{
		logger: logger.With("component", "event_publisher"),
	}
}

var _ ports.EventPublisher = (*SlogEventPublisher)(nil)

// Publish logs every event in order. It never fails, so a committed
// transaction is never reported as failed because of event delivery.
func (p *SlogEventPublisher) Publish(ctx context.Context, events []kernel.DomainEvent) error {
	for _, event := range events {
		p.logger.InfoContext(ctx, "Domain event published",
			"event_name", event.EventName(),
			"event_id", event.EventID().String(),
			"occurred_at", event.OccurredAt(),
		)
	}

	return nil
}
