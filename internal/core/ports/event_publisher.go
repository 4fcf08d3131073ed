package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// EventPublisher delivers domain events to interested consumers after the
// enclosing transaction commits. Implementations must tolerate being called
// with an empty slice.
type EventPublisher interface {
	Publish(ctx context.Context, events []kernel.DomainEvent) error
}
