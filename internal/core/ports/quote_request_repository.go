package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/quoterequest"
)

// QuoteRequestRepository defines the persistence contract for quote request
// aggregates.
type QuoteRequestRepository interface {
	// Add persists a new quote request aggregate to storage.
	Add(ctx context.Context, aggregate *quoterequest.QuoteRequest) error

	// Update persists changes to an existing quote request aggregate.
	Update(ctx context.Context, aggregate *quoterequest.QuoteRequest) error

	// Get retrieves a quote request aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*quoterequest.QuoteRequest, error)

	// GetAllPendingExpiredBy retrieves the pending requests whose expiry
	// moment is at or before the given time. Used by the expiry sweep.
	GetAllPendingExpiredBy(ctx context.Context, moment time.Time) ([]*quoterequest.QuoteRequest, error)
}
