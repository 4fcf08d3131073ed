package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/quote"
)

// QuoteRepository defines the persistence contract for quote aggregates.
type QuoteRepository interface {
	// Add persists a new quote aggregate to storage, including its lines.
	Add(ctx context.Context, aggregate *quote.Quote) error

	// Update persists changes to an existing quote aggregate and its lines.
	Update(ctx context.Context, aggregate *quote.Quote) error

	// Get retrieves a quote aggregate by its unique identifier,
	// with all lines.
	Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error)

	// GetByQuoteRequest retrieves the quote issued against the given
	// request, if any.
	GetByQuoteRequest(ctx context.Context, quoteRequestID kernel.UUID) (*quote.Quote, error)
}
