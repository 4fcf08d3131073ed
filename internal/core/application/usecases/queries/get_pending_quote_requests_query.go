package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetPendingQuoteRequestsQueryIsNotConstructed = errors.New(
	"GetPendingQuoteRequestsQuery must be created via NewGetPendingQuoteRequestsQuery constructor",
)

// GetPendingQuoteRequestsQuery retrieves all quote requests awaiting pricing.
// This is the seller's work queue.
//
// Example:
//
//	query := NewGetPendingQuoteRequestsQuery()
//	handler := NewGetPendingQuoteRequestsQueryHandler(db)
//
//	pending, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pending requests: %w", err)
//	}
//	fmt.Printf("%d requests awaiting pricing\n", len(pending))
type GetPendingQuoteRequestsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingQuoteRequestsQuery creates a parameterless query that fetches
// all pending quote requests.
func NewGetPendingQuoteRequestsQuery() GetPendingQuoteRequestsQuery {
	return GetPendingQuoteRequestsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingQuoteRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingQuoteRequestsQueryIsNotConstructed)
}

// GetPendingQuoteRequestsQueryResponse represents one request in the pricing
// work queue.
type GetPendingQuoteRequestsQueryResponse struct {
	ID         kernel.UUID
	OwnerID    kernel.UUID
	ItemsCount int
	Notes      string
	CreatedAt  time.Time
	ExpiresAt  *time.Time
}
