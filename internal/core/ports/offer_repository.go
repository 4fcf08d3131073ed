package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"
	"marketplace/internal/core/domain/specification"
)

// OfferRepository defines the persistence contract for offer aggregates.
type OfferRepository interface {
	// Add persists a new offer aggregate to storage, including its items.
	Add(ctx context.Context, aggregate *offer.Offer) error

	// Update persists changes to an existing offer aggregate and its items.
	Update(ctx context.Context, aggregate *offer.Offer) error

	// Get retrieves an offer aggregate by its unique identifier,
	// with all items.
	Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error)

	// GetAllActiveEndedBy retrieves the active offers whose window ends at
	// or before the given time. Used by the expiry sweep.
	GetAllActiveEndedBy(ctx context.Context, moment time.Time) ([]*offer.Offer, error)

	// GetAllMatching retrieves offers satisfying the given specification,
	// pushed down to the store as a where-clause.
	GetAllMatching(ctx context.Context, spec specification.Predicate) ([]*offer.Offer, error)
}
