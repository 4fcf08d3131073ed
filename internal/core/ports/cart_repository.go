// Package ports defines repository interfaces for the marketplace domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
type CartRepository interface {
	// Add persists a new cart aggregate to storage.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update persists changes to an existing cart aggregate, including its
	// item lines. Fails with a concurrency conflict if the cart changed
	// since it was loaded.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// Get retrieves a cart aggregate by its unique identifier,
	// with all item lines.
	Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error)

	// GetByOwner retrieves the cart belonging to the given customer.
	// Each customer has at most one cart.
	GetByOwner(ctx context.Context, ownerID kernel.UUID) (*cart.Cart, error)
}
