// Package queries contains read operations against the database.
// Implements the Query side of the CQRS architecture: handlers read their
// projections with raw SQL, bypassing the aggregates entirely.
package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetCustomerCartQueryIsNotConstructed = errors.New(
	"GetCustomerCartQuery must be created via NewGetCustomerCartQuery constructor",
)

// GetCustomerCartQuery retrieves the cart belonging to a customer, with all
// item lines.
//
// Example:
//
//	query, _ := NewGetCustomerCartQuery(ownerID)
//	handler := NewGetCustomerCartQueryHandler(db)
//
//	cart, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get cart: %w", err)
//	}
//	fmt.Printf("%d items in cart\n", cart.TotalItems)
type GetCustomerCartQuery struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerCartQuery creates a query to retrieve a customer's cart.
func NewGetCustomerCartQuery(ownerID kernel.UUID) (GetCustomerCartQuery, error) {
	query := GetCustomerCartQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOwnerID(ownerID); err != nil {
		return GetCustomerCartQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerCartQueryIsNotConstructed)
}

// OwnerID returns the customer whose cart is requested.
func (q GetCustomerCartQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

func (q *GetCustomerCartQuery) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	q.ownerID = ownerID
	return nil
}

// CartItemResponse represents one cart line in the read model.
type CartItemResponse struct {
	ProductID     kernel.UUID
	Quantity      int
	SelectedSpecs string
	AddedAt       time.Time
}

// GetCustomerCartQueryResponse represents a customer's cart with its lines.
type GetCustomerCartQueryResponse struct {
	ID         kernel.UUID
	OwnerID    kernel.UUID
	Locked     bool
	Notes      string
	TotalItems int
	Items      []CartItemResponse
}
