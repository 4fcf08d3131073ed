package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersByOwnerQueryIsNotConstructed = errors.New(
	"GetOrdersByOwnerQuery must be created via NewGetOrdersByOwnerQuery constructor",
)

// GetOrdersByOwnerQuery retrieves all orders placed by a buyer, newest first.
type GetOrdersByOwnerQuery struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersByOwnerQuery creates a query to retrieve a buyer's orders.
func NewGetOrdersByOwnerQuery(ownerID kernel.UUID) (GetOrdersByOwnerQuery, error) {
	query := GetOrdersByOwnerQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOwnerID(ownerID); err != nil {
		return GetOrdersByOwnerQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByOwnerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByOwnerQueryIsNotConstructed)
}

// OwnerID returns the buyer whose orders are requested.
func (q GetOrdersByOwnerQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

func (q *GetOrdersByOwnerQuery) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	q.ownerID = ownerID
	return nil
}

// GetOrdersByOwnerQueryResponse represents one order in the buyer's history.
type GetOrdersByOwnerQueryResponse struct {
	ID             kernel.UUID
	QuoteID        kernel.UUID
	Status         string
	PaymentStatus  string
	QuoteTotal     decimal.Decimal
	DepositAmount  decimal.Decimal
	TrackingNumber string
	CreatedAt      time.Time
}
