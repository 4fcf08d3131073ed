package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersByOwnerQueryHandler retrieves a buyer's order history from the
// database.
type GetOrdersByOwnerQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByOwnerQueryHandler creates a handler for order history queries.
func NewGetOrdersByOwnerQueryHandler(db *gorm.DB) GetOrdersByOwnerQueryHandler {
	return GetOrdersByOwnerQueryHandler{db: db}
}

// Handle executes the query. Returns the buyer's orders newest first; an
// empty slice when the buyer has none.
func (h GetOrdersByOwnerQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByOwnerQuery,
) ([]GetOrdersByOwnerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersByOwnerQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			quote_id,
			status,
			payment_status,
			quote_total,
			deposit_amount,
			tracking_number,
			created_at
		FROM orders
		WHERE owner_id = ?
		ORDER BY created_at DESC
	`, query.OwnerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrdersByOwnerQueryResponse
		var id, quoteID uuid.UUID
		var status, paymentStatus int
		var quoteTotal, depositAmount decimal.Decimal

		err = rows.Scan(
			&id,
			&quoteID,
			&status,
			&paymentStatus,
			&quoteTotal,
			&depositAmount,
			&resp.TrackingNumber,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		acceptedQuoteID, idErr := kernel.UUIDFromBytes(quoteID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.QuoteID = acceptedQuoteID

		resp.Status = order.Status(status).String()
		resp.PaymentStatus = order.PaymentStatus(paymentStatus).String()
		resp.QuoteTotal = quoteTotal
		resp.DepositAmount = depositAmount

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
