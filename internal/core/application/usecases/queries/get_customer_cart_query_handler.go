package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerCartQueryHandler retrieves a customer's cart from the database.
type GetCustomerCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerCartQueryHandler creates a handler for cart queries.
// Requires a GORM database connection for query execution.
func NewGetCustomerCartQueryHandler(db *gorm.DB) GetCustomerCartQueryHandler {
	return GetCustomerCartQueryHandler{db: db}
}

// Handle executes the query. Returns an object-not-found error when the
// customer has no cart yet.
func (h GetCustomerCartQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerCartQuery,
) (GetCustomerCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerCartQueryResponse{}, err
	}

	var response GetCustomerCartQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			locked,
			notes
		FROM carts
		WHERE owner_id = ?
	`, query.OwnerID().String()).Row()

	var cartID, ownerID uuid.UUID
	if err := row.Scan(&cartID, &ownerID, &response.Locked, &response.Notes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetCustomerCartQueryResponse{}, errs.NewObjectNotFoundError("cart owner", query.OwnerID())
		}
		return GetCustomerCartQueryResponse{}, err
	}

	id, err := kernel.UUIDFromBytes(cartID[:])
	if err != nil {
		return GetCustomerCartQueryResponse{}, err
	}
	response.ID = id

	owner, err := kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return GetCustomerCartQueryResponse{}, err
	}
	response.OwnerID = owner

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			selected_specs,
			added_at
		FROM cart_items
		WHERE cart_id = ?
		ORDER BY added_at, product_id
	`, response.ID.String()).Rows()
	if err != nil {
		return GetCustomerCartQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]CartItemResponse, 0)
	for rows.Next() {
		var item CartItemResponse
		var productID uuid.UUID
		var specs sql.NullString
		var addedAt time.Time

		if err = rows.Scan(&productID, &item.Quantity, &specs, &addedAt); err != nil {
			return GetCustomerCartQueryResponse{}, err
		}

		product, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return GetCustomerCartQueryResponse{}, idErr
		}
		item.ProductID = product
		item.SelectedSpecs = specs.String
		item.AddedAt = addedAt

		response.TotalItems += item.Quantity
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return GetCustomerCartQueryResponse{}, err
	}

	response.Items = items
	return response, nil
}
