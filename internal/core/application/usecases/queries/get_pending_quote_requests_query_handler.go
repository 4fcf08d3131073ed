package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/quoterequest"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingQuoteRequestsQueryHandler retrieves the pricing work queue from
// the database, oldest first so sellers work in submission order.
type GetPendingQuoteRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingQuoteRequestsQueryHandler creates a handler for the pricing
// work queue query.
func NewGetPendingQuoteRequestsQueryHandler(db *gorm.DB) GetPendingQuoteRequestsQueryHandler {
	return GetPendingQuoteRequestsQueryHandler{db: db}
}

// Handle executes the query. A pending request past its expiry moment is
// excluded even if the sweep has not settled its status yet.
func (h GetPendingQuoteRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingQuoteRequestsQuery,
) ([]GetPendingQuoteRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requests := make([]GetPendingQuoteRequestsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			snapshot_items_count,
			notes,
			created_at,
			expires_at
		FROM quote_requests
		WHERE status = ?
		  AND (expires_at IS NULL OR expires_at > ?)
		ORDER BY created_at
	`, int(quoterequest.Pending), time.Now().UTC()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPendingQuoteRequestsQueryResponse
		var id, ownerID uuid.UUID

		err = rows.Scan(
			&id,
			&ownerID,
			&resp.ItemsCount,
			&resp.Notes,
			&resp.CreatedAt,
			&resp.ExpiresAt,
		)
		if err != nil {
			return nil, err
		}

		requestID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = requestID

		owner, idErr := kernel.UUIDFromBytes(ownerID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OwnerID = owner

		requests = append(requests, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
