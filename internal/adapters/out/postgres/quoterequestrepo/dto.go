// Package quoterequestrepo provides data transfer objects and mapping
// functions for quote request persistence.
package quoterequestrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/quoterequest"

	"github.com/google/uuid"
)

// QuoteRequestDTO represents the database structure for persisting quote
// request aggregates. The cart snapshot is stored denormalized alongside the
// request since it is immutable for the request's lifetime.
type QuoteRequestDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID            uuid.UUID `gorm:"type:uuid;not null;index"`
	CartID             uuid.UUID `gorm:"type:uuid;not null"`
	SnapshotJSON       string    `gorm:"column:snapshot_json;type:text;not null"`
	SnapshotItemsCount int       `gorm:"not null"`
	SnapshotTakenAt    time.Time `gorm:"not null"`
	Notes              string    `gorm:"type:varchar(1000)"`
	Status             int       `gorm:"not null;index"`
	ExpiresAt          *time.Time `gorm:"index"`
	PricedAt           *time.Time
	QuoteID            *uuid.UUID `gorm:"type:uuid"`
	CreatedAt          time.Time  `gorm:"not null"`
	UpdatedAt          *time.Time
	ConcurrencyToken   string `gorm:"type:varchar(36);not null"`
}

// TableName overrides GORM's default naming convention to use "quote_requests".
func (QuoteRequestDTO) TableName() string {
	return "quote_requests"
}

// fromDomain converts a quote request aggregate to its database representation.
func fromDomain(aggregate *quoterequest.QuoteRequest) QuoteRequestDTO {
	var quoteID *uuid.UUID
	if id := aggregate.QuoteID(); id != nil {
		raw := id.Bytes()
		quoteID = &raw
	}

	return QuoteRequestDTO{
		ID:                 aggregate.ID().Bytes(),
		OwnerID:            aggregate.OwnerID().Bytes(),
		CartID:             aggregate.CartID().Bytes(),
		SnapshotJSON:       aggregate.CartSnapshot().JSONData(),
		SnapshotItemsCount: aggregate.CartSnapshot().ItemsCount(),
		SnapshotTakenAt:    aggregate.CartSnapshot().TakenAt(),
		Notes:              aggregate.Notes(),
		Status:             int(aggregate.Status()),
		ExpiresAt:          aggregate.ExpiresAt(),
		PricedAt:           aggregate.PricedAt(),
		QuoteID:            quoteID,
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
		ConcurrencyToken:   aggregate.ConcurrencyToken(),
	}
}

// toDomain converts a database DTO to a quote request aggregate using
// RestoreQuoteRequest.
func toDomain(dto QuoteRequestDTO) (*quoterequest.QuoteRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	cartID, err := kernel.UUIDFromBytes(dto.CartID[:])
	if err != nil {
		return nil, err
	}

	snapshot, err := kernel.RestoreCartSnapshot(dto.SnapshotJSON, dto.SnapshotItemsCount, dto.SnapshotTakenAt)
	if err != nil {
		return nil, err
	}

	var quoteID *kernel.UUID
	if dto.QuoteID != nil {
		qID, quoteErr := kernel.UUIDFromBytes((*dto.QuoteID)[:])
		if quoteErr != nil {
			return nil, quoteErr
		}
		quoteID = &qID
	}

	return quoterequest.RestoreQuoteRequest(
		id,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.ConcurrencyToken,
		ownerID,
		cartID,
		snapshot,
		dto.Notes,
		quoterequest.Status(dto.Status),
		dto.ExpiresAt,
		dto.PricedAt,
		quoteID,
	)
}
