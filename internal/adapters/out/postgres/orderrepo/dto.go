// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The column names double as the field names understood by
// the specification pushdown, so the same predicate filters rows here and
// in memory.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	QuoteID            uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	QuoteTotal         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DepositAmount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status             int             `gorm:"not null;index"`
	PaymentStatus      int             `gorm:"not null"`
	NationalIDImageRef string          `gorm:"type:varchar(500)"`
	TrackingNumber     string          `gorm:"type:varchar(100)"`
	CancellationReason string          `gorm:"type:varchar(500)"`
	DepositPaidAt      *time.Time
	ConfirmedAt        *time.Time
	ProcessingAt       *time.Time
	ShippedAt          *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          *time.Time
	ConcurrencyToken   string `gorm:"type:varchar(36);not null"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		OwnerID:            aggregate.OwnerID().Bytes(),
		QuoteID:            aggregate.QuoteID().Bytes(),
		QuoteTotal:         aggregate.QuoteTotal(),
		DepositAmount:      aggregate.DepositAmount(),
		Status:             int(aggregate.Status()),
		PaymentStatus:      int(aggregate.PaymentStatus()),
		NationalIDImageRef: aggregate.NationalIDImageRef(),
		TrackingNumber:     aggregate.TrackingNumber(),
		CancellationReason: aggregate.CancellationReason(),
		DepositPaidAt:      aggregate.DepositPaidAt(),
		ConfirmedAt:        aggregate.ConfirmedAt(),
		ProcessingAt:       aggregate.ProcessingAt(),
		ShippedAt:          aggregate.ShippedAt(),
		DeliveredAt:        aggregate.DeliveredAt(),
		CancelledAt:        aggregate.CancelledAt(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
		ConcurrencyToken:   aggregate.ConcurrencyToken(),
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	quoteID, err := kernel.UUIDFromBytes(dto.QuoteID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.ConcurrencyToken,
		ownerID,
		quoteID,
		dto.QuoteTotal,
		dto.DepositAmount,
		order.Status(dto.Status),
		order.PaymentStatus(dto.PaymentStatus),
		dto.NationalIDImageRef,
		dto.TrackingNumber,
		dto.CancellationReason,
		dto.DepositPaidAt,
		dto.ConfirmedAt,
		dto.ProcessingAt,
		dto.ShippedAt,
		dto.DeliveredAt,
		dto.CancelledAt,
	)
}
