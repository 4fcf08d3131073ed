// Package paymentrepo provides data transfer objects and mapping functions
// for payment persistence.
package paymentrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents the database structure for persisting payment
// aggregates. Several collection attempts may exist per order.
type PaymentDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Method           int             `gorm:"not null"`
	Status           int             `gorm:"not null;index"`
	GatewayRef       string          `gorm:"type:varchar(255)"`
	ErrorCode        string          `gorm:"type:varchar(50)"`
	ErrorMessage     string          `gorm:"type:varchar(500)"`
	SucceededAt      *time.Time
	FailedAt         *time.Time
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        *time.Time
	ConcurrencyToken string `gorm:"type:varchar(36);not null"`
}

// TableName overrides GORM's default naming convention to use "payments".
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment aggregate to its database representation.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:               aggregate.ID().Bytes(),
		OrderID:          aggregate.OrderID().Bytes(),
		Amount:           aggregate.Amount(),
		Method:           int(aggregate.Method()),
		Status:           int(aggregate.Status()),
		GatewayRef:       aggregate.GatewayRef(),
		ErrorCode:        aggregate.ErrorCode(),
		ErrorMessage:     aggregate.ErrorMessage(),
		SucceededAt:      aggregate.SucceededAt(),
		FailedAt:         aggregate.FailedAt(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
		ConcurrencyToken: aggregate.ConcurrencyToken(),
	}
}

// toDomain converts a database DTO to a payment aggregate using RestorePayment.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.ConcurrencyToken,
		orderID,
		dto.Amount,
		payment.Method(dto.Method),
		payment.Status(dto.Status),
		dto.GatewayRef,
		dto.ErrorCode,
		dto.ErrorMessage,
		dto.SucceededAt,
		dto.FailedAt,
	)
}
