package payment

import (
	"github.com/shopspring/decimal"

	"marketplace/internal/core/domain/model/kernel"
)

// InitiatedEvent is recorded when a payment attempt is opened for an order.
type InitiatedEvent struct {
	kernel.EventBase
	PaymentID kernel.UUID
	OrderID   kernel.UUID
	Amount    decimal.Decimal
	Method    Method
}

func (InitiatedEvent) EventName() string { return "payment.initiated" }

// SucceededEvent is recorded when the gateway confirms collection.
type SucceededEvent struct {
	kernel.EventBase
	PaymentID  kernel.UUID
	OrderID    kernel.UUID
	GatewayRef string
}

func (SucceededEvent) EventName() string { return "payment.succeeded" }

// FailedEvent is recorded when the gateway rejects the payment.
type FailedEvent struct {
	kernel.EventBase
	PaymentID    kernel.UUID
	OrderID      kernel.UUID
	ErrorCode    string
	ErrorMessage string
}

func (FailedEvent) EventName() string { return "payment.failed" }
