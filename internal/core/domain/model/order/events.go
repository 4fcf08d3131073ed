package order

import (
	"github.com/shopspring/decimal"

	"marketplace/internal/core/domain/model/kernel"
)

// CreatedEvent is recorded when an order is opened from an accepted quote.
type CreatedEvent struct {
	kernel.EventBase
	OrderID       kernel.UUID
	OwnerID       kernel.UUID
	QuoteID       kernel.UUID
	QuoteTotal    decimal.Decimal
	DepositAmount decimal.Decimal
}

func (CreatedEvent) EventName() string { return "order.created" }

// DepositRegisteredEvent is recorded when a sufficient deposit is registered.
type DepositRegisteredEvent struct {
	kernel.EventBase
	OrderID kernel.UUID
	OwnerID kernel.UUID
	Amount  decimal.Decimal
}

func (DepositRegisteredEvent) EventName() string { return "order.deposit_registered" }

// ConfirmedEvent is recorded when the order passes identity verification.
type ConfirmedEvent struct {
	kernel.EventBase
	OrderID kernel.UUID
	OwnerID kernel.UUID
}

func (ConfirmedEvent) EventName() string { return "order.confirmed" }

// ProcessingEvent is recorded when preparation of the order starts.
type ProcessingEvent struct {
	kernel.EventBase
	OrderID kernel.UUID
	OwnerID kernel.UUID
}

func (ProcessingEvent) EventName() string { return "order.processing" }

// ShippedEvent is recorded when the order leaves the warehouse.
type ShippedEvent struct {
	kernel.EventBase
	OrderID        kernel.UUID
	OwnerID        kernel.UUID
	TrackingNumber string
}

func (ShippedEvent) EventName() string { return "order.shipped" }

// DeliveredEvent is recorded when the buyer receives the order.
type DeliveredEvent struct {
	kernel.EventBase
	OrderID kernel.UUID
	OwnerID kernel.UUID
}

func (DeliveredEvent) EventName() string { return "order.delivered" }

// CancelledEvent is recorded when the order is cancelled.
type CancelledEvent struct {
	kernel.EventBase
	OrderID kernel.UUID
	OwnerID kernel.UUID
	Reason  string
}

func (CancelledEvent) EventName() string { return "order.cancelled" }
