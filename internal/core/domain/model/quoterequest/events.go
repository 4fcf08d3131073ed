package quoterequest

import "marketplace/internal/core/domain/model/kernel"

// CreatedEvent is recorded when a cart snapshot is submitted for pricing.
type CreatedEvent struct {
	kernel.EventBase
	QuoteRequestID kernel.UUID
	OwnerID        kernel.UUID
	ItemsCount     int
}

func (CreatedEvent) EventName() string { return "quote_request.created" }

// PricedEvent is recorded when a quote is issued against the request.
type PricedEvent struct {
	kernel.EventBase
	QuoteRequestID kernel.UUID
	OwnerID        kernel.UUID
	QuoteID        kernel.UUID
}

func (PricedEvent) EventName() string { return "quote_request.priced" }

// ExpiredEvent is recorded when the pricing window formally closes.
type ExpiredEvent struct {
	kernel.EventBase
	QuoteRequestID kernel.UUID
	OwnerID        kernel.UUID
}

func (ExpiredEvent) EventName() string { return "quote_request.expired" }
