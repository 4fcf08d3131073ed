package quote

import (
	"github.com/shopspring/decimal"

	"marketplace/internal/core/domain/model/kernel"
)

// CreatedEvent is recorded when the back office opens a quote for a request.
type CreatedEvent struct {
	kernel.EventBase
	QuoteID        kernel.UUID
	QuoteRequestID kernel.UUID
	OwnerID        kernel.UUID
}

func (CreatedEvent) EventName() string { return "quote.created" }

// IssuedEvent is recorded when the quote is handed to the buyer.
// Issuing changes no persisted state beyond this event.
type IssuedEvent struct {
	kernel.EventBase
	QuoteID kernel.UUID
	OwnerID kernel.UUID
	Total   decimal.Decimal
}

func (IssuedEvent) EventName() string { return "quote.issued" }

// ExpiredEvent is recorded when the quote is force-expired.
type ExpiredEvent struct {
	kernel.EventBase
	QuoteID kernel.UUID
	OwnerID kernel.UUID
}

func (ExpiredEvent) EventName() string { return "quote.expired" }
