package offer

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// CreatedEvent is recorded when a draft offer is opened.
type CreatedEvent struct {
	kernel.EventBase
	OfferID kernel.UUID
	Title   string
}

func (CreatedEvent) EventName() string { return "offer.created" }

// ActivatedEvent is recorded when the offer is published.
type ActivatedEvent struct {
	kernel.EventBase
	OfferID  kernel.UUID
	ActiveTo time.Time
}

func (ActivatedEvent) EventName() string { return "offer.activated" }

// ExpiredEvent is recorded when the active window formally closes.
type ExpiredEvent struct {
	kernel.EventBase
	OfferID kernel.UUID
}

func (ExpiredEvent) EventName() string { return "offer.expired" }

// ArchivedEvent is recorded when the offer is withdrawn.
type ArchivedEvent struct {
	kernel.EventBase
	OfferID kernel.UUID
}

func (ArchivedEvent) EventName() string { return "offer.archived" }
