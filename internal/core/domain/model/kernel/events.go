package kernel

import "time"

// DomainEvent is a fact record describing what happened inside an aggregate.
// Events are accumulated on the aggregate during a unit of work and are
// published only after the enclosing transaction commits successfully; a
// failed commit discards them without publication.
type DomainEvent interface {
	// EventID uniquely identifies this event occurrence.
	EventID() UUID

	// EventName is the stable name of the event kind, e.g. "cart.locked".
	EventName() string

	// OccurredAt is the UTC time the event was recorded.
	OccurredAt() time.Time
}

// EventBase carries the identity and timestamp shared by all domain events.
// Concrete events embed it and implement EventName themselves.
type EventBase struct {
	eventID    UUID
	occurredAt time.Time
}

// NewEventBase creates an event base with a fresh identifier and the current UTC time.
func NewEventBase() EventBase {
	return EventBase{
		eventID:    NewUUID(),
		occurredAt: time.Now().UTC(),
	}
}

// EventID returns the unique identifier of the event occurrence.
func (e EventBase) EventID() UUID {
	return e.eventID
}

// OccurredAt returns the UTC time the event was recorded.
func (e EventBase) OccurredAt() time.Time {
	return e.occurredAt
}
