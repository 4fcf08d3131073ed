package kernel

import (
	"time"

	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

// AggregateRoot is implemented by every aggregate in the domain. It exposes the
// identity and the pending domain events that the unit of work drains after a
// successful commit.
type AggregateRoot interface {
	// ID returns the aggregate's unique identifier.
	ID() UUID

	// PendingEvents returns the domain events recorded since the last drain,
	// in the order they were recorded.
	PendingEvents() []DomainEvent

	// ClearPendingEvents discards all recorded events. Called by the unit of
	// work after publication, or on rollback.
	ClearPendingEvents()
}

// Entity is the base embedded by every entity and aggregate root. It carries
// identity, creation/update timestamps, the optimistic-concurrency token, and
// the list of pending domain events.
//
// The concurrency token is regenerated on every mutation. The token the entity
// was loaded with is kept separately so that repositories can issue
// compare-and-swap updates: UPDATE ... WHERE concurrency_token = <as loaded>
// SET concurrency_token = <current>. Zero rows affected means another writer
// got there first and the caller must reload and retry.
type Entity struct {
	id               UUID
	createdAt        time.Time
	updatedAt        *time.Time
	concurrencyToken string
	tokenAsLoaded    string
	pendingEvents    []DomainEvent
}

// NewEntity creates an entity base with a fresh identifier and concurrency
// token. UpdatedAt stays nil until the first mutation.
func NewEntity() Entity {
	token := uuid.NewString()
	return Entity{
		id:               NewUUID(),
		createdAt:        time.Now().UTC(),
		concurrencyToken: token,
		tokenAsLoaded:    token,
	}
}

// RestoreEntity reconstructs an entity base from persistence. The supplied
// concurrency token becomes both the current token and the token-as-loaded
// used for conflict detection on the next save.
func RestoreEntity(id UUID, createdAt time.Time, updatedAt *time.Time, concurrencyToken string) (Entity, error) {
	if err := id.Validate(); err != nil {
		return Entity{}, err
	}
	if concurrencyToken == "" {
		return Entity{}, errs.NewValueIsRequiredError("concurrencyToken")
	}

	return Entity{
		id:               id,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		concurrencyToken: concurrencyToken,
		tokenAsLoaded:    concurrencyToken,
	}, nil
}

// ID returns the entity's unique identifier.
func (e *Entity) ID() UUID {
	return e.id
}

// CreatedAt returns the UTC creation time.
func (e *Entity) CreatedAt() time.Time {
	return e.createdAt
}

// UpdatedAt returns the UTC time of the last mutation, nil if never mutated.
func (e *Entity) UpdatedAt() *time.Time {
	return e.updatedAt
}

// ConcurrencyToken returns the current (possibly regenerated) token.
func (e *Entity) ConcurrencyToken() string {
	return e.concurrencyToken
}

// TokenAsLoaded returns the token the entity carried when it was constructed
// or restored. Repositories match against it when saving.
func (e *Entity) TokenAsLoaded() string {
	return e.tokenAsLoaded
}

// MarkPersisted records that the entity's current state reached storage. The
// current token becomes the token-as-loaded for the next compare-and-swap
// save. Repositories call it after a successful insert or update.
func (e *Entity) MarkPersisted() {
	e.tokenAsLoaded = e.concurrencyToken
}

// MarkModified stamps the update time and regenerates the concurrency token.
// Every aggregate mutation must call it after its fields are written.
func (e *Entity) MarkModified() {
	now := time.Now().UTC()
	e.updatedAt = &now
	e.concurrencyToken = uuid.NewString()
}

// RecordEvent appends a domain event to the pending list.
func (e *Entity) RecordEvent(event DomainEvent) {
	e.pendingEvents = append(e.pendingEvents, event)
}

// PendingEvents returns a copy of the pending domain events in recording order.
func (e *Entity) PendingEvents() []DomainEvent {
	events := make([]DomainEvent, len(e.pendingEvents))
	copy(events, e.pendingEvents)
	return events
}

// ClearPendingEvents discards all pending domain events.
func (e *Entity) ClearPendingEvents() {
	e.pendingEvents = nil
}
