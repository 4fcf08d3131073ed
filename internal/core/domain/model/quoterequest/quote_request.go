package quoterequest

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	// defaultExpiryWindow is how long a request stays priceable when no
	// explicit expiry date is supplied.
	defaultExpiryWindow = 7 * 24 * time.Hour

	maxNotesLength = 1000
)

// Domain errors for quote request operations.
var (
	// ErrQuoteRequestIsNotConstructed is returned when a QuoteRequest instance
	// was not created through NewQuoteRequest or RestoreQuoteRequest.
	ErrQuoteRequestIsNotConstructed = errors.New(
		"QuoteRequest must be created via NewQuoteRequest constructor")
	// ErrSnapshotIsEmpty is returned when the cart snapshot holds no items.
	ErrSnapshotIsEmpty = errs.NewDomainRuleViolationError("cart snapshot cannot be empty")
	// ErrQuoteRequestExpired is returned when pricing a request whose window has elapsed,
	// whether or not the sweep has formalized the status yet.
	ErrQuoteRequestExpired = errs.NewDomainRuleViolationError("quote request has expired")
	// ErrExpiryDateNotInFuture is returned when setting an expiry date that is not
	// strictly after now.
	ErrExpiryDateNotInFuture = errs.NewDomainRuleViolationError("expiry date must be in the future")
	// ErrNotesTooLong is returned when notes exceed the length cap.
	ErrNotesTooLong = errs.NewDomainRuleViolationError("notes cannot exceed 1000 characters")
)

// QuoteRequest is the aggregate root for a customer's request to have a cart
// snapshot priced by the back office.
//
// Expiry has two signals: the authoritative one is the clock comparison in
// IsExpired, which guards MarkPriced immediately; Status == Expired is the
// formal projection written by Expire, normally driven by the periodic sweep.
type QuoteRequest struct {
	kernel.Entity

	ownerID      kernel.UUID
	cartID       kernel.UUID
	cartSnapshot kernel.CartSnapshot
	notes        string
	status       Status
	expiresAt    *time.Time
	pricedAt     *time.Time
	quoteID      *kernel.UUID

	guard guard.ConstructorGuard
}

// NewQuoteRequest submits a cart snapshot for pricing. The request starts
// Pending with the default expiry window. Empty snapshots are rejected.
func NewQuoteRequest(
	ownerID kernel.UUID,
	cartID kernel.UUID,
	cartSnapshot kernel.CartSnapshot,
	notes string,
) (*QuoteRequest, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}
	if err := cartID.Validate(); err != nil {
		return nil, err
	}
	if cartSnapshot.IsEmpty() {
		return nil, ErrSnapshotIsEmpty
	}
	trimmedNotes := strings.TrimSpace(notes)
	if len(trimmedNotes) > maxNotesLength {
		return nil, ErrNotesTooLong
	}

	expiresAt := time.Now().UTC().Add(defaultExpiryWindow)

	qr := &QuoteRequest{
		Entity:       kernel.NewEntity(),
		ownerID:      ownerID,
		cartID:       cartID,
		cartSnapshot: cartSnapshot,
		notes:        trimmedNotes,
		status:       Pending,
		expiresAt:    &expiresAt,
		guard:        guard.NewConstructorGuard(),
	}
	qr.RecordEvent(CreatedEvent{
		EventBase:      kernel.NewEventBase(),
		QuoteRequestID: qr.ID(),
		OwnerID:        ownerID,
		ItemsCount:     cartSnapshot.ItemsCount(),
	})
	return qr, nil
}

// RestoreQuoteRequest reconstructs a quote request from persistence.
// No events are recorded.
func RestoreQuoteRequest(
	id kernel.UUID,
	createdAt time.Time,
	updatedAt *time.Time,
	concurrencyToken string,
	ownerID kernel.UUID,
	cartID kernel.UUID,
	cartSnapshot kernel.CartSnapshot,
	notes string,
	status Status,
	expiresAt *time.Time,
	pricedAt *time.Time,
	quoteID *kernel.UUID,
) (*QuoteRequest, error) {
	entity, err := kernel.RestoreEntity(id, createdAt, updatedAt, concurrencyToken)
	if err != nil {
		return nil, err
	}
	if err = ownerID.Validate(); err != nil {
		return nil, err
	}
	if err = cartID.Validate(); err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	return &QuoteRequest{
		Entity:       entity,
		ownerID:      ownerID,
		cartID:       cartID,
		cartSnapshot: cartSnapshot,
		notes:        notes,
		status:       status,
		expiresAt:    expiresAt,
		pricedAt:     pricedAt,
		quoteID:      quoteID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the QuoteRequest was created through a constructor.
func (qr *QuoteRequest) Validate() error {
	if qr == nil {
		return ErrQuoteRequestIsNotConstructed
	}
	return qr.guard.Validate(ErrQuoteRequestIsNotConstructed)
}

// OwnerID returns the customer who submitted the request.
func (qr *QuoteRequest) OwnerID() kernel.UUID {
	return qr.ownerID
}

// CartID returns the cart the snapshot was taken from.
func (qr *QuoteRequest) CartID() kernel.UUID {
	return qr.cartID
}

// CartSnapshot returns the frozen cart content.
func (qr *QuoteRequest) CartSnapshot() kernel.CartSnapshot {
	return qr.cartSnapshot
}

// Notes returns the customer notes, empty if none.
func (qr *QuoteRequest) Notes() string {
	return qr.notes
}

// Status returns the current lifecycle status.
func (qr *QuoteRequest) Status() Status {
	return qr.status
}

// ExpiresAt returns when the pricing window closes, nil if unbounded.
func (qr *QuoteRequest) ExpiresAt() *time.Time {
	return qr.expiresAt
}

// PricedAt returns when the request was priced, nil while unpriced.
func (qr *QuoteRequest) PricedAt() *time.Time {
	return qr.pricedAt
}

// QuoteID returns the quote issued against this request, nil while unpriced.
func (qr *QuoteRequest) QuoteID() *kernel.UUID {
	return qr.quoteID
}

// IsExpired reports whether the pricing window has elapsed at the given
// moment. This clock comparison is authoritative regardless of Status.
func (qr *QuoteRequest) IsExpired(now time.Time) bool {
	return qr.expiresAt != nil && !now.Before(*qr.expiresAt)
}

// MarkPriced records that a quote was issued against the request.
// Requires Pending status and an open pricing window.
func (qr *QuoteRequest) MarkPriced(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	if qr.IsExpired(now) {
		return ErrQuoteRequestExpired
	}

	status, err := qr.status.MarkPriced()
	if err != nil {
		return err
	}

	qr.status = status
	qr.pricedAt = &now
	qr.quoteID = &quoteID
	qr.MarkModified()
	qr.RecordEvent(PricedEvent{
		EventBase:      kernel.NewEventBase(),
		QuoteRequestID: qr.ID(),
		OwnerID:        qr.ownerID,
		QuoteID:        quoteID,
	})
	return nil
}

// Expire formalizes the expiry of the request. Expiring an already expired
// request is a no-op.
func (qr *QuoteRequest) Expire() error {
	if qr.status == Expired {
		return nil
	}

	status, err := qr.status.Expire()
	if err != nil {
		return err
	}

	qr.status = status
	qr.MarkModified()
	qr.RecordEvent(ExpiredEvent{
		EventBase:      kernel.NewEventBase(),
		QuoteRequestID: qr.ID(),
		OwnerID:        qr.ownerID,
	})
	return nil
}

// SetExpiryDate replaces the pricing window deadline.
// The date must be strictly in the future.
func (qr *QuoteRequest) SetExpiryDate(expiresAt time.Time) error {
	if !expiresAt.After(time.Now().UTC()) {
		return ErrExpiryDateNotInFuture
	}

	expiresAt = expiresAt.UTC()
	qr.expiresAt = &expiresAt
	qr.MarkModified()
	return nil
}
